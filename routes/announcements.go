package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"coordinator/middlewares"
	"coordinator/models"
	"coordinator/monitoring"
)

// GET /announcements
// Newest first, filtered by the viewer's role.
func (d *deps) getAnnouncements(c *gin.Context) {
	user, _ := middlewares.CurrentUser(c)
	c.JSON(http.StatusOK, models.VisibleAnnouncements(d.announcements.GetAll(), user.Role))
}

// POST /announcements
func (d *deps) createAnnouncement(c *gin.Context) {
	user, _ := middlewares.CurrentUser(c)
	if !models.CanManageAnnouncements(user.Role) {
		c.JSON(http.StatusForbidden, gin.H{"message": "Not authorized to post announcements."})
		return
	}

	var req struct {
		Title    string          `json:"title" binding:"required"`
		Message  string          `json:"message" binding:"required"`
		Audience models.Audience `json:"audience"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		d.notifier.Error(user.ID, "Title and message are required.")
		c.JSON(http.StatusBadRequest, gin.H{"message": "Title and message are required."})
		return
	}
	if req.Audience == "" {
		req.Audience = models.AudienceAll
	}

	// The repository stamps id and timestamp; callers never supply them.
	a := models.Announcement{
		Title:    req.Title,
		Message:  req.Message,
		Audience: req.Audience,
	}
	d.announcements.Create(&a)

	monitoring.TrackStoreOperation("announcements", "create", "ok")
	monitoring.TrackAnnouncement(string(a.Audience))
	d.inv.PurgeAnnouncements(c)
	d.notifier.Success(user.ID, "Announcement broadcast successfully!")
	d.notifier.Announce(a)
	c.JSON(http.StatusCreated, gin.H{"message": "Announcement broadcast successfully!", "announcement": a})
}

// PUT /announcements/:id
func (d *deps) updateAnnouncement(c *gin.Context) {
	user, _ := middlewares.CurrentUser(c)
	if !models.CanManageAnnouncements(user.Role) {
		c.JSON(http.StatusForbidden, gin.H{"message": "Not authorized to edit announcements."})
		return
	}

	existing, ok := d.announcements.GetByID(c.Param("id"))
	if !ok {
		monitoring.TrackStoreOperation("announcements", "update", "miss")
		c.JSON(http.StatusNotFound, gin.H{"message": "Announcement not found."})
		return
	}

	var incoming models.Announcement
	if err := c.ShouldBindJSON(&incoming); err != nil {
		d.notifier.Error(user.ID, "Could not parse request data.")
		c.JSON(http.StatusBadRequest, gin.H{"message": "Could not parse request data."})
		return
	}
	incoming.ID = existing.ID
	incoming.Timestamp = existing.Timestamp
	if incoming.Audience == "" {
		incoming.Audience = existing.Audience
	}

	d.announcements.Update(&incoming)
	monitoring.TrackStoreOperation("announcements", "update", "ok")
	d.inv.PurgeAnnouncements(c)
	d.notifier.Success(user.ID, "Announcement updated successfully!")
	c.JSON(http.StatusOK, gin.H{"message": "Announcement updated successfully!", "announcement": incoming})
}

// DELETE /announcements/:id
func (d *deps) deleteAnnouncement(c *gin.Context) {
	user, _ := middlewares.CurrentUser(c)
	if !models.CanManageAnnouncements(user.Role) {
		c.JSON(http.StatusForbidden, gin.H{"message": "Not authorized to delete announcements."})
		return
	}

	if !d.announcements.Delete(c.Param("id")) {
		monitoring.TrackStoreOperation("announcements", "delete", "miss")
		c.JSON(http.StatusNotFound, gin.H{"message": "Announcement not found."})
		return
	}

	monitoring.TrackStoreOperation("announcements", "delete", "ok")
	d.inv.PurgeAnnouncements(c)
	d.notifier.Success(user.ID, "Announcement deleted successfully!")
	c.JSON(http.StatusOK, gin.H{"message": "Announcement deleted successfully!"})
}
