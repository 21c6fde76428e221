package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"coordinator/middlewares"
	"coordinator/models"
	"coordinator/monitoring"
)

// GET /schedule
// The full read model in one payload: the per-date groups the schedule tabs
// render, plus the "happening now" and "coming up next" panels for today.
func (d *deps) getSchedule(c *gin.Context) {
	events := d.events.GetAll()
	groups := models.GroupEventsByDate(events)

	byDate := make(map[string][]models.Event, len(groups))
	for key, group := range groups {
		byDate[key] = models.SortByStart(group)
	}

	now := time.Now()
	today := groups[models.DateKey(now)]
	current := models.CurrentEvents(today, now)
	next := models.UpcomingEvents(today, now)
	if len(next) > 3 {
		next = next[:3]
	}

	c.JSON(http.StatusOK, gin.H{
		"dates":        models.SortedDateKeys(groups),
		"eventsByDate": byDate,
		"happeningNow": current,
		"comingUp":     next,
	})
}

// GET /events
func (d *deps) getEvents(c *gin.Context) {
	c.JSON(http.StatusOK, d.events.GetAll())
}

// GET /events/:id
func (d *deps) getEvent(c *gin.Context) {
	event, ok := d.events.GetByID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"message": "Event not found."})
		return
	}
	c.JSON(http.StatusOK, event)
}

// POST /events
func (d *deps) createEvent(c *gin.Context) {
	user, _ := middlewares.CurrentUser(c)
	if !models.CanManageEvents(user.Role) {
		c.JSON(http.StatusForbidden, gin.H{"message": "Not authorized to manage events."})
		return
	}

	var event models.Event
	if err := c.ShouldBindJSON(&event); err != nil {
		d.notifier.Error(user.ID, "Could not parse request data.")
		c.JSON(http.StatusBadRequest, gin.H{"message": "Could not parse request data."})
		return
	}

	// A client-supplied id is discarded so a duplicate can never shadow an
	// existing event.
	event.ID = uuid.NewString()
	d.events.Create(&event)
	monitoring.TrackStoreOperation("events", "create", "ok")
	d.inv.PurgeSchedule(c)
	d.notifier.Success(user.ID, "Event added successfully!")
	c.JSON(http.StatusCreated, gin.H{"message": "Event added successfully!", "event": event})
}

// PUT /events/:id
func (d *deps) updateEvent(c *gin.Context) {
	user, _ := middlewares.CurrentUser(c)
	if !models.CanManageEvents(user.Role) {
		c.JSON(http.StatusForbidden, gin.H{"message": "Not authorized to manage events."})
		return
	}

	var incoming models.Event
	if err := c.ShouldBindJSON(&incoming); err != nil {
		d.notifier.Error(user.ID, "Could not parse request data.")
		c.JSON(http.StatusBadRequest, gin.H{"message": "Could not parse request data."})
		return
	}
	incoming.ID = c.Param("id")

	if !d.events.Update(&incoming) {
		monitoring.TrackStoreOperation("events", "update", "miss")
		c.JSON(http.StatusNotFound, gin.H{"message": "Event not found."})
		return
	}

	monitoring.TrackStoreOperation("events", "update", "ok")
	d.inv.PurgeSchedule(c)
	d.notifier.Success(user.ID, "Event updated successfully!")
	c.JSON(http.StatusOK, gin.H{"message": "Event updated successfully!", "event": incoming})
}

// DELETE /events/:id
func (d *deps) deleteEvent(c *gin.Context) {
	user, _ := middlewares.CurrentUser(c)
	if !models.CanManageEvents(user.Role) {
		c.JSON(http.StatusForbidden, gin.H{"message": "Not authorized to manage events."})
		return
	}

	if !d.events.Delete(c.Param("id")) {
		monitoring.TrackStoreOperation("events", "delete", "miss")
		c.JSON(http.StatusNotFound, gin.H{"message": "Event not found."})
		return
	}

	monitoring.TrackStoreOperation("events", "delete", "ok")
	d.inv.PurgeSchedule(c)
	d.notifier.Success(user.ID, "Event deleted successfully!")
	c.JSON(http.StatusOK, gin.H{"message": "Event deleted successfully!"})
}
