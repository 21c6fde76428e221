package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"coordinator/middlewares"
	"coordinator/models"
	"coordinator/monitoring"
)

// GET /venues
func (d *deps) getVenues(c *gin.Context) {
	c.JSON(http.StatusOK, d.venues.GetAll())
}

// GET /venue
func (d *deps) getCurrentVenue(c *gin.Context) {
	venue, ok := d.venues.Current()
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"message": "No venue selected."})
		return
	}
	c.JSON(http.StatusOK, venue)
}

// PUT /venue
// An unknown id clears the selection; the caller is told the lookup missed.
func (d *deps) setCurrentVenue(c *gin.Context) {
	user, _ := middlewares.CurrentUser(c)
	if !models.CanSelectVenue(user.Role) {
		c.JSON(http.StatusForbidden, gin.H{"message": "Not authorized to change the venue."})
		return
	}

	var req struct {
		VenueID string `json:"venueId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		d.notifier.Error(user.ID, "Could not parse request data.")
		c.JSON(http.StatusBadRequest, gin.H{"message": "Could not parse request data."})
		return
	}

	if !d.venues.SetCurrent(req.VenueID) {
		// The selection is cleared even on a miss, so cached venue
		// responses are stale either way.
		d.inv.PurgeVenues(c)
		monitoring.TrackStoreOperation("venues", "select", "miss")
		c.JSON(http.StatusNotFound, gin.H{"message": "Venue not found."})
		return
	}

	monitoring.TrackStoreOperation("venues", "select", "ok")
	d.inv.PurgeVenues(c)
	d.notifier.Success(user.ID, "Venue updated.")
	venue, _ := d.venues.Current()
	c.JSON(http.StatusOK, gin.H{"message": "Venue updated.", "venue": venue})
}
