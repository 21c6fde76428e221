package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"coordinator/middlewares"
	"coordinator/models"
	"coordinator/monitoring"
)

// GET /locations
// Spectators get the venue map without performer positions.
func (d *deps) getLocations(c *gin.Context) {
	user, _ := middlewares.CurrentUser(c)
	if !models.CanViewLocations(user.Role) {
		c.JSON(http.StatusForbidden, gin.H{"message": "Not authorized to view performer locations."})
		return
	}
	c.JSON(http.StatusOK, d.locations.GetAll())
}

// PUT /locations
// Upsert by performer id; omitting performerId reports the caller's own
// position. LastUpdated is stamped by the repository.
func (d *deps) updateLocation(c *gin.Context) {
	user, _ := middlewares.CurrentUser(c)

	var req struct {
		PerformerID string  `json:"performerId"`
		Name        string  `json:"name"`
		Latitude    float64 `json:"latitude"`
		Longitude   float64 `json:"longitude"`
		Section     string  `json:"section"`
		Instrument  string  `json:"instrument"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		d.notifier.Error(user.ID, "Could not parse request data.")
		c.JSON(http.StatusBadRequest, gin.H{"message": "Could not parse request data."})
		return
	}

	if req.PerformerID == "" {
		req.PerformerID = user.ID
	}
	if !models.CanReportLocation(user.Role, user.ID, req.PerformerID) {
		c.JSON(http.StatusForbidden, gin.H{"message": "Not authorized to report this location."})
		return
	}
	if req.Name == "" {
		req.Name = user.Name
	}

	loc := models.PerformerLocation{
		PerformerID: req.PerformerID,
		Name:        req.Name,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		Section:     req.Section,
		Instrument:  req.Instrument,
	}
	d.locations.Upsert(&loc)

	monitoring.TrackStoreOperation("locations", "upsert", "ok")
	d.notifier.LocationUpdated(loc)
	c.JSON(http.StatusOK, gin.H{"message": "Location updated.", "location": loc})
}

// GET /tracking
func (d *deps) getTracking(c *gin.Context) {
	user, _ := middlewares.CurrentUser(c)
	c.JSON(http.StatusOK, gin.H{"tracking": d.tracking.IsTracking(user.ID)})
}

// POST /tracking
func (d *deps) startTracking(c *gin.Context) {
	user, _ := middlewares.CurrentUser(c)
	if user.Role != models.RolePerformer {
		c.JSON(http.StatusForbidden, gin.H{"message": "Only performers can share their location."})
		return
	}

	d.tracking.Start(user)
	d.notifier.Success(user.ID, "Location sharing enabled.")
	c.JSON(http.StatusOK, gin.H{"message": "Location sharing enabled.", "tracking": true})
}

// DELETE /tracking
func (d *deps) stopTracking(c *gin.Context) {
	user, _ := middlewares.CurrentUser(c)

	if d.tracking.Stop(user.ID) {
		d.notifier.Success(user.ID, "Location sharing disabled.")
	}
	c.JSON(http.StatusOK, gin.H{"message": "Location sharing disabled.", "tracking": false})
}
