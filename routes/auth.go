package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"coordinator/middlewares"
	"coordinator/models"
	"coordinator/monitoring"
	"coordinator/utils"
)

// POST /login
// Role-selecting login: the caller picks a name and a role; both are trusted
// as given. No credential is checked anywhere.
func (d *deps) login(c *gin.Context) {
	var req struct {
		Name       string `json:"name" binding:"required"`
		Role       string `json:"role"`
		BandID     string `json:"bandId"`
		Instrument string `json:"instrument"`
		Section    string `json:"section"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Please enter your name."})
		return
	}

	role := models.Role(req.Role)
	if role == "" {
		role = models.RoleSpectator
	}

	user := models.User{
		ID:   uuid.NewString(),
		Name: req.Name,
		Role: role,
	}
	// Spectators carry no band details.
	if role != models.RoleSpectator {
		user.BandID = req.BandID
		user.Instrument = req.Instrument
		user.Section = req.Section
	}

	token, err := utils.GenerateToken(user, d.cfg.JWTSecret, d.cfg.JWTTTL)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not create session."})
		return
	}

	monitoring.TrackLogin(string(role))
	d.notifier.Success(user.ID, "Welcome, "+user.Name+"!")
	c.JSON(http.StatusOK, gin.H{"message": "Login successful!", "token": token, "user": user})
}

// POST /logout
// Tokens are stateless, so logout is an acknowledgment; the client discards
// the token and any live tracking session is shut down.
func (d *deps) logout(c *gin.Context) {
	user, _ := middlewares.CurrentUser(c)
	d.tracking.Stop(user.ID)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out."})
}

// GET /profile
func (d *deps) getProfile(c *gin.Context) {
	user, ok := middlewares.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Not authorized."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user, "tracking": d.tracking.IsTracking(user.ID)})
}
