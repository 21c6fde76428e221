package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"coordinator/config"
	"coordinator/middlewares"
	"coordinator/models"
	"coordinator/services"
	"coordinator/utils"
)

type deps struct {
	events        models.EventRepository
	announcements models.AnnouncementRepository
	locations     models.LocationRepository
	venues        models.VenueRepository
	tracking      *services.TrackingService
	notifier      *services.Notifier
	inv           *utils.CacheInvalidator
	cfg           *config.Config
}

// RegisterRoutes wires the whole surface: a public login route, and the four
// authenticated destinations (schedule, map, announcements, profile) as JSON
// endpoints behind the token middleware. Repositories come from main so the
// handlers never hold hidden global state.
func RegisterRoutes(
	server *gin.Engine,
	events models.EventRepository,
	announcements models.AnnouncementRepository,
	locations models.LocationRepository,
	venues models.VenueRepository,
	tracking *services.TrackingService,
	notifier *services.Notifier,
	rdb *redis.Client,
	inv *utils.CacheInvalidator,
	cfg *config.Config,
) {
	d := &deps{
		events:        events,
		announcements: announcements,
		locations:     locations,
		venues:        venues,
		tracking:      tracking,
		notifier:      notifier,
		inv:           inv,
		cfg:           cfg,
	}

	// Global per-IP limiter.
	globalLimiter := middlewares.NewRateLimiter(middlewares.LimiterConfig{
		RPS:     cfg.GlobalRPS,
		Burst:   cfg.GlobalBurst,
		IdleTTL: cfg.LimiterIdleTTL,
	})
	server.Use(globalLimiter.Middleware(func(c *gin.Context) string {
		return "ip:" + c.ClientIP()
	}))

	// Stricter limit on the login endpoint.
	loginLimiter := middlewares.NewRateLimiter(middlewares.LimiterConfig{
		RPS:     cfg.LoginRPS,
		Burst:   cfg.LoginBurst,
		IdleTTL: cfg.LimiterIdleTTL,
	})
	server.POST("/login",
		loginLimiter.Middleware(func(c *gin.Context) string { return "login:" + c.ClientIP() }),
		d.login,
	)

	if cfg.EnableMetrics {
		server.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	server.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Not found."})
	})

	// Everything else requires a session token.
	auth := server.Group("/")
	auth.Use(middlewares.Authenticate(cfg.JWTSecret))

	userLimiter := middlewares.NewRateLimiter(middlewares.LimiterConfig{
		RPS:     cfg.UserRPS,
		Burst:   cfg.UserBurst,
		IdleTTL: cfg.LimiterIdleTTL,
	})
	auth.Use(userLimiter.Middleware(func(c *gin.Context) string {
		user, _ := middlewares.CurrentUser(c)
		return "u:" + user.ID
	}))

	// Response cache sits after Authenticate so role-scoped keys work.
	auth.Use(middlewares.ResponseCache(rdb, cfg.CacheTTL))

	auth.POST("/logout", d.logout)
	auth.GET("/profile", d.getProfile)

	auth.GET("/schedule", d.getSchedule)
	auth.GET("/events", d.getEvents)
	auth.GET("/events/:id", d.getEvent)
	auth.POST("/events", d.createEvent)
	auth.PUT("/events/:id", d.updateEvent)
	auth.DELETE("/events/:id", d.deleteEvent)

	auth.GET("/announcements", d.getAnnouncements)
	auth.POST("/announcements", d.createAnnouncement)
	auth.PUT("/announcements/:id", d.updateAnnouncement)
	auth.DELETE("/announcements/:id", d.deleteAnnouncement)

	auth.GET("/venues", d.getVenues)
	auth.GET("/venue", d.getCurrentVenue)
	auth.PUT("/venue", d.setCurrentVenue)

	auth.GET("/locations", d.getLocations)
	auth.PUT("/locations",
		middlewares.Quota(rdb, middlewares.QuotaRule{
			Limit:  cfg.LocationQuota,
			Window: cfg.LocationWindow,
			KeyFn: func(c *gin.Context) string {
				user, ok := middlewares.CurrentUser(c)
				if !ok {
					return ""
				}
				return "quota:loc:" + user.ID + ":day"
			},
		}),
		d.updateLocation,
	)

	auth.GET("/tracking", d.getTracking)
	auth.POST("/tracking", d.startTracking)
	auth.DELETE("/tracking", d.stopTracking)
}
