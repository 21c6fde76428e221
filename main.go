package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	pubnub "github.com/pubnub/go"
	"github.com/redis/go-redis/v9"

	"coordinator/config"
	"coordinator/models"
	"coordinator/routes"
	"coordinator/services"
	"coordinator/utils"
)

func main() {
	_ = godotenv.Load()

	cfg := config.LoadConfig()
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Redis backs the response cache and the daily location quota; the data
	// collections themselves live in process memory only.
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	inv := utils.NewCacheInvalidator(rdb)

	// PubNub carries toasts and broadcasts when keys are configured.
	var pn *pubnub.PubNub
	if cfg.PubNubPublishKey != "" {
		pnConfig := pubnub.NewConfig()
		pnConfig.PublishKey = cfg.PubNubPublishKey
		pnConfig.SubscribeKey = cfg.PubNubSubscribeKey
		pn = pubnub.NewPubNub(pnConfig)
	}
	notifier := services.NewNotifier(pn)

	// Every collection boots from the built-in seed dataset and lives for
	// the process lifetime.
	events := models.NewMemoryEventRepository(models.SeedEvents())
	announcements := models.NewMemoryAnnouncementRepository(models.SeedAnnouncements())
	locations := models.NewMemoryLocationRepository(models.SeedLocations())
	venues := models.NewMemoryVenueRepository(models.SeedVenues())

	tracking := services.NewTrackingService(locations, notifier, cfg.TrackingInterval, cfg.TrackingSessionTTL)
	defer tracking.StopAll()

	server := gin.Default()
	routes.RegisterRoutes(server, events, announcements, locations, venues, tracking, notifier, rdb, inv, cfg)

	if err := server.Run(":" + cfg.Port); err != nil {
		log.Fatal("gin.Run error:", err)
	}
}
