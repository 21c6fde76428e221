package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	// Server configuration
	Port        string
	Environment string

	// Session tokens
	JWTSecret string
	JWTTTL    time.Duration

	// Redis (response cache + quotas)
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	CacheTTL      time.Duration

	// Rate limiting
	GlobalRPS      float64
	GlobalBurst    int
	LoginRPS       float64
	LoginBurst     int
	UserRPS        float64
	UserBurst      int
	LimiterIdleTTL time.Duration

	// Location ping quota
	LocationQuota  int
	LocationWindow time.Duration

	// Performer tracking
	TrackingInterval   time.Duration
	TrackingSessionTTL time.Duration

	// PubNub notifications
	PubNubPublishKey   string
	PubNubSubscribeKey string

	// Monitoring
	EnableMetrics bool
}

func LoadConfig() *Config {
	return &Config{
		// Server
		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("ENVIRONMENT", "development"),

		// Sessions
		JWTSecret: getEnv("JWT_SECRET", "supersecret"),
		JWTTTL:    getEnvAsDuration("JWT_TTL", "2h"),

		// Redis
		RedisAddr:     getEnv("REDIS_ADDR", "127.0.0.1:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnvAsInt("REDIS_DB", 0),
		CacheTTL:      getEnvAsDuration("CACHE_TTL", "30s"),

		// Rate limiting
		GlobalRPS:      getEnvAsFloat("GLOBAL_RPS", 20),
		GlobalBurst:    getEnvAsInt("GLOBAL_BURST", 40),
		LoginRPS:       getEnvAsFloat("LOGIN_RPS", 0.5),
		LoginBurst:     getEnvAsInt("LOGIN_BURST", 2),
		UserRPS:        getEnvAsFloat("USER_RPS", 5),
		UserBurst:      getEnvAsInt("USER_BURST", 10),
		LimiterIdleTTL: getEnvAsDuration("LIMITER_IDLE_TTL", "10m"),

		// Quota
		LocationQuota:  getEnvAsInt("LOCATION_QUOTA", 2000),
		LocationWindow: getEnvAsDuration("LOCATION_WINDOW", "24h"),

		// Tracking
		TrackingInterval:   getEnvAsDuration("TRACKING_INTERVAL", "5s"),
		TrackingSessionTTL: getEnvAsDuration("TRACKING_SESSION_TTL", "60s"),

		// PubNub
		PubNubPublishKey:   getEnv("PUBNUB_PUBLISH_KEY", ""),
		PubNubSubscribeKey: getEnv("PUBNUB_SUBSCRIBE_KEY", ""),

		// Monitoring
		EnableMetrics: getEnvAsBool("ENABLE_METRICS", true),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, err := strconv.Atoi(getEnv(key, "")); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value, err := strconv.ParseFloat(getEnv(key, ""), 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value, err := strconv.ParseBool(getEnv(key, "")); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	if duration, err := time.ParseDuration(getEnv(key, defaultValue)); err == nil {
		return duration
	}
	duration, _ := time.ParseDuration(defaultValue)
	return duration
}
