package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coordinator/models"
)

func cachedRouter(t *testing.T) (*gin.Engine, *int) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	hits := 0
	r := gin.New()
	r.Use(ResponseCache(rdb, 30*time.Second))
	r.GET("/schedule", func(c *gin.Context) {
		hits++
		c.JSON(http.StatusOK, gin.H{"calls": hits})
	})
	return r, &hits
}

func TestResponseCache_SecondGetServedFromCache(t *testing.T) {
	r, hits := cachedRouter(t)

	w1 := httptest.NewRecorder()
	r.ServeHTTP(w1, httptest.NewRequest(http.MethodGet, "/schedule", nil))
	require.Equal(t, http.StatusOK, w1.Code)
	assert.Equal(t, "MISS", w1.Header().Get("X-Cache"))

	w2 := httptest.NewRecorder()
	r.ServeHTTP(w2, httptest.NewRequest(http.MethodGet, "/schedule", nil))
	require.Equal(t, http.StatusOK, w2.Code)
	assert.Equal(t, "HIT", w2.Header().Get("X-Cache"))
	assert.Equal(t, w1.Body.String(), w2.Body.String())
	assert.Equal(t, 1, *hits, "handler runs once")
}

func TestResponseCache_RedisDownDegradesToPassThrough(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rdb := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"}) // nothing listens here

	hits := 0
	r := gin.New()
	r.Use(ResponseCache(rdb, time.Second))
	r.GET("/schedule", func(c *gin.Context) {
		hits++
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/schedule", nil))
		require.Equal(t, http.StatusOK, w.Code)
	}
	assert.Equal(t, 2, hits)
}

func TestCacheKeyFrom_AnnouncementsScopedByRole(t *testing.T) {
	gin.SetMode(gin.TestMode)

	keys := map[string]string{}
	r := gin.New()
	r.GET("/announcements", func(c *gin.Context) {
		role := c.GetHeader("X-Role")
		c.Set(ContextUserKey, models.User{ID: "u", Role: models.Role(role)})
		keys[role] = CacheKeyFrom(c)
		c.Status(http.StatusOK)
	})

	// Identical request line; only the viewer's role differs.
	for _, role := range []string{"spectator", "performer"} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/announcements", nil)
		req.Header.Set("X-Role", role)
		r.ServeHTTP(w, req)
	}

	require.Len(t, keys, 2)
	assert.NotEqual(t, keys["spectator"], keys["performer"])
}

func TestCacheKeyFrom_LocationsNeverCached(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var key string
	r := gin.New()
	r.GET("/locations", func(c *gin.Context) {
		key = CacheKeyFrom(c)
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/locations", nil))

	assert.Empty(t, key)
}
