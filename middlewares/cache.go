package middlewares

import (
	"bytes"
	"context"
	"crypto/sha1"
	"encoding/gob"
	"encoding/hex"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

type cachedBody struct {
	Status int
	Header map[string][]string
	Body   []byte
}

func sha1Hex(s string) string {
	sum := sha1.Sum([]byte(s))
	return hex.EncodeToString(sum[:])
}

// CacheKeyFrom maps a GET request to its cache key, or "" when the route is
// not cacheable. The announcement feed is filtered per role, so the viewer's
// role is folded into its key; performer locations are live data and are
// never cached. Mount this after Authenticate so the role is available.
func CacheKeyFrom(c *gin.Context) string {
	if c.Request.Method != "GET" || c.FullPath() == "" {
		return ""
	}
	rawq := c.Request.URL.RawQuery

	switch c.FullPath() {
	case "/schedule":
		return "cache:schedule:" + sha1Hex("GET|/schedule|"+rawq)
	case "/events":
		return "cache:events:list:" + sha1Hex("GET|/events|"+rawq)
	case "/events/:id":
		return "cache:events:item:" + sha1Hex("GET|/events/"+c.Param("id"))
	case "/announcements":
		user, _ := CurrentUser(c)
		return "cache:announcements:" + string(user.Role) + ":" + sha1Hex("GET|/announcements|"+rawq)
	case "/venues", "/venue":
		return "cache:venues:" + sha1Hex("GET|"+c.FullPath()+"|"+rawq)
	default:
		return ""
	}
}

// ResponseCache serves 2xx GET responses from Redis for ttl. A Redis failure
// degrades to pass-through; the handler is always the fallback.
func ResponseCache(rdb *redis.Client, ttl time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := CacheKeyFrom(c)
		if key == "" {
			c.Next()
			return
		}

		if b, err := rdb.Get(context.Background(), key).Bytes(); err == nil && len(b) > 0 {
			var hit cachedBody
			if err := gob.NewDecoder(bytes.NewReader(b)).Decode(&hit); err == nil {
				for k, vals := range hit.Header {
					for _, v := range vals {
						c.Writer.Header().Add(k, v)
					}
				}
				c.Writer.Header().Set("X-Cache", "HIT")
				c.Status(hit.Status)
				_, _ = c.Writer.Write(hit.Body)
				c.Abort()
				return
			}
		}

		buf := &bytes.Buffer{}
		bw := &bufferedWriter{ResponseWriter: c.Writer, buf: buf}
		c.Writer = bw

		c.Next()

		if bw.Status() >= 200 && bw.Status() < 300 {
			item := cachedBody{
				Status: bw.Status(),
				Header: c.Writer.Header(),
				Body:   buf.Bytes(),
			}
			var o bytes.Buffer
			if err := gob.NewEncoder(&o).Encode(item); err == nil {
				_ = rdb.Set(context.Background(), key, o.Bytes(), ttl).Err()
			}
			c.Writer.Header().Set("X-Cache", "MISS")
		}
	}
}

type bufferedWriter struct {
	gin.ResponseWriter
	buf *bytes.Buffer
}

func (w *bufferedWriter) Write(b []byte) (int, error) {
	w.buf.Write(b)
	return w.ResponseWriter.Write(b)
}
