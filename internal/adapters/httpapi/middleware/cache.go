package middleware

import (
	"bytes"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"yatube/internal/ports/pagecache"
)

const htmlContentType = "text/html; charset=utf-8"

type recordingWriter struct {
	gin.ResponseWriter
	body bytes.Buffer
}

func (w *recordingWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *recordingWriter) WriteString(s string) (int, error) {
	w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}

// CachePage serves GET requests from cache when possible and stores fresh
// 200 responses for ttl. The key is prefix plus the full request URI, so
// every ?page= value is a separate entry. Nothing here reacts to writes:
// a cached page only goes away on expiry or Clear.
func CachePage(cache pagecache.PageCache, ttl time.Duration, prefix string, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet {
			c.Next()
			return
		}

		key := prefix + c.Request.URL.RequestURI()
		body, ok, err := cache.Get(c.Request.Context(), key)
		if err != nil {
			logger.Error("Page cache read failed", zap.String("key", key), zap.Error(err))
		}
		if ok {
			pageCacheLookups.WithLabelValues("hit").Inc()
			c.Data(http.StatusOK, htmlContentType, body)
			c.Abort()
			return
		}
		pageCacheLookups.WithLabelValues("miss").Inc()

		rec := &recordingWriter{ResponseWriter: c.Writer}
		c.Writer = rec
		c.Next()
		c.Writer = rec.ResponseWriter

		if rec.Status() != http.StatusOK {
			return
		}
		if err := cache.Set(c.Request.Context(), key, rec.body.Bytes(), ttl); err != nil {
			logger.Error("Page cache write failed", zap.String("key", key), zap.Error(err))
		}
	}
}
