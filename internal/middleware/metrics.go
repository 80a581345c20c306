package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/campushub/student-assist-api/internal/service"
)

// Metrics records per-request duration and count. The scrape endpoint itself
// is excluded to keep the series clean.
func Metrics(metricsSvc *service.MetricsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.URL.Path == "/metrics" {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()

		// Label by route template so path parameters do not explode cardinality.
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		metricsSvc.ObserveHTTPRequest(c.Request.Method, path, c.Writer.Status(), time.Since(start))
	}
}
