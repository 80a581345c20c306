package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/campushub/student-assist-api/internal/service"
)

// Metrics exposes the Prometheus scrape endpoint.
func Metrics(metricsSvc *service.MetricsService) gin.HandlerFunc {
	h := metricsSvc.Handler()
	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}
