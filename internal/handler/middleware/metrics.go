package middleware

import (
	"time"

	"storefront-api/internal/pkg/metrics"

	"github.com/gin-gonic/gin"
)

const unmatchedRoute = "unmatched"

func MetricsMiddleware(rec *metrics.Recorder) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		rec.RequestStarted()

		c.Next()

		// route templates keep label cardinality bounded
		path := c.FullPath()
		if path == "" {
			path = unmatchedRoute
		}
		rec.RequestFinished(c.Request.Method, path, c.Writer.Status(), time.Since(start))
	}
}
