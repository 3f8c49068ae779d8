package logmodule

import (
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// Ginrus logs every request of a route group with the group name as prefix.
// Server errors are logged as errors, client errors as warnings.
func Ginrus(name string) gin.HandlerFunc {
	logger := log.WithField("prefix", name)

	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		status := c.Writer.Status()
		entry := logger.WithFields(log.Fields{
			"status":  status,
			"method":  c.Request.Method,
			"path":    path,
			"ip":      c.ClientIP(),
			"latency": time.Since(start),
		})
		if requester := c.GetString("requester"); requester != "" {
			entry = entry.WithField("requester", requester)
		}

		switch {
		case len(c.Errors) > 0:
			entry = entry.WithField("errors", c.Errors.String())
			if status >= 500 {
				entry.Error("request failed")
			} else {
				entry.Warn("request rejected")
			}
		case status >= 500:
			entry.Error("request failed")
		case status >= 400:
			entry.Warn("request rejected")
		default:
			entry.Info("request served")
		}
	}
}
