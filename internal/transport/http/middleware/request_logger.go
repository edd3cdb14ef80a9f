// Package middleware contains HTTP middlewares for delivery.
package middleware

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/Vedant634/flowdesk-project/internal/metrics"
)

// RequestLogger logs every request with its status and duration and feeds
// the per-route request counter. The route label uses the registered
// pattern (e.g. /api/tasks/:taskID), not the raw URL, to keep cardinality
// bounded.
func RequestLogger(log *zap.SugaredLogger, m *metrics.Metrics) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		dur := time.Since(start)

		status := c.Response().StatusCode()
		route := c.Route().Path
		m.HTTPRequests.WithLabelValues(c.Method(), route, strconv.Itoa(status)).Inc()

		reqID, _ := c.Locals("requestid").(string)
		if reqID == "" {
			reqID = c.Get(fiber.HeaderXRequestID)
		}
		log.Infow("http",
			"method", c.Method(),
			"path", c.OriginalURL(),
			"route", route,
			"status", status,
			"duration_ms", float64(dur.Microseconds())/1000.0,
			"request_id", reqID,
		)
		return err
	}
}
