package http

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/jhoicas/supermercado-api/pkg/logger"
)

// RequestLogger asigna un request id (o respeta el entrante), registra cada
// petición con zerolog e incrementa el contador Prometheus.
func RequestLogger(log *logger.Logger, metrics *Metrics) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		reqID := c.Get("X-Request-ID")
		if reqID == "" {
			reqID = uuid.New().String()
		}
		c.Set("X-Request-ID", reqID)

		err := c.Next()

		status := c.Response().StatusCode()
		metrics.HTTPRequests.WithLabelValues(c.Method(), c.Path(), strconv.Itoa(status)).Inc()
		log.Info().
			Str("request_id", reqID).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Msg("request")
		return err
	}
}
