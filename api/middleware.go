package api

import (
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/requestid"
	"go.uber.org/zap"
)

// accessLog writes one log line per request. Errors from the chain are
// rendered here so the logged status is the one the client sees.
func (h *handler) accessLog(c fiber.Ctx) error {
	start := time.Now()

	if err := c.Next(); err != nil {
		if herr := h.handleError(c, err); herr != nil {
			h.logger.Error("write error response", zap.Error(herr))
			_ = c.SendStatus(fiber.StatusInternalServerError)
		}
	}

	h.logger.Info("request",
		zap.String("method", c.Method()),
		zap.String("path", c.Path()),
		zap.Int("status", c.Response().StatusCode()),
		zap.Duration("latency", time.Since(start)),
		zap.String("request_id", requestid.FromContext(c)),
	)
	return nil
}
