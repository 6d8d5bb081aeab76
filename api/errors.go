package api

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"
)

// ParseError reports a request that could not be turned into a pipeline.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return "Error parsing pipeline: " + e.Err.Error()
}

func (e *ParseError) Unwrap() error { return e.Err }

// handleError renders every error as {"detail": ...}.
// Fiber errors keep their status; anything else, recovered panics
// included, is a 400 parse failure.
func (h *handler) handleError(c fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return c.Status(fe.Code).JSON(fiber.Map{"detail": fe.Message})
	}

	var pe *ParseError
	if !errors.As(err, &pe) {
		pe = &ParseError{Err: err}
	}
	h.metrics.rejected()
	h.logger.Warn("pipeline rejected", zap.String("path", c.Path()), zap.Error(pe.Err))
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"detail": pe.Error()})
}
