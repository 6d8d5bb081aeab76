package api

import (
	"encoding/json"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"github.com/meikuraledutech/pipeline"
)

func (h *handler) ping(c fiber.Ctx) error {
	return c.JSON(fiber.Map{"Ping": "Pong"})
}

// parse decodes a pipeline, validates its shape and reports its statistics.
func (h *handler) parse(c fiber.Ctx) error {
	var req parseRequest
	if err := json.Unmarshal(c.Body(), &req); err != nil {
		return &ParseError{Err: err}
	}
	if err := h.validate.Struct(&req); err != nil {
		return &ParseError{Err: describeValidation(err)}
	}

	p := req.pipeline()
	res := pipeline.Validate(p.Nodes, p.Edges)
	h.metrics.observe(res)

	h.logger.Debug("pipeline parsed",
		zap.Int("num_nodes", res.NumNodes),
		zap.Int("num_edges", res.NumEdges),
		zap.Bool("is_dag", res.IsDAG),
		zap.Strings("cycle", res.Cycle),
	)

	return c.JSON(res)
}
