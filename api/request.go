package api

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/meikuraledutech/pipeline"
)

// parseRequest is the wire body of POST /pipelines/parse.
// Pointers and maps let the validator tell a missing field from an empty one.
type parseRequest struct {
	Nodes []nodePayload `json:"nodes" validate:"required,dive"`
	Edges []edgePayload `json:"edges" validate:"required,dive"`
}

type nodePayload struct {
	ID       *string            `json:"id" validate:"required"`
	Type     *string            `json:"type" validate:"required"`
	Position map[string]float64 `json:"position" validate:"required"`
	Data     map[string]any     `json:"data" validate:"required"`
}

type edgePayload struct {
	ID           *string `json:"id" validate:"required"`
	Source       *string `json:"source" validate:"required"`
	Target       *string `json:"target" validate:"required"`
	SourceHandle *string `json:"sourceHandle"`
	TargetHandle *string `json:"targetHandle"`
}

func (r *parseRequest) pipeline() pipeline.Pipeline {
	p := pipeline.Pipeline{
		Nodes: make([]pipeline.Node, len(r.Nodes)),
		Edges: make([]pipeline.Edge, len(r.Edges)),
	}
	for i, n := range r.Nodes {
		p.Nodes[i] = pipeline.Node{
			ID:       *n.ID,
			Type:     *n.Type,
			Position: pipeline.Position{X: n.Position["x"], Y: n.Position["y"]},
			Data:     n.Data,
		}
	}
	for i, e := range r.Edges {
		p.Edges[i] = pipeline.Edge{
			ID:           *e.ID,
			Source:       *e.Source,
			Target:       *e.Target,
			SourceHandle: e.SourceHandle,
			TargetHandle: e.TargetHandle,
		}
	}
	return p
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report JSON field names, e.g. "nodes[0].id".
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// describeValidation flattens validator errors into one readable message.
func describeValidation(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		field := fe.Namespace()
		// Drop the root struct name.
		if _, rest, ok := strings.Cut(field, "."); ok {
			field = rest
		}
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("%s: field required", field))
		default:
			msgs = append(msgs, fmt.Sprintf("%s: failed %q", field, fe.Tag()))
		}
	}
	return errors.New(strings.Join(msgs, "; "))
}
