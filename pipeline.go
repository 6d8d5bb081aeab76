// Package pipeline validates pipeline graphs built in the visual editor.
package pipeline

// Pipeline is the graph submitted by the pipeline builder.
type Pipeline struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

// Node represents a vertex of the pipeline.
// Type, Position and Data are carried through but never inspected by Validate.
type Node struct {
	ID       string         `json:"id"`
	Type     string         `json:"type"`
	Position Position       `json:"position"`
	Data     map[string]any `json:"data"`
}

// Position is the canvas location of a node.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Edge represents a directed connection from Source to Target.
// Handles name the connection points on the canvas and may be nil.
type Edge struct {
	ID           string  `json:"id"`
	Source       string  `json:"source"`
	Target       string  `json:"target"`
	SourceHandle *string `json:"sourceHandle"`
	TargetHandle *string `json:"targetHandle"`
}

// Result is the outcome of validating a pipeline.
// NumEdges counts every submitted edge, including ones that reference
// unknown nodes and were left out of the graph.
type Result struct {
	NumNodes int  `json:"num_nodes"`
	NumEdges int  `json:"num_edges"`
	IsDAG    bool `json:"is_dag"`

	// Cycle holds the node IDs of the first cycle found, closed by repeating
	// its first node. Empty when IsDAG is true.
	Cycle []string `json:"-"`
}
