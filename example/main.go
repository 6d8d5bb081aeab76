package main

import (
	"encoding/json"
	"fmt"

	"github.com/meikuraledutech/pipeline"
)

func main() {
	// ── Acyclic: input → text → llm → output ──────────────────────────
	linear := pipeline.Pipeline{
		Nodes: []pipeline.Node{
			{ID: "customInput-1", Type: "customInput", Data: map[string]any{"inputName": "input_1"}},
			{ID: "text-1", Type: "text", Data: map[string]any{"text": "{{input_1}}"}},
			{ID: "llm-1", Type: "llm"},
			{ID: "customOutput-1", Type: "customOutput"},
		},
		Edges: []pipeline.Edge{
			{ID: "e1", Source: "customInput-1", Target: "text-1", SourceHandle: handle("input_1"), TargetHandle: handle("input_1")},
			{ID: "e2", Source: "text-1", Target: "llm-1"},
			{ID: "e3", Source: "llm-1", Target: "customOutput-1"},
		},
	}
	fmt.Println("linear pipeline:")
	printJSON(pipeline.Validate(linear.Nodes, linear.Edges))

	// ── Feedback loop: llm output wired back into the prompt ──────────
	loop := linear
	loop.Edges = append(append([]pipeline.Edge(nil), linear.Edges...),
		pipeline.Edge{ID: "e4", Source: "llm-1", Target: "text-1"})
	res := pipeline.Validate(loop.Nodes, loop.Edges)
	fmt.Println("\nlooping pipeline:")
	printJSON(res)
	fmt.Printf("cycle: %v\n", res.Cycle)

	// ── Edge into a node that was deleted on the canvas ───────────────
	stale := linear
	stale.Edges = append(append([]pipeline.Edge(nil), linear.Edges...),
		pipeline.Edge{ID: "e5", Source: "customOutput-1", Target: "text-2"})
	fmt.Println("\npipeline with stale edge:")
	printJSON(pipeline.Validate(stale.Nodes, stale.Edges))
}

func handle(name string) *string { return &name }

func printJSON(v any) {
	out, _ := json.MarshalIndent(v, "", "  ")
	fmt.Println(string(out))
}
