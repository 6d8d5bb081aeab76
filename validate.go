package pipeline

// Graph maps each known node ID to the IDs it has a directed edge to,
// in edge input order.
type Graph map[string][]string

// BuildGraph builds the adjacency mapping for nodes and edges.
// Edges whose source or target is not a known node are dropped.
// Parallel edges and self-loops are kept.
func BuildGraph(nodes []Node, edges []Edge) Graph {
	g := make(Graph, len(nodes))
	for _, n := range nodes {
		g[n.ID] = []string{}
	}
	for _, e := range edges {
		if _, ok := g[e.Source]; !ok {
			continue
		}
		if _, ok := g[e.Target]; !ok {
			continue
		}
		g[e.Source] = append(g[e.Source], e.Target)
	}
	return g
}

// Validate reports node and edge counts and whether the pipeline is acyclic.
// It never fails and does not modify its inputs.
func Validate(nodes []Node, edges []Edge) Result {
	res := Result{
		NumNodes: len(nodes),
		NumEdges: len(edges),
		IsDAG:    true,
	}

	g := BuildGraph(nodes, edges)
	if cycle := findCycle(g, nodes); cycle != nil {
		res.IsDAG = false
		res.Cycle = cycle
	}
	return res
}

// frame is one entry of the DFS work stack: the node and the index of the
// next successor to look at.
type frame struct {
	id   string
	next int
}

// findCycle runs a three-colour DFS over g, starting nodes taken in the order
// given. It uses an explicit stack so depth is bounded by heap, not by the
// goroutine stack. Returns the first cycle found or nil.
func findCycle(g Graph, order []Node) []string {
	colors := newColoring(g)
	var stack []frame

	for _, start := range order {
		if colors[start.ID] != unvisited {
			continue
		}

		colors.advance(start.ID, inProgress)
		stack = append(stack[:0], frame{id: start.ID})

		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			succ := g[top.id]
			if top.next == len(succ) {
				colors.advance(top.id, done)
				stack = stack[:len(stack)-1]
				continue
			}

			next := succ[top.next]
			top.next++

			switch colors[next] {
			case inProgress:
				return cyclePath(stack, next)
			case unvisited:
				colors.advance(next, inProgress)
				stack = append(stack, frame{id: next})
			}
		}
	}
	return nil
}

// cyclePath extracts the active path from the in-progress node back to itself.
func cyclePath(stack []frame, back string) []string {
	start := 0
	for i, f := range stack {
		if f.id == back {
			start = i
			break
		}
	}
	path := make([]string, 0, len(stack)-start+1)
	for _, f := range stack[start:] {
		path = append(path, f.id)
	}
	return append(path, back)
}
