package pipeline

import "fmt"

// visitState is the DFS colour of a node.
type visitState uint8

const (
	unvisited visitState = iota
	inProgress
	done
)

func (s visitState) String() string {
	switch s {
	case unvisited:
		return "unvisited"
	case inProgress:
		return "in-progress"
	case done:
		return "done"
	default:
		return fmt.Sprintf("visitState(%d)", uint8(s))
	}
}

// canAdvanceTo reports whether s -> next is a legal transition.
// The only legal ones are unvisited -> inProgress -> done.
func (s visitState) canAdvanceTo(next visitState) bool {
	return (s == unvisited && next == inProgress) || (s == inProgress && next == done)
}

// coloring tracks the visit state of every known node.
type coloring map[string]visitState

func newColoring(g Graph) coloring {
	c := make(coloring, len(g))
	for id := range g {
		c[id] = unvisited
	}
	return c
}

// advance moves id to next. An illegal transition is a traversal bug and panics.
func (c coloring) advance(id string, next visitState) {
	cur := c[id]
	if !cur.canAdvanceTo(next) {
		panic(fmt.Sprintf("pipeline: illegal visit transition for %q: %s -> %s", id, cur, next))
	}
	c[id] = next
}
