package search

import (
	"strings"

	"github.com/lumennet/pathfinder/pkg/topology"
)

// Path is a simple (loop-free) path from source to destination. Nodes has
// exactly one more entry than Links. Cost is the primary cost: the sum of
// the weight attribute over the links, or the hop count when the search
// ran unweighted.
type Path struct {
	Nodes []string
	Links []*topology.Link
	Cost  float64
	Hops  int
}

// LinkIDs returns the ordered link ids of the path.
func (p *Path) LinkIDs() []string {
	out := make([]string, len(p.Links))
	for i, l := range p.Links {
		out[i] = l.ID()
	}
	return out
}

// Key returns a canonical identity for the path's edge sequence, used for
// deduplication and for the lexicographic tie-break.
func (p *Path) Key() string {
	return strings.Join(p.LinkIDs(), "|")
}

// Options parameterizes one k-shortest-path run over a filtered subgraph.
type Options struct {
	Source      string
	Destination string

	// Weight names the attribute used as edge weight. Empty means uniform
	// weight 1 (hop count). Links lacking the attribute count as weight 1.
	Weight string

	// MaxPaths caps how many distinct paths the deviation loop yields.
	// Must be >= 1; the caller handles the zero case.
	MaxPaths int

	// MaxCost bounds the accumulated value of named attributes along any
	// partial path. Exceeding a bound prunes the branch during expansion.
	MaxCost map[string]float64
}
