package search

import (
	"container/heap"
	"context"
	"sort"

	"github.com/lumennet/pathfinder/pkg/constraints"
	"github.com/lumennet/pathfinder/pkg/topology"
)

// label is one partial path under consideration. Labels only ever extend
// into unsettled nodes, so every label describes a simple path.
type label struct {
	node   string
	cost   float64
	hops   int
	nodes  []string
	links  []*topology.Link
	bounds []float64 // accumulated values of the bounded attributes
}

// compareLinkSeq orders two edge sequences lexicographically by link id.
func compareLinkSeq(a, b []*topology.Link) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		ai, bi := a[i].ID(), b[i].ID()
		if ai != bi {
			if ai < bi {
				return -1
			}
			return 1
		}
	}
	return len(a) - len(b)
}

// labelHeap orders labels by cost, then hop count, then lexicographic edge
// sequence. The full ordering is what makes output reproducible for
// identical input.
type labelHeap []*label

func (h labelHeap) Len() int { return len(h) }

func (h labelHeap) Less(i, j int) bool {
	if h[i].cost != h[j].cost {
		return h[i].cost < h[j].cost
	}
	if h[i].hops != h[j].hops {
		return h[i].hops < h[j].hops
	}
	return compareLinkSeq(h[i].links, h[j].links) < 0
}

func (h labelHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *labelHeap) Push(x any) { *h = append(*h, x.(*label)) }

func (h *labelHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return item
}

// linkWeight returns the edge weight under the requested cost attribute.
// Unweighted searches, and links lacking the attribute, weigh 1.
func linkWeight(link *topology.Link, weight string) float64 {
	if weight == "" {
		return 1
	}
	if v, ok := link.Attributes.Numeric(weight); ok {
		return v
	}
	return 1
}

// boundedAttrs returns the sorted attribute names of the cost bounds.
func boundedAttrs(maxCost map[string]float64) []string {
	if len(maxCost) == 0 {
		return nil
	}
	names := make([]string, 0, len(maxCost))
	for name := range maxCost {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// shortestPath runs one cost-bounded Dijkstra over the subgraph from src
// to dst, skipping banned links and nodes. It returns nil when no path
// exists within the bounds, and ctx.Err() when the deadline fires; the
// deadline is checked cooperatively at each node expansion.
func shortestPath(
	ctx context.Context,
	sg *constraints.Subgraph,
	src, dst string,
	opts Options,
	bannedLinks map[string]struct{},
	bannedNodes map[string]struct{},
) (*Path, error) {
	bounded := boundedAttrs(opts.MaxCost)

	start := &label{
		node:   src,
		nodes:  []string{src},
		bounds: make([]float64, len(bounded)),
	}
	if src == dst {
		return &Path{Nodes: start.nodes}, nil
	}

	h := labelHeap{start}
	heap.Init(&h)
	settled := make(map[string]struct{})

	for h.Len() > 0 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		cur := heap.Pop(&h).(*label)
		if _, done := settled[cur.node]; done {
			continue
		}
		settled[cur.node] = struct{}{}

		if cur.node == dst {
			return &Path{
				Nodes: cur.nodes,
				Links: cur.links,
				Cost:  cur.cost,
				Hops:  cur.hops,
			}, nil
		}

		for _, link := range sg.Graph.IncidentLinks(cur.node) {
			if !sg.Allowed(link.ID()) {
				continue
			}
			if _, banned := bannedLinks[link.ID()]; banned {
				continue
			}
			next, ok := link.Opposite(cur.node)
			if !ok {
				continue
			}
			if _, banned := bannedNodes[next]; banned {
				continue
			}
			if _, done := settled[next]; done {
				continue
			}

			// Branch-and-bound: drop the extension as soon as any bounded
			// attribute overshoots, instead of post-filtering full paths.
			bounds := make([]float64, len(bounded))
			exceeded := false
			for i, name := range bounded {
				bounds[i] = cur.bounds[i]
				if v, set := link.Attributes.Numeric(name); set {
					bounds[i] += v
				}
				if bounds[i] > opts.MaxCost[name] {
					exceeded = true
					break
				}
			}
			if exceeded {
				continue
			}

			nodes := make([]string, len(cur.nodes), len(cur.nodes)+1)
			copy(nodes, cur.nodes)
			links := make([]*topology.Link, len(cur.links), len(cur.links)+1)
			copy(links, cur.links)

			heap.Push(&h, &label{
				node:   next,
				cost:   cur.cost + linkWeight(link, opts.Weight),
				hops:   cur.hops + 1,
				nodes:  append(nodes, next),
				links:  append(links, link),
				bounds: bounds,
			})
		}
	}

	return nil, nil
}
