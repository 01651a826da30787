package search

import (
	"container/heap"
	"context"

	"github.com/lumennet/pathfinder/pkg/constraints"
	"github.com/lumennet/pathfinder/pkg/topology"
)

// pathHeap orders candidate paths exactly like the label heap: cost, then
// hops, then lexicographic edge sequence.
type pathHeap []*Path

func (h pathHeap) Len() int { return len(h) }

func (h pathHeap) Less(i, j int) bool {
	if h[i].Cost != h[j].Cost {
		return h[i].Cost < h[j].Cost
	}
	if h[i].Hops != h[j].Hops {
		return h[i].Hops < h[j].Hops
	}
	return compareLinkSeq(h[i].Links, h[j].Links) < 0
}

func (h pathHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *pathHeap) Push(x any) { *h = append(*h, x.(*Path)) }

func (h *pathHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return item
}

// KShortest finds up to opts.MaxPaths distinct simple paths through the
// filtered subgraph, cheapest first, using iterative deviation: take the
// best path found so far, then for each of its prefixes ban the next link
// used by any already-found path sharing that prefix and re-run the
// bounded search from the deviation node.
//
// Disconnection and bound exhaustion yield an empty result, not an error.
// A deadline expiry returns the complete paths found so far together with
// the context error so the caller can flag the result as partial.
func KShortest(ctx context.Context, sg *constraints.Subgraph, opts Options) ([]*Path, error) {
	if opts.MaxPaths < 1 {
		return nil, nil
	}

	best, err := shortestPath(ctx, sg, opts.Source, opts.Destination, opts, nil, nil)
	if err != nil || best == nil {
		return nil, err
	}

	found := []*Path{best}
	seen := map[string]struct{}{best.Key(): {}}

	candidates := pathHeap{}
	heap.Init(&candidates)

	for len(found) < opts.MaxPaths {
		prev := found[len(found)-1]

		for i := 0; i < len(prev.Links); i++ {
			spurNode := prev.Nodes[i]
			rootLinks := prev.Links[:i]

			// Ban the deviation edges: for every found path sharing this
			// prefix, its next link must not be reused.
			bannedLinks := make(map[string]struct{})
			for _, p := range found {
				if len(p.Links) > i && sharesPrefix(p.Links, rootLinks) {
					bannedLinks[p.Links[i].ID()] = struct{}{}
				}
			}

			// Root-path nodes stay off the spur so the total stays simple.
			bannedNodes := make(map[string]struct{}, i)
			for _, n := range prev.Nodes[:i] {
				bannedNodes[n] = struct{}{}
			}

			spurOpts := opts
			spurOpts.MaxCost = remainingBounds(opts.MaxCost, rootLinks)

			spur, err := shortestPath(ctx, sg, spurNode, opts.Destination, spurOpts, bannedLinks, bannedNodes)
			if err != nil {
				return found, err
			}
			if spur == nil {
				continue
			}

			total := join(prev, i, spur, opts.Weight)
			if _, dup := seen[total.Key()]; dup {
				continue
			}
			seen[total.Key()] = struct{}{}
			heap.Push(&candidates, total)
		}

		if candidates.Len() == 0 {
			break
		}
		found = append(found, heap.Pop(&candidates).(*Path))
	}

	return found, nil
}

// sharesPrefix reports whether path links start with the given root links.
func sharesPrefix(links, root []*topology.Link) bool {
	if len(links) < len(root) {
		return false
	}
	for i, l := range root {
		if links[i].ID() != l.ID() {
			return false
		}
	}
	return true
}

// remainingBounds shifts the cost bounds by what the root prefix already
// consumed, so the spur search prunes against the whole-path budget.
func remainingBounds(maxCost map[string]float64, root []*topology.Link) map[string]float64 {
	if len(maxCost) == 0 || len(root) == 0 {
		return maxCost
	}
	out := make(map[string]float64, len(maxCost))
	for name, max := range maxCost {
		used := 0.0
		for _, link := range root {
			if v, set := link.Attributes.Numeric(name); set {
				used += v
			}
		}
		out[name] = max - used
	}
	return out
}

// join glues the root prefix of prev (its first i links) onto the spur.
func join(prev *Path, i int, spur *Path, weight string) *Path {
	nodes := make([]string, 0, i+len(spur.Nodes))
	nodes = append(nodes, prev.Nodes[:i]...)
	nodes = append(nodes, spur.Nodes...)

	links := make([]*topology.Link, 0, i+len(spur.Links))
	links = append(links, prev.Links[:i]...)
	links = append(links, spur.Links...)

	cost := spur.Cost
	for _, link := range prev.Links[:i] {
		cost += linkWeight(link, weight)
	}

	return &Path{
		Nodes: nodes,
		Links: links,
		Cost:  cost,
		Hops:  len(links),
	}
}
