package constraints

import "github.com/lumennet/pathfinder/pkg/topology"

// Filter bundles everything that decides which links a search may use.
// DesiredLinks, when non-empty, restricts the search to exactly those
// links; UndesiredLinks are excluded. Both apply before any attribute
// predicate runs.
type Filter struct {
	Mandatory      Constraints
	Flexible       Constraints
	MinHits        int
	DesiredLinks   []string
	UndesiredLinks []string
}

// Subgraph is one filtered view of the snapshot: the links that pass the
// mandatory constraints plus one specific flexible-attribute combination.
// Every path found inside a subgraph therefore exhibits that combination
// consistently on all of its links.
type Subgraph struct {
	Graph   *topology.Graph
	Subset  []string
	allowed map[string]struct{}
}

// Allowed reports whether a link id survives the filter.
func (s *Subgraph) Allowed(linkID string) bool {
	_, ok := s.allowed[linkID]
	return ok
}

// NumAllowed returns how many links survive the filter.
func (s *Subgraph) NumAllowed() int {
	return len(s.allowed)
}

// BuildSubgraphs produces one Subgraph per flexible-attribute combination
// of size MinHits, in deterministic (lexicographic) combination order.
// With no flexible constraints it produces a single mandatory-only
// subgraph. Disabled links never pass.
func BuildSubgraphs(g *topology.Graph, f Filter) []*Subgraph {
	desired := idSet(f.DesiredLinks)
	undesired := idSet(f.UndesiredLinks)

	usable := func(link *topology.Link) bool {
		if !link.Enabled {
			return false
		}
		if len(desired) > 0 {
			if _, ok := desired[link.ID()]; !ok {
				return false
			}
		}
		if _, ok := undesired[link.ID()]; ok {
			return false
		}
		return EvaluateMandatory(link, f.Mandatory)
	}

	var subsets [][]string
	if len(f.Flexible) == 0 {
		subsets = [][]string{nil}
	} else {
		names := make([]string, 0, len(f.Flexible))
		for name := range f.Flexible {
			names = append(names, name)
		}
		subsets = Combinations(names, f.MinHits)
	}

	out := make([]*Subgraph, 0, len(subsets))
	for _, subset := range subsets {
		sg := &Subgraph{
			Graph:   g,
			Subset:  subset,
			allowed: make(map[string]struct{}),
		}
		for _, link := range g.Links() {
			if !usable(link) {
				continue
			}
			if !EvaluateSet(link, subset, f.Flexible) {
				continue
			}
			sg.allowed[link.ID()] = struct{}{}
		}
		out = append(out, sg)
	}
	return out
}

func idSet(ids []string) map[string]struct{} {
	if len(ids) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}
