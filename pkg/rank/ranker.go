package rank

import (
	"sort"

	"github.com/lumennet/pathfinder/pkg/constraints"
	"github.com/lumennet/pathfinder/pkg/search"
)

// SatisfiedFlexible returns the sorted flexible attribute names that every
// link of the path satisfies. This is the per-path count behind the
// "more satisfied flexible attributes wins" tie-break: a path found in a
// size-k subgraph may consistently satisfy more than k attributes.
func SatisfiedFlexible(p *search.Path, flexible constraints.Constraints) []string {
	if len(flexible) == 0 {
		return nil
	}
	names := make([]string, 0, len(flexible))
	for name := range flexible {
		names = append(names, name)
	}
	sort.Strings(names)

	var out []string
	for _, name := range names {
		th := flexible[name]
		all := true
		for _, link := range p.Links {
			if !constraints.Pass(link, name, th) {
				all = false
				break
			}
		}
		if all {
			out = append(out, name)
		}
	}
	return out
}

// Merge combines the per-subgraph result sets, drops duplicate edge
// sequences, and orders the remainder by ascending primary cost, then
// descending satisfied-flexible count, then fewer hops, then lexicographic
// edge sequence. The output is truncated to maxPaths (maxPaths < 0 means
// unbounded).
//
// The ordering is a total order over distinct paths, so the merge result
// does not depend on which subgraph search finished first.
func Merge(sets [][]*search.Path, flexible constraints.Constraints, maxPaths int) []*search.Path {
	type entry struct {
		path     *search.Path
		flexHits int
	}

	seen := make(map[string]struct{})
	var merged []entry
	for _, set := range sets {
		for _, p := range set {
			key := p.Key()
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			merged = append(merged, entry{
				path:     p,
				flexHits: len(SatisfiedFlexible(p, flexible)),
			})
		}
	}

	sort.Slice(merged, func(i, j int) bool {
		a, b := merged[i], merged[j]
		if a.path.Cost != b.path.Cost {
			return a.path.Cost < b.path.Cost
		}
		if a.flexHits != b.flexHits {
			return a.flexHits > b.flexHits
		}
		if a.path.Hops != b.path.Hops {
			return a.path.Hops < b.path.Hops
		}
		return a.path.Key() < b.path.Key()
	})

	if maxPaths >= 0 && len(merged) > maxPaths {
		merged = merged[:maxPaths]
	}

	out := make([]*search.Path, len(merged))
	for i, e := range merged {
		out[i] = e.path
	}
	return out
}
