package rank

import (
	"sort"

	"github.com/lumennet/pathfinder/pkg/search"
)

// DisjointnessIDs scores how much of edge sequence a avoids edge sequence
// b: 1 - |a ∩ b| / |a|. The score is asymmetric by construction; a is the
// declared reference sequence. An empty reference scores 0.
func DisjointnessIDs(a, b []string) float64 {
	if len(a) == 0 {
		return 0
	}
	other := make(map[string]struct{}, len(b))
	for _, id := range b {
		other[id] = struct{}{}
	}
	shared := 0
	for _, id := range a {
		if _, ok := other[id]; ok {
			shared++
		}
	}
	return 1 - float64(shared)/float64(len(a))
}

// Disjointness scores how much of path a avoids path b.
func Disjointness(a, b *search.Path) float64 {
	return DisjointnessIDs(a.LinkIDs(), b.LinkIDs())
}

// RankDisjoint orders protection candidates by descending disjointness
// from the primary path, breaking ties by lowest primary cost and then by
// the deterministic edge-sequence order. The input slice is not modified.
func RankDisjoint(primary *search.Path, pool []*search.Path) []*search.Path {
	out := make([]*search.Path, len(pool))
	copy(out, pool)

	scores := make(map[*search.Path]float64, len(pool))
	for _, p := range out {
		scores[p] = Disjointness(p, primary)
	}

	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if scores[a] != scores[b] {
			return scores[a] > scores[b]
		}
		if a.Cost != b.Cost {
			return a.Cost < b.Cost
		}
		return a.Key() < b.Key()
	})
	return out
}

// BestDisjoint picks the candidate that maximizes disjointness from the
// primary path, for protection/failover selection. Returns nil for an
// empty pool.
func BestDisjoint(primary *search.Path, pool []*search.Path) *search.Path {
	ranked := RankDisjoint(primary, pool)
	if len(ranked) == 0 {
		return nil
	}
	return ranked[0]
}
