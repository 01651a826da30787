package constraints

import "sort"

// Combinations returns every size-k subset of the given attribute names,
// in lexicographic order over the sorted name list. C(n,k) subsets; when
// k equals n, exactly the full set. k outside [1, n] yields nil.
func Combinations(names []string, k int) [][]string {
	n := len(names)
	if k < 1 || k > n {
		return nil
	}

	sorted := make([]string, n)
	copy(sorted, names)
	sort.Strings(sorted)

	var out [][]string
	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}
	for {
		subset := make([]string, k)
		for i, j := range idx {
			subset[i] = sorted[j]
		}
		out = append(out, subset)

		// Advance to the next combination, rightmost index first
		i := k - 1
		for i >= 0 && idx[i] == n-k+i {
			i--
		}
		if i < 0 {
			return out
		}
		idx[i]++
		for j := i + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}
