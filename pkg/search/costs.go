package search

import (
	"github.com/lumennet/pathfinder/pkg/constraints"
)

// Accumulate sums the summable attributes (delay, priority) over the
// path's links. An attribute appears in the result only when at least one
// link carries it; links lacking it contribute nothing to the sum.
func Accumulate(p *Path) map[string]float64 {
	out := make(map[string]float64)
	for _, name := range constraints.Names() {
		if !constraints.Summable(name) {
			continue
		}
		sum := 0.0
		present := false
		for _, link := range p.Links {
			if v, set := link.Attributes.Numeric(name); set {
				sum += v
				present = true
			}
		}
		if present {
			out[name] = sum
		}
	}
	return out
}

// Metrics reports, for each requested attribute, the value every link on
// the path shares identically. Attributes any link lacks, or where links
// disagree, are omitted. Ownership is not a numeric metric and is skipped.
func Metrics(p *Path, attrs []string) map[string]float64 {
	out := make(map[string]float64)
	if len(p.Links) == 0 {
		return out
	}
	for _, name := range attrs {
		spec, ok := constraints.Lookup(name)
		if !ok || spec.Kind == constraints.KindOwnerSet {
			continue
		}
		shared := 0.0
		agree := true
		for i, link := range p.Links {
			v, set := link.Attributes.Numeric(name)
			if !set {
				agree = false
				break
			}
			if i == 0 {
				shared = v
			} else if v != shared {
				agree = false
				break
			}
		}
		if agree {
			out[name] = shared
		}
	}
	return out
}
