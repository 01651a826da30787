package pathfinder

import (
	"sort"

	"github.com/lumennet/pathfinder/pkg/constraints"
	"github.com/lumennet/pathfinder/pkg/search"
	"github.com/lumennet/pathfinder/pkg/validation"
)

// Request is one path-computation request. Field names follow the wire
// contract with the provisioning layer.
type Request struct {
	Source      string `json:"source" yaml:"source" validate:"required"`
	Destination string `json:"destination" yaml:"destination" validate:"required"`

	MandatoryMetrics constraints.Constraints `json:"mandatory_metrics,omitempty" yaml:"mandatory_metrics"`
	FlexibleMetrics  constraints.Constraints `json:"flexible_metrics,omitempty" yaml:"flexible_metrics"`
	MinFlexibleHits  int                     `json:"min_flexible_hits,omitempty" yaml:"min_flexible_hits"`

	SPFAttribute   string             `json:"spf_attribute,omitempty" yaml:"spf_attribute"`
	SPFMaxPathCost map[string]float64 `json:"spf_max_path_cost,omitempty" yaml:"spf_max_path_cost"`

	// SPFMaxPaths caps the result set. Omitted means unbounded up to the
	// engine's safety cap; an explicit 0 yields an empty result.
	SPFMaxPaths *int `json:"spf_max_paths,omitempty" yaml:"spf_max_paths"`

	DesiredLinks   []string `json:"desired_links,omitempty" yaml:"desired_links"`
	UndesiredLinks []string `json:"undesired_links,omitempty" yaml:"undesired_links"`
}

// PathResult is one computed path on the wire.
type PathResult struct {
	Hops    []string           `json:"hops"`
	Links   []string           `json:"links"`
	Cost    map[string]float64 `json:"cost"`
	Metrics map[string]float64 `json:"metrics"`
}

// Response is the result of one computation. Found keeps the in-process
// path objects for collaborators (protection selection) that need more
// than the wire shape.
type Response struct {
	Paths   []PathResult `json:"paths"`
	Partial bool         `json:"partial"`

	Found []*search.Path `json:"-" yaml:"-"`
}

// validate checks the request shape and normalizes the derived search
// parameters. It fails fast: a malformed request is rejected before any
// search work starts.
func (r *Request) validate(safetyCap int) (minHits, maxPaths int, err error) {
	if err := validation.Struct(r); err != nil {
		return 0, 0, &RequestError{Cause: err}
	}

	if err := r.MandatoryMetrics.Validate(); err != nil {
		return 0, 0, &RequestError{Field: "mandatory_metrics", Cause: err}
	}
	if err := r.FlexibleMetrics.Validate(); err != nil {
		return 0, 0, &RequestError{Field: "flexible_metrics", Cause: err}
	}

	minHits = r.MinFlexibleHits
	switch {
	case minHits < 0:
		return 0, 0, invalidf("min_flexible_hits", "must be >= 1, got %d", minHits)
	case minHits > len(r.FlexibleMetrics):
		return 0, 0, invalidf("min_flexible_hits", "%d exceeds number of flexible attributes (%d)",
			minHits, len(r.FlexibleMetrics))
	case minHits == 0 && len(r.FlexibleMetrics) > 0:
		minHits = 1
	}

	if r.SPFAttribute != "" {
		spec, ok := constraints.Lookup(r.SPFAttribute)
		if !ok {
			return 0, 0, invalidf("spf_attribute", "unknown attribute %q", r.SPFAttribute)
		}
		if spec.Kind == constraints.KindOwnerSet {
			return 0, 0, invalidf("spf_attribute", "%q is not a numeric attribute", r.SPFAttribute)
		}
	}

	for name, max := range r.SPFMaxPathCost {
		spec, ok := constraints.Lookup(name)
		if !ok {
			return 0, 0, invalidf("spf_max_path_cost", "unknown attribute %q", name)
		}
		if spec.Kind == constraints.KindOwnerSet {
			return 0, 0, invalidf("spf_max_path_cost", "%q is not a numeric attribute", name)
		}
		if max < 0 {
			return 0, 0, invalidf("spf_max_path_cost", "%q bound must be >= 0, got %v", name, max)
		}
	}

	maxPaths = safetyCap
	if r.SPFMaxPaths != nil {
		if *r.SPFMaxPaths < 0 {
			return 0, 0, invalidf("spf_max_paths", "must be >= 0, got %d", *r.SPFMaxPaths)
		}
		if *r.SPFMaxPaths < maxPaths {
			maxPaths = *r.SPFMaxPaths
		}
	}

	return minHits, maxPaths, nil
}

// requestedAttrs returns the sorted attribute names the request
// constrains, for the per-path shared-metrics report.
func (r *Request) requestedAttrs() []string {
	set := make(map[string]struct{}, len(r.MandatoryMetrics)+len(r.FlexibleMetrics))
	for name := range r.MandatoryMetrics {
		set[name] = struct{}{}
	}
	for name := range r.FlexibleMetrics {
		set[name] = struct{}{}
	}
	out := make([]string, 0, len(set))
	for name := range set {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// toPathResult renders a path onto the wire: node hops, link ids, the
// accumulated cost map (primary cost keyed by the weight attribute, hop
// count under "hops"), and the shared metrics for requested attributes.
func toPathResult(p *search.Path, weight string, requested []string) PathResult {
	cost := search.Accumulate(p)
	if weight == "" {
		cost["hops"] = p.Cost
	} else {
		cost[weight] = p.Cost
	}

	return PathResult{
		Hops:    p.Nodes,
		Links:   p.LinkIDs(),
		Cost:    cost,
		Metrics: search.Metrics(p, requested),
	}
}
