package constraints

import "github.com/lumennet/pathfinder/pkg/topology"

// Semantics tells which direction a threshold comparison runs.
type Semantics int

const (
	// Minimum passes links whose value is >= the threshold (bandwidth, reliability)
	Minimum Semantics = iota
	// Maximum passes links whose value is <= the threshold (delay, utilization, priority)
	Maximum
	// Membership passes links whose ownership set contains the threshold owner
	Membership
)

func (s Semantics) String() string {
	switch s {
	case Minimum:
		return "Minimum"
	case Maximum:
		return "Maximum"
	case Membership:
		return "Membership"
	default:
		return "Unknown"
	}
}

// Kind is the value type an attribute carries on a link.
type Kind int

const (
	KindFloat Kind = iota
	KindInt
	KindOwnerSet
)

// Spec describes one recognized attribute: its value kind, comparison
// semantics, whether path costs accumulate over it, and the valid threshold
// range for request validation.
type Spec struct {
	Name      string
	Kind      Kind
	Semantics Semantics
	Summable  bool
	Min       float64
	Max       float64
}

// registry is the fixed attribute enumeration. New attributes are added by
// extending this table, never by runtime registration. Order here is the
// canonical attribute order used in error messages and docs; subset
// enumeration sorts lexicographically regardless.
var registry = []Spec{
	{Name: topology.AttrBandwidth, Kind: KindFloat, Semantics: Minimum, Min: 0, Max: maxThreshold},
	{Name: topology.AttrDelay, Kind: KindFloat, Semantics: Maximum, Summable: true, Min: 0, Max: maxThreshold},
	{Name: topology.AttrReliability, Kind: KindFloat, Semantics: Minimum, Min: 0, Max: 100},
	{Name: topology.AttrUtilization, Kind: KindFloat, Semantics: Maximum, Min: 0, Max: 100},
	{Name: topology.AttrPriority, Kind: KindInt, Semantics: Maximum, Summable: true, Min: 0, Max: maxThreshold},
	{Name: topology.AttrOwnership, Kind: KindOwnerSet, Semantics: Membership},
}

const maxThreshold = 1e18

var byName = func() map[string]Spec {
	m := make(map[string]Spec, len(registry))
	for _, s := range registry {
		m[s.Name] = s
	}
	return m
}()

// Lookup returns the Spec for an attribute name.
func Lookup(name string) (Spec, bool) {
	s, ok := byName[name]
	return s, ok
}

// Names returns the recognized attribute names in canonical order.
func Names() []string {
	out := make([]string, len(registry))
	for i, s := range registry {
		out[i] = s.Name
	}
	return out
}

// Summable reports whether path cost accumulates over the attribute.
func Summable(name string) bool {
	s, ok := byName[name]
	return ok && s.Summable
}
