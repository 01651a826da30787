package constraints

import "github.com/lumennet/pathfinder/pkg/topology"

// Pass reports whether a link passes one attribute constraint. A link
// lacking the attribute always passes: absence means unconstrained, never
// exclusion. Unknown attribute names fail the link; request validation
// rejects them before any search, so this is a backstop.
func Pass(link *topology.Link, name string, th Threshold) bool {
	spec, ok := Lookup(name)
	if !ok {
		return false
	}

	if spec.Semantics == Membership {
		if len(link.Attributes.Ownership) == 0 {
			return true
		}
		return link.Attributes.HasOwner(th.Owner)
	}

	value, set := link.Attributes.Numeric(name)
	if !set {
		return true
	}
	if spec.Semantics == Minimum {
		return value >= th.Value
	}
	return value <= th.Value
}

// EvaluateMandatory reports whether a link passes every constraint in the
// mandatory set.
func EvaluateMandatory(link *topology.Link, cons Constraints) bool {
	for name, th := range cons {
		if !Pass(link, name, th) {
			return false
		}
	}
	return true
}

// EvaluateSet applies the same predicates restricted to a specific
// attribute subset: a flexible-attribute combination tested as if it were
// mandatory. Subset names missing from cons are ignored.
func EvaluateSet(link *topology.Link, subset []string, cons Constraints) bool {
	for _, name := range subset {
		th, ok := cons[name]
		if !ok {
			continue
		}
		if !Pass(link, name, th) {
			return false
		}
	}
	return true
}
