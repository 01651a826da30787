package topology

import "fmt"

// Recognized link attribute names. The attribute contract is fixed by the
// topology provider; the path-computation core only reads these values.
const (
	AttrBandwidth   = "bandwidth"   // float, Gbps
	AttrDelay       = "delay"       // float, ms
	AttrReliability = "reliability" // float, 0-100
	AttrUtilization = "utilization" // float, 0-100
	AttrPriority    = "priority"    // int
	AttrOwnership   = "ownership"   // set of owners
)

// Interface identifies one side of a link: a node (datapath) plus a port.
type Interface struct {
	Node string `yaml:"node" json:"node"`
	Port string `yaml:"port" json:"port"`
}

// ID returns the interface identifier in "node:port" form.
func (i Interface) ID() string {
	return fmt.Sprintf("%s:%s", i.Node, i.Port)
}

// Owner is one entry of a link's ownership set. EntitledUtilization is the
// share of the link's capacity the owner is entitled to; zero means the
// provider did not annotate a share.
type Owner struct {
	Name                string  `yaml:"name" json:"name"`
	EntitledUtilization float64 `yaml:"entitled_utilization,omitempty" json:"entitled_utilization,omitempty"`
}

// Attributes is the per-link attribute map. Nil pointers mean the attribute
// is absent from the link; an absent attribute never excludes the link from
// any constrained search.
type Attributes struct {
	Bandwidth   *float64
	Delay       *float64
	Reliability *float64
	Utilization *float64
	Priority    *int
	Ownership   []Owner
}

// Numeric returns the value of a numeric attribute and whether it is set.
// Ownership is not numeric and always reports unset.
func (a *Attributes) Numeric(name string) (float64, bool) {
	switch name {
	case AttrBandwidth:
		if a.Bandwidth != nil {
			return *a.Bandwidth, true
		}
	case AttrDelay:
		if a.Delay != nil {
			return *a.Delay, true
		}
	case AttrReliability:
		if a.Reliability != nil {
			return *a.Reliability, true
		}
	case AttrUtilization:
		if a.Utilization != nil {
			return *a.Utilization, true
		}
	case AttrPriority:
		if a.Priority != nil {
			return float64(*a.Priority), true
		}
	}
	return 0, false
}

// HasOwner reports whether the ownership set contains the named owner.
// A link with no ownership entries reports false.
func (a *Attributes) HasOwner(name string) bool {
	for _, o := range a.Ownership {
		if o.Name == name {
			return true
		}
	}
	return false
}

// Node is a switching element in the snapshot. Interfaces lists the node's
// link endpoints in snapshot insertion order.
type Node struct {
	ID         string
	Interfaces []Interface
}
