package topology

import (
	"errors"
	"fmt"
)

// Common sentinel errors for snapshot construction.
var (
	ErrEmptyNodeID   = errors.New("node id is empty")
	ErrSelfLoop      = errors.New("link endpoints are on the same node")
	ErrDuplicateLink = errors.New("duplicate link")
)

// Builder assembles an immutable Graph snapshot. The topology provider is
// the intended caller; the computation core only ever sees the built Graph.
type Builder struct {
	graph *Graph
	err   error
}

// NewBuilder creates an empty snapshot builder.
func NewBuilder() *Builder {
	return &Builder{
		graph: &Graph{
			nodes:    make(map[string]*Node),
			links:    make(map[string]*Link),
			incident: make(map[string][]*Link),
		},
	}
}

// AddNode registers a node. Adding the same id twice is a no-op, so
// providers can feed nodes and links in any order.
func (b *Builder) AddNode(id string) *Builder {
	if b.err != nil {
		return b
	}
	if id == "" {
		b.err = ErrEmptyNodeID
		return b
	}
	b.addNode(id)
	return b
}

func (b *Builder) addNode(id string) *Node {
	if n, ok := b.graph.nodes[id]; ok {
		return n
	}
	n := &Node{ID: id}
	b.graph.nodes[id] = n
	b.graph.nodeOrder = append(b.graph.nodeOrder, id)
	return n
}

// AddLink registers an enabled link between two interfaces, creating the
// endpoint nodes if they are not yet known.
func (b *Builder) AddLink(epA, epB Interface, attrs Attributes) *Builder {
	return b.addLink(epA, epB, attrs, true)
}

// AddDisabledLink registers a link that is administratively down. Disabled
// links stay in the snapshot but are excluded from every search.
func (b *Builder) AddDisabledLink(epA, epB Interface, attrs Attributes) *Builder {
	return b.addLink(epA, epB, attrs, false)
}

func (b *Builder) addLink(epA, epB Interface, attrs Attributes, enabled bool) *Builder {
	if b.err != nil {
		return b
	}
	if epA.Node == "" || epB.Node == "" {
		b.err = ErrEmptyNodeID
		return b
	}
	if epA.Node == epB.Node {
		b.err = fmt.Errorf("%w: %s", ErrSelfLoop, epA.Node)
		return b
	}
	id := LinkID(epA, epB)
	if _, ok := b.graph.links[id]; ok {
		b.err = fmt.Errorf("%w: %s <-> %s", ErrDuplicateLink, epA.ID(), epB.ID())
		return b
	}

	link := &Link{
		id:         id,
		EndpointA:  epA,
		EndpointB:  epB,
		Attributes: attrs,
		Enabled:    enabled,
	}
	b.graph.links[id] = link
	b.graph.linkOrder = append(b.graph.linkOrder, id)

	na := b.addNode(epA.Node)
	nb := b.addNode(epB.Node)
	na.Interfaces = append(na.Interfaces, epA)
	nb.Interfaces = append(nb.Interfaces, epB)
	b.graph.incident[epA.Node] = append(b.graph.incident[epA.Node], link)
	b.graph.incident[epB.Node] = append(b.graph.incident[epB.Node], link)
	return b
}

// Build finalizes the snapshot. After Build the graph is read-only.
func (b *Builder) Build() (*Graph, error) {
	if b.err != nil {
		return nil, b.err
	}
	return b.graph, nil
}
