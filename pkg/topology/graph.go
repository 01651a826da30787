package topology

// Graph is an immutable topology snapshot: a node set plus a link set.
// The core never mutates a Graph and never caches one across requests;
// the topology provider supplies a fresh snapshot per computation.
//
// Iteration order everywhere is snapshot insertion order. Downstream
// tie-breaking depends on this being stable for a given snapshot.
type Graph struct {
	nodes     map[string]*Node
	nodeOrder []string
	links     map[string]*Link
	linkOrder []string
	incident  map[string][]*Link
}

// Node looks up a node by id.
func (g *Graph) Node(id string) (*Node, bool) {
	n, ok := g.nodes[id]
	return n, ok
}

// Link looks up a link by id.
func (g *Graph) Link(id string) (*Link, bool) {
	l, ok := g.links[id]
	return l, ok
}

// Nodes returns all nodes in insertion order.
func (g *Graph) Nodes() []*Node {
	out := make([]*Node, 0, len(g.nodeOrder))
	for _, id := range g.nodeOrder {
		out = append(out, g.nodes[id])
	}
	return out
}

// Links returns all links in insertion order.
func (g *Graph) Links() []*Link {
	out := make([]*Link, 0, len(g.linkOrder))
	for _, id := range g.linkOrder {
		out = append(out, g.links[id])
	}
	return out
}

// IncidentLinks returns the links incident to a node, in insertion order.
// Unknown nodes yield an empty slice.
func (g *Graph) IncidentLinks(node string) []*Link {
	return g.incident[node]
}

// NumNodes returns the node count.
func (g *Graph) NumNodes() int {
	return len(g.nodes)
}

// NumLinks returns the link count.
func (g *Graph) NumLinks() int {
	return len(g.links)
}
