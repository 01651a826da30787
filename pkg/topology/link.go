package topology

import (
	"crypto/sha256"
	"encoding/hex"
)

// Link is an undirected physical link between two interfaces. Both
// directions share the one attribute set. Links are immutable once the
// snapshot is built.
type Link struct {
	id         string
	EndpointA  Interface
	EndpointB  Interface
	Attributes Attributes
	Enabled    bool
}

// LinkID derives the deterministic link identifier from its endpoint pair:
// the SHA-256 digest of the sorted interface ids. The same physical link
// yields the same id regardless of which endpoint is listed first.
func LinkID(a, b Interface) string {
	ia, ib := a.ID(), b.ID()
	if ib < ia {
		ia, ib = ib, ia
	}
	sum := sha256.Sum256([]byte(ia + ":" + ib))
	return hex.EncodeToString(sum[:])
}

// ID returns the link's deterministic identifier.
func (l *Link) ID() string {
	return l.id
}

// Nodes returns the two node ids the link connects, endpoint A first.
func (l *Link) Nodes() (string, string) {
	return l.EndpointA.Node, l.EndpointB.Node
}

// Opposite returns the node on the far side of the link from the given
// node, and whether the given node is incident to the link at all.
func (l *Link) Opposite(node string) (string, bool) {
	switch node {
	case l.EndpointA.Node:
		return l.EndpointB.Node, true
	case l.EndpointB.Node:
		return l.EndpointA.Node, true
	}
	return "", false
}
