// Package tree implements the parse-tree node model used by the parser.
//
// Nodes are built speculatively while the parser tries grammar alternatives
// and torn down again when an alternative fails, so the package exposes both
// whole-subtree release and "undo the last n children" release. Node counts
// are tracked so callers can verify that failed alternatives leave nothing
// behind.
package tree

import (
	"fmt"
	"sync/atomic"

	"github.com/shibukawa/retree"
)

const (
	// MaxLabelLen is the maximum byte length of a node label.
	MaxLabelLen = 16

	// MaxChildren is the maximum number of children per node. Four is the
	// widest right-hand side across all grammar productions: ( RE ) RE'.
	MaxChildren = 4
)

// liveNodes counts nodes created and not yet freed.
var liveNodes atomic.Int64

// LiveCount returns the number of live nodes across all trees.
func LiveCount() int64 {
	return liveNodes.Load()
}

// Node is a labeled vertex of a derivation tree. Each node exclusively owns
// its children; trees never share nodes and never form cycles.
type Node struct {
	label    string
	children []*Node
	freed    bool
}

// New creates a node with the given label and no children.
func New(label string) (*Node, error) {
	if len(label) > MaxLabelLen {
		return nil, fmt.Errorf("%w: %q is %d bytes, limit is %d", retree.ErrLabelTooLong, label, len(label), MaxLabelLen)
	}

	liveNodes.Add(1)

	return &Node{
		label:    label,
		children: make([]*Node, 0, MaxChildren),
	}, nil
}

// Label returns the node label.
func (n *Node) Label() string {
	return n.label
}

// Children returns the children in attachment order. The returned slice is
// owned by the node and must not be mutated.
func (n *Node) Children() []*Node {
	return n.children
}

// Attach appends child as the next child of n, preserving derivation order.
func (n *Node) Attach(child *Node) error {
	if len(n.children) >= MaxChildren {
		return fmt.Errorf("%w: %q already has %d children", retree.ErrTooManyChildren, n.label, MaxChildren)
	}

	n.children = append(n.children, child)

	return nil
}

// Free releases n and its entire subtree. It is safe on a nil node and
// freeing the same node twice has no further effect.
func (n *Node) Free() {
	if n == nil || n.freed {
		return
	}

	for _, child := range n.children {
		child.Free()
	}

	n.children = nil
	n.freed = true
	liveNodes.Add(-1)
}

// FreeLastChildren releases exactly count children of n, newest first,
// leaving earlier children untouched. This is the backtracking primitive:
// a failed alternative undoes the children it attached, nothing more.
func (n *Node) FreeLastChildren(count int) error {
	if count > len(n.children) {
		return fmt.Errorf("%w: %q has %d children, asked to free %d", retree.ErrFreeCount, n.label, len(n.children), count)
	}

	keep := len(n.children) - count
	for _, child := range n.children[keep:] {
		child.Free()
	}

	n.children = n.children[:keep]

	return nil
}

// FreeAllChildren releases every child of n, keeping n itself alive.
func (n *Node) FreeAllChildren() {
	for _, child := range n.children {
		child.Free()
	}

	n.children = n.children[:0]
}

// Size returns the number of nodes in the subtree rooted at n, including n.
func (n *Node) Size() int {
	size := 1
	for _, child := range n.children {
		size += child.Size()
	}

	return size
}

// Leaves returns the labels of the leaf nodes under n in left-to-right
// order. For a completed derivation this reproduces the parsed input.
func (n *Node) Leaves() []string {
	if len(n.children) == 0 {
		return []string{n.label}
	}

	leaves := make([]string, 0, 8)
	for _, child := range n.children {
		leaves = append(leaves, child.Leaves()...)
	}

	return leaves
}
