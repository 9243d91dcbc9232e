// Package trapezoid provides the node tree backing a trapezoidal map: an
// append-only binary tree for planar subdivision and point location.
//
// Nodes are only ever added, never removed, so a NodeID stays
// dereferenceable forever once minted. That is what lets a sweep algorithm
// hold IDs across structural edits, leaf-to-branch promotions and child
// replacements, instead of live references that restructuring would
// invalidate.
package trapezoid

import (
	"fmt"
	"iter"
)

// NodeID identifies a node. Since nodes can only be added, never removed,
// a NodeID is always valid for the tree that minted it.
type NodeID int

// noParent marks a node without a parent.
const noParent NodeID = -1

// Relation describes which child slot of a branch a node occupies.
type Relation int

const (
	Above Relation = iota
	Below
)

func (r Relation) String() string {
	switch r {
	case Above:
		return "above"
	case Below:
		return "below"
	default:
		return "unknown"
	}
}

// node is a tree slot, tagged as branch or leaf. Exactly one of the branch
// and leaf payloads is meaningful at a time.
type node[B, L any] struct {
	parent   NodeID
	isBranch bool

	above, below NodeID
	branch       B

	leaf L
}

// Nodes is the arena of tree nodes. The tree is built incrementally by a
// single owner; concurrent structural edits require external exclusion.
type Nodes[B, L any] struct {
	nodes []node[B, L]
}

// New creates an empty node tree.
func New[B, L any]() *Nodes[B, L] {
	return &Nodes[B, L]{}
}

// InsertLeaf adds a new parentless leaf and returns its ID.
func (n *Nodes[B, L]) InsertLeaf(leaf L) NodeID {
	id := NodeID(len(n.nodes))
	n.nodes = append(n.nodes, node[B, L]{parent: noParent, leaf: leaf})
	return id
}

// InsertBranch adds a new parentless branch over two existing nodes and
// sets both children's parent links to it.
//
// A node may be consumed as a child exactly once: if either child already
// has a parent, the tree would no longer be a tree, so that is a contract
// violation and panics.
func (n *Nodes[B, L]) InsertBranch(branch B, above, below NodeID) NodeID {
	id := NodeID(len(n.nodes))
	n.nodes = append(n.nodes, node[B, L]{})
	n.setBranch(id, branch, noParent, above, below)
	return id
}

// ChangeLeafToBranch replaces the leaf at id, in place, with a branch over
// the two given nodes, and returns the displaced leaf value. The node
// keeps its former parent link, so its position in its parent's child
// pointers is preserved. Calling this on a branch is a contract violation
// and panics.
func (n *Nodes[B, L]) ChangeLeafToBranch(id NodeID, branch B, above, below NodeID) L {
	node := &n.nodes[id]
	if node.isBranch {
		panic(fmt.Sprintf("trapezoid: expected leaf at %d, found branch", id))
	}

	leaf := node.leaf
	n.setBranch(id, branch, node.parent, above, below)
	return leaf
}

// ReplaceChild rewires old's parent, if any, to point at replacement
// instead. The parent link transfers to the replacement; old is left
// orphaned.
func (n *Nodes[B, L]) ReplaceChild(old, replacement NodeID) {
	parent := n.nodes[old].parent
	n.nodes[old].parent = noParent
	n.nodes[replacement].parent = parent

	if parent == noParent {
		return
	}

	parentNode := &n.nodes[parent]
	switch {
	case !parentNode.isBranch:
		panic(fmt.Sprintf("trapezoid: parent %d of node %d is not a branch", parent, old))
	case parentNode.above == old:
		parentNode.above = replacement
	case parentNode.below == old:
		parentNode.below = replacement
	default:
		panic(fmt.Sprintf("trapezoid: parent %d doesn't know about child %d", parent, old))
	}
}

// ParentOf returns the parent of a node and the child slot the node
// occupies in it. The third return value is false for parentless nodes.
func (n *Nodes[B, L]) ParentOf(id NodeID) (NodeID, Relation, bool) {
	parent := n.nodes[id].parent
	if parent == noParent {
		return 0, 0, false
	}

	parentNode := &n.nodes[parent]
	switch {
	case !parentNode.isBranch:
		panic(fmt.Sprintf("trapezoid: parent %d of node %d is not a branch", parent, id))
	case parentNode.above == id:
		return parent, Above, true
	case parentNode.below == id:
		return parent, Below, true
	default:
		panic(fmt.Sprintf("trapezoid: parent %d doesn't relate to child %d", parent, id))
	}
}

// AboveOf returns the above child of a branch. Calling it on a leaf is a
// contract violation and panics.
func (n *Nodes[B, L]) AboveOf(id NodeID) NodeID {
	node := &n.nodes[id]
	if !node.isBranch {
		panic(fmt.Sprintf("trapezoid: expected branch at %d, got leaf", id))
	}
	return node.above
}

// BelowOf returns the below child of a branch. Calling it on a leaf is a
// contract violation and panics.
func (n *Nodes[B, L]) BelowOf(id NodeID) NodeID {
	node := &n.nodes[id]
	if !node.isBranch {
		panic(fmt.Sprintf("trapezoid: expected branch at %d, got leaf", id))
	}
	return node.below
}

// Branch returns the branch payload at id, or false if the node is a leaf.
func (n *Nodes[B, L]) Branch(id NodeID) (*B, bool) {
	node := &n.nodes[id]
	if !node.isBranch {
		return nil, false
	}
	return &node.branch, true
}

// Leaf returns the leaf payload at id, or false if the node is a branch.
func (n *Nodes[B, L]) Leaf(id NodeID) (*L, bool) {
	node := &n.nodes[id]
	if node.isBranch {
		return nil, false
	}
	return &node.leaf, true
}

// Leafs returns a lazy iterator over all nodes that are currently leaves,
// in unspecified order.
func (n *Nodes[B, L]) Leafs() iter.Seq2[NodeID, *L] {
	return func(yield func(NodeID, *L) bool) {
		for i := range n.nodes {
			if n.nodes[i].isBranch {
				continue
			}
			if !yield(NodeID(i), &n.nodes[i].leaf) {
				return
			}
		}
	}
}

// setBranch writes a branch into the slot at id and consumes both children.
func (n *Nodes[B, L]) setBranch(id NodeID, branch B, parent, above, below NodeID) {
	if p := n.nodes[above].parent; p != noParent {
		panic(fmt.Sprintf(
			"trapezoid: node %d already consumed as a child of %d", above, p))
	}
	if p := n.nodes[below].parent; p != noParent {
		panic(fmt.Sprintf(
			"trapezoid: node %d already consumed as a child of %d", below, p))
	}

	var zero L
	n.nodes[id] = node[B, L]{
		parent:   parent,
		isBranch: true,
		above:    above,
		below:    below,
		branch:   branch,
		leaf:     zero,
	}

	n.nodes[above].parent = id
	n.nodes[below].parent = id
}
