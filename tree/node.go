package tree

import (
	"fmt"

	"github.com/pbanos/sapling/dataset"
)

/*
Node is a node of a decision tree. It is either a *Leaf or an
*InternalNode; no other type implements it.
*/
type Node interface {
	fmt.Stringer
	isNode()
}

/*
Leaf is a terminal node holding the label predicted for the records
that reach it.
*/
type Leaf struct {
	Label dataset.Value
}

/*
InternalNode is a node that splits records on the value they take for an
attribute. It has a branch per value of the attribute observed in the
records it was grown from, in the order the values were first seen.
*/
type InternalNode struct {
	// The name of the attribute whose value selects a branch
	Attribute string
	// The branches under the node. No two branches share a value.
	Branches []*Branch
}

/*
Branch connects an InternalNode with the subtree for records that take
Value on the node's attribute.
*/
type Branch struct {
	Value   dataset.Value
	Subtree Node
}

// ErrDuplicateBranch is returned when adding a branch for a value that
// already has one on the node.
const ErrDuplicateBranch = Error("node already has a branch for value")

// Error represents an error building a tree
type Error string

func (e Error) Error() string {
	return string(e)
}

// NewLeaf returns a leaf predicting the given label
func NewLeaf(label dataset.Value) *Leaf {
	return &Leaf{label}
}

// NewInternalNode returns a node splitting on the given attribute
// with no branches.
func NewInternalNode(attribute string) *InternalNode {
	return &InternalNode{Attribute: attribute}
}

func (*Leaf) isNode()         {}
func (*InternalNode) isNode() {}

func (l *Leaf) String() string {
	return format(l)
}

func (n *InternalNode) String() string {
	return format(n)
}

/*
Add takes a value and a subtree and appends a branch connecting them to
the node. It returns ErrDuplicateBranch if the node already has a branch
for the value.
*/
func (n *InternalNode) Add(value dataset.Value, subtree Node) error {
	if _, ok := n.Child(value); ok {
		return fmt.Errorf("adding branch %s = %v: %w", n.Attribute, value, ErrDuplicateBranch)
	}
	n.Branches = append(n.Branches, &Branch{value, subtree})
	return nil
}

/*
Child takes a value and returns the subtree on the branch for that value
and true, or nil and false if the node has no such branch.
*/
func (n *InternalNode) Child(value dataset.Value) (Node, bool) {
	for _, b := range n.Branches {
		if b.Value == value {
			return b.Subtree, true
		}
	}
	return nil, false
}

// Children returns the subtrees of the node indexed by branch value
func (n *InternalNode) Children() map[dataset.Value]Node {
	result := make(map[dataset.Value]Node, len(n.Branches))
	for _, b := range n.Branches {
		result[b.Value] = b.Subtree
	}
	return result
}

// Values returns the branch values of the node in order
func (n *InternalNode) Values() []dataset.Value {
	result := make([]dataset.Value, 0, len(n.Branches))
	for _, b := range n.Branches {
		result = append(result, b.Value)
	}
	return result
}
