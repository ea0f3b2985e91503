package tree

import (
	"fmt"
	"strings"

	"github.com/pbanos/sapling/dataset"
)

/*
Step is a decision taken on the way from the root of a tree to one of its
nodes: the attribute of an internal node and the value of the branch
followed.
*/
type Step struct {
	Attribute string
	Value     dataset.Value
}

func (s Step) String() string {
	return fmt.Sprintf("%s = %v", s.Attribute, s.Value)
}

// Traverse takes a node, a bottomup boolean and an error-returning
// function that takes the path to a node and the node itself, and goes
// through the tree running the function with every traversed node.
// Traverse will call the function with a parent node before calling it
// for its children if bottomup is false, and call it after its children
// if bottomup is true. Children are visited in branch order.
// If the call to the function returns an error, the traversing is
// aborted and the error is returned. Otherwise, when the traversing is
// over, nil is returned.
func Traverse(n Node, bottomup bool, f func([]Step, Node) error) error {
	return traverse(nil, n, bottomup, f)
}

func traverse(path []Step, n Node, bottomup bool, f func([]Step, Node) error) error {
	var err error
	if !bottomup {
		err = f(path, n)
	}
	if err != nil {
		return err
	}
	if in, ok := n.(*InternalNode); ok {
		for _, b := range in.Branches {
			subpath := append(append([]Step(nil), path...), Step{in.Attribute, b.Value})
			err = traverse(subpath, b.Subtree, bottomup, f)
			if err != nil {
				return err
			}
		}
	}
	if bottomup {
		err = f(path, n)
	}
	return err
}

/*
Equal takes two nodes and returns whether the trees under them have the
same structure: the same attributes on internal nodes, the same branch
values in the same order and the same labels on leaves.
*/
func Equal(a, b Node) bool {
	switch a := a.(type) {
	case *Leaf:
		bl, ok := b.(*Leaf)
		return ok && a != nil && bl != nil && a.Label == bl.Label
	case *InternalNode:
		bn, ok := b.(*InternalNode)
		if !ok || a == nil || bn == nil || a.Attribute != bn.Attribute || len(a.Branches) != len(bn.Branches) {
			return false
		}
		for i, branch := range a.Branches {
			other := bn.Branches[i]
			if branch.Value != other.Value || !Equal(branch.Subtree, other.Subtree) {
				return false
			}
		}
		return true
	}
	return false
}

// Count returns the number of nodes and of leaves in the tree
func Count(n Node) (nodes int, leaves int) {
	Traverse(n, false, func(_ []Step, n Node) error {
		nodes++
		if _, ok := n.(*Leaf); ok {
			leaves++
		}
		return nil
	})
	return
}

// Depth returns the number of internal nodes on the longest path from
// the given node to a leaf.
func Depth(n Node) int {
	var result int
	Traverse(n, false, func(path []Step, _ Node) error {
		if len(path) > result {
			result = len(path)
		}
		return nil
	})
	return result
}

func format(n Node) string {
	switch n := n.(type) {
	case *Leaf:
		return fmt.Sprintf("{ %v }\n", n.Label)
	case *InternalNode:
		result := fmt.Sprintf("[%s]\n", n.Attribute)
		if len(n.Branches) > 0 {
			result = fmt.Sprintf("%s|\n", result)
		}
		for i, b := range n.Branches {
			block := fmt.Sprintf("%v\n%s", Step{n.Attribute, b.Value}, format(b.Subtree))
			for j, line := range strings.Split(block, "\n") {
				if len(line) > 0 {
					if j == 0 {
						result = fmt.Sprintf("%s|__%s\n", result, line)
					} else {
						if i == len(n.Branches)-1 {
							result = fmt.Sprintf("%s   %s\n", result, line)
						} else {
							result = fmt.Sprintf("%s|  %s\n", result, line)
						}
					}
				}
			}
		}
		return result
	}
	return fmt.Sprintf("ERROR: unknown node %T\n", n)
}
