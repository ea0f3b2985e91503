/*
Package dot renders decision trees in the Graphviz DOT language, so they
can be drawn with the dot tool.
*/
package dot

import (
	"fmt"
	"io"

	"github.com/awalterschulze/gographviz"
	"github.com/pbanos/sapling/tree"
)

const graphName = "tree"

/*
Render takes a tree node and returns a DOT digraph with a box for every
internal node, labeled with its attribute, an ellipse for every leaf,
labeled with its label, and an edge for every branch, labeled with its
value. Nodes are named n0, n1... in depth-first order.
*/
func Render(root tree.Node) (string, error) {
	graph := gographviz.NewGraph()
	if err := graph.SetName(graphName); err != nil {
		return "", err
	}
	if err := graph.SetDir(true); err != nil {
		return "", err
	}
	var next int
	_, err := addNode(graph, root, &next)
	if err != nil {
		return "", fmt.Errorf("rendering tree as dot: %v", err)
	}
	return graph.String(), nil
}

/*
Write takes an io.Writer and a tree node and writes the DOT rendering of
the tree onto the writer.
*/
func Write(w io.Writer, root tree.Node) error {
	s, err := Render(root)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, s)
	return err
}

func addNode(graph *gographviz.Graph, n tree.Node, next *int) (string, error) {
	name := fmt.Sprintf("n%d", *next)
	*next++
	switch n := n.(type) {
	case *tree.Leaf:
		return name, graph.AddNode(graphName, name, map[string]string{
			"label": quote(n.Label),
			"shape": "ellipse",
		})
	case *tree.InternalNode:
		err := graph.AddNode(graphName, name, map[string]string{
			"label": quote(n.Attribute),
			"shape": "box",
		})
		if err != nil {
			return "", err
		}
		for _, b := range n.Branches {
			child, err := addNode(graph, b.Subtree, next)
			if err != nil {
				return "", err
			}
			err = graph.AddEdge(name, child, true, map[string]string{"label": quote(b.Value)})
			if err != nil {
				return "", err
			}
		}
		return name, nil
	}
	return "", fmt.Errorf("unknown node type %T", n)
}

func quote(v interface{}) string {
	return fmt.Sprintf("%q", fmt.Sprintf("%v", v))
}
