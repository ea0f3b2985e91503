package sapling_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/pbanos/sapling"
	"github.com/pbanos/sapling/attribute"
	"github.com/pbanos/sapling/dataset"
	"github.com/pbanos/sapling/source/loan"
	"github.com/pbanos/sapling/tree"
	"github.com/stretchr/testify/require"
)

func loanTree(t *testing.T) tree.Node {
	job := tree.NewInternalNode("job")
	require.NoError(t, job.Add(0, tree.NewLeaf("no")))
	require.NoError(t, job.Add(1, tree.NewLeaf("yes")))
	house := tree.NewInternalNode("house")
	require.NoError(t, house.Add(0, job))
	require.NoError(t, house.Add(1, tree.NewLeaf("yes")))
	return house
}

// classify walks the tree following the record's attribute values
func classify(n tree.Node, labels attribute.Labels, r dataset.Record) (dataset.Value, error) {
	for {
		switch node := n.(type) {
		case *tree.Leaf:
			return node.Label, nil
		case *tree.InternalNode:
			i := labels.Index(node.Attribute)
			if i < 0 {
				return nil, fmt.Errorf("unknown attribute %s", node.Attribute)
			}
			child, ok := node.Child(r[i])
			if !ok {
				return nil, fmt.Errorf("no branch for %s = %v", node.Attribute, r[i])
			}
			n = child
		default:
			return nil, fmt.Errorf("unexpected node %T", n)
		}
	}
}

func TestGrowLoan(t *testing.T) {
	d, labels, err := loan.Dataset()
	require.NoError(t, err)
	trace := &sapling.Trace{}
	root, err := sapling.Grow(d, labels, trace)
	require.NoError(t, err)
	require.True(t, tree.Equal(loanTree(t), root), "got tree:\n%v", root)
	require.Equal(t, []string{"house", "job"}, trace.Attributes())

	house, ok := root.(*tree.InternalNode)
	require.True(t, ok)
	yes, ok := house.Child(1)
	require.True(t, ok)
	require.Equal(t, tree.NewLeaf("yes"), yes)

	for _, r := range d.Records() {
		label, err := classify(root, labels, r)
		require.NoError(t, err)
		require.Equal(t, r.Label(), label, "record %v", r)
	}
	require.Equal(t, loan.Labels(), labels)
}

func TestGrowIsDeterministic(t *testing.T) {
	d, labels, err := loan.Dataset()
	require.NoError(t, err)
	first, err := sapling.Grow(d, labels, nil)
	require.NoError(t, err)
	second, err := sapling.Grow(d, labels, nil)
	require.NoError(t, err)
	require.True(t, tree.Equal(first, second))
	require.Equal(t, first.String(), second.String())
}

func TestGrowReportsGains(t *testing.T) {
	d, labels, err := loan.Dataset()
	require.NoError(t, err)
	recorder := &sapling.GainRecorder{}
	_, err = sapling.New(recorder).Grow(d, labels, nil)
	require.NoError(t, err)
	// 4 attributes on the root and 3 on the house = 0 subset
	require.Len(t, recorder.Gains, 7)
	for i, g := range recorder.Gains[:4] {
		require.Equal(t, i, g.Attribute)
	}
	require.InDelta(t, 0.918, recorder.Gains[5].Gain, 0.001)
}

func TestGrowPureDataset(t *testing.T) {
	d, err := dataset.New([]dataset.Record{{0, "a"}, {1, "a"}})
	require.NoError(t, err)
	trace := &sapling.Trace{}
	root, err := sapling.Grow(d, attribute.Labels{"x"}, trace)
	require.NoError(t, err)
	require.Equal(t, tree.NewLeaf("a"), root)
	require.Empty(t, trace.Attributes())
}

func TestGrowWithoutGain(t *testing.T) {
	d, err := dataset.New([]dataset.Record{
		{0, 1, "b"},
		{0, 1, "a"},
		{0, 1, "a"},
	})
	require.NoError(t, err)
	root, err := sapling.Grow(d, attribute.Labels{"x", "y"}, nil)
	require.NoError(t, err)
	require.Equal(t, tree.NewLeaf("a"), root)
}

func TestGrowExhaustsAttributes(t *testing.T) {
	d, err := dataset.New([]dataset.Record{
		{0, "a"},
		{1, "b"},
		{1, "c"},
		{1, "b"},
	})
	require.NoError(t, err)
	trace := &sapling.Trace{}
	root, err := sapling.Grow(d, attribute.Labels{"x"}, trace)
	require.NoError(t, err)
	expected := tree.NewInternalNode("x")
	require.NoError(t, expected.Add(0, tree.NewLeaf("a")))
	require.NoError(t, expected.Add(1, tree.NewLeaf("b")))
	require.True(t, tree.Equal(expected, root), "got tree:\n%v", root)
	require.Equal(t, []string{"x"}, trace.Attributes())
}

func TestGrowLabelOnlyDataset(t *testing.T) {
	d, err := dataset.New([]dataset.Record{{"b"}, {"a"}, {"b"}})
	require.NoError(t, err)
	root, err := sapling.Grow(d, nil, nil)
	require.NoError(t, err)
	require.Equal(t, tree.NewLeaf("b"), root)
}

func TestGrowErrors(t *testing.T) {
	d, labels, err := loan.Dataset()
	require.NoError(t, err)

	t.Run("label mismatch", func(t *testing.T) {
		_, err := sapling.Grow(d, labels[:3], nil)
		require.True(t, errors.Is(err, sapling.ErrLabelMismatch), "got %v", err)
	})

	t.Run("duplicate labels", func(t *testing.T) {
		_, err := sapling.Grow(d, attribute.Labels{"age", "job", "age", "credit"}, nil)
		require.True(t, errors.Is(err, sapling.ErrDuplicateAttribute), "got %v", err)
	})

	t.Run("nil dataset", func(t *testing.T) {
		_, err := sapling.Grow(nil, labels, nil)
		require.True(t, errors.Is(err, dataset.ErrEmptyDataset), "got %v", err)
	})
}

func TestTrace(t *testing.T) {
	trace := &sapling.Trace{}
	trace.Append("a")
	trace.Append("b")
	attributes := trace.Attributes()
	attributes[0] = "c"
	require.Equal(t, []string{"a", "b"}, trace.Attributes())
	require.Equal(t, "[a b]", trace.String())
}

func TestGrowIndependentAttribute(t *testing.T) {
	d, err := dataset.New([]dataset.Record{
		{"a", "yes"},
		{"a", "no"},
		{"b", "yes"},
		{"b", "no"},
		{"c", "yes"},
		{"c", "no"},
	})
	require.NoError(t, err)
	trace := &sapling.Trace{}
	recorder := &sapling.GainRecorder{}
	root, err := sapling.New(recorder).Grow(d, attribute.Labels{"x"}, trace)
	require.NoError(t, err)
	require.Equal(t, tree.NewLeaf("yes"), root)
	require.Empty(t, trace.Attributes())
	require.Equal(t, []sapling.Gain{{Attribute: 0, Gain: 0.0}}, recorder.Gains)
}
