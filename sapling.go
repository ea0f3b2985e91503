/*
Package sapling grows ID3 decision trees: it picks the attribute whose
partition of a dataset yields the most information gain, splits the
dataset on it, and repeats on every subset until the subsets are pure or
no attribute is left.
*/
package sapling

import (
	"fmt"

	mapset "github.com/deckarep/golang-set"
	"github.com/pbanos/sapling/attribute"
	"github.com/pbanos/sapling/dataset"
	"github.com/pbanos/sapling/tree"
)

// Error represents an error on the input to grow a tree
type Error string

const (
	// ErrLabelMismatch is returned when the number of attribute labels
	// does not match the number of attribute columns of a dataset.
	ErrLabelMismatch = Error("attribute labels do not match dataset columns")
	// ErrDuplicateAttribute is returned when two attribute columns share
	// a label.
	ErrDuplicateAttribute = Error("attribute label used more than once")
	// ErrNoAttributes is returned when trying to select an attribute on a
	// dataset that only has the label column.
	ErrNoAttributes = Error("dataset has no attributes")
)

func (e Error) Error() string {
	return string(e)
}

/*
Trace collects the names of the attributes chosen to split nodes, in the
order they were chosen while growing a tree.
*/
type Trace struct {
	attributes []string
}

// Append adds an attribute name to the trace
func (t *Trace) Append(name string) {
	t.attributes = append(t.attributes, name)
}

// Attributes returns a copy of the attribute names in the trace
func (t *Trace) Attributes() []string {
	return append([]string(nil), t.attributes...)
}

func (t *Trace) String() string {
	return fmt.Sprintf("%v", t.attributes)
}

/*
Pot represents the context in which a tree is grown.

Its Grow method takes a dataset, the labels of its attribute columns and
an optional trace, and returns a tree that predicts the labels of the
dataset records.
*/
type Pot interface {
	Grow(*dataset.Dataset, attribute.Labels, *Trace) (tree.Node, error)
}

type pot struct {
	observer GainObserver
}

/*
New takes a GainObserver and returns a Pot that reports to it the gain of
every attribute considered while growing trees. The observer may be nil.
*/
func New(o GainObserver) Pot {
	return &pot{o}
}

/*
Grow takes a dataset, the labels of its attribute columns and a trace and
grows a tree with a Pot that has no observer.
*/
func Grow(d *dataset.Dataset, labels attribute.Labels, trace *Trace) (tree.Node, error) {
	return New(nil).Grow(d, labels, trace)
}

/*
Grow takes a dataset, the labels of its attribute columns and a trace,
that may be nil, and returns the tree grown from the dataset or an error.
Each split attribute is appended to the trace when it is chosen.
An error is returned when the labels do not match the dataset's attribute
columns or a label is repeated. No partial tree is returned on error.
*/
func (p *pot) Grow(d *dataset.Dataset, labels attribute.Labels, trace *Trace) (tree.Node, error) {
	if d == nil {
		return nil, dataset.ErrEmptyDataset
	}
	if dups := labels.Duplicates(); len(dups) > 0 {
		return nil, fmt.Errorf("labels %v: %w", dups, ErrDuplicateAttribute)
	}
	if trace == nil {
		trace = &Trace{}
	}
	return p.develop(d, labels, trace)
}

func (p *pot) develop(d *dataset.Dataset, labels attribute.Labels, trace *Trace) (tree.Node, error) {
	if len(labels) != d.AttributeCount() {
		return nil, fmt.Errorf("%d labels for %d attributes: %w", len(labels), d.AttributeCount(), ErrLabelMismatch)
	}
	datasetLabels := d.Labels()
	if mapset.NewThreadUnsafeSetFromSlice(datasetLabels).Cardinality() == 1 {
		return tree.NewLeaf(datasetLabels[0]), nil
	}
	if d.AttributeCount() == 0 {
		return majorityLeaf(datasetLabels)
	}
	best, ok, err := SelectBestAttribute(d, p.observer)
	if err != nil {
		return nil, err
	}
	if !ok {
		return majorityLeaf(datasetLabels)
	}
	name := labels[best]
	trace.Append(name)
	stLabels, err := labels.Without(best)
	if err != nil {
		return nil, err
	}
	n := tree.NewInternalNode(name)
	values, err := d.DistinctValues(best)
	if err != nil {
		return nil, err
	}
	for _, value := range values {
		subset, err := d.Split(best, value)
		if err != nil {
			return nil, fmt.Errorf("splitting on %s = %v: %w", name, value, err)
		}
		subtree, err := p.develop(subset, stLabels, trace)
		if err != nil {
			return nil, fmt.Errorf("%s = %v: %w", name, value, err)
		}
		err = n.Add(value, subtree)
		if err != nil {
			return nil, err
		}
	}
	return n, nil
}

func majorityLeaf(labels []dataset.Value) (tree.Node, error) {
	label, err := MajorityLabel(labels)
	if err != nil {
		return nil, err
	}
	return tree.NewLeaf(label), nil
}
