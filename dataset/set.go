package dataset

import (
	"fmt"
	"math"
)

/*
Dataset represents a non-empty, ordered collection of records with the
same number of columns. The last column of every record holds its label,
the rest hold attribute values.

Its Entropy method returns the entropy of the dataset labels: a measure
of the disinformation we have on the labels of records that belong to it.

Its Split method takes an attribute index and a value and returns the
subset of records with that value on the attribute, without the
attribute column.

A Dataset is never modified once built: Split and every other method
return fresh copies.
*/
type Dataset struct {
	records []Record
	columns int
	entropy *float64
}

/*
New takes a slice of records and returns a dataset built with them or an
error if the records are malformed: when there are none, when they do not
all have the same number of columns (at least one, for the label) or when
some value cannot be compared for equality.
The records are copied, so later changes on the given slice do not affect
the dataset.
*/
func New(records []Record) (*Dataset, error) {
	if len(records) == 0 {
		return nil, ErrEmptyDataset
	}
	columns := len(records[0])
	if columns == 0 {
		return nil, fmt.Errorf("record 0 has no label: %w", ErrRaggedRecord)
	}
	copied := make([]Record, 0, len(records))
	for i, r := range records {
		if len(r) != columns {
			return nil, fmt.Errorf("record %d has %d columns, expected %d: %w", i, len(r), columns, ErrRaggedRecord)
		}
		for j, v := range r {
			if !hashable(v) {
				return nil, fmt.Errorf("record %d column %d holds %T: %w", i, j, v, ErrIncomparableValue)
			}
		}
		copied = append(copied, r.copy())
	}
	return &Dataset{records: copied, columns: columns}, nil
}

// Len returns the number of records in the dataset
func (d *Dataset) Len() int {
	return len(d.records)
}

// Columns returns the number of columns of every record, label included
func (d *Dataset) Columns() int {
	return d.columns
}

// AttributeCount returns the number of attribute columns, that is,
// every column but the label.
func (d *Dataset) AttributeCount() int {
	return d.columns - 1
}

/*
Records returns a copy of the records in the dataset in their
original order.
*/
func (d *Dataset) Records() []Record {
	result := make([]Record, 0, len(d.records))
	for _, r := range d.records {
		result = append(result, r.copy())
	}
	return result
}

/*
Labels returns a slice with the label of every record in the dataset,
in record order.
*/
func (d *Dataset) Labels() []Value {
	result := make([]Value, 0, len(d.records))
	for _, r := range d.records {
		result = append(result, r.Label())
	}
	return result
}

/*
Column takes an attribute index and returns the values of every record
for that attribute in record order, or ErrAttributeOutOfRange if the
dataset has no such attribute.
*/
func (d *Dataset) Column(attribute int) ([]Value, error) {
	if err := d.checkAttribute(attribute); err != nil {
		return nil, err
	}
	result := make([]Value, 0, len(d.records))
	for _, r := range d.records {
		result = append(result, r[attribute])
	}
	return result, nil
}

/*
DistinctValues takes an attribute index and returns the distinct values
the records take for it in the order they are first seen, or
ErrAttributeOutOfRange if the dataset has no such attribute.
*/
func (d *Dataset) DistinctValues(attribute int) ([]Value, error) {
	column, err := d.Column(attribute)
	if err != nil {
		return nil, err
	}
	return distinct(column), nil
}

/*
CountLabels returns the distinct labels of the dataset in the order they
are first seen, along with the number of records holding each of them.
*/
func (d *Dataset) CountLabels() ([]Value, map[Value]int) {
	return count(d.Labels())
}

/*
Entropy returns the entropy in bits of the labels of the dataset. It is
0.0 when every record has the same label and log2(k) when k labels are
evenly distributed.
*/
func (d *Dataset) Entropy() float64 {
	if d.entropy != nil {
		return *d.entropy
	}
	// a dataset is never empty, so the error can be ignored
	result, _ := Entropy(d.Labels())
	d.entropy = &result
	return result
}

/*
Split takes an attribute index and a value and returns a dataset with the
records that hold the value for the attribute, in their original order
and with the attribute column removed, so that the label stays last.
It returns ErrAttributeOutOfRange if the dataset has no such attribute,
and ErrEmptyDataset if no record holds the value.
*/
func (d *Dataset) Split(attribute int, value Value) (*Dataset, error) {
	if err := d.checkAttribute(attribute); err != nil {
		return nil, err
	}
	var records []Record
	for _, r := range d.records {
		if r[attribute] == value {
			records = append(records, r.without(attribute))
		}
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("splitting on attribute %d with value %v: %w", attribute, value, ErrEmptyDataset)
	}
	return &Dataset{records: records, columns: d.columns - 1}, nil
}

func (d *Dataset) String() string {
	return fmt.Sprintf("[%d records x %d columns]", len(d.records), d.columns)
}

func (d *Dataset) checkAttribute(attribute int) error {
	if attribute < 0 || attribute >= d.columns-1 {
		return fmt.Errorf("attribute %d on a dataset with %d attributes: %w", attribute, d.columns-1, ErrAttributeOutOfRange)
	}
	return nil
}

/*
Entropy takes a slice of labels and returns their entropy in bits, or
ErrEmptyDataset if the slice is empty. Only labels present in the slice
are counted, so the logarithm is never applied to a probability of 0.
*/
func Entropy(labels []Value) (float64, error) {
	if len(labels) == 0 {
		return 0.0, ErrEmptyDataset
	}
	var result float64
	values, counts := count(labels)
	total := float64(len(labels))
	for _, v := range values {
		prob := float64(counts[v]) / total
		result -= prob * math.Log2(prob)
	}
	return result, nil
}

func count(values []Value) ([]Value, map[Value]int) {
	var order []Value
	counts := make(map[Value]int)
	for _, v := range values {
		if _, ok := counts[v]; !ok {
			order = append(order, v)
		}
		counts[v]++
	}
	return order, counts
}

func distinct(values []Value) []Value {
	order, _ := count(values)
	return order
}

// hashable reports whether v can be used as a map key. Comparable arrays
// and structs may still hold slices or maps behind interfaces, which only
// fail when hashed.
func hashable(v Value) (ok bool) {
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()
	m := make(map[Value]struct{}, 1)
	m[v] = struct{}{}
	return len(m) == 1
}
