/*
Package source reads tabular training data from files and databases and
turns it into datasets to grow trees from.

Every backend implements the Loader interface and returns a Table: the
column names and the rows as read. The Table's Dataset method then
resolves which column holds the label and which ones hold the attributes.
*/
package source

import (
	"context"
	"fmt"

	"github.com/pbanos/sapling/attribute"
	"github.com/pbanos/sapling/dataset"
)

/*
Loader is an interface wrapping the Load method, which reads a table from
a backend or returns an error. Implementations may use the given context
to allow timeouts and cancellations of the read.
*/
type Loader interface {
	Load(context.Context) (*Table, error)
}

/*
Table is tabular data as read from a source: a header with the name of
every column and the rows of values, each with as many values as the
header has names.
*/
type Table struct {
	Header []string
	Rows   [][]interface{}
}

/*
Dataset takes the metadata describing the table and returns a dataset
with its rows along with the labels of the dataset's attribute columns,
or an error.

When the metadata is nil, the last column is taken as the label and the
rest as attributes in header order. Otherwise the dataset has a column
per metadata attribute, in metadata order, and the metadata label column
last; columns not mentioned by the metadata are ignored and values are
checked against the attribute's available values.
*/
func (t *Table) Dataset(md *attribute.Metadata) (*dataset.Dataset, attribute.Labels, error) {
	if len(t.Header) == 0 {
		return nil, nil, fmt.Errorf("table has no columns")
	}
	if dups := attribute.Labels(t.Header).Duplicates(); len(dups) > 0 {
		return nil, nil, fmt.Errorf("table has duplicate columns %v", dups)
	}
	columns, labels, err := t.columns(md)
	if err != nil {
		return nil, nil, err
	}
	records := make([]dataset.Record, 0, len(t.Rows))
	for i, row := range t.Rows {
		if len(row) != len(t.Header) {
			return nil, nil, fmt.Errorf("row %d has %d values for %d columns: %w", i, len(row), len(t.Header), dataset.ErrRaggedRecord)
		}
		r := make(dataset.Record, 0, len(columns))
		for j, c := range columns {
			v := row[c]
			if md != nil && j < len(md.Attributes) {
				if ok, err := md.Attributes[j].Valid(v); !ok {
					return nil, nil, fmt.Errorf("row %d: %v", i, err)
				}
			}
			r = append(r, v)
		}
		records = append(records, r)
	}
	d, err := dataset.New(records)
	if err != nil {
		return nil, nil, fmt.Errorf("building dataset: %w", err)
	}
	return d, labels, nil
}

func (t *Table) columns(md *attribute.Metadata) ([]int, attribute.Labels, error) {
	if md == nil {
		columns := make([]int, 0, len(t.Header))
		for i := range t.Header {
			columns = append(columns, i)
		}
		return columns, append(attribute.Labels(nil), t.Header[:len(t.Header)-1]...), nil
	}
	header := attribute.Labels(t.Header)
	columns := make([]int, 0, len(md.Attributes)+1)
	for _, name := range append(md.Labels(), md.Label) {
		c := header.Index(name)
		if c < 0 {
			return nil, nil, fmt.Errorf("column %s not found in table header %v", name, t.Header)
		}
		columns = append(columns, c)
	}
	return columns, md.Labels(), nil
}
