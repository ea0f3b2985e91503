/*
Package loan provides the classic loan-approval training dataset: 15
applicants described by age group, whether they have a job, whether they
own a house and their credit rating, labeled with whether their loan was
approved.

Attribute values are coded as integers: age 0 (young), 1 (middle aged),
2 (old); job and house 0 (no), 1 (yes); credit 0 (fair), 1 (good),
2 (excellent). Labels are the strings "yes" and "no".
*/
package loan

import (
	"context"

	"github.com/pbanos/sapling/attribute"
	"github.com/pbanos/sapling/dataset"
	"github.com/pbanos/sapling/source"
)

// Label is the name of the label column
const Label = "approved"

// Labels returns the names of the attribute columns
func Labels() attribute.Labels {
	return attribute.Labels{"age", "job", "house", "credit"}
}

// Records returns the records of the dataset
func Records() []dataset.Record {
	return []dataset.Record{
		{0, 0, 0, 0, "no"},
		{0, 0, 0, 1, "no"},
		{0, 1, 0, 1, "yes"},
		{0, 1, 1, 0, "yes"},
		{0, 0, 0, 0, "no"},
		{1, 0, 0, 0, "no"},
		{1, 0, 0, 1, "no"},
		{1, 1, 1, 1, "yes"},
		{1, 0, 1, 2, "yes"},
		{1, 0, 1, 2, "yes"},
		{2, 0, 1, 2, "yes"},
		{2, 0, 1, 1, "yes"},
		{2, 1, 0, 1, "yes"},
		{2, 1, 0, 2, "yes"},
		{2, 0, 0, 0, "no"},
	}
}

// Dataset returns the records as a dataset along with the attribute labels
func Dataset() (*dataset.Dataset, attribute.Labels, error) {
	d, err := dataset.New(Records())
	if err != nil {
		return nil, nil, err
	}
	return d, Labels(), nil
}

type loader struct{}

// NewLoader returns a source.Loader that yields the dataset as a table
func NewLoader() source.Loader {
	return loader{}
}

func (loader) Load(ctx context.Context) (*source.Table, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	header := append(Labels(), Label)
	table := &source.Table{Header: header}
	for _, r := range Records() {
		table.Rows = append(table.Rows, append([]interface{}(nil), r...))
	}
	return table, nil
}
