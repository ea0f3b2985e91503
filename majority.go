package sapling

import (
	"github.com/pbanos/sapling/dataset"
)

/*
MajorityLabel takes a slice of labels and returns the most frequent one.
When several labels share the highest count, the first of them to appear
in the slice wins. It returns dataset.ErrEmptyDataset if the slice is
empty.
*/
func MajorityLabel(labels []dataset.Value) (dataset.Value, error) {
	if len(labels) == 0 {
		return nil, dataset.ErrEmptyDataset
	}
	var order []dataset.Value
	counts := make(map[dataset.Value]int)
	for _, l := range labels {
		if _, ok := counts[l]; !ok {
			order = append(order, l)
		}
		counts[l]++
	}
	result := order[0]
	for _, l := range order[1:] {
		if counts[l] > counts[result] {
			result = l
		}
	}
	return result, nil
}
