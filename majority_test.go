package sapling

import (
	"testing"

	"github.com/pbanos/sapling/dataset"
	"github.com/stretchr/testify/require"
)

func TestMajorityLabel(t *testing.T) {
	testCases := []struct {
		name     string
		labels   []dataset.Value
		expected dataset.Value
	}{
		{"single", []dataset.Value{"no"}, "no"},
		{"clear majority", []dataset.Value{"no", "yes", "yes"}, "yes"},
		{"tie goes to first seen", []dataset.Value{"b", "a", "a", "b"}, "b"},
		{"three way tie", []dataset.Value{3, 1, 2}, 3},
		{"later majority", []dataset.Value{1, 2, 2, 3, 3, 3}, 3},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			label, err := MajorityLabel(tc.labels)
			require.NoError(t, err)
			require.Equal(t, tc.expected, label)
		})
	}
}

func TestMajorityLabelEmpty(t *testing.T) {
	_, err := MajorityLabel(nil)
	require.Equal(t, dataset.ErrEmptyDataset, err)
}
