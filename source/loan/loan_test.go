package loan

import (
	"context"
	"testing"

	"github.com/pbanos/sapling/attribute"
	"github.com/stretchr/testify/require"
)

func TestDataset(t *testing.T) {
	d, labels, err := Dataset()
	require.NoError(t, err)
	require.Equal(t, 15, d.Len())
	require.Equal(t, 4, d.AttributeCount())
	require.Equal(t, attribute.Labels{"age", "job", "house", "credit"}, labels)
	require.InDelta(t, 0.971, d.Entropy(), 0.001)
}

func TestLoader(t *testing.T) {
	table, err := NewLoader().Load(context.Background())
	require.NoError(t, err)
	require.Equal(t, []string{"age", "job", "house", "credit", "approved"}, table.Header)
	require.Len(t, table.Rows, 15)
	require.Equal(t, []interface{}{0, 1, 0, 1, "yes"}, table.Rows[2])

	d, labels, err := table.Dataset(nil)
	require.NoError(t, err)
	require.Equal(t, Labels(), labels)
	expected, _, err := Dataset()
	require.NoError(t, err)
	require.Equal(t, expected.Records(), d.Records())
}

func TestLoaderCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewLoader().Load(ctx)
	require.Equal(t, context.Canceled, err)
}
