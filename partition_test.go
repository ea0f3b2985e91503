package sapling_test

import (
	"testing"

	"github.com/pbanos/sapling"
	"github.com/pbanos/sapling/dataset"
	"github.com/pbanos/sapling/source/loan"
	"github.com/stretchr/testify/require"
)

func TestInformationGains(t *testing.T) {
	d, _, err := loan.Dataset()
	require.NoError(t, err)
	gains, err := sapling.InformationGains(d)
	require.NoError(t, err)
	require.Len(t, gains, 4)
	expected := []float64{0.083, 0.324, 0.420, 0.363}
	for i, g := range gains {
		require.Equal(t, i, g.Attribute)
		require.InDelta(t, expected[i], g.Gain, 0.001, "attribute %d", i)
		require.True(t, g.Gain >= 0.0 && g.Gain <= d.Entropy())
	}
}

func TestInformationGainOutOfRange(t *testing.T) {
	d, _, err := loan.Dataset()
	require.NoError(t, err)
	_, err = sapling.InformationGain(d, 4)
	require.Error(t, err)
}

func TestSelectBestAttribute(t *testing.T) {
	d, _, err := loan.Dataset()
	require.NoError(t, err)
	recorder := &sapling.GainRecorder{}
	best, ok, err := sapling.SelectBestAttribute(d, recorder)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 2, best)
	require.Len(t, recorder.Gains, 4)

	best, ok, err = sapling.SelectBestAttribute(d, nil)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 2, best)
}

func TestSelectBestAttributeTies(t *testing.T) {
	d, err := dataset.New([]dataset.Record{
		{"x", "x", "a"},
		{"y", "y", "b"},
	})
	require.NoError(t, err)
	best, ok, err := sapling.SelectBestAttribute(d, nil)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 0, best)
}

func TestSelectBestAttributeNoGain(t *testing.T) {
	d, err := dataset.New([]dataset.Record{
		{0, 1, "a"},
		{0, 1, "b"},
	})
	require.NoError(t, err)
	best, ok, err := sapling.SelectBestAttribute(d, nil)
	require.NoError(t, err)
	require.False(t, ok)
	require.Equal(t, -1, best)
}

func TestSelectBestAttributeNoAttributes(t *testing.T) {
	d, err := dataset.New([]dataset.Record{{"a"}, {"b"}})
	require.NoError(t, err)
	_, _, err = sapling.SelectBestAttribute(d, nil)
	require.Equal(t, sapling.ErrNoAttributes, err)
}

func balancedRecords() []dataset.Record {
	return []dataset.Record{
		{"a", "yes"},
		{"a", "no"},
		{"b", "yes"},
		{"b", "no"},
		{"c", "yes"},
		{"c", "no"},
	}
}

func TestInformationGainOfIndependentAttribute(t *testing.T) {
	d, err := dataset.New(balancedRecords())
	require.NoError(t, err)
	g, err := sapling.InformationGain(d, 0)
	require.NoError(t, err)
	require.Equal(t, 0.0, g)

	best, ok, err := sapling.SelectBestAttribute(d, nil)
	require.NoError(t, err)
	require.False(t, ok)
	require.Equal(t, -1, best)
}

func TestInformationGainsAreNeverNegative(t *testing.T) {
	records := []dataset.Record{}
	for i := 0; i < 7; i++ {
		for _, label := range []string{"x", "y", "z"} {
			records = append(records, dataset.Record{i, i % 3, label})
		}
	}
	d, err := dataset.New(records)
	require.NoError(t, err)
	gains, err := sapling.InformationGains(d)
	require.NoError(t, err)
	for _, g := range gains {
		require.Equal(t, 0.0, g.Gain, "attribute %d", g.Attribute)
	}
}
