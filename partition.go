package sapling

import (
	"fmt"

	"github.com/pbanos/sapling/dataset"
)

/*
Gain is the information gain obtained by partitioning a dataset on one
of its attributes.
*/
type Gain struct {
	// Index of the attribute column in the dataset
	Attribute int
	// Entropy of the dataset minus the weighted entropy of the subsets
	// resulting from the partition
	Gain float64
}

func (g Gain) String() string {
	return fmt.Sprintf("{attribute %d: %.3f}", g.Attribute, g.Gain)
}

/*
GainTolerance is the smallest information gain told apart from zero, and
the smallest difference told apart between two gains. Smaller values are
floating point rounding leftovers of gains that are really 0.0 or equal.
*/
const GainTolerance = 1e-12

/*
InformationGain takes a dataset and an attribute index and returns the
information gain of partitioning the dataset on that attribute: the
entropy of the dataset minus the entropy of every subset for a distinct
value of the attribute weighted by the proportion of records in it.
Gains under GainTolerance are returned as 0.0, so the result is never
negative.
*/
func InformationGain(d *dataset.Dataset, attribute int) (float64, error) {
	values, err := d.DistinctValues(attribute)
	if err != nil {
		return 0.0, err
	}
	totalCount := float64(d.Len())
	conditionalEntropy := 0.0
	for _, value := range values {
		subset, err := d.Split(attribute, value)
		if err != nil {
			return 0.0, err
		}
		conditionalEntropy += subset.Entropy() * float64(subset.Len()) / totalCount
	}
	informationGain := d.Entropy() - conditionalEntropy
	if informationGain < GainTolerance {
		return 0.0, nil
	}
	return informationGain, nil
}

/*
InformationGains takes a dataset and returns the information gain of
each of its attributes, from left to right.
*/
func InformationGains(d *dataset.Dataset) ([]Gain, error) {
	result := make([]Gain, 0, d.AttributeCount())
	for i := 0; i < d.AttributeCount(); i++ {
		g, err := InformationGain(d, i)
		if err != nil {
			return nil, fmt.Errorf("computing information gain for attribute %d: %w", i, err)
		}
		result = append(result, Gain{i, g})
	}
	return result, nil
}

/*
SelectBestAttribute takes a dataset and a GainObserver and returns the
index of the attribute whose partition yields the largest information
gain and true. Ties, including gains within GainTolerance of each other,
are resolved in favour of the leftmost attribute. When no attribute yields
a gain over GainTolerance it returns -1 and false.
The gain of every attribute is reported to the observer, if not nil,
in attribute order. The dataset must have at least one attribute,
otherwise ErrNoAttributes is returned.
*/
func SelectBestAttribute(d *dataset.Dataset, o GainObserver) (int, bool, error) {
	if d.AttributeCount() == 0 {
		return -1, false, ErrNoAttributes
	}
	gains, err := InformationGains(d)
	if err != nil {
		return -1, false, err
	}
	bestIndex := -1
	bestGain := 0.0
	for _, g := range gains {
		if o != nil {
			o.ObserveGain(g)
		}
		if g.Gain > bestGain+GainTolerance {
			bestGain = g.Gain
			bestIndex = g.Attribute
		}
	}
	return bestIndex, bestIndex >= 0, nil
}
