package attribute

import (
	"fmt"

	mapset "github.com/deckarep/golang-set"
)

/*
Labels is the ordered list of names of the attribute columns of a
dataset: the i-th name belongs to the i-th column.

Labels values are treated as immutable: Without returns a new slice and
never modifies the receiver, so sibling branches of a tree can narrow
the same labels independently.
*/
type Labels []string

/*
Without takes the index of a label and returns a copy of the labels
without it, or an error if the index is out of range.
*/
func (l Labels) Without(i int) (Labels, error) {
	if i < 0 || i >= len(l) {
		return nil, fmt.Errorf("removing label %d out of %d", i, len(l))
	}
	result := make(Labels, 0, len(l)-1)
	result = append(result, l[:i]...)
	return append(result, l[i+1:]...), nil
}

// Index returns the position of the given name or -1
func (l Labels) Index(name string) int {
	for i, n := range l {
		if n == name {
			return i
		}
	}
	return -1
}

/*
Duplicates returns the names that appear more than once in the labels,
in the order their second occurrence is found.
*/
func (l Labels) Duplicates() []string {
	seen := mapset.NewThreadUnsafeSet()
	reported := mapset.NewThreadUnsafeSet()
	var result []string
	for _, n := range l {
		if !seen.Add(n) && reported.Add(n) {
			result = append(result, n)
		}
	}
	return result
}
