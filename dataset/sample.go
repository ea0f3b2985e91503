package dataset

import (
	"fmt"
)

/*
Value is an attribute value or a label held by a record. Values are opaque
tokens: they are only ever compared for equality, so any comparable Go
value (integers, strings, enumerations...) can be used.
*/
type Value = interface{}

/*
Record represents a training example: a sequence of attribute values
followed by the example's label in the last position.
*/
type Record []Value

// Label returns the last value of the record
func (r Record) Label() Value {
	return r[len(r)-1]
}

// Attributes returns the record values without the label
func (r Record) Attributes() []Value {
	return r[:len(r)-1]
}

func (r Record) copy() Record {
	return append(Record(nil), r...)
}

func (r Record) without(i int) Record {
	result := make(Record, 0, len(r)-1)
	result = append(result, r[:i]...)
	return append(result, r[i+1:]...)
}

func (r Record) String() string {
	return fmt.Sprintf("%v", []Value(r))
}
