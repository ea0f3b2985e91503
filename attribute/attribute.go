package attribute

import (
	"fmt"
)

/*
Attribute represents a property of the records in a dataset that can be
observed and used to split them. It can only take a value among a finite
set: when the set of allowed values is empty, any value is accepted.
*/
type Attribute struct {
	name            string
	availableValues []string
}

/*
New takes a name string and a slice of available value strings
and returns an attribute with the given names and available values.
*/
func New(name string, availableValues []string) *Attribute {
	return &Attribute{name, append([]string(nil), availableValues...)}
}

/*
Name returns a string with the name of the attribute
*/
func (a *Attribute) Name() string {
	return a.name
}

/*
AvailableValues returns a string slice with the values available for the
attribute. An empty slice means any value is accepted.
*/
func (a *Attribute) AvailableValues() []string {
	return append([]string(nil), a.availableValues...)
}

/*
Valid receives a value and returns a boolean and an error. When the
attribute has no available values, or the value, formatted as a string, is
among them, the method returns true and nil. Otherwise it returns false and
an error describing the reason.
*/
func (a *Attribute) Valid(value interface{}) (bool, error) {
	if len(a.availableValues) == 0 {
		return true, nil
	}
	vs, ok := value.(string)
	if !ok {
		vs = fmt.Sprintf("%v", value)
	}
	for _, av := range a.availableValues {
		if av == vs {
			return true, nil
		}
	}
	return false, fmt.Errorf("attribute %s got unknown value %s", a.Name(), vs)
}

func (a *Attribute) String() string {
	return a.name
}

/*
Metadata describes the columns of a table: the attributes to use, in
column order, and the name of the column holding the label.
*/
type Metadata struct {
	Label      string
	Attributes []*Attribute
}

// Labels returns the names of the metadata attributes in order
func (md *Metadata) Labels() Labels {
	result := make(Labels, 0, len(md.Attributes))
	for _, a := range md.Attributes {
		result = append(result, a.Name())
	}
	return result
}

// Attribute returns the attribute with the given name or nil
func (md *Metadata) Attribute(name string) *Attribute {
	for _, a := range md.Attributes {
		if a.Name() == name {
			return a
		}
	}
	return nil
}
