/*
Package yaml provides methods to parse attribute.Metadata specifications
from YAML documents.
*/
package yaml

import (
	"fmt"
	"io/ioutil"

	"github.com/pbanos/sapling/attribute"
	yaml "gopkg.in/yaml.v2"
)

/*
ReadMetadata takes a slice of bytes with a metadata specification in YML and
returns the metadata parsed from it or an error.
The YML is expected to be an object containing a label property with the
name of the label column and an attributes property. The value for this
should be a list, in column order, where each item is either the name of an
attribute accepting any value, or an object with a single property named
after the attribute whose value is the list of values it accepts.
Bear in mind YAML 1.1 reads unquoted yes/no as booleans: quote them to
use them as values.
*/
func ReadMetadata(md []byte) (*attribute.Metadata, error) {
	raw := struct {
		Label      string
		Attributes []interface{}
	}{}
	err := yaml.Unmarshal(md, &raw)
	if err != nil {
		return nil, fmt.Errorf("parsing yml metadata: %v", err)
	}
	if raw.Label == "" {
		return nil, fmt.Errorf("metadata has no label information")
	}
	if len(raw.Attributes) == 0 {
		return nil, fmt.Errorf("metadata has no attribute information")
	}
	result := &attribute.Metadata{Label: raw.Label}
	for i, decl := range raw.Attributes {
		a, err := parseAttribute(decl)
		if err != nil {
			return nil, fmt.Errorf("parsing attribute %d: %v", i, err)
		}
		result.Attributes = append(result.Attributes, a)
	}
	if dups := result.Labels().Duplicates(); len(dups) > 0 {
		return nil, fmt.Errorf("attributes declared more than once: %v", dups)
	}
	if result.Attribute(result.Label) != nil {
		return nil, fmt.Errorf("label %s is also declared as an attribute", result.Label)
	}
	return result, nil
}

/*
ReadMetadataFromFile takes a filepath string, reads its contents and uses
ReadMetadata to parse it and return the parsed metadata or an error.
If the file indicated by the filepath cannot be opened for reading an error
will be returned.
*/
func ReadMetadataFromFile(filepath string) (*attribute.Metadata, error) {
	md, err := ioutil.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("reading metadata yml file %s: %v", filepath, err)
	}
	metadata, err := ReadMetadata(md)
	if err != nil {
		err = fmt.Errorf("parsing metadata yml file %s: %v", filepath, err)
	}
	return metadata, err
}

func parseAttribute(decl interface{}) (*attribute.Attribute, error) {
	switch decl := decl.(type) {
	case string:
		return attribute.New(decl, nil), nil
	case map[interface{}]interface{}:
		if len(decl) != 1 {
			return nil, fmt.Errorf("expected a single attribute per item, got %d", len(decl))
		}
		for k, vs := range decl {
			name := fmt.Sprintf("%v", k)
			values, ok := vs.([]interface{})
			if !ok {
				return nil, fmt.Errorf("invalid value declaration of type %T for attribute %s", vs, name)
			}
			stringVs := []string{}
			for _, v := range values {
				stringVs = append(stringVs, fmt.Sprintf("%v", v))
			}
			return attribute.New(name, stringVs), nil
		}
	}
	return nil, fmt.Errorf("invalid attribute declaration of type %T", decl)
}
