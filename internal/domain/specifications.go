package domain

import "strings"

const (
	SpecSeparator     = "|"
	SpecPairSeparator = ": "
)

// Spec is a single key/value entry of a product's specifications.
type Spec struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Specifications keeps entries in first-insertion order. Setting an existing
// key replaces its value in place.
type Specifications []Spec

func (s *Specifications) Set(key, value string) {
	for i := range *s {
		if (*s)[i].Key == key {
			(*s)[i].Value = value
			return
		}
	}
	*s = append(*s, Spec{Key: key, Value: value})
}

// Value returns the value stored under key, or "".
func (s Specifications) Value(key string) string {
	for _, spec := range s {
		if spec.Key == key {
			return spec.Value
		}
	}
	return ""
}

func (s Specifications) Has(key string) bool {
	for _, spec := range s {
		if spec.Key == key {
			return true
		}
	}
	return false
}

func (s Specifications) Map() map[string]string {
	m := make(map[string]string, len(s))
	for _, spec := range s {
		m[spec.Key] = spec.Value
	}
	return m
}

// String joins the entries back into the "key: value|key: value" form.
func (s Specifications) String() string {
	parts := make([]string, len(s))
	for i, spec := range s {
		parts[i] = spec.Key + SpecPairSeparator + spec.Value
	}
	return strings.Join(parts, SpecSeparator)
}
