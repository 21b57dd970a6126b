package catalog

import (
	"fmt"
	"strings"

	"catalog/sitegen/internal/domain"
)

// ParseSpecifications parses "key: value|key: value". Every part must contain
// the ": " separator exactly once, so "colorred", "a: b: c" and the empty
// string are all rejected with ErrDataFormat.
func ParseSpecifications(raw string) (domain.Specifications, error) {
	parts := strings.Split(raw, domain.SpecSeparator)
	specs := make(domain.Specifications, 0, len(parts))

	for i, part := range parts {
		pair := strings.Split(part, domain.SpecPairSeparator)
		if len(pair) != 2 {
			return nil, fmt.Errorf("%w: specification %d %q contains %d %q separators, expected 1",
				ErrDataFormat, i+1, part, len(pair)-1, domain.SpecPairSeparator)
		}
		specs.Set(pair[0], pair[1])
	}

	return specs, nil
}
