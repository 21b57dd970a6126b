package catalog

import "errors"

// ErrDataFormat marks catalog input that cannot be turned into products:
// malformed CSV, a missing required column or a malformed specifications
// string.
var ErrDataFormat = errors.New("catalog data format error")
