package claims

import "errors"

var (
	// ErrMissingScheme is returned when constructing or decoding a principal
	// without an authentication scheme tag.
	ErrMissingScheme = errors.New("principal requires an authentication scheme")
)
