package intent

import "errors"

var (
	// ErrClassification means no intent decision could be made.
	ErrClassification = errors.New("intent classification failed")
	ErrInvalidCatalog = errors.New("invalid intent catalog")
)
