package collections

import "errors"

var (
	// ErrValueExisted is returned by a non-forced Put on a key that is already mapped.
	ErrValueExisted = errors.New("collections: key already mapped")
	// ErrValueNotExisted is returned by Get and Delete on a key that is not mapped.
	ErrValueNotExisted = errors.New("collections: key not mapped")
)
