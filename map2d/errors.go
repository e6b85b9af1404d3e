package map2d

import "errors"

// ErrInvalidKey is returned when a row or column key is a nil identity.
var ErrInvalidKey = errors.New("map2d: invalid key")
