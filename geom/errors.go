package geom

import "errors"

var (
	// ErrUnknownDirection indicates a rune that does not encode a Direction.
	ErrUnknownDirection = errors.New("geom: unknown direction character")
)
