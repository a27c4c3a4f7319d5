package fractal

import "errors"

var (
	ErrInvalidParameters = errors.New("invalid parameters")
	ErrInvalidField      = errors.New("invalid field")
	ErrInvalidSelection  = errors.New("invalid selection")
	ErrUnknownRegion     = errors.New("unknown region")
	ErrUnknownPalette    = errors.New("unknown palette")
)
