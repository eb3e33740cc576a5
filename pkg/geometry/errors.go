package geometry

import "errors"

var (
	ErrEmptyScene      = errors.New("geometry: scene contains no shapes")
	ErrInvalidSphere   = errors.New("geometry: invalid sphere")
	ErrMissingMaterial = errors.New("geometry: shape has no material")
)
