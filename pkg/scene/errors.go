package scene

import "errors"

var (
	ErrUnknownScene    = errors.New("scene: unknown scene")
	ErrUnknownMaterial = errors.New("scene: unknown material")
	ErrInvalidScene    = errors.New("scene: invalid scene file")
)
