package conflict

import "errors"

var (
	// Shape errors

	ErrTooFewVertices   = errors.New("polygon needs at least 3 distinct vertices")
	ErrInvalidVertex    = errors.New("vertex is not a finite number")
	ErrInvalidRadius    = errors.New("circle radius must be a finite, non-negative number")
	ErrDegenerateCircle = errors.New("circle has no area")
	ErrNoShapes         = errors.New("collision information needs at least one shape")
	ErrInvalidTransform = errors.New("transform is not a finite number")

	// Configuration errors

	ErrInvalidConfig = errors.New("invalid configuration")
)
