package heavytop

import "errors"

// Domain errors for heavy-top construction. These are the
// InvalidArgument taxonomy bucket of the wider system: raised at
// construction time and never wrapped in step context.
var (
	ErrNonPositiveMass     = errors.New("heavytop: mass must be positive")
	ErrNonPositiveInertia  = errors.New("heavytop: moment of inertia must be positive")
	ErrBadMatrixShape      = errors.New("heavytop: mass matrix must be 6x6")
	ErrBadForceShape       = errors.New("heavytop: generalized forces vector must have length 6")
	ErrStateLengthMismatch = errors.New("heavytop: state vectors have inconsistent lengths")
)
