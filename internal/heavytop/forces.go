package heavytop

import "github.com/ddement/openturbine/internal/linalg"

// GeneralizedForces is a length-6 vector packing a force (first 3
// components) and a moment (last 3 components) applied to the body.
type GeneralizedForces linalg.Vector

// NewGeneralizedForces packs a force and a moment, each in R3, into a
// generalized-forces vector.
func NewGeneralizedForces(force, moment linalg.Vector) (GeneralizedForces, error) {
	if len(force) != 3 || len(moment) != 3 {
		return nil, ErrBadForceShape
	}
	return GeneralizedForces(linalg.Concat(force, moment)), nil
}

// NewGeneralizedForcesFromVector wraps an explicit length-6 vector.
func NewGeneralizedForcesFromVector(v linalg.Vector) (GeneralizedForces, error) {
	if len(v) != 6 {
		return nil, ErrBadForceShape
	}
	return GeneralizedForces(v.Clone()), nil
}

// Vector returns the underlying length-6 vector.
func (g GeneralizedForces) Vector() linalg.Vector {
	return linalg.Vector(g)
}

// Force returns the first 3 components.
func (g GeneralizedForces) Force() linalg.Vector {
	return linalg.Vector(g).Slice(0, 3)
}

// Moment returns the last 3 components.
func (g GeneralizedForces) Moment() linalg.Vector {
	return linalg.Vector(g).Slice(3, 6)
}

// GravityForces builds the generalized forces exerted by uniform
// gravity g acting at the body's center of mass, with no applied
// moment: (0, 0, -mass*g, 0, 0, 0).
func GravityForces(mass, gravity float64) GeneralizedForces {
	return GeneralizedForces(linalg.VectorFrom(0, 0, -mass*gravity, 0, 0, 0))
}
