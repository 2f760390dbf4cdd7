package genalpha

import (
	"github.com/ddement/openturbine/internal/heavytop"
	"github.com/ddement/openturbine/internal/linalg"
)

// ResidualFunc computes the residual vector at a trial state and
// Lagrange-multiplier vector. Its length must equal
// len(state.V)+len(lambda).
type ResidualFunc func(state heavytop.State, lambda linalg.Vector) (linalg.Vector, error)

// IterationMatrixFunc computes the Newton iteration matrix at a trial
// state and Lagrange-multiplier vector, given the effective Newmark
// constants for the current step. Its extents must be
// (len(state.V)+len(lambda)) x (len(state.V)+len(lambda)).
type IterationMatrixFunc func(state heavytop.State, lambda linalg.Vector, betaPrime, gammaPrime float64) (linalg.Matrix, error)

// IdentityResidual is the problem-agnostic default residual builder:
// a vector of ones sized to match the state and multiplier count. It
// exercises the pure integrator machinery independent of any physics
// model, matching the reference test suite's "no builder supplied"
// scenarios.
func IdentityResidual(state heavytop.State, lambda linalg.Vector) (linalg.Vector, error) {
	size := len(state.A) + len(lambda)
	out := linalg.NewVector(size)
	for i := range out {
		out[i] = 1
	}
	return out, nil
}

// IdentityIterationMatrix is the problem-agnostic default iteration
// matrix builder: the identity matrix sized to match the state and
// multiplier count.
func IdentityIterationMatrix(state heavytop.State, lambda linalg.Vector, betaPrime, gammaPrime float64) (linalg.Matrix, error) {
	size := len(state.V) + len(lambda)
	return linalg.Identity(size), nil
}
