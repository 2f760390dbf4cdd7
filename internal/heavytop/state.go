package heavytop

import "github.com/ddement/openturbine/internal/linalg"

// State is the generalized-alpha state carried between time steps: the
// generalized coordinates q, velocity v, acceleration a, and
// algorithmic acceleration aAlgo. For the rigid-body problem q has
// length 7 (3 position + 4 quaternion components) while v, a, aAlgo
// have length 6 (3 linear + 3 angular).
type State struct {
	Q     linalg.Vector
	V     linalg.Vector
	A     linalg.Vector
	AAlgo linalg.Vector
}

// NewState builds a State from four vectors, failing if v, a and aAlgo
// don't all share the same length.
func NewState(q, v, a, aAlgo linalg.Vector) (State, error) {
	if len(v) != len(a) || len(v) != len(aAlgo) {
		return State{}, ErrStateLengthMismatch
	}
	return State{Q: q, V: v, A: a, AAlgo: aAlgo}, nil
}

// ZeroRigidBodyState returns the state at the origin with identity
// orientation and zero velocity/acceleration - q = (0,0,0, 1,0,0,0),
// v = a = aAlgo = 0 in R6.
func ZeroRigidBodyState() State {
	q := linalg.NewVector(7)
	q[3] = 1 // identity quaternion scalar part
	return State{
		Q:     q,
		V:     linalg.NewVector(6),
		A:     linalg.NewVector(6),
		AAlgo: linalg.NewVector(6),
	}
}

// ZeroState returns an all-zero state of the given generalized
// coordinate and velocity dimensions - used by the pure linear-update
// test scenarios that don't carry a quaternion block.
func ZeroState(qDim, vDim int) State {
	return State{
		Q:     linalg.NewVector(qDim),
		V:     linalg.NewVector(vDim),
		A:     linalg.NewVector(vDim),
		AAlgo: linalg.NewVector(vDim),
	}
}

// Clone returns a deep copy of s.
func (s State) Clone() State {
	return State{
		Q:     s.Q.Clone(),
		V:     s.V.Clone(),
		A:     s.A.Clone(),
		AAlgo: s.AAlgo.Clone(),
	}
}

// Position returns the first 3 components of q (the body's position
// relative to the pivot).
func (s State) Position() linalg.Vector {
	return s.Q.Slice(0, 3)
}

// OrientationComponents returns components 3-6 of q, the embedded
// quaternion (q0, q1, q2, q3).
func (s State) OrientationComponents() linalg.Vector {
	return s.Q.Slice(3, 7)
}
