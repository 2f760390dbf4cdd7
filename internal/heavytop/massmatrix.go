package heavytop

import "github.com/ddement/openturbine/internal/linalg"

// MassMatrix is the 6x6 symmetric positive-definite mass matrix of the
// rigid body, typically block-diagonal diag(m*I3, J).
type MassMatrix struct {
	mat     linalg.Matrix
	mass    float64
	inertia linalg.Vector // principal moments (Jx, Jy, Jz)
}

// NewMassMatrix builds a block-diagonal mass matrix from a scalar mass
// and a principal-inertia vector (Jx, Jy, Jz). It fails if mass or any
// inertia component is not strictly positive.
func NewMassMatrix(mass float64, inertia linalg.Vector) (MassMatrix, error) {
	if mass <= 0 {
		return MassMatrix{}, ErrNonPositiveMass
	}
	for _, j := range inertia {
		if j <= 0 {
			return MassMatrix{}, ErrNonPositiveInertia
		}
	}
	m := linalg.NewMatrix(6, 6)
	m.Set(0, 0, mass)
	m.Set(1, 1, mass)
	m.Set(2, 2, mass)
	m.Set(3, 3, inertia[0])
	m.Set(4, 4, inertia[1])
	m.Set(5, 5, inertia[2])
	return MassMatrix{mat: m, mass: mass, inertia: inertia.Clone()}, nil
}

// NewIsotropicMassMatrix builds a block-diagonal mass matrix from a
// scalar mass and a single scalar moment of inertia applied uniformly
// to all three principal axes.
func NewIsotropicMassMatrix(mass, momentOfInertia float64) (MassMatrix, error) {
	return NewMassMatrix(mass, linalg.VectorFrom(momentOfInertia, momentOfInertia, momentOfInertia))
}

// NewMassMatrixFromDense wraps an explicit 6x6 matrix, failing if its
// extents are not 6x6.
func NewMassMatrixFromDense(m linalg.Matrix) (MassMatrix, error) {
	if m.Rows() != 6 || m.Cols() != 6 {
		return MassMatrix{}, ErrBadMatrixShape
	}
	return MassMatrix{
		mat:     m.Clone(),
		mass:    m.At(0, 0),
		inertia: linalg.VectorFrom(m.At(3, 3), m.At(4, 4), m.At(5, 5)),
	}, nil
}

// Dense returns the underlying 6x6 matrix.
func (m MassMatrix) Dense() linalg.Matrix {
	return m.mat
}

// Mass returns the scalar mass.
func (m MassMatrix) Mass() float64 {
	return m.mass
}

// Inertia returns the principal moments of inertia (Jx, Jy, Jz).
func (m MassMatrix) Inertia() linalg.Vector {
	return m.inertia.Clone()
}

// InertiaMatrix returns the 3x3 rotational (lower-right) block, J.
func (m MassMatrix) InertiaMatrix() linalg.Matrix {
	return linalg.MatrixFromRows([][]float64{
		{m.inertia[0], 0, 0},
		{0, m.inertia[1], 0},
		{0, 0, m.inertia[2]},
	})
}
