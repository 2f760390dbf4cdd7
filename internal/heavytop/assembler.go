package heavytop

import (
	"github.com/ddement/openturbine/internal/linalg"
	"github.com/ddement/openturbine/internal/rotation"
)

// Assembler builds the residual vector and iteration matrix for a rigid
// body of mass Mass suspended from a fixed pivot, with X0 the constant
// vector from the pivot to the center of mass in the reference
// configuration and Gravity the scalar acceleration acting along -Z.
//
// The generalized coordinates are q = (r, quaternion) with r the
// center-of-mass position in the inertial frame; velocity, acceleration
// and algorithmic-acceleration vectors are (linear, angular) in R6 with
// the angular part expressed in the body frame. The rod's rigidity is
// enforced through 3 Lagrange multipliers constraining r to track the
// rotated reference vector.
type Assembler struct {
	Mass    MassMatrix
	X0      linalg.Vector
	Gravity float64
}

// NewAssembler validates that X0 has length 3 before returning an
// Assembler.
func NewAssembler(mass MassMatrix, x0 linalg.Vector, gravity float64) (Assembler, error) {
	if len(x0) != 3 {
		return Assembler{}, ErrBadForceShape
	}
	return Assembler{Mass: mass, X0: x0.Clone(), Gravity: gravity}, nil
}

// NumConstraints is the count of Lagrange multipliers this assembler
// carries - always 3 for the heavy top's pivot constraint.
func (a Assembler) NumConstraints() int { return 3 }

func rotationMatrixToLinalg(r rotation.RotationMatrix) linalg.Matrix {
	return linalg.MatrixFromRows([][]float64{
		{r.Row0.X, r.Row0.Y, r.Row0.Z},
		{r.Row1.X, r.Row1.Y, r.Row1.Z},
		{r.Row2.X, r.Row2.Y, r.Row2.Z},
	})
}

func (a Assembler) rotationMatrix(state State) (linalg.Matrix, error) {
	comps := state.OrientationComponents()
	q := rotation.NewQuaternion(comps[0], comps[1], comps[2], comps[3])
	r, err := rotation.QuaternionToRotationMatrix(q)
	if err != nil {
		return linalg.Matrix{}, err
	}
	return rotationMatrixToLinalg(r), nil
}

// ConstraintGradient returns the 3x6 matrix B(q) = [-I3 | -R*[X0]x]
// linking virtual translational and rotational displacements to the
// pivot constraint.
func (a Assembler) ConstraintGradient(state State) (linalg.Matrix, error) {
	r, err := a.rotationMatrix(state)
	if err != nil {
		return linalg.Matrix{}, err
	}
	skewX0 := linalg.CrossProductMatrix(a.X0)
	rx := linalg.MulMatMat(r, skewX0)
	negI := linalg.MulScalar(linalg.Identity(3), -1)
	negRX := linalg.MulScalar(rx, -1)
	b := linalg.NewMatrix(3, 6)
	b = b.WithBlock(0, 0, negI)
	b = b.WithBlock(0, 3, negRX)
	return b, nil
}

// ConstraintPosition returns Phi(q) = R*X0 - r, the pivot constraint
// residual (zero when the rod length and pivot are respected).
func (a Assembler) ConstraintPosition(state State) (linalg.Vector, error) {
	r, err := a.rotationMatrix(state)
	if err != nil {
		return nil, err
	}
	rx0 := linalg.MulMatVec(r, a.X0)
	return rx0.Sub(state.Position()), nil
}

// TangentDamping returns the 6x6 matrix C_t whose only nonzero block is
// the lower-right 3x3: [Omega]x*J - [J*Omega]x.
func (a Assembler) TangentDamping(state State) linalg.Matrix {
	omega := state.V.Slice(3, 6)
	j := a.Mass.InertiaMatrix()
	omegaSkew := linalg.CrossProductMatrix(omega)
	first := linalg.MulMatMat(omegaSkew, j)
	jOmega := linalg.MulMatVec(j, omega)
	second := linalg.CrossProductMatrix(jOmega)
	block := linalg.Sub(first, second)
	out := linalg.NewMatrix(6, 6)
	return out.WithBlock(3, 3, block)
}

// TangentStiffness returns the 6x6 matrix K_t whose only nonzero block
// is the lower-right 3x3: [X0]x * [R^T*lambda]x.
func (a Assembler) TangentStiffness(state State, lambda linalg.Vector) (linalg.Matrix, error) {
	r, err := a.rotationMatrix(state)
	if err != nil {
		return linalg.Matrix{}, err
	}
	rtLambda := linalg.MulMatVec(linalg.Transpose(r), lambda)
	block := linalg.MulMatMat(linalg.CrossProductMatrix(a.X0), linalg.CrossProductMatrix(rtLambda))
	out := linalg.NewMatrix(6, 6)
	return out.WithBlock(3, 3, block), nil
}

// GeneralizedGravityForces returns the constant generalized forces
// vector due to gravity acting at the center of mass, with no applied
// moment.
func (a Assembler) GeneralizedGravityForces() GeneralizedForces {
	return GravityForces(a.Mass.Mass(), a.Gravity)
}

// Residual assembles the length-9 residual vector: the 6 equations of
// motion M*v' + g + B^T*lambda, followed by the 3 pivot-constraint
// equations Phi(q) = 0.
func (a Assembler) Residual(state State, lambda linalg.Vector) (linalg.Vector, error) {
	b, err := a.ConstraintGradient(state)
	if err != nil {
		return nil, err
	}
	phi, err := a.ConstraintPosition(state)
	if err != nil {
		return nil, err
	}
	massTerm := linalg.MulMatVec(a.Mass.Dense(), state.A)
	forceTerm := a.GeneralizedGravityForces().Vector()
	constraintTerm := linalg.MulMatVec(linalg.Transpose(b), lambda)

	eom := massTerm.Add(forceTerm).Add(constraintTerm)
	return linalg.Concat(eom, phi), nil
}

// IterationMatrix assembles the 9x9 Newton iteration matrix
//
//	[ M*betaPrime + Ct*gammaPrime + Kt    B^T ]
//	[               B                      0  ]
func (a Assembler) IterationMatrix(state State, lambda linalg.Vector, betaPrime, gammaPrime float64) (linalg.Matrix, error) {
	b, err := a.ConstraintGradient(state)
	if err != nil {
		return linalg.Matrix{}, err
	}
	kt, err := a.TangentStiffness(state, lambda)
	if err != nil {
		return linalg.Matrix{}, err
	}
	ct := a.TangentDamping(state)

	topLeft := linalg.Add(linalg.Add(linalg.MulScalar(a.Mass.Dense(), betaPrime), linalg.MulScalar(ct, gammaPrime)), kt)
	topRight := linalg.Transpose(b)
	bottomLeft := b
	bottomRight := linalg.NewMatrix(3, 3)

	return linalg.BlockMatrix(topLeft, topRight, bottomLeft, bottomRight), nil
}

// Energy returns the body's kinetic plus gravitational potential
// energy at the given state, relative to the pivot.
func (a Assembler) Energy(state State) (float64, error) {
	linear := state.V.Slice(0, 3)
	angular := state.V.Slice(3, 6)
	j := a.Mass.InertiaMatrix()

	kineticLinear := 0.5 * a.Mass.Mass() * linear.Dot(linear)
	kineticAngular := 0.5 * angular.Dot(linalg.MulMatVec(j, angular))

	potential := a.Mass.Mass() * a.Gravity * state.Position()[2]

	return kineticLinear + kineticAngular + potential, nil
}
