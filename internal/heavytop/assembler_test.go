package heavytop

import (
	"math"
	"testing"

	"github.com/ddement/openturbine/internal/linalg"
)

func uprightState(x0 linalg.Vector) State {
	q := linalg.VectorFrom(x0[0], x0[1], x0[2], 1, 0, 0, 0)
	return State{
		Q:     q,
		V:     linalg.NewVector(6),
		A:     linalg.NewVector(6),
		AAlgo: linalg.NewVector(6),
	}
}

func newTestAssembler(t *testing.T) Assembler {
	t.Helper()
	mass, err := NewIsotropicMassMatrix(1, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	asm, err := NewAssembler(mass, linalg.VectorFrom(0, 0, -1), 9.81)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return asm
}

func TestConstraintPositionZeroWhenAtReference(t *testing.T) {
	asm := newTestAssembler(t)
	state := uprightState(asm.X0)

	phi, err := asm.ConstraintPosition(state)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if phi.Norm() > 1e-12 {
		t.Errorf("Phi = %v, want ~0", phi)
	}
}

func TestConstraintGradientShape(t *testing.T) {
	asm := newTestAssembler(t)
	state := uprightState(asm.X0)

	b, err := asm.ConstraintGradient(state)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.Rows() != 3 || b.Cols() != 6 {
		t.Fatalf("ConstraintGradient shape = %dx%d, want 3x6", b.Rows(), b.Cols())
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			want := 0.0
			if i == j {
				want = -1
			}
			if math.Abs(b.At(i, j)-want) > 1e-12 {
				t.Errorf("B[%d][%d] = %v, want %v", i, j, b.At(i, j), want)
			}
		}
	}
}

func TestTangentDampingZeroAtRest(t *testing.T) {
	asm := newTestAssembler(t)
	state := uprightState(asm.X0)

	ct := asm.TangentDamping(state)
	for i := 0; i < 6; i++ {
		for j := 0; j < 6; j++ {
			if ct.At(i, j) != 0 {
				t.Errorf("Ct[%d][%d] = %v, want 0 at zero angular velocity", i, j, ct.At(i, j))
			}
		}
	}
}

func TestResidualShape(t *testing.T) {
	asm := newTestAssembler(t)
	state := uprightState(asm.X0)

	r, err := asm.Residual(state, linalg.NewVector(3))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(r) != 9 {
		t.Fatalf("len(Residual) = %d, want 9", len(r))
	}
}

func TestResidualAtRestEqualsGravityPlusConstraintForce(t *testing.T) {
	asm := newTestAssembler(t)
	state := uprightState(asm.X0)

	lambda := linalg.VectorFrom(0, 0, -asm.Mass.Mass()*asm.Gravity)
	r, err := asm.Residual(state, lambda)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// With acceleration zero and lambda balancing gravity, the top 3
	// (linear) residual components should vanish.
	for i := 0; i < 3; i++ {
		if math.Abs(r[i]) > 1e-9 {
			t.Errorf("residual[%d] = %v, want ~0", i, r[i])
		}
	}
}

func TestIterationMatrixShapeAndConstraintBlock(t *testing.T) {
	asm := newTestAssembler(t)
	state := uprightState(asm.X0)

	b, err := asm.ConstraintGradient(state)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	j, err := asm.IterationMatrix(state, linalg.NewVector(3), 4, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if j.Rows() != 9 || j.Cols() != 9 {
		t.Fatalf("IterationMatrix shape = %dx%d, want 9x9", j.Rows(), j.Cols())
	}
	for i := 0; i < 3; i++ {
		for k := 0; k < 6; k++ {
			if math.Abs(j.At(6+i, k)-b.At(i, k)) > 1e-12 {
				t.Errorf("J[%d][%d] = %v, want B[%d][%d] = %v", 6+i, k, j.At(6+i, k), i, k, b.At(i, k))
			}
		}
	}
	for i := 6; i < 9; i++ {
		for k := 6; k < 9; k++ {
			if j.At(i, k) != 0 {
				t.Errorf("J[%d][%d] = %v, want 0 in the zero corner", i, k, j.At(i, k))
			}
		}
	}
}

func TestEnergyAtRestIsPurelyPotential(t *testing.T) {
	asm := newTestAssembler(t)
	state := uprightState(asm.X0)

	e, err := asm.Energy(state)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := asm.Mass.Mass() * asm.Gravity * state.Position()[2]
	if math.Abs(e-want) > 1e-12 {
		t.Errorf("Energy() = %v, want %v", e, want)
	}
}
