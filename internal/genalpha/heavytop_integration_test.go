package genalpha

import (
	"testing"

	"github.com/ddement/openturbine/internal/heavytop"
	"github.com/ddement/openturbine/internal/linalg"
)

// TestIntegrateDrivesHeavyTopAssembler exercises heavytop.Assembler's
// Residual/IterationMatrix methods as plain ResidualFunc/
// IterationMatrixFunc values, with no import of genalpha from
// internal/heavytop.
func TestIntegrateDrivesHeavyTopAssembler(t *testing.T) {
	mass, err := heavytop.NewIsotropicMassMatrix(1, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	asm, err := heavytop.NewAssembler(mass, linalg.VectorFrom(0, 0, -1), 9.81)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// A top released at its reference configuration with no linear
	// velocity and an initial spin about its own symmetry axis.
	initial := heavytop.State{
		Q:     linalg.VectorFrom(0, 0, -1, 1, 0, 0, 0),
		V:     linalg.VectorFrom(0, 0, 0, 0, 0, 5),
		A:     linalg.NewVector(6),
		AAlgo: linalg.NewVector(6),
	}

	integ, err := New(DefaultParams(), NewTimeStepperWithMaxIterations(0, 0.01, 5, 15))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	history, err := integ.Integrate(initial, linalg.NewVector(3), asm.Residual, asm.IterationMatrix)
	if err != nil {
		t.Fatalf("Integrate returned error: %v", err)
	}
	if len(history) != 6 {
		t.Fatalf("len(history) = %d, want 6", len(history))
	}

	for i, s := range history {
		if len(s.Q) != 7 || len(s.V) != 6 {
			t.Fatalf("history[%d] has unexpected shape: len(Q)=%d len(V)=%d", i, len(s.Q), len(s.V))
		}
	}
}
