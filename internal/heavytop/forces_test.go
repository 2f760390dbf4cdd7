package heavytop

import (
	"errors"
	"testing"

	"github.com/ddement/openturbine/internal/linalg"
)

func TestNewGeneralizedForcesRejectsBadShape(t *testing.T) {
	_, err := NewGeneralizedForces(linalg.VectorFrom(1, 2), linalg.VectorFrom(1, 2, 3))
	if !errors.Is(err, ErrBadForceShape) {
		t.Fatalf("got %v, want ErrBadForceShape", err)
	}
}

func TestNewGeneralizedForcesPacksForceAndMoment(t *testing.T) {
	g, err := NewGeneralizedForces(linalg.VectorFrom(1, 2, 3), linalg.VectorFrom(4, 5, 6))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := g.Force(); got[0] != 1 || got[1] != 2 || got[2] != 3 {
		t.Errorf("Force() = %v", got)
	}
	if got := g.Moment(); got[0] != 4 || got[1] != 5 || got[2] != 6 {
		t.Errorf("Moment() = %v", got)
	}
}

func TestNewGeneralizedForcesFromVectorRejectsBadLength(t *testing.T) {
	_, err := NewGeneralizedForcesFromVector(linalg.NewVector(5))
	if !errors.Is(err, ErrBadForceShape) {
		t.Fatalf("got %v, want ErrBadForceShape", err)
	}
}

func TestGravityForces(t *testing.T) {
	g := GravityForces(2, 9.81)
	want := -2 * 9.81
	if got := g.Force()[2]; got != want {
		t.Errorf("Force().Z = %v, want %v", got, want)
	}
	if m := g.Moment(); m[0] != 0 || m[1] != 0 || m[2] != 0 {
		t.Errorf("Moment() = %v, want zero", m)
	}
}
