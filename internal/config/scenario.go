package config

import (
	"github.com/ddement/openturbine/internal/genalpha"
	"github.com/ddement/openturbine/internal/heavytop"
	"github.com/ddement/openturbine/internal/linalg"
)

// Scenario is the fully constructed, validated set of objects a run
// needs: the assembler, the integrator, and the initial state.
type Scenario struct {
	Assembler  heavytop.Assembler
	Integrator *genalpha.Integrator
	Initial    heavytop.State
}

// Build validates cfg and constructs the assembler, integrator and
// initial state it describes.
func (c *Config) Build() (Scenario, error) {
	mass, err := heavytop.NewMassMatrix(c.Body.Mass, linalg.VectorFrom(c.Body.Inertia[:]...))
	if err != nil {
		return Scenario{}, err
	}
	asm, err := heavytop.NewAssembler(mass, linalg.VectorFrom(c.Body.Offset[:]...), c.Body.Gravity)
	if err != nil {
		return Scenario{}, err
	}

	params, err := genalpha.NewParams(c.Integrator.AlphaF, c.Integrator.AlphaM, c.Integrator.Beta, c.Integrator.Gamma)
	if err != nil {
		return Scenario{}, err
	}
	stepper := genalpha.NewTimeStepperWithMaxIterations(
		c.TimeStepper.T0, c.TimeStepper.Dt, c.TimeStepper.NumSteps, c.TimeStepper.MaxIterations,
	)
	integ, err := genalpha.New(params, stepper)
	if err != nil {
		return Scenario{}, err
	}
	integ.Precondition = c.Integrator.Precondition

	q := linalg.VectorFrom(
		c.InitialState.Position[0], c.InitialState.Position[1], c.InitialState.Position[2],
		c.InitialState.Orientation[0], c.InitialState.Orientation[1],
		c.InitialState.Orientation[2], c.InitialState.Orientation[3],
	)
	v := linalg.VectorFrom(
		c.InitialState.Linear[0], c.InitialState.Linear[1], c.InitialState.Linear[2],
		c.InitialState.Angular[0], c.InitialState.Angular[1], c.InitialState.Angular[2],
	)
	initial, err := heavytop.NewState(q, v, linalg.NewVector(6), linalg.NewVector(6))
	if err != nil {
		return Scenario{}, err
	}

	return Scenario{Assembler: asm, Integrator: integ, Initial: initial}, nil
}
