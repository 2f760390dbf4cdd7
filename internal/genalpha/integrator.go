package genalpha

import (
	"github.com/ddement/openturbine/internal/dynlog"
	"github.com/ddement/openturbine/internal/heavytop"
	"github.com/ddement/openturbine/internal/linalg"
)

// ConvergenceTolerance is the L2 residual norm below which a
// Newton-Raphson corrector step is considered converged.
const ConvergenceTolerance = 1e-4

// Kind identifies the time-integration scheme, exposed purely as
// self-describing metadata.
type Kind int

const GeneralizedAlpha Kind = iota

func (Kind) String() string { return "generalized-alpha" }

// Problem identifies the physical problem class a solver instance was
// built for, exposed purely as self-describing metadata.
type Problem int

const RigidBody Problem = iota

func (Problem) String() string { return "rigid-body" }

// Integrator drives the generalized-alpha predictor/Newton-corrector
// loop described in Bruls, Cardona & Arnold (2012) over an arbitrary
// residual/iteration-matrix pair. It uses nothing from internal/heavytop
// beyond the State value type the residual and iteration-matrix
// functions operate on.
type Integrator struct {
	Params       Params
	Stepper      TimeStepper
	Precondition bool

	converged bool
}

// New validates params and returns an Integrator with the default
// (non-preconditioned) solve mode.
func New(params Params, stepper TimeStepper) (*Integrator, error) {
	if _, err := NewParams(params.AlphaF, params.AlphaM, params.Beta, params.Gamma); err != nil {
		return nil, err
	}
	return &Integrator{Params: params, Stepper: stepper}, nil
}

// NewDefault builds an Integrator with DefaultParams().
func NewDefault(stepper TimeStepper) *Integrator {
	return &Integrator{Params: DefaultParams(), Stepper: stepper}
}

// Kind reports the time-integration scheme.
func (Integrator) Kind() Kind { return GeneralizedAlpha }

// Problem reports the physical problem class.
func (Integrator) Problem() Problem { return RigidBody }

// Converged reports whether the most recent AlphaStep's Newton
// corrector converged before exhausting the iteration cap.
func (integ *Integrator) Converged() bool { return integ.converged }

// Integrate advances initial through Stepper.NumberOfSteps() alpha
// steps, returning the full state history starting with initial. A
// nil residual or iterationMatrix falls back to IdentityResidual /
// IdentityIterationMatrix, letting the pure integration machinery run
// independent of any physics model.
func (integ *Integrator) Integrate(
	initial heavytop.State,
	lagrangeMults linalg.Vector,
	residual ResidualFunc,
	iterationMatrix IterationMatrixFunc,
) ([]heavytop.State, error) {
	if residual == nil {
		residual = IdentityResidual
	}
	if iterationMatrix == nil {
		iterationMatrix = IdentityIterationMatrix
	}

	states := make([]heavytop.State, 1, integ.Stepper.NumberOfSteps()+1)
	states[0] = initial
	lambda := lagrangeMults.Clone()

	for i := 0; i < integ.Stepper.NumberOfSteps(); i++ {
		integ.Stepper.AdvanceTimeStep()
		dynlog.Info("integrating step", "step", i+1)

		next, nextLambda, err := integ.AlphaStep(states[i], lambda, residual, iterationMatrix)
		if err != nil {
			return nil, &StepError{Step: i + 1, Time: integ.Stepper.CurrentTime(), Wrapped: err}
		}
		states = append(states, next)
		lambda = nextLambda
	}

	dynlog.Info("time integration has completed")
	return states, nil
}

// AlphaStep advances state by one time step, returning the updated
// state and Lagrange multipliers. It implements the predictor of
// Table 1 (Bruls, Cardona & Arnold 2012) followed by a
// Newton-Raphson corrector against residual/iterationMatrix.
func (integ *Integrator) AlphaStep(
	state heavytop.State,
	lambda linalg.Vector,
	residual ResidualFunc,
	iterationMatrix IterationMatrixFunc,
) (heavytop.State, linalg.Vector, error) {
	p := integ.Params
	h := integ.Stepper.TimeStep()
	size := len(state.V)
	nConstraints := len(lambda)

	genCoords := state.Q.Clone()
	velocity := state.V.Clone()
	acceleration := state.A.Clone()
	algoAcceleration := state.AAlgo.Clone()

	algoAccelerationNext := make(linalg.Vector, size)
	deltaGenCoords := make(linalg.Vector, size)

	// Predictor - Table 1, Bruls, Cardona and Arnold 2012.
	for i := 0; i < size; i++ {
		algoAccelerationNext[i] = (p.AlphaF*acceleration[i] - p.AlphaM*algoAcceleration[i]) / (1 - p.AlphaM)
		deltaGenCoords[i] = velocity[i] + h*(0.5-p.Beta)*algoAcceleration[i] + h*p.Beta*algoAccelerationNext[i]
		velocity[i] += h*(1-p.Gamma)*algoAcceleration[i] + h*p.Gamma*algoAccelerationNext[i]
		algoAcceleration[i] = algoAccelerationNext[i]
		acceleration[i] = 0
	}

	lambdaNext := make(linalg.Vector, nConstraints)

	betaPrime := p.BetaPrime(h)
	gammaPrime := p.GammaPrime(h)

	dl, dr := integ.preconditioners(size, nConstraints, h)

	maxIterations := integ.Stepper.MaximumNumberOfIterations()
	integ.converged = false
	integ.Stepper.SetNumberOfIterations(0)

	var genCoordsNext linalg.Vector
	for ; integ.Stepper.NumberOfIterations() < maxIterations; integ.Stepper.IncrementNumberOfIterations() {
		next, err := UpdateGeneralizedCoordinates(genCoords, deltaGenCoords, h)
		if err != nil {
			return heavytop.State{}, nil, err
		}
		genCoordsNext = next

		trial, err := heavytop.NewState(genCoordsNext, velocity, acceleration, algoAccelerationNext)
		if err != nil {
			return heavytop.State{}, nil, err
		}

		residuals, err := residual(trial, lambdaNext)
		if err != nil {
			return heavytop.State{}, nil, err
		}

		if integ.checkConvergence(residuals) {
			integ.converged = true
			break
		}

		iterMat, err := iterationMatrix(trial, lambdaNext, betaPrime, gammaPrime)
		if err != nil {
			return heavytop.State{}, nil, err
		}

		if integ.Precondition {
			iterMat = linalg.MulMatMat(iterMat, dr)
			iterMat = linalg.MulMatMat(dl, iterMat)
			for i := 0; i < size; i++ {
				residuals[i] *= p.Beta * h * h
			}
		}

		solnIncrements, err := linalg.SolveLinearSystem(iterMat, residuals)
		if err != nil {
			return heavytop.State{}, nil, err
		}

		deltaX := make(linalg.Vector, size)
		for i := 0; i < size; i++ {
			deltaX[i] = -solnIncrements[i]
		}

		for i := 0; i < nConstraints; i++ {
			v := -solnIncrements[size+i]
			if integ.Precondition {
				v /= p.Beta * h * h
			}
			lambdaNext[i] += v
		}

		for i := 0; i < size; i++ {
			deltaGenCoords[i] += deltaX[i] / h
			velocity[i] += gammaPrime * deltaX[i]
			acceleration[i] += betaPrime * deltaX[i]
		}
	}

	nIterations := integ.Stepper.NumberOfIterations()
	integ.Stepper.IncrementTotalNumberOfIterations(nIterations)

	for i := 0; i < size; i++ {
		algoAccelerationNext[i] += (1 - p.AlphaF) / (1 - p.AlphaM) * acceleration[i]
	}

	if integ.converged {
		dynlog.Info("Newton-Raphson iterations converged", "iterations", nIterations+1)
	} else {
		dynlog.Warning("Newton-Raphson iterations failed to converge", "iterations", nIterations+1)
	}

	next, err := heavytop.NewState(genCoordsNext, velocity, acceleration, algoAccelerationNext)
	if err != nil {
		return heavytop.State{}, nil, err
	}
	return next, lambdaNext, nil
}

// preconditioners builds the Bottasso et al. (2008) diagonal
// preconditioning matrices DL, DR for a (size+nConstraints) square
// system, or two identity matrices when preconditioning is disabled.
// The scaling applies to every one of the size velocity rows, not a
// literal constant - the original implementation hard-coded this loop
// to 6 (the rigid-body case), which silently breaks any problem whose
// velocity vector isn't exactly length 6.
func (integ *Integrator) preconditioners(size, nConstraints int, h float64) (dl, dr linalg.Matrix) {
	n := size + nConstraints
	dl = linalg.Identity(n)
	dr = linalg.Identity(n)
	if !integ.Precondition {
		return dl, dr
	}

	beta := integ.Params.Beta
	dl = linalg.NewMatrix(n, n)
	dr = linalg.NewMatrix(n, n)
	for i := 0; i < n; i++ {
		if i >= size {
			dl.Set(i, i, 1)
			dr.Set(i, i, 1/(beta*h*h))
		} else {
			dl.Set(i, i, beta*h*h)
			dr.Set(i, i, 1)
		}
	}
	return dl, dr
}

// checkConvergence reports whether the L2 norm of residual is below
// ConvergenceTolerance.
func (integ *Integrator) checkConvergence(residual linalg.Vector) bool {
	norm := residual.Norm()
	dynlog.Debug("residual norm", "value", norm)
	return norm < ConvergenceTolerance
}

// CheckConvergence reports whether the L2 norm of residual is below
// ConvergenceTolerance. Exported for direct use by callers assembling
// their own corrector loop.
func (integ *Integrator) CheckConvergence(residual linalg.Vector) bool {
	return integ.checkConvergence(residual)
}
