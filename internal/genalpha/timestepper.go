package genalpha

// defaultMaxIterations is the Newton-Raphson iteration cap used when a
// TimeStepper is constructed without one explicitly, matching the
// bound exercised throughout the reference test suite.
const defaultMaxIterations = 10

// TimeStepper tracks the analysis clock and the Newton-Raphson
// iteration counters across a run: the current time, the total number
// of steps in the run, and both the per-step and cumulative iteration
// counts.
type TimeStepper struct {
	t0            float64
	h             float64
	numSteps      int
	maxIterations int

	currentTime     float64
	iterations      int
	totalIterations int
}

// NewTimeStepper builds a stepper starting at t0 with step size h,
// numSteps steps, and the default maximum Newton-Raphson iteration
// count per step.
func NewTimeStepper(t0, h float64, numSteps int) TimeStepper {
	return NewTimeStepperWithMaxIterations(t0, h, numSteps, defaultMaxIterations)
}

// NewTimeStepperWithMaxIterations builds a stepper with an explicit
// per-step Newton-Raphson iteration cap.
func NewTimeStepperWithMaxIterations(t0, h float64, numSteps, maxIterations int) TimeStepper {
	return TimeStepper{
		t0:            t0,
		h:             h,
		numSteps:      numSteps,
		maxIterations: maxIterations,
		currentTime:   t0,
	}
}

func (t TimeStepper) CurrentTime() float64           { return t.currentTime }
func (t TimeStepper) TimeStep() float64              { return t.h }
func (t TimeStepper) NumberOfSteps() int             { return t.numSteps }
func (t TimeStepper) MaximumNumberOfIterations() int { return t.maxIterations }
func (t TimeStepper) NumberOfIterations() int        { return t.iterations }
func (t TimeStepper) TotalNumberOfIterations() int   { return t.totalIterations }

// AdvanceTimeStep advances the clock by one step of size h.
func (t *TimeStepper) AdvanceTimeStep() {
	t.currentTime += t.h
}

// SetNumberOfIterations resets the per-step Newton-Raphson counter,
// used at the start of each step's corrector loop.
func (t *TimeStepper) SetNumberOfIterations(n int) {
	t.iterations = n
}

// IncrementNumberOfIterations advances the per-step counter by one.
func (t *TimeStepper) IncrementNumberOfIterations() {
	t.iterations++
}

// IncrementTotalNumberOfIterations adds n to the cumulative counter,
// called once at the end of a step with that step's final count.
func (t *TimeStepper) IncrementTotalNumberOfIterations(n int) {
	t.totalIterations += n
}
