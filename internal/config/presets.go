package config

// Presets are named heavy-top scenarios, adapted from the teacher's
// per-model preset map: a fast upright spin that stays nearly
// vertical, a slowly nutating top, and a top released from rest that
// falls and precesses.
var Presets = map[string]*Config{
	"upright-spin": {
		Integrator: IntegratorConfig{AlphaF: DefaultAlphaF, AlphaM: DefaultAlphaM, Beta: DefaultBeta, Gamma: DefaultGamma},
		TimeStepper: TimeStepperConfig{
			Dt: 0.01, NumSteps: 1000, MaxIterations: DefaultMaxIter,
		},
		Body: BodyConfig{
			Mass:    DefaultMass,
			Inertia: [3]float64{DefaultInertiaX, DefaultInertiaY, DefaultInertiaZ},
			Offset:  [3]float64{0, 0, DefaultOffsetZ},
			Gravity: DefaultGravity,
		},
		InitialState: InitialStateConfig{
			Position:    [3]float64{0, 0, DefaultOffsetZ},
			Orientation: [4]float64{1, 0, 0, 0},
			Angular:     [3]float64{0, 0, 950},
		},
	},
	"nutating-top": {
		Integrator: IntegratorConfig{AlphaF: DefaultAlphaF, AlphaM: DefaultAlphaM, Beta: DefaultBeta, Gamma: DefaultGamma},
		TimeStepper: TimeStepperConfig{
			Dt: 0.01, NumSteps: 2000, MaxIterations: DefaultMaxIter,
		},
		Body: BodyConfig{
			Mass:    DefaultMass,
			Inertia: [3]float64{DefaultInertiaX, DefaultInertiaY, DefaultInertiaZ},
			Offset:  [3]float64{0, 0, DefaultOffsetZ},
			Gravity: DefaultGravity,
		},
		InitialState: InitialStateConfig{
			Position:    [3]float64{0, 0, DefaultOffsetZ},
			Orientation: [4]float64{1, 0, 0, 0},
			Angular:     [3]float64{0.5, 0, 150},
		},
	},
	"sleeping-top": {
		Integrator: IntegratorConfig{AlphaF: DefaultAlphaF, AlphaM: DefaultAlphaM, Beta: DefaultBeta, Gamma: DefaultGamma},
		TimeStepper: TimeStepperConfig{
			Dt: 0.01, NumSteps: 500, MaxIterations: DefaultMaxIter,
		},
		Body: BodyConfig{
			Mass:    DefaultMass,
			Inertia: [3]float64{DefaultInertiaX, DefaultInertiaY, DefaultInertiaZ},
			Offset:  [3]float64{0, 0, DefaultOffsetZ},
			Gravity: DefaultGravity,
		},
		InitialState: InitialStateConfig{
			Position:    [3]float64{0, 0, DefaultOffsetZ},
			Orientation: [4]float64{1, 0, 0, 0},
		},
	},
}

// GetPreset returns the named preset, or nil if it doesn't exist.
func GetPreset(name string) *Config {
	return Presets[name]
}

// ListPresets returns every preset's name.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
