// Package config loads and saves heavy-top scenario configuration:
// the generalized-alpha algorithmic constants, the time-stepper
// parameters, the body's mass and inertia, its initial generalized
// coordinates and velocity, and gravity.
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultAlphaF   = 0.5
	DefaultAlphaM   = 0.5
	DefaultBeta     = 0.25
	DefaultGamma    = 0.5
	DefaultDt       = 0.01
	DefaultNumSteps = 500
	DefaultMaxIter  = 10
	DefaultMass     = 15.0
	DefaultInertiaX = 0.234375
	DefaultInertiaY = 0.234375
	DefaultInertiaZ = 0.46875
	DefaultOffsetZ  = -1.0
	DefaultGravity  = 9.81
)

// Config is a complete heavy-top scenario: the integrator constants,
// the time-stepper parameters, the body parameters, and the initial
// condition.
type Config struct {
	Integrator   IntegratorConfig   `yaml:"integrator"`
	TimeStepper  TimeStepperConfig  `yaml:"time_stepper"`
	Body         BodyConfig         `yaml:"body"`
	InitialState InitialStateConfig `yaml:"initial_state"`
}

// IntegratorConfig is the generalized-alpha algorithmic constants.
type IntegratorConfig struct {
	AlphaF       float64 `yaml:"alpha_f"`
	AlphaM       float64 `yaml:"alpha_m"`
	Beta         float64 `yaml:"beta"`
	Gamma        float64 `yaml:"gamma"`
	Precondition bool    `yaml:"precondition"`
}

// TimeStepperConfig is the analysis clock: start time, step size,
// number of steps, and Newton-Raphson iteration cap.
type TimeStepperConfig struct {
	T0            float64 `yaml:"t0"`
	Dt            float64 `yaml:"dt"`
	NumSteps      int     `yaml:"num_steps"`
	MaxIterations int     `yaml:"max_iterations"`
}

// BodyConfig is the rigid body's mass, principal moments of inertia,
// the constant offset from the pivot to the center of mass in the
// reference configuration, and the gravitational acceleration acting
// on it.
type BodyConfig struct {
	Mass    float64    `yaml:"mass"`
	Inertia [3]float64 `yaml:"inertia"`
	Offset  [3]float64 `yaml:"offset"`
	Gravity float64    `yaml:"gravity"`
}

// InitialStateConfig is the initial generalized coordinates
// (position, quaternion) and velocity (linear, angular in the body
// frame).
type InitialStateConfig struct {
	Position    [3]float64 `yaml:"position"`
	Orientation [4]float64 `yaml:"orientation"`
	Linear      [3]float64 `yaml:"linear_velocity"`
	Angular     [3]float64 `yaml:"angular_velocity"`
}

// DefaultConfig returns a heavy top released from rest at its
// reference configuration, matching the "sleeping-top" preset.
func DefaultConfig() *Config {
	return &Config{
		Integrator: IntegratorConfig{
			AlphaF: DefaultAlphaF,
			AlphaM: DefaultAlphaM,
			Beta:   DefaultBeta,
			Gamma:  DefaultGamma,
		},
		TimeStepper: TimeStepperConfig{
			Dt:            DefaultDt,
			NumSteps:      DefaultNumSteps,
			MaxIterations: DefaultMaxIter,
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
	}
}

// Load reads a YAML scenario file, applying DefaultConfig() defaults
// for any field the file omits.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes cfg to path as YAML.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
