// Package heavytop assembles the physics of a rigid body suspended
// from a fixed pivot under gravity - a spinning top: the state model
// ([State], [MassMatrix], [GeneralizedForces]) and the residual /
// iteration-matrix builders ([Assembler]) that a
// genalpha.Integrator drives.
//
// Assembler depends on internal/linalg and internal/rotation only; it
// has no knowledge of the integrator that consumes it, matching the
// generic residual/iteration-matrix function-value contract the
// integrator layer expects.
package heavytop
