// Package linalg provides the dense vector/matrix kernels the higher
// layers of the integrator are built on:
//
//   - [Vector]: fixed-length dense real vector
//   - [Matrix]: fixed-extent dense real matrix, row-major
//   - [Identity], [CrossProductMatrix], [Transpose]: elementary builders
//   - [SolveLinearSystem]: general dense LU solve
//
// Every operation returns a freshly allocated result; none mutate their
// operands. Dimension mismatches are programming errors and panic
// immediately rather than returning an error - only [SolveLinearSystem]
// can fail at runtime, when the system matrix is singular.
package linalg
