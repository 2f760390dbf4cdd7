// Package genalpha implements the generalized-alpha implicit time
// integrator (Brüls, Cardona & Arnold, 2012) for index-3
// differential-algebraic systems of the form M*v' + g(q,v,t) +
// B(q)^T*lambda = 0, Phi(q) = 0.
//
// Integrator drives an arbitrary problem through the
// [ResidualFunc]/[IterationMatrixFunc] function values it is handed at
// call time. It imports internal/heavytop only for the heavytop.State
// type in those signatures, and internal/heavytop does not import
// genalpha, so any assembler whose methods match those signatures -
// heavytop.Assembler.Residual and heavytop.Assembler.IterationMatrix
// included - can drive it directly as method values.
package genalpha
