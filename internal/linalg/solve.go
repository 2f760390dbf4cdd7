package linalg

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// ErrSingularMatrix is returned by SolveLinearSystem when the system
// matrix is (numerically) singular. This is the sole NumericFailure
// propagation point of the linear-algebra layer.
var ErrSingularMatrix = errors.New("linalg: singular matrix in linear solve")

// SolveLinearSystem solves a*x = b for x via dense LU factorization with
// partial pivoting, delegating the factorization itself to gonum's
// LAPACK-equivalent mat.LU. a must be square; b must have a.Rows()
// entries. Neither a nor b is mutated - unlike the classic in-place
// convention this wraps, the solution is returned as a fresh Vector.
func SolveLinearSystem(a Matrix, b Vector) (Vector, error) {
	if a.rows != a.cols {
		dimensionPanic("SolveLinearSystem", a.rows, a.cols)
	}
	if a.rows != len(b) {
		dimensionPanic("SolveLinearSystem", a.rows, len(b))
	}

	ga := mat.NewDense(a.rows, a.cols, append([]float64(nil), a.data...))
	gb := mat.NewVecDense(len(b), append([]float64(nil), b...))

	var lu mat.LU
	lu.Factorize(ga)

	if cond := lu.Cond(); math.IsInf(cond, 1) || math.IsNaN(cond) || cond > 1e14 {
		return nil, fmt.Errorf("%w: condition number %.3e", ErrSingularMatrix, cond)
	}

	var x mat.VecDense
	if err := lu.SolveVecTo(&x, false, gb); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSingularMatrix, err)
	}

	out := make(Vector, x.Len())
	for i := range out {
		out[i] = x.AtVec(i)
	}
	return out, nil
}
