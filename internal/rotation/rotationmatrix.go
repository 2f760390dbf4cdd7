package rotation

import "math"

// RotationMatrix is an orthogonal 3x3 matrix stored as three row
// vectors.
type RotationMatrix struct {
	Row0, Row1, Row2 Vector3
}

// MulVector returns m * v (row-by-vector product).
func (m RotationMatrix) MulVector(v Vector3) Vector3 {
	return Vector3{
		X: m.Row0.Dot(v),
		Y: m.Row1.Dot(v),
		Z: m.Row2.Dot(v),
	}
}

// Transpose returns the transpose of m.
func (m RotationMatrix) Transpose() RotationMatrix {
	return RotationMatrix{
		Row0: Vector3{m.Row0.X, m.Row1.X, m.Row2.X},
		Row1: Vector3{m.Row0.Y, m.Row1.Y, m.Row2.Y},
		Row2: Vector3{m.Row0.Z, m.Row1.Z, m.Row2.Z},
	}
}

// QuaternionToRotationMatrix returns the rotation matrix represented by
// q. It returns a *DomainError if q is not a unit quaternion.
func QuaternionToRotationMatrix(q Quaternion) (RotationMatrix, error) {
	if !q.IsUnit() {
		return RotationMatrix{}, &DomainError{
			Op:  "QuaternionToRotationMatrix",
			Msg: "must be a unit quaternion to convert to a rotation matrix",
		}
	}
	q0, q1, q2, q3 := q.Q0, q.Q1, q.Q2, q.Q3

	return RotationMatrix{
		Row0: Vector3{
			q0*q0 + q1*q1 - q2*q2 - q3*q3,
			2 * (q1*q2 - q0*q3),
			2 * (q1*q3 + q0*q2),
		},
		Row1: Vector3{
			2 * (q1*q2 + q0*q3),
			q0*q0 - q1*q1 + q2*q2 - q3*q3,
			2 * (q2*q3 - q0*q1),
		},
		Row2: Vector3{
			2 * (q1*q3 - q0*q2),
			2 * (q2*q3 + q0*q1),
			q0*q0 - q1*q1 - q2*q2 + q3*q3,
		},
	}, nil
}

// RotationMatrixToQuaternion recovers the unit quaternion represented
// by r, selecting the numerically stable branch keyed by the trace and
// the largest diagonal entry. When the trace branch is used, q0 >= 0;
// otherwise the returned sign is arbitrary (q and -q denote the same
// rotation).
func RotationMatrixToQuaternion(r RotationMatrix) Quaternion {
	m00, m01, m02 := r.Row0.X, r.Row0.Y, r.Row0.Z
	m10, m11, m12 := r.Row1.X, r.Row1.Y, r.Row1.Z
	m20, m21, m22 := r.Row2.X, r.Row2.Y, r.Row2.Z

	trace := m00 + m11 + m22

	switch {
	case trace > 0:
		s := 0.5 / math.Sqrt(trace+1)
		return Quaternion{
			Q0: 0.25 / s,
			Q1: (m21 - m12) * s,
			Q2: (m02 - m20) * s,
			Q3: (m10 - m01) * s,
		}
	case m00 > m11 && m00 > m22:
		s := 2 * math.Sqrt(1+m00-m11-m22)
		return Quaternion{
			Q0: (m21 - m12) / s,
			Q1: 0.25 * s,
			Q2: (m01 + m10) / s,
			Q3: (m02 + m20) / s,
		}
	case m11 > m22:
		s := 2 * math.Sqrt(1+m11-m00-m22)
		return Quaternion{
			Q0: (m02 - m20) / s,
			Q1: (m01 + m10) / s,
			Q2: 0.25 * s,
			Q3: (m12 + m21) / s,
		}
	default:
		s := 2 * math.Sqrt(1+m22-m00-m11)
		return Quaternion{
			Q0: (m10 - m01) / s,
			Q1: (m02 + m20) / s,
			Q2: (m12 + m21) / s,
			Q3: 0.25 * s,
		}
	}
}
