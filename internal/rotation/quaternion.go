package rotation

import "math"

// Quaternion is a four-component quaternion, (q0; q1,q2,q3) with q0
// the scalar part. It is immutable by convention.
type Quaternion struct {
	Q0, Q1, Q2, Q3 float64
}

// Identity is the identity quaternion, representing zero rotation.
var Identity = Quaternion{Q0: 1}

// NewQuaternion builds a Quaternion from its four components.
func NewQuaternion(q0, q1, q2, q3 float64) Quaternion {
	return Quaternion{q0, q1, q2, q3}
}

// FromScalarVector builds a Quaternion from a scalar part and a vector
// part.
func FromScalarVector(scalar float64, v Vector3) Quaternion {
	return Quaternion{scalar, v.X, v.Y, v.Z}
}

// At returns the quaternion component at index i (0 is the scalar
// part), returning an *IndexOutOfRangeError for i outside [0,3].
func (q Quaternion) At(i int) (float64, error) {
	switch i {
	case 0:
		return q.Q0, nil
	case 1:
		return q.Q1, nil
	case 2:
		return q.Q2, nil
	case 3:
		return q.Q3, nil
	default:
		return 0, &IndexOutOfRangeError{Index: i}
	}
}

// VectorPart returns the (q1,q2,q3) vector part.
func (q Quaternion) VectorPart() Vector3 {
	return Vector3{q.Q1, q.Q2, q.Q3}
}

func (q Quaternion) Length() float64 {
	return math.Sqrt(q.Q0*q.Q0 + q.Q1*q.Q1 + q.Q2*q.Q2 + q.Q3*q.Q3)
}

// IsUnit reports whether q has unit length to within Epsilon.
func (q Quaternion) IsUnit() bool {
	return CloseTo(q.Length(), 1)
}

// Normalize returns q scaled to unit length. It returns a *DomainError
// if q has (numerically) zero length.
func (q Quaternion) Normalize() (Quaternion, error) {
	l := q.Length()
	if CloseTo(l, 0) {
		return Quaternion{}, &DomainError{Op: "Normalize", Msg: "quaternion length is zero, cannot normalize"}
	}
	if CloseTo(l, 1) {
		return q, nil
	}
	return q.Div(l), nil
}

// Conjugate returns (q0, -q1, -q2, -q3).
func (q Quaternion) Conjugate() Quaternion {
	return Quaternion{q.Q0, -q.Q1, -q.Q2, -q.Q3}
}

// Inverse returns the multiplicative inverse, conjugate / length^2.
func (q Quaternion) Inverse() Quaternion {
	l2 := q.Q0*q.Q0 + q.Q1*q.Q1 + q.Q2*q.Q2 + q.Q3*q.Q3
	return q.Conjugate().Div(l2)
}

func (q Quaternion) Add(o Quaternion) Quaternion {
	return Quaternion{q.Q0 + o.Q0, q.Q1 + o.Q1, q.Q2 + o.Q2, q.Q3 + o.Q3}
}

func (q Quaternion) Sub(o Quaternion) Quaternion {
	return Quaternion{q.Q0 - o.Q0, q.Q1 - o.Q1, q.Q2 - o.Q2, q.Q3 - o.Q3}
}

func (q Quaternion) Scale(s float64) Quaternion {
	return Quaternion{q.Q0 * s, q.Q1 * s, q.Q2 * s, q.Q3 * s}
}

func (q Quaternion) Div(s float64) Quaternion {
	return Quaternion{q.Q0 / s, q.Q1 / s, q.Q2 / s, q.Q3 / s}
}

// Mul returns the Hamilton product q * o.
func (q Quaternion) Mul(o Quaternion) Quaternion {
	return Quaternion{
		Q0: q.Q0*o.Q0 - q.Q1*o.Q1 - q.Q2*o.Q2 - q.Q3*o.Q3,
		Q1: q.Q0*o.Q1 + q.Q1*o.Q0 + q.Q2*o.Q3 - q.Q3*o.Q2,
		Q2: q.Q0*o.Q2 - q.Q1*o.Q3 + q.Q2*o.Q0 + q.Q3*o.Q1,
		Q3: q.Q0*o.Q3 + q.Q1*o.Q2 - q.Q2*o.Q1 + q.Q3*o.Q0,
	}
}

// QuaternionFromRotationVector returns the unit quaternion corresponding
// to the exponential map of the rotation vector omega: with
// theta = |omega|, (1,0,0,0) when theta is null, else
// (cos(theta/2), sin(theta/2)/theta * omega).
func QuaternionFromRotationVector(omega Vector3) Quaternion {
	theta := omega.Length()
	if CloseTo(theta, 0) {
		return Identity
	}
	sin, cos := math.Sincos(theta / 2)
	factor := sin / theta
	return FromScalarVector(cos, omega.Scale(factor))
}

// RotationVectorFromQuaternion returns the logarithmic map of q: with
// s = |q.VectorPart()|, the null vector when s is null, else
// k * (q1,q2,q3) with k = 2*atan2(s, q0)/s.
func RotationVectorFromQuaternion(q Quaternion) Vector3 {
	v := q.VectorPart()
	s := v.Length()
	if CloseTo(s, 0) {
		return Vector3{}
	}
	k := 2 * math.Atan2(s, q.Q0) / s
	return v.Scale(k)
}

// QuaternionFromAngleAxis returns (cos(theta/2), sin(theta/2)*axis).
// axis is assumed to already be a unit vector.
func QuaternionFromAngleAxis(theta float64, axis Vector3) Quaternion {
	sin, cos := math.Sincos(theta / 2)
	return FromScalarVector(cos, axis.Scale(sin))
}

// AngleAxisFromQuaternion returns the (angle, axis) pair represented by
// q, with angle wrapped to (-pi, pi]. Returns (0, (1,0,0)) when q
// represents the null rotation.
func AngleAxisFromQuaternion(q Quaternion) (float64, Vector3) {
	v := q.VectorPart()
	s := v.Length()
	theta := 2 * math.Atan2(s, q.Q0)

	if CloseTo(theta, 0) {
		return 0, Vector3{X: 1}
	}

	theta = WrapAngleToPi(theta)
	axis := v.Div(s).Unit()
	return theta, axis
}

// RotateVector rotates v by the rotation q represents, using the
// closed-form formula
//
//	v' = (q0^2 - |qv|^2) v + 2 q0 (qv x v) + 2 qv (qv . v)
//
// It returns a *DomainError if q is not a unit quaternion.
func RotateVector(q Quaternion, v Vector3) (Vector3, error) {
	if !q.IsUnit() {
		return Vector3{}, &DomainError{Op: "RotateVector", Msg: "must be a unit quaternion to rotate a vector"}
	}
	qv := q.VectorPart()
	qvNormSq := qv.Dot(qv)

	term1 := v.Scale(q.Q0*q.Q0 - qvNormSq)
	term2 := qv.Cross(v).Scale(2 * q.Q0)
	term3 := qv.Scale(2 * qv.Dot(v))

	return term1.Add(term2).Add(term3), nil
}
