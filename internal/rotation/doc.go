// Package rotation implements the vector/quaternion/rotation-matrix
// algebra the configuration-space update relies on:
//
//   - [Vector3]: a 3-component real vector
//   - [Quaternion]: a unit quaternion represents an element of SO(3)
//   - [RotationMatrix]: an orthogonal 3x3 matrix, stored as three rows
//
// Exponential/logarithmic maps ([QuaternionFromRotationVector],
// [RotationVectorFromQuaternion]) connect a rotation vector in R3 to a
// unit quaternion; [RotateVector] and the quaternion<->matrix
// conversions act on that quaternion. Any operation that treats a
// [Quaternion] as a rotation first checks [Quaternion.IsUnit] and
// returns a [DomainError] if it is not.
package rotation
