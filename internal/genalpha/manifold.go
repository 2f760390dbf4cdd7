package genalpha

import (
	"github.com/ddement/openturbine/internal/linalg"
	"github.com/ddement/openturbine/internal/rotation"
)

// UpdateGeneralizedCoordinates advances genCoords by h along
// deltaGenCoords. When genCoords has length 7 and deltaGenCoords has
// length 6 - the rigid-body case - the first 3 components update as a
// plain R3 translation and the last 4 update as an SO(3) rotation via
// quaternion composition with the exponential map of the scaled
// rotation-vector increment. Otherwise genCoords and deltaGenCoords
// must share a length and the update is the plain linear
// genCoords + h*deltaGenCoords.
func UpdateGeneralizedCoordinates(genCoords, deltaGenCoords linalg.Vector, h float64) (linalg.Vector, error) {
	if len(genCoords) == 7 && len(deltaGenCoords) == 6 {
		position := genCoords.Slice(0, 3)
		deltaPosition := deltaGenCoords.Slice(0, 3)
		r := position.Add(deltaPosition.Scale(h))

		currentOrientation := rotation.NewQuaternion(genCoords[3], genCoords[4], genCoords[5], genCoords[6])
		deltaRotationVector := rotation.NewVector3(
			deltaGenCoords[3]*h, deltaGenCoords[4]*h, deltaGenCoords[5]*h,
		)
		updateOrientation := rotation.QuaternionFromRotationVector(deltaRotationVector)
		q := currentOrientation.Mul(updateOrientation)

		return linalg.VectorFrom(r[0], r[1], r[2], q.Q0, q.Q1, q.Q2, q.Q3), nil
	}

	if len(genCoords) != len(deltaGenCoords) {
		return nil, ErrCoordinateVelocityMismatch
	}
	out := make(linalg.Vector, len(genCoords))
	for i := range genCoords {
		out[i] = genCoords[i] + h*deltaGenCoords[i]
	}
	return out, nil
}
