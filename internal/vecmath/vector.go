package vecmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

type (
	Vector3D = mgl64.Vec3
	Vector2D = mgl64.Vec2
)

// Basis vectors.
var (
	Ex = Vector3D{1, 0, 0}
	Ey = Vector3D{0, 1, 0}
	Ez = Vector3D{0, 0, 1}
)

func Inner3(a, b Vector3D) float64 { return a.Dot(b) }
func Inner2(a, b Vector2D) float64 { return a.Dot(b) }
func Cross(a, b Vector3D) Vector3D { return a.Cross(b) }

// Normalize divides v by its Euclidean norm. The zero vector yields NaN
// components; callers guarantee a non-zero magnitude.
func Normalize(v Vector3D) Vector3D {
	inv := 1 / math.Sqrt(v.Dot(v))
	return v.Mul(inv)
}

// RotationMatrix builds R = cos(t) I + sin(t) [n]x + (1-cos(t)) n n^T for the
// normalized axis n.
func RotationMatrix(axis Vector3D, angle float64) mgl64.Mat3 {
	n := Normalize(axis)
	c, s := math.Cos(angle), math.Sin(angle)
	skew := mgl64.Mat3FromRows(
		Vector3D{0, -n[2], n[1]},
		Vector3D{n[2], 0, -n[0]},
		Vector3D{-n[1], n[0], 0},
	)
	return mgl64.Ident3().Mul(c).
		Add(skew.Mul(s)).
		Add(n.OuterProd3(n).Mul(1 - c))
}

// Rotate rotates v by angle radians about axis. The axis need not be unit
// length.
func Rotate(axis Vector3D, angle float64, v Vector3D) Vector3D {
	return RotationMatrix(axis, angle).Mul3x1(v)
}

func DegToRad(deg float64) float64 { return mgl64.DegToRad(deg) }

// IsFinite reports whether every component of v is a finite number.
func IsFinite(v Vector3D) bool {
	for _, c := range v {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}
