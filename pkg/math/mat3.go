package math

import "github.com/chewxy/math32"

// Mat3 is a 3x3 matrix in row-major order: m[row][col].
// Vectors are treated as columns, so Apply computes M·v.
type Mat3 [3][3]float32

// Identity3 returns the 3x3 identity matrix.
func Identity3() Mat3 {
	return Mat3{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}
}

// RotateX returns a right-handed rotation about the X axis (radians).
func RotateX(angle float32) Mat3 {
	c, s := math32.Cos(angle), math32.Sin(angle)
	return Mat3{
		{1, 0, 0},
		{0, c, -s},
		{0, s, c},
	}
}

// RotateY returns a right-handed rotation about the Y axis (radians).
func RotateY(angle float32) Mat3 {
	c, s := math32.Cos(angle), math32.Sin(angle)
	return Mat3{
		{c, 0, s},
		{0, 1, 0},
		{-s, 0, c},
	}
}

// Projection returns diag(d, d, 0): x and y scaled by d, depth dropped.
func Projection(d float32) Mat3 {
	return Mat3{
		{d, 0, 0},
		{0, d, 0},
		{0, 0, 0},
	}
}

// Mul returns m * other. The product is not commutative.
func (m Mat3) Mul(other Mat3) Mat3 {
	var result Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			var sum float32
			for k := 0; k < 3; k++ {
				sum += m[i][k] * other[k][j]
			}
			result[i][j] = sum
		}
	}
	return result
}

// Apply returns m·v with v as a column vector.
func (m Mat3) Apply(v Vec3) Vec3 {
	return Vec3{
		X: m[0][0]*v.X + m[0][1]*v.Y + m[0][2]*v.Z,
		Y: m[1][0]*v.X + m[1][1]*v.Y + m[1][2]*v.Z,
		Z: m[2][0]*v.X + m[2][1]*v.Y + m[2][2]*v.Z,
	}
}
