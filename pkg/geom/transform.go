package geom

import "math"

// Transform is a 2D affine transformation, the top two rows of the 3x3
// homogeneous matrix in row-major order:
//
//	| A  B  C |
//	| D  E  F |
//	| 0  0  1 |
//
// Applying it to a point computes:
//
//	x' = A*x + B*y + C
//	y' = D*x + E*y + F
//
// Transform is an immutable value type; all methods return new values.
type Transform struct {
	A, B, C float64
	D, E, F float64
}

// Identity returns the identity transform, the neutral element of Compose.
func Identity() Transform {
	return Transform{
		A: 1, B: 0, C: 0,
		D: 0, E: 1, F: 0,
	}
}

// Rotation returns a rotation by theta radians about the origin.
func Rotation(theta float64) Transform {
	cos := math.Cos(theta)
	sin := math.Sin(theta)
	return Transform{
		A: cos, B: -sin, C: 0,
		D: sin, E: cos, F: 0,
	}
}

// Translation returns a pure offset by the vector v.
func Translation(v Point) Transform {
	return Transform{
		A: 1, B: 0, C: v.X,
		D: 0, E: 1, F: v.Y,
	}
}

// Scalar returns independent X/Y scaling by the components of v.
func Scalar(v Point) Transform {
	return Transform{
		A: v.X, B: 0, C: 0,
		D: 0, E: v.Y, F: 0,
	}
}

// ShearX returns a shear along the X axis: x' = x + k*y.
func ShearX(k float64) Transform {
	return Shear(Point{X: k})
}

// ShearY returns a shear along the Y axis: y' = y + k*x.
func ShearY(k float64) Transform {
	return Shear(Point{Y: k})
}

// Shear returns a shear along both axes by the components of v.
func Shear(v Point) Transform {
	return Transform{
		A: 1, B: v.X, C: 0,
		D: v.Y, E: 1, F: 0,
	}
}

// ReflectOrigin returns the reflection through the origin, a scale by
// (-1, -1).
func ReflectOrigin() Transform {
	return Scalar(Point{X: -1, Y: -1})
}

// ReflectX returns the reflection through the X axis, a scale by (1, -1).
func ReflectX() Transform {
	return Scalar(Point{X: 1, Y: -1})
}

// ReflectY returns the reflection through the Y axis, a scale by (-1, 1).
func ReflectY() Transform {
	return Scalar(Point{X: -1, Y: 1})
}

// Compose returns t·u, the transform that applies u first and then t:
// t.Compose(u).Apply(p) == t.Apply(u.Apply(p)). Composition is associative
// and Identity is its neutral element.
func (t Transform) Compose(u Transform) Transform {
	return Transform{
		A: t.A*u.A + t.B*u.D,
		B: t.A*u.B + t.B*u.E,
		C: t.A*u.C + t.B*u.F + t.C,
		D: t.D*u.A + t.E*u.D,
		E: t.D*u.B + t.E*u.E,
		F: t.D*u.C + t.E*u.F + t.F,
	}
}

// Apply maps p through the transform using homogeneous coordinates: the
// point is extended with a third component of 1, multiplied, and the third
// component (always 1 for an affine matrix) is dropped.
func (t Transform) Apply(p Point) Point {
	return Point{
		X: t.A*p.X + t.B*p.Y + t.C,
		Y: t.D*p.X + t.E*p.Y + t.F,
	}
}

// ApplyVector maps p as a direction vector, ignoring translation.
func (t Transform) ApplyVector(p Point) Point {
	return Point{
		X: t.A*p.X + t.B*p.Y,
		Y: t.D*p.X + t.E*p.Y,
	}
}

// Invert returns the inverse transform. Transforms with a near-zero
// determinant are not invertible; Invert returns Identity for those.
func (t Transform) Invert() Transform {
	det := t.A*t.E - t.B*t.D
	if math.Abs(det) < 1e-10 {
		return Identity()
	}

	invDet := 1.0 / det
	return Transform{
		A: t.E * invDet,
		B: -t.B * invDet,
		C: (t.B*t.F - t.C*t.E) * invDet,
		D: -t.D * invDet,
		E: t.A * invDet,
		F: (t.C*t.D - t.A*t.F) * invDet,
	}
}

// IsIdentity returns true if the transform is exactly the identity.
func (t Transform) IsIdentity() bool {
	return t.A == 1 && t.B == 0 && t.C == 0 &&
		t.D == 0 && t.E == 1 && t.F == 0
}
