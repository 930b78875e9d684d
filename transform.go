package gg3d

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// AngleUnit selects how rotation angles are interpreted.
type AngleUnit uint8

const (
	// Degrees interprets angles in degrees.
	Degrees AngleUnit = iota
	// Radians interprets angles in radians.
	Radians
)

func (u AngleUnit) radians(theta float64) float64 {
	if u == Radians {
		return theta
	}
	return mgl64.DegToRad(theta)
}

// Axis names a coordinate axis.
type Axis uint8

// Coordinate axes.
const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	}
	return fmt.Sprintf("Axis(%d)", uint8(a))
}

// Transform is a 4x4 affine map in row-vector form: a point p is mapped to
// p * t, so the translation lives in the last row.
//
// The builder methods (RotateX, Translate, ...) return factor * t. Since
// points are multiplied on the left, the most recently added factor acts on
// geometry first, the same order a scene graph applies nested transforms.
type Transform [4][4]float64

// Identity returns the identity transform.
func Identity() Transform {
	return Transform{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// rowForm transposes a column-vector mgl64 matrix into row-vector form.
func rowForm(m mgl64.Mat4) Transform {
	var t Transform
	for i := range 4 {
		for j := range 4 {
			t[i][j] = m.At(j, i)
		}
	}
	return t
}

// RotationX returns the right-handed rotation about the x axis.
func RotationX(theta float64, unit AngleUnit) Transform {
	return rowForm(mgl64.HomogRotate3DX(unit.radians(theta)))
}

// RotationY returns the right-handed rotation about the y axis.
func RotationY(theta float64, unit AngleUnit) Transform {
	return rowForm(mgl64.HomogRotate3DY(unit.radians(theta)))
}

// RotationZ returns the right-handed rotation about the z axis.
func RotationZ(theta float64, unit AngleUnit) Transform {
	return rowForm(mgl64.HomogRotate3DZ(unit.radians(theta)))
}

// Rotation returns the rotation about the given axis.
func Rotation(axis Axis, theta float64, unit AngleUnit) (Transform, error) {
	switch axis {
	case AxisX:
		return RotationX(theta, unit), nil
	case AxisY:
		return RotationY(theta, unit), nil
	case AxisZ:
		return RotationZ(theta, unit), nil
	}
	return Transform{}, fmt.Errorf("%w: cannot rotate about %v", ErrUnsupportedOperation, axis)
}

// RotationAbout returns the rotation about an axis through center: points
// are translated by -center, rotated, then translated back.
func RotationAbout(axis Axis, theta float64, unit AngleUnit, center Point) (Transform, error) {
	r, err := Rotation(axis, theta, unit)
	if err != nil {
		return Transform{}, err
	}
	return about(r, center), nil
}

// about conjugates r by the translation to center.
func about(r Transform, center Point) Transform {
	x, y, z := center.X(), center.Y(), center.Z()
	return Translation(-x, -y, -z).Mul(r).Mul(Translation(x, y, z))
}

// Translation returns the translation by (x, y, z).
func Translation(x, y, z float64) Transform {
	return rowForm(mgl64.Translate3D(x, y, z))
}

// Scaling returns the scale by (x, y, z) about the origin.
func Scaling(x, y, z float64) Transform {
	return rowForm(mgl64.Scale3D(x, y, z))
}

// Mul returns t * o. Applied to points, t acts first.
func (t Transform) Mul(o Transform) Transform {
	var r Transform
	for i := range 4 {
		for j := range 4 {
			r[i][j] = t[i][0]*o[0][j] + t[i][1]*o[1][j] + t[i][2]*o[2][j] + t[i][3]*o[3][j]
		}
	}
	return r
}

// Then returns factor * t, the new transform after issuing factor.
func (t Transform) Then(factor Transform) Transform {
	return factor.Mul(t)
}

// RotateX returns t with an x rotation issued.
func (t Transform) RotateX(theta float64, unit AngleUnit) Transform {
	return t.Then(RotationX(theta, unit))
}

// RotateY returns t with a y rotation issued.
func (t Transform) RotateY(theta float64, unit AngleUnit) Transform {
	return t.Then(RotationY(theta, unit))
}

// RotateZ returns t with a z rotation issued.
func (t Transform) RotateZ(theta float64, unit AngleUnit) Transform {
	return t.Then(RotationZ(theta, unit))
}

// RotateXAbout returns t with an x rotation about center issued.
func (t Transform) RotateXAbout(theta float64, unit AngleUnit, center Point) Transform {
	return t.Then(about(RotationX(theta, unit), center))
}

// RotateYAbout returns t with a y rotation about center issued.
func (t Transform) RotateYAbout(theta float64, unit AngleUnit, center Point) Transform {
	return t.Then(about(RotationY(theta, unit), center))
}

// RotateZAbout returns t with a z rotation about center issued.
func (t Transform) RotateZAbout(theta float64, unit AngleUnit, center Point) Transform {
	return t.Then(about(RotationZ(theta, unit), center))
}

// Translate returns t with a translation issued.
func (t Transform) Translate(x, y, z float64) Transform {
	return t.Then(Translation(x, y, z))
}

// Scale returns t with a scale issued.
func (t Transform) Scale(x, y, z float64) Transform {
	return t.Then(Scaling(x, y, z))
}

// Apply maps a single point through t.
func (t Transform) Apply(p Point) Point {
	return t.rowTimes(p)
}

// rowTimes computes p * t with a fixed summation order.
func (t Transform) rowTimes(p Point) Point {
	var r Point
	for j := range 4 {
		r[j] = p[0]*t[0][j] + p[1]*t[1][j] + p[2]*t[2][j] + p[3]*t[3][j]
	}
	return r
}

// Matrix returns t as a transformation-kind Matrix.
func (t Transform) Matrix() Matrix {
	return Matrix{kind: TransformKind, points: []Point{t[0], t[1], t[2], t[3]}}
}

// IsIdentity returns true if t is exactly the identity.
func (t Transform) IsIdentity() bool {
	return t == Identity()
}

// Approx returns true if every entry of t and o agrees within epsilon.
func (t Transform) Approx(o Transform, epsilon float64) bool {
	for i := range 4 {
		if !Point(t[i]).Approx(Point(o[i]), epsilon) {
			return false
		}
	}
	return true
}
