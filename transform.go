package conflict

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Transform places local space shapes in the world. Vertices are scaled, then sheared,
// then rotated (degrees, counter-clockwise) and finally translated by Position.
type Transform struct {
	Position Vector
	Rotation float64
	Scale    Vector
	Shear    Vector
}

func IdentityTransform() Transform {
	return Transform{Scale: Vector{1, 1}}
}

func Translation(position Vector) Transform {
	t := IdentityTransform()
	t.Position = position
	return t
}

func Rotation(degrees float64) Transform {
	t := IdentityTransform()
	t.Rotation = degrees
	return t
}

func Scaling(x, y float64) Transform {
	t := IdentityTransform()
	t.Scale = Vector{x, y}
	return t
}

// Plus combines the two transforms field by field: positions, rotations and shears
// are added, scales are multiplied.
func (t Transform) Plus(other Transform) Transform {
	return Transform{
		Position: t.Position.Add(other.Position),
		Rotation: t.Rotation + other.Rotation,
		Scale:    Vector{t.Scale.X * other.Scale.X, t.Scale.Y * other.Scale.Y},
		Shear:    t.Shear.Add(other.Shear),
	}
}

func (t Transform) Translated(v Vector) Transform {
	t.Position = t.Position.Add(v)
	return t
}

func (t Transform) Rotated(degrees float64) Transform {
	t.Rotation += degrees
	return t
}

// Matrix is the homogeneous 3x3 affine matrix of t.
func (t Transform) Matrix() mgl64.Mat3 {
	shear := mgl64.ShearX2D(t.Shear.X).Mul3(mgl64.ShearY2D(t.Shear.Y))
	return mgl64.Translate2D(t.Position.X, t.Position.Y).
		Mul3(mgl64.HomogRotate2D(mgl64.DegToRad(t.Rotation))).
		Mul3(shear).
		Mul3(mgl64.Scale2D(t.Scale.X, t.Scale.Y))
}

// Apply maps a local space point into world space.
func (t Transform) Apply(p Vector) Vector {
	return mulPoint(t.Matrix(), p)
}

// ApplyVector maps a local space direction into world space, ignoring translation.
func (t Transform) ApplyVector(v Vector) Vector {
	w := t.Matrix().Mul3x1(mgl64.Vec3{v.X, v.Y, 0})
	return Vector{w.X(), w.Y()}
}

// InverseApply maps a world space point back into local space. The result is
// meaningless when t is not Invertible.
func (t Transform) InverseApply(p Vector) Vector {
	inv, _ := t.inverse()
	return mulPoint(inv, p)
}

func (t Transform) Invertible() bool {
	_, ok := t.inverse()
	return ok
}

// inverse builds the matrix once and inverts it, ok is false when it is singular.
func (t Transform) inverse() (inv mgl64.Mat3, ok bool) {
	m := t.Matrix()
	det := m.Det()
	if math.Abs(det) <= Epsilon {
		return mgl64.Mat3{}, false
	}
	return m.Inv(), true
}

// SupportsCircles reports whether circles keep their shape under t: equal x/y scale
// and no shear. Circles have to be turned into polygons for any other transform.
func (t Transform) SupportsCircles() bool {
	return mgl64.FloatEqualThreshold(math.Abs(t.Scale.X), math.Abs(t.Scale.Y), 1e-6) &&
		mgl64.FloatEqualThreshold(t.Shear.X, 0, 1e-6) &&
		mgl64.FloatEqualThreshold(t.Shear.Y, 0, 1e-6)
}

// uniformScale is the factor applied to circle radii.
func (t Transform) uniformScale() float64 {
	return (math.Abs(t.Scale.X) + math.Abs(t.Scale.Y)) / 2
}

func mulPoint(m mgl64.Mat3, p Vector) Vector {
	w := m.Mul3x1(mgl64.Vec3{p.X, p.Y, 1})
	return Vector{w.X(), w.Y()}
}

func (t Transform) finite() bool {
	return t.Position.finite() && finite(t.Rotation) && t.Scale.finite() && t.Shear.finite()
}
