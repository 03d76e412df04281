package conflict

import (
	"fmt"
	"math"
)

// Epsilon is the tolerance used for parallel axis detection, collinear turns and
// degenerate distances.
const Epsilon = 1e-9

const degreesPerRadian = 180 / math.Pi

type Vector struct {
	X, Y float64
}

func (v Vector) String() string {
	return fmt.Sprintf("%f,%f", v.X, v.Y)
}

func (v Vector) Equal(other Vector) bool {
	return v.X == other.X && v.Y == other.Y
}

func (v Vector) Add(other Vector) Vector {
	return Vector{v.X + other.X, v.Y + other.Y}
}

func (v Vector) Sub(other Vector) Vector {
	return Vector{v.X - other.X, v.Y - other.Y}
}

func (v Vector) Neg() Vector {
	return Vector{-v.X, -v.Y}
}

func (v Vector) Mult(s float64) Vector {
	return Vector{v.X * s, v.Y * s}
}

func (v Vector) Dot(other Vector) float64 {
	return v.X*other.X + v.Y*other.Y
}

/// 2D vector cross product analog.
/// The cross product of 2D vectors results in a 3D vector with only a z component.
/// This function returns the magnitude of the z value.
func (v Vector) Cross(other Vector) float64 {
	return v.X*other.Y - v.Y*other.X
}

// Perp rotates v by 90 degrees counter-clockwise.
func (v Vector) Perp() Vector {
	return Vector{-v.Y, v.X}
}

// ReversePerp rotates v by 90 degrees clockwise.
func (v Vector) ReversePerp() Vector {
	return Vector{v.Y, -v.X}
}

// Project returns the vector projection of v onto other.
func (v Vector) Project(other Vector) Vector {
	lsq := other.Dot(other)
	if lsq == 0 {
		return Vector{}
	}
	return other.Mult(v.Dot(other) / lsq)
}

/// Returns the unit length vector for the given direction (in degrees).
func ForDirection(degrees float64) Vector {
	r := degrees / degreesPerRadian
	return Vector{math.Cos(r), math.Sin(r)}
}

// Direction is the angle of v in degrees, in (-180, 180].
func (v Vector) Direction() float64 {
	return math.Atan2(v.Y, v.X) * degreesPerRadian
}

// Rotate rotates v counter-clockwise around the origin.
func (v Vector) Rotate(degrees float64) Vector {
	rot := ForDirection(degrees)
	return Vector{v.X*rot.X - v.Y*rot.Y, v.X*rot.Y + v.Y*rot.X}
}

func (v Vector) LengthSq() float64 {
	return v.Dot(v)
}

func (v Vector) Length() float64 {
	return math.Sqrt(v.Dot(v))
}

func (v Vector) Lerp(other Vector, t float64) Vector {
	return v.Mult(1.0 - t).Add(other.Mult(t))
}

// Normalize returns the unit vector of v, or the zero vector when v has no length.
func (v Vector) Normalize() Vector {
	l := v.Length()
	if l == 0 {
		return Vector{}
	}
	return v.Mult(1.0 / l)
}

// WithLength scales v to the given length. Negative lengths flip the direction.
func (v Vector) WithLength(length float64) Vector {
	return v.Normalize().Mult(length)
}

func (v Vector) Distance(other Vector) float64 {
	return v.Sub(other).Length()
}

func (v Vector) DistanceSq(other Vector) float64 {
	return v.Sub(other).LengthSq()
}

func (v Vector) Near(other Vector, d float64) bool {
	return v.DistanceSq(other) <= d*d
}

// IsParallelWith reports whether v and other lie on the same line through the origin,
// pointing either way.
func (v Vector) IsParallelWith(other Vector) bool {
	a := v.Normalize()
	b := other.Normalize()
	return math.Abs(a.Cross(b)) <= 1e-6
}

func Clamp(f, min, max float64) float64 {
	return math.Min(math.Max(f, min), max)
}

// normalizeTurn maps an angle difference in degrees into (-180, 180].
func normalizeTurn(degrees float64) float64 {
	a := math.Mod(degrees, 360)
	if a > 180 {
		a -= 360
	} else if a <= -180 {
		a += 360
	}
	return a
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func (v Vector) finite() bool {
	return finite(v.X) && finite(v.Y)
}
