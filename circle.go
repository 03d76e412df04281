package conflict

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// maxCircleVertices caps ToPolygon for tiny edge lengths.
const maxCircleVertices = 1024

// Circle is a center point and a non-negative radius.
type Circle struct {
	center Vector
	radius float64
}

func NewCircle(center Vector, radius float64) (Circle, error) {
	if !center.finite() {
		return Circle{}, fmt.Errorf("center %v: %w", center, ErrInvalidVertex)
	}
	if !finite(radius) || radius < 0 {
		return Circle{}, fmt.Errorf("radius %v: %w", radius, ErrInvalidRadius)
	}
	return Circle{center: center, radius: radius}, nil
}

// MustCircle is like NewCircle but panics on invalid input.
func MustCircle(center Vector, radius float64) Circle {
	c, err := NewCircle(center, radius)
	if err != nil {
		panic(err)
	}
	return c
}

func (circle Circle) Center() Vector {
	return circle.center
}

func (circle Circle) Radius() float64 {
	return circle.radius
}

func (circle Circle) WithCenter(center Vector) Circle {
	circle.center = center
	return circle
}

func (circle Circle) WithRadius(radius float64) Circle {
	circle.radius = math.Max(radius, 0)
	return circle
}

func (circle Circle) Translated(v Vector) Circle {
	return circle.WithCenter(circle.center.Add(v))
}

func (circle Circle) Scaled(scale float64) Circle {
	return circle.WithRadius(circle.radius * math.Abs(scale))
}

// Widened grows the radius by amount. Negative amounts shrink it, never below zero.
func (circle Circle) Widened(amount float64) Circle {
	return circle.WithRadius(circle.radius + amount)
}

func (circle Circle) BB() BB {
	return NewBBForCircle(circle.center, circle.radius)
}

func (circle Circle) ContainsPoint(p Vector) bool {
	return p.DistanceSq(circle.center) <= circle.radius*circle.radius
}

// Projection returns the extent of the circle along a unit axis.
func (circle Circle) Projection(axis Vector) Segment {
	c := circle.center.Dot(axis)
	r := circle.radius * axis.Length()
	return Segment{c - r, c + r}
}

// TransformedWith moves the center with t and scales the radius by the average of the
// transform's scale factors. Only meaningful when t.SupportsCircles().
func (circle Circle) TransformedWith(t Transform) Circle {
	return circle.transformedWith(t.Matrix(), t.uniformScale())
}

func (circle Circle) transformedWith(m mgl64.Mat3, scale float64) Circle {
	return Circle{
		center: mulPoint(m, circle.center),
		radius: circle.radius * scale,
	}
}

// ToPolygon approximates the circle with a regular counter-clockwise polygon.
//
// maxEdgeLength limits how long an edge may be, it is ignored when zero or longer than
// the circle's diameter. The vertex count is rounded up so no edge exceeds it.
// minVertices sets the fewest vertices to use, ignored when zero.
// Without either limit every edge spans 45 degrees.
func (circle Circle) ToPolygon(minVertices int, maxEdgeLength float64) (Polygon, error) {
	if circle.radius <= Epsilon {
		return Polygon{}, ErrDegenerateCircle
	}

	increment := -1.0
	if maxEdgeLength > 0 && maxEdgeLength <= circle.radius*2 {
		increment = 2 * math.Asin(maxEdgeLength/(2*circle.radius)) * degreesPerRadian
	}

	maxIncrement := -1.0
	if minVertices > 0 {
		maxIncrement = 360.0 / float64(minVertices)
	}

	if increment < 0 && maxIncrement < 0 {
		increment = 45
	} else if maxIncrement > 0 && (increment > maxIncrement || increment < 0) {
		increment = maxIncrement
	}

	count := maxCircleVertices
	if increment >= 360/float64(maxCircleVertices) {
		count = int(math.Ceil(360/increment - 1e-6))
	}
	if count < 3 {
		count = 3
	}
	step := 360 / float64(count)

	verts := make([]Vector, count)
	for i := range verts {
		verts[i] = circle.center.Add(ForDirection(float64(i) * step).Mult(circle.radius))
	}
	return newPolygon(verts), nil
}

func (circle Circle) String() string {
	return fmt.Sprintf("Circle{%v, r=%f}", circle.center, circle.radius)
}
