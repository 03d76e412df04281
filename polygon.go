package conflict

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Winding is the direction a polygon's vertices travel around it.
type Winding int

const (
	Clockwise Winding = iota
	CounterClockwise
)

func (w Winding) String() string {
	if w == CounterClockwise {
		return "counter-clockwise"
	}
	return "clockwise"
}

func (w Winding) Reverse() Winding {
	if w == CounterClockwise {
		return Clockwise
	}
	return CounterClockwise
}

// TurnWinding classifies a turn given in degrees. Turns in [0, 180) are
// counter-clockwise, everything else is clockwise.
func TurnWinding(degrees float64) Winding {
	a := math.Mod(degrees, 360)
	if a < 0 {
		a += 360
	}
	if a < 180 {
		return CounterClockwise
	}
	return Clockwise
}

// turnTolerance is how far from straight (degrees) a vertex may bend and still count
// as collinear.
const turnTolerance = 1e-6

// Polygon is a closed loop of vertices. The last vertex connects back to the first.
// Polygons are immutable; every derived property is computed once on construction.
type Polygon struct {
	verts []Vector

	winding Winding
	convex  bool
	area    float64
	bb      BB
	axes    []Vector
}

// NewPolygon validates the vertices and builds a polygon out of them. Consecutive
// duplicate vertices are merged.
func NewPolygon(verts ...Vector) (Polygon, error) {
	cleaned := make([]Vector, 0, len(verts))
	for i, v := range verts {
		if !v.finite() {
			return Polygon{}, fmt.Errorf("vertex %d (%v): %w", i, v, ErrInvalidVertex)
		}
		if len(cleaned) > 0 && cleaned[len(cleaned)-1].Equal(v) {
			continue
		}
		cleaned = append(cleaned, v)
	}
	for len(cleaned) > 1 && cleaned[0].Equal(cleaned[len(cleaned)-1]) {
		cleaned = cleaned[:len(cleaned)-1]
	}

	if len(cleaned) < 3 {
		return Polygon{}, fmt.Errorf("got %d: %w", len(cleaned), ErrTooFewVertices)
	}
	return newPolygon(cleaned), nil
}

// MustPolygon is like NewPolygon but panics on invalid input. Meant for literals.
func MustPolygon(verts ...Vector) Polygon {
	p, err := NewPolygon(verts...)
	if err != nil {
		panic(err)
	}
	return p
}

// NewBox returns a counter-clockwise w by h rectangle centered on the origin.
func NewBox(w, h float64) (Polygon, error) {
	hw := w / 2.0
	hh := h / 2.0
	return NewPolygon(
		Vector{-hw, -hh},
		Vector{hw, -hh},
		Vector{hw, hh},
		Vector{-hw, hh},
	)
}

// newPolygon skips validation. verts is owned by the returned polygon.
func newPolygon(verts []Vector) Polygon {
	p := Polygon{verts: verts}
	p.bb = NewBBForPoints(verts)
	p.area = signedArea(verts)
	p.winding = p.calculateWinding()
	p.convex = p.calculateConvexity()
	p.axes = p.calculateAxes()
	return p
}

func (p Polygon) Count() int {
	return len(p.verts)
}

// Vertex returns the vertex at index i, wrapping around the loop in both directions.
func (p Polygon) Vertex(i int) Vector {
	n := len(p.verts)
	return p.verts[((i%n)+n)%n]
}

// Vertices returns a copy of the vertex loop.
func (p Polygon) Vertices() []Vector {
	return append([]Vector(nil), p.verts...)
}

// Edge returns the edge from vertex i to vertex i+1.
func (p Polygon) Edge(i int) (Vector, Vector) {
	return p.Vertex(i), p.Vertex(i + 1)
}

func (p Polygon) Winding() Winding {
	return p.winding
}

func (p Polygon) IsConvex() bool {
	return p.convex
}

func (p Polygon) BB() BB {
	return p.bb
}

// SignedArea is positive for counter-clockwise polygons.
func (p Polygon) SignedArea() float64 {
	return p.area
}

func (p Polygon) Area() float64 {
	return math.Abs(p.area)
}

// Axes returns the outward facing unit edge normals, skipping any normal parallel to
// one already listed.
func (p Polygon) Axes() []Vector {
	return p.axes
}

// Centroid is the center of mass of the polygon's area.
func (p Polygon) Centroid() Vector {
	if math.Abs(p.area) <= Epsilon {
		var sum Vector
		for _, v := range p.verts {
			sum = sum.Add(v)
		}
		return sum.Mult(1 / float64(len(p.verts)))
	}

	var c Vector
	n := len(p.verts)
	for i := 0; i < n; i++ {
		a, b := p.verts[i], p.verts[(i+1)%n]
		cross := a.Cross(b)
		c = c.Add(a.Add(b).Mult(cross))
	}
	return c.Mult(1 / (6 * p.area))
}

// BoundingCircle is a circle around the polygon's bounding box center reaching every
// vertex.
func (p Polygon) BoundingCircle() Circle {
	center := p.bb.Center()
	var r float64
	for _, v := range p.verts {
		r = math.Max(r, v.Distance(center))
	}
	return Circle{center: center, radius: r}
}

// Projection returns the extent of the polygon along a unit axis.
func (p Polygon) Projection(axis Vector) Segment {
	min := math.Inf(1)
	max := math.Inf(-1)
	for _, v := range p.verts {
		d := v.Dot(axis)
		min = math.Min(min, d)
		max = math.Max(max, d)
	}
	return Segment{min, max}
}

// ContainsPoint reports whether p lies inside the polygon or on its boundary.
func (p Polygon) ContainsPoint(point Vector) bool {
	if !p.bb.ContainsVect(point) {
		return false
	}

	n := len(p.verts)
	if p.convex {
		sign := 1.0
		if p.winding == Clockwise {
			sign = -1
		}
		for i := 0; i < n; i++ {
			a, b := p.verts[i], p.verts[(i+1)%n]
			if sign*b.Sub(a).Cross(point.Sub(a)) < -Epsilon {
				return false
			}
		}
		return true
	}

	// crossing number, with boundary points counted as inside
	inside := false
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		a, b := p.verts[i], p.verts[j]
		if onSegment(point, a, b) {
			return true
		}
		if (a.Y > point.Y) != (b.Y > point.Y) {
			x := a.X + (point.Y-a.Y)*(b.X-a.X)/(b.Y-a.Y)
			if point.X < x {
				inside = !inside
			}
		}
	}
	return inside
}

// TransformedWith maps the polygon into the transform's space.
func (p Polygon) TransformedWith(t Transform) Polygon {
	return p.transformedWith(t.Matrix())
}

func (p Polygon) transformedWith(m mgl64.Mat3) Polygon {
	verts := make([]Vector, len(p.verts))
	for i, v := range p.verts {
		verts[i] = mulPoint(m, v)
	}
	return newPolygon(verts)
}

// Translated moves every vertex by v.
func (p Polygon) Translated(v Vector) Polygon {
	verts := make([]Vector, len(p.verts))
	for i, vert := range p.verts {
		verts[i] = vert.Add(v)
	}
	return newPolygon(verts)
}

// Reverse returns the same shape with its vertices in the opposite order.
func (p Polygon) Reverse() Polygon {
	n := len(p.verts)
	verts := make([]Vector, n)
	for i := range p.verts {
		verts[i] = p.verts[n-1-i]
	}
	return newPolygon(verts)
}

// WithWinding returns p, reversed if necessary so that it winds in the given direction.
func (p Polygon) WithWinding(w Winding) Polygon {
	if p.winding == w {
		return p
	}
	return p.Reverse()
}

func (p Polygon) String() string {
	return fmt.Sprintf("Polygon%v", p.verts)
}

// turnAt is the signed turn in degrees made at vertex i, in (-180, 180].
func (p Polygon) turnAt(i int) float64 {
	prev := p.Vertex(i)
	curr := p.Vertex(i + 1)
	next := p.Vertex(i + 2)
	return normalizeTurn(next.Sub(curr).Direction() - curr.Sub(prev).Direction())
}

// agreesAt reports whether the turn at vertex i+1 bends the same way as the whole
// polygon. Straight vertices always agree.
func (p Polygon) agreesAt(i int) bool {
	turn := p.turnAt(i)
	if math.Abs(turn) <= turnTolerance {
		return true
	}
	return TurnWinding(turn) == p.winding
}

func (p Polygon) calculateWinding() Winding {
	var total float64
	for i := range p.verts {
		total += p.turnAt(i)
	}
	if math.Abs(total) <= turnTolerance {
		total = p.area
	}
	if total >= 0 {
		return CounterClockwise
	}
	return Clockwise
}

func (p Polygon) calculateConvexity() bool {
	for i := range p.verts {
		if !p.agreesAt(i) {
			return false
		}
	}
	return true
}

func (p Polygon) calculateAxes() []Vector {
	axes := make([]Vector, 0, len(p.verts))
	for i := range p.verts {
		a, b := p.Edge(i)
		e := b.Sub(a)
		if e.LengthSq() == 0 {
			continue
		}

		var axis Vector
		if p.winding == CounterClockwise {
			axis = e.ReversePerp().Normalize()
		} else {
			axis = e.Perp().Normalize()
		}

		parallel := false
		for _, previous := range axes {
			if previous.IsParallelWith(axis) {
				parallel = true
				break
			}
		}
		if !parallel {
			axes = append(axes, axis)
		}
	}
	return axes
}

func signedArea(verts []Vector) float64 {
	var sum float64
	n := len(verts)
	for i := 0; i < n; i++ {
		sum += verts[i].Cross(verts[(i+1)%n])
	}
	return sum / 2
}

// onSegment reports whether p lies on the segment ab.
func onSegment(p, a, b Vector) bool {
	ab := b.Sub(a)
	ap := p.Sub(a)
	if math.Abs(ab.Cross(ap)) > Epsilon*math.Max(1, ab.Length()) {
		return false
	}
	d := ap.Dot(ab)
	return d >= -Epsilon && d <= ab.LengthSq()+Epsilon
}
