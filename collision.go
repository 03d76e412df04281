package conflict

import "math"

// CollisionData is the outcome of a single collision check. MTV and Points are only
// filled in when they were asked for and could be calculated.
type CollisionData struct {
	Collides bool
	// MTV is the smallest translation that moves the first shape out of the second.
	MTV    Vector
	HasMTV bool
	Points []Vector
}

var noCollision = CollisionData{}

// CheckPolygons runs the separating axis test on two convex polygons. Contact points
// need the MTV, so asking for points calculates both.
func CheckPolygons(a, b Polygon, wantMTV, wantPoints bool) CollisionData {
	wantMTV = wantMTV || wantPoints

	axes := a.Axes()
	for _, axis := range b.Axes() {
		parallel := false
		for _, other := range a.Axes() {
			if other.IsParallelWith(axis) {
				parallel = true
				break
			}
		}
		if !parallel {
			axes = append(axes[:len(axes):len(axes)], axis)
		}
	}

	var mtv Vector
	smallest := math.Inf(1)
	for _, axis := range axes {
		pa, pb := a.Projection(axis), b.Projection(axis)
		if !wantMTV {
			if !pa.Overlaps(pb) {
				return noCollision
			}
			continue
		}

		delta, ok := pa.OverlapMTV(pb)
		if !ok {
			return noCollision
		}
		if math.Abs(delta) < smallest {
			smallest = math.Abs(delta)
			mtv = axis.Mult(delta)
		}
	}

	data := CollisionData{Collides: true}
	if wantMTV {
		data.MTV = mtv
		data.HasMTV = true
	}
	if wantPoints {
		data.Points = CollisionPoints(a, b, mtv)
	}
	return data
}

// OverlapMTV is the smallest translation along the unit axis that moves a out of b,
// ok is false when their projections don't overlap.
func OverlapMTV(a, b Shape, axis Vector) (Vector, bool) {
	delta, ok := a.Projection(axis).OverlapMTV(b.Projection(axis))
	if !ok {
		return Vector{}, false
	}
	return axis.Mult(delta), true
}

// CollisionEdge finds the edge of p facing against n: one of the two edges touching
// the vertex that lies furthest along -n, whichever is more perpendicular to n. The
// edge starts at that vertex.
func CollisionEdge(p Polygon, n Vector) (start, end Vector) {
	best := 0
	bestDot := math.Inf(1)
	for i, v := range p.verts {
		if d := v.Dot(n); d < bestDot {
			best = i
			bestDot = d
		}
	}

	vertex := p.Vertex(best)
	prev := p.Vertex(best - 1)
	next := p.Vertex(best + 1)
	if math.Abs(prev.Sub(vertex).Dot(n)) < math.Abs(next.Sub(vertex).Dot(n)) {
		return vertex, prev
	}
	return vertex, next
}

// CollisionPoints finds where two overlapping convex polygons touch, given the MTV
// that separates a from b. It returns at most two points.
func CollisionPoints(a, b Polygon, mtv Vector) []Vector {
	if mtv.LengthSq() == 0 {
		return nil
	}

	a1, a2 := CollisionEdge(a, mtv)
	b1, b2 := CollisionEdge(b, mtv.Neg())

	// the edge more perpendicular to the mtv is the reference, b wins ties
	if math.Abs(a2.Sub(a1).Dot(mtv)) < math.Abs(b2.Sub(b1).Dot(mtv)) {
		return clip(a1, a2, b1, b2, mtv)
	}
	return clip(b1, b2, a1, a2, mtv.Neg())
}

// clip cuts the incident edge down to the part within the sides of the reference edge
// and keeps the points that lie on the mtv side of it.
func clip(ref1, ref2, inc1, inc2, mtv Vector) []Vector {
	refVector := ref2.Sub(ref1)
	if refVector.LengthSq() == 0 {
		return nil
	}

	points, ok := clipSegment(inc1, inc2, ref1, refVector)
	if !ok {
		return nil
	}
	points, ok = clipSegment(points[0], points[1], ref2, refVector.Neg())
	if !ok {
		return nil
	}

	normal := refVector.Perp().Normalize()
	if normal.Dot(mtv) < 0 {
		normal = normal.Neg()
	}

	origin := ref1.Dot(normal)
	var result []Vector
	for _, p := range points {
		if p.Dot(normal)-origin >= -Epsilon {
			result = append(result, p)
		}
	}
	return result
}

// clipSegment keeps the part of the segment ab in front of the plane through point
// facing n. ok is false when less than two points remain.
func clipSegment(a, b, point, n Vector) ([2]Vector, bool) {
	origin := point.Dot(n)
	d1 := a.Dot(n) - origin
	d2 := b.Dot(n) - origin

	var kept [3]Vector
	count := 0
	if d1 >= 0 {
		kept[count] = a
		count++
	}
	if d2 >= 0 {
		kept[count] = b
		count++
	}
	if d1*d2 < 0 {
		kept[count] = a.Lerp(b, d1/(d1-d2))
		count++
	}

	if count < 2 {
		return [2]Vector{}, false
	}
	return [2]Vector{kept[0], kept[1]}, true
}

// CheckCircles tests two circles analytically. Contact points exist only when neither
// circle contains the other and the centers don't coincide.
func CheckCircles(a, b Circle, wantMTV, wantPoints bool) CollisionData {
	d := b.center.Sub(a.center)
	dist := d.Length()
	overlap := a.radius + b.radius - dist
	if overlap < 0 {
		return noCollision
	}

	data := CollisionData{Collides: true}
	if wantMTV || wantPoints {
		if dist <= Epsilon {
			d = Vector{1, 0}
		}
		data.MTV = d.WithLength(-overlap)
		data.HasMTV = true
	}

	if wantPoints && dist > Epsilon && dist >= math.Abs(a.radius-b.radius) {
		r1, r2 := a.radius, b.radius
		along := (r1*r1 - r2*r2 + dist*dist) / (2 * dist)
		h := math.Sqrt(math.Max(r1*r1-along*along, 0))

		mid := a.center.Add(d.WithLength(along))
		offset := d.Perp().WithLength(h)
		if h <= Epsilon {
			data.Points = []Vector{mid}
		} else {
			data.Points = []Vector{mid.Add(offset), mid.Sub(offset)}
		}
	}
	return data
}

// checkCirclePolygon tests a circle against a polygon using strategy to bring the two
// to a common shape. circlePolygon is the circle's polygon form if already known.
func checkCirclePolygon(c Circle, circlePolygon *Polygon, p Polygon, cfg Config, wantMTV, wantPoints bool) CollisionData {
	if cfg.MixedShapes == MixedShapesCircle {
		return CheckCircles(c, p.BoundingCircle(), wantMTV, wantPoints)
	}

	if circlePolygon == nil {
		converted, err := c.ToPolygon(cfg.CircleMinVertices, cfg.CircleMaxEdgeLength)
		if err != nil {
			// a point sized circle has no MTV or contact points
			if p.ContainsPoint(c.center) {
				return CollisionData{Collides: true}
			}
			return noCollision
		}
		circlePolygon = &converted
	}
	return CheckPolygons(*circlePolygon, p, wantMTV, wantPoints)
}

func (data CollisionData) flipped() CollisionData {
	data.MTV = data.MTV.Neg()
	return data
}
