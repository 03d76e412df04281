package conflict

import "math"

// ToConvexPolygons splits a simple polygon into convex pieces covering the same area.
// A convex polygon is returned as the only piece.
//
// Each pass walks the loop looking for vertices that turn against the polygon's
// winding. The run of vertices between two such broken vertices is cut off as its own
// polygon and its inner vertices are removed from the rest, which is then split again.
// If a pass finds nothing to cut, a single triangle (an ear) is taken out instead.
func (p Polygon) ToConvexPolygons() []Polygon {
	if p.convex {
		return []Polygon{p}
	}

	n := p.Count()
	var pieces []Polygon
	removed := make([]bool, n)
	cut := false

	lastBroken := -1
	for index := 1; index <= n; index++ {
		if p.agreesAt(index - 1) {
			continue
		}
		if lastBroken != -1 && index-lastBroken > 1 {
			if piece, ok := p.carve(lastBroken, index); ok {
				pieces = append(pieces, piece)
				for i := lastBroken + 1; i < index; i++ {
					removed[i%n] = true
				}
				cut = true
			}
		}
		lastBroken = index
	}

	if !cut && lastBroken != -1 {
		if piece, ok := p.carve(lastBroken, lastBroken+2); ok {
			pieces = append(pieces, piece)
			removed[(lastBroken+1)%n] = true
			cut = true
		}
	}
	if !cut {
		for i := 0; i < n; i++ {
			if piece, ok := p.carve(i-1, i+1); ok {
				pieces = append(pieces, piece)
				removed[i] = true
				cut = true
				break
			}
		}
	}
	if !cut {
		// nothing can be cut off safely, most likely a self-intersecting loop
		return append(pieces, p)
	}

	rest := make([]Vector, 0, n)
	for i, v := range p.verts {
		if !removed[i] {
			rest = append(rest, v)
		}
	}
	if len(rest) < 3 {
		return pieces
	}

	remainder := newPolygon(rest)
	if math.Abs(remainder.area) <= Epsilon {
		return pieces
	}
	return append(pieces, remainder.ToConvexPolygons()...)
}

// carve builds the polygon made of vertices from through to (inclusive, wrapping) and
// reports whether it can be cut off p: it has to be convex, wind the same way as p,
// have some area and hold no other vertex of p.
func (p Polygon) carve(from, to int) (Polygon, bool) {
	n := p.Count()
	if to-from < 2 || to-from >= n {
		return Polygon{}, false
	}

	verts := make([]Vector, 0, to-from+1)
	for i := from; i <= to; i++ {
		verts = append(verts, p.Vertex(i))
	}
	piece := newPolygon(verts)
	if !piece.convex || piece.winding != p.winding || math.Abs(piece.area) <= Epsilon {
		return Polygon{}, false
	}

	for i := to + 1; i < from+n; i++ {
		v := p.Vertex(i)
		if piece.ContainsPoint(v) && !isVertexOf(v, verts) {
			return Polygon{}, false
		}
	}
	return piece, true
}

func isVertexOf(v Vector, verts []Vector) bool {
	for _, other := range verts {
		if other.Equal(v) {
			return true
		}
	}
	return false
}
