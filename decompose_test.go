package conflict

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertValidDecomposition(t *testing.T, p Polygon) []Polygon {
	t.Helper()
	pieces := p.ToConvexPolygons()
	require.NotEmpty(t, pieces)

	var area float64
	for _, piece := range pieces {
		assert.True(t, piece.IsConvex(), "piece %v is not convex", piece)
		assert.Equal(t, p.Winding(), piece.Winding(), "piece %v", piece)
		assert.True(t, p.BB().Contains(piece.BB()), "piece %v sticks out", piece)
		assert.True(t, p.ContainsPoint(piece.Centroid()), "piece %v lies outside", piece)
		area += piece.Area()
	}
	assert.InDelta(t, p.Area(), area, 1e-9)
	return pieces
}

func TestToConvexPolygons_Convex(t *testing.T) {
	p := square(2)
	pieces := p.ToConvexPolygons()
	require.Len(t, pieces, 1)
	assert.Equal(t, p, pieces[0])
}

func TestToConvexPolygons_L(t *testing.T) {
	pieces := assertValidDecomposition(t, lShape())
	assert.Len(t, pieces, 3)

	assertValidDecomposition(t, lShape().Reverse())
}

func TestToConvexPolygons_U(t *testing.T) {
	u := MustPolygon(
		Vector{0, 0}, Vector{3, 0}, Vector{3, 3}, Vector{2, 3},
		Vector{2, 1}, Vector{1, 1}, Vector{1, 3}, Vector{0, 3},
	)
	assertValidDecomposition(t, u)
	assertValidDecomposition(t, u.Reverse())
}

func TestToConvexPolygons_Star(t *testing.T) {
	verts := make([]Vector, 10)
	for i := range verts {
		r := 10.0
		if i%2 == 1 {
			r = 4
		}
		verts[i] = ForDirection(float64(i) * 36).Mult(r)
	}
	star := MustPolygon(verts...)
	require.False(t, star.IsConvex())

	assertValidDecomposition(t, star)
	assertValidDecomposition(t, star.Reverse())
	assertValidDecomposition(t, star.TransformedWith(Transform{Position: Vector{100, 3}, Rotation: 17, Scale: Vector{2, 1}}))
}

func TestToConvexPolygons_Comb(t *testing.T) {
	comb := MustPolygon(
		Vector{0, 0}, Vector{7, 0}, Vector{7, 3}, Vector{6, 3}, Vector{6, 1},
		Vector{5, 1}, Vector{5, 3}, Vector{4, 3}, Vector{4, 1}, Vector{3, 1},
		Vector{3, 3}, Vector{2, 3}, Vector{2, 1}, Vector{1, 1}, Vector{1, 3},
		Vector{0, 3},
	)
	assertValidDecomposition(t, comb)
}
