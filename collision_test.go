package conflict

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSegment_OverlapMTV(t *testing.T) {
	tests := []struct {
		name  string
		a, b  Segment
		delta float64
		ok    bool
	}{
		{"disjoint", Segment{0, 1}, Segment{2, 3}, 0, false},
		{"touching", Segment{0, 1}, Segment{1, 3}, 0, true},
		{"a before b", Segment{0, 2}, Segment{1, 3}, -1, true},
		{"a after b", Segment{2, 4}, Segment{1, 3}, 1, true},
		{"a inside b, closer to the start", Segment{1, 2}, Segment{0, 10}, -2, true},
		{"a inside b, closer to the end", Segment{7, 9}, Segment{0, 10}, 3, true},
		{"b inside a", Segment{0, 10}, Segment{1, 2}, 2, true},
		{"equal segments go towards positive", Segment{0, 4}, Segment{0, 4}, 4, true},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			delta, ok := test.a.OverlapMTV(test.b)
			assert.Equal(t, test.ok, ok)
			assert.InDelta(t, test.delta, delta, 1e-12)
		})
	}
}

func TestOverlapMTV(t *testing.T) {
	mtv, ok := OverlapMTV(square(1), square(1).Translated(Vector{1.5, 0}), Vector{1, 0})
	require.True(t, ok)
	assertNear(t, Vector{-0.5, 0}, mtv)

	_, ok = OverlapMTV(square(1), MustCircle(Vector{5, 0}, 1), Vector{1, 0})
	assert.False(t, ok)
}

func TestCheckPolygons_Squares(t *testing.T) {
	a := square(50).TransformedWith(Translation(Vector{60, 0}))
	b := square(50)

	data := CheckPolygons(a, b, true, true)
	require.True(t, data.Collides)
	require.True(t, data.HasMTV)
	assertNear(t, Vector{40, 0}, data.MTV)

	require.Len(t, data.Points, 2)
	assert.ElementsMatch(t, []Vector{{10, -50}, {10, 50}}, data.Points)

	reverse := CheckPolygons(b, a, true, false)
	require.True(t, reverse.Collides)
	assertNear(t, data.MTV.Neg(), reverse.MTV)
	assert.Nil(t, reverse.Points)
}

func TestCheckPolygons_MTVSeparates(t *testing.T) {
	a := square(3).TransformedWith(Transform{Position: Vector{4, 1}, Rotation: 20, Scale: Vector{1, 1}})
	b := square(2).TransformedWith(Rotation(-10))

	data := CheckPolygons(a, b, true, false)
	require.True(t, data.Collides)
	assert.Greater(t, data.MTV.Length(), 0.0)

	moved := a.Translated(data.MTV.Mult(1.001))
	assert.False(t, CheckPolygons(moved, b, false, false).Collides)

	short := a.Translated(data.MTV.Mult(0.9))
	assert.True(t, CheckPolygons(short, b, false, false).Collides)
}

func TestCheckPolygons_Symmetric(t *testing.T) {
	shapes := []Polygon{
		square(1),
		square(2).TransformedWith(Transform{Position: Vector{2.5, 0.5}, Rotation: 30, Scale: Vector{1, 1}}),
		MustPolygon(Vector{0, 0}, Vector{4, 0}, Vector{0, 3}).Translated(Vector{-1, 1}),
		square(1).Translated(Vector{10, 10}),
	}
	for i, a := range shapes {
		for j, b := range shapes {
			ab := CheckPolygons(a, b, true, false)
			ba := CheckPolygons(b, a, true, false)
			assert.Equal(t, ab.Collides, ba.Collides, "%d vs %d", i, j)
			assert.Equal(t, ab.Collides, CheckPolygons(a, b, false, false).Collides, "%d vs %d", i, j)
			if ab.Collides {
				assert.InDelta(t, ab.MTV.Length(), ba.MTV.Length(), 1e-9, "%d vs %d", i, j)
			}
		}
	}
}

func TestCheckPolygons_Separated(t *testing.T) {
	data := CheckPolygons(square(1), square(1).Translated(Vector{2.5, 0}), true, true)
	assert.False(t, data.Collides)
	assert.False(t, data.HasMTV)
	assert.Nil(t, data.Points)
}

func TestCheckPolygons_NoMTVRequested(t *testing.T) {
	data := CheckPolygons(square(1), square(1).Translated(Vector{1, 1}), false, false)
	assert.True(t, data.Collides)
	assert.False(t, data.HasMTV)
}

func TestCheckPolygons_Containment(t *testing.T) {
	inner := square(1).Translated(Vector{7, 0})
	outer := square(10)

	data := CheckPolygons(inner, outer, true, false)
	require.True(t, data.Collides)
	// the way out through the near side
	assertNear(t, Vector{4, 0}, data.MTV)
}

func TestCollisionEdge(t *testing.T) {
	start, end := CollisionEdge(square(1), Vector{1, 0})
	assert.Equal(t, Vector{-1, -1}, start)
	assert.Equal(t, Vector{-1, 1}, end)
}

func TestCollisionPoints_RotatedCorner(t *testing.T) {
	// a diamond poking its corner into the top of a box
	diamond := square(1).TransformedWith(Transform{Position: Vector{0, 1.5}, Rotation: 45, Scale: Vector{1, 1}})
	box := square(1)

	data := CheckPolygons(diamond, box, true, true)
	require.True(t, data.Collides)
	assert.Greater(t, data.MTV.Y, 0.0)
	require.Len(t, data.Points, 1)
	assertNear(t, Vector{0, 1.5 - math.Sqrt2}, data.Points[0])
}

func TestCheckCircles(t *testing.T) {
	a := MustCircle(Vector{0, 0}, 10)
	b := MustCircle(Vector{12, 0}, 5)

	data := CheckCircles(a, b, true, true)
	require.True(t, data.Collides)
	assertNear(t, Vector{-3, 0}, data.MTV)
	require.Len(t, data.Points, 2)
	for _, p := range data.Points {
		assert.InDelta(t, 10, p.Distance(a.Center()), 1e-9)
		assert.InDelta(t, 5, p.Distance(b.Center()), 1e-9)
	}
	assert.InDelta(t, data.Points[0].Y, -data.Points[1].Y, 1e-9)
	assert.InDelta(t, 9.125, data.Points[0].X, 1e-9)

	reverse := CheckCircles(b, a, true, false)
	assertNear(t, Vector{3, 0}, reverse.MTV)
}

func TestCheckCircles_EdgeCases(t *testing.T) {
	// separate
	assert.False(t, CheckCircles(MustCircle(Vector{}, 1), MustCircle(Vector{3, 0}, 1), true, true).Collides)

	// touching
	touching := CheckCircles(MustCircle(Vector{}, 5), MustCircle(Vector{10, 0}, 5), true, true)
	require.True(t, touching.Collides)
	assertNear(t, Vector{}, touching.MTV)
	require.Len(t, touching.Points, 1)
	assertNear(t, Vector{5, 0}, touching.Points[0])

	// one inside the other
	contained := CheckCircles(MustCircle(Vector{}, 10), MustCircle(Vector{3, 0}, 2), true, true)
	require.True(t, contained.Collides)
	assert.InDelta(t, 9, contained.MTV.Length(), 1e-9)
	assert.Empty(t, contained.Points)

	// same center
	same := CheckCircles(MustCircle(Vector{4, 4}, 2), MustCircle(Vector{4, 4}, 3), true, true)
	require.True(t, same.Collides)
	assertNear(t, Vector{-5, 0}, same.MTV)
	assert.Empty(t, same.Points)
}

func placed(t *testing.T, cfg Config, tr Transform, polygons []Polygon, circles []Circle) *worldShapes {
	t.Helper()
	info, err := NewCollisionInformation(polygons, circles)
	require.NoError(t, err)
	shapes, err := placeShapes(info, tr, cfg)
	require.NoError(t, err)
	return shapes
}

func TestWorldShapes_MixedStrategies(t *testing.T) {
	for _, strategy := range []MixedShapeStrategy{MixedShapesPolygon, MixedShapesCircle} {
		t.Run(strategy.String(), func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.MixedShapes = strategy

			circle := placed(t, cfg, IdentityTransform(), nil, []Circle{MustCircle(Vector{}, 5)})
			near := placed(t, cfg, Translation(Vector{8, 0}), []Polygon{square(5)}, nil)
			far := placed(t, cfg, Translation(Vector{20, 0}), []Polygon{square(1)}, nil)

			data := circle.collide(near, true, false)
			require.True(t, data.Collides)
			assert.Less(t, data.MTV.X, 0.0, "the circle is pushed left")

			flipped := near.collide(circle, true, false)
			require.True(t, flipped.Collides)
			assertNear(t, data.MTV.Neg(), flipped.MTV)

			assert.False(t, circle.collide(far, true, true).Collides)
			assert.False(t, far.collide(circle, false, false).Collides)
		})
	}
}

func TestWorldShapes_BoundingCircleBox(t *testing.T) {
	on := true
	cfg := DefaultConfig()
	cfg.MixedShapes = MixedShapesCircle
	cfg.BoundingBoxFirst = &on

	// the square's bounding circle has radius sqrt(200) and reaches the small circle
	box := placed(t, cfg, IdentityTransform(), []Polygon{square(10)}, nil)
	ball := placed(t, cfg, Translation(Vector{12, 0}), nil, []Circle{MustCircle(Vector{}, 1)})
	require.True(t, box.boundingBoxFirst)
	assert.True(t, box.bb.Contains(square(10).BoundingCircle().BB()))

	assert.True(t, box.collide(ball, false, false).Collides)
	assert.True(t, ball.collide(box, true, false).Collides)
}

func TestWorldShapes_PointCircle(t *testing.T) {
	cfg := DefaultConfig()
	point := placed(t, cfg, Translation(Vector{0.5, 0.5}), nil, []Circle{MustCircle(Vector{}, 0)})
	box := placed(t, cfg, IdentityTransform(), []Polygon{square(1)}, nil)

	data := point.collide(box, true, true)
	require.True(t, data.Collides)
	assert.False(t, data.HasMTV, "a point has no way out")
	assert.Empty(t, data.Points)

	data = checkCirclePolygon(MustCircle(Vector{}, 0), nil, square(1), cfg, true, true)
	require.True(t, data.Collides)
	assert.False(t, data.HasMTV)
}

func TestWorldShapes_DistortedCircle(t *testing.T) {
	cfg := DefaultConfig()
	// squashed to an ellipse 10 wide and 2 high
	ellipse := placed(t, cfg, Scaling(1, 0.2), nil, []Circle{MustCircle(Vector{}, 5)})
	require.Empty(t, ellipse.circles)
	require.Len(t, ellipse.polygons, 1)

	above := placed(t, cfg, Translation(Vector{0, 3}), nil, []Circle{MustCircle(Vector{}, 1.5)})
	assert.False(t, ellipse.collide(above, false, false).Collides)

	side := placed(t, cfg, Translation(Vector{5.5, 0}), nil, []Circle{MustCircle(Vector{}, 1)})
	assert.True(t, ellipse.collide(side, false, false).Collides)
}

func TestWorldShapes_MultipleShapes(t *testing.T) {
	cfg := DefaultConfig()
	a := placed(t, cfg, IdentityTransform(), []Polygon{square(1), square(1).Translated(Vector{4, 0})}, nil)
	b := placed(t, cfg, Translation(Vector{5.5, 0}), []Polygon{square(1)}, nil)
	require.True(t, a.boundingBoxFirst)

	data := a.collide(b, true, true)
	require.True(t, data.Collides)
	assertNear(t, Vector{-0.5, 0}, data.MTV)
	assert.Len(t, data.Points, 2)

	far := placed(t, cfg, Translation(Vector{50, 0}), []Polygon{square(1)}, nil)
	assert.False(t, a.collide(far, true, true).Collides)
}
