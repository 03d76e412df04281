package conflict

import "fmt"

// worldShapes is a collidable's shapes placed in the world for one tick.
type worldShapes struct {
	polygons []Polygon
	circles  []Circle
	bb       BB

	boundingBoxFirst bool

	cfg Config
	// circle polygons converted on first use, index aligned with circles
	circlePolygons []*Polygon
}

// placeShapes transforms info's shapes with t. Circles that t would distort become
// polygons before they're transformed.
func placeShapes(info *CollisionInformation, t Transform, cfg Config) (*worldShapes, error) {
	if info.empty() {
		return nil, ErrNoShapes
	}
	if !t.finite() {
		return nil, fmt.Errorf("%+v: %w", t, ErrInvalidTransform)
	}

	shapes := &worldShapes{
		polygons:         make([]Polygon, 0, len(info.polygons)+len(info.circles)),
		boundingBoxFirst: info.boundingBoxFirstWith(cfg),
		cfg:              cfg,
	}
	m := t.Matrix()
	for _, p := range info.polygons {
		shapes.polygons = append(shapes.polygons, p.transformedWith(m))
	}

	uniform := t.SupportsCircles()
	scale := t.uniformScale()
	for _, c := range info.circles {
		if uniform {
			shapes.circles = append(shapes.circles, c.transformedWith(m, scale))
			continue
		}
		converted, err := c.ToPolygon(cfg.CircleMinVertices, cfg.CircleMaxEdgeLength)
		if err != nil {
			shapes.circles = append(shapes.circles, Circle{center: mulPoint(m, c.center)})
			continue
		}
		shapes.polygons = append(shapes.polygons, converted.transformedWith(m))
	}
	shapes.circlePolygons = make([]*Polygon, len(shapes.circles))

	// circles meet polygons through their bounding circles, which reach past the
	// polygon's own box
	first := true
	for _, p := range shapes.polygons {
		bb := p.BB()
		if cfg.MixedShapes == MixedShapesCircle {
			bb = p.BoundingCircle().BB()
		}
		shapes.bb = mergeBB(shapes.bb, bb, first)
		first = false
	}
	for _, c := range shapes.circles {
		shapes.bb = mergeBB(shapes.bb, c.BB(), first)
		first = false
	}
	return shapes, nil
}

func (shapes *worldShapes) circlePolygon(i int) *Polygon {
	if shapes.cfg.MixedShapes != MixedShapesPolygon {
		return nil
	}
	if shapes.circlePolygons[i] == nil {
		p, err := shapes.circles[i].ToPolygon(shapes.cfg.CircleMinVertices, shapes.cfg.CircleMaxEdgeLength)
		if err != nil {
			return nil
		}
		shapes.circlePolygons[i] = &p
	}
	return shapes.circlePolygons[i]
}

// collide checks every shape of a against every shape of b. When no MTV is wanted the
// first collision found is returned. Otherwise every pair is checked, the largest MTV
// wins and the contact points of all colliding pairs are gathered.
func (a *worldShapes) collide(b *worldShapes, wantMTV, wantPoints bool) CollisionData {
	if (a.boundingBoxFirst || b.boundingBoxFirst) && !a.bb.Intersects(b.bb) {
		return noCollision
	}
	wantMTV = wantMTV || wantPoints
	cfg := a.cfg

	var result CollisionData
	// record reports whether checking can stop
	record := func(data CollisionData) bool {
		if !data.Collides {
			return false
		}
		if !wantMTV {
			result = data
			return true
		}
		if data.HasMTV && (!result.HasMTV || data.MTV.LengthSq() > result.MTV.LengthSq()) {
			result.MTV = data.MTV
			result.HasMTV = true
		}
		result.Collides = true
		result.Points = append(result.Points, data.Points...)
		return false
	}

	for _, pa := range a.polygons {
		for _, pb := range b.polygons {
			if record(CheckPolygons(pa, pb, wantMTV, wantPoints)) {
				return result
			}
		}
	}
	for i, ca := range a.circles {
		for _, cb := range b.circles {
			if record(CheckCircles(ca, cb, wantMTV, wantPoints)) {
				return result
			}
		}
		for _, pb := range b.polygons {
			if record(checkCirclePolygon(ca, a.circlePolygon(i), pb, cfg, wantMTV, wantPoints)) {
				return result
			}
		}
	}
	for _, pa := range a.polygons {
		for j, cb := range b.circles {
			data := checkCirclePolygon(cb, b.circlePolygon(j), pa, cfg, wantMTV, wantPoints)
			if record(data.flipped()) {
				return result
			}
		}
	}
	return result
}

// snapshot pairs each participant of a tick with its placed shapes.
type snapshot[T Collidable] struct {
	entity T
	shapes *worldShapes
}
