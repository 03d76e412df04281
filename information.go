package conflict

import "fmt"

// CollisionInformation holds the local space shapes of a collidable. Polygons are kept
// convex, concave input is split up on construction. Only the listener kind allowlist
// can change afterwards.
type CollisionInformation struct {
	polygons []Polygon
	circles  []Circle

	boundingBoxFirst *bool
	listenerKinds    KindSet
	bb               BB
}

type InfoOption func(info *CollisionInformation)

// WithBoundingBoxFirst decides whether the shapes' combined bounding boxes are compared
// before any shape is tested. It defaults to on when there's more than one shape.
func WithBoundingBoxFirst(enabled bool) InfoOption {
	return func(info *CollisionInformation) {
		info.boundingBoxFirst = &enabled
	}
}

// WithListenerKinds limits which kinds of listeners are told about collisions with
// these shapes.
func WithListenerKinds(kinds KindSet) InfoOption {
	return func(info *CollisionInformation) {
		info.listenerKinds = kinds.Clone()
	}
}

func NewCollisionInformation(polygons []Polygon, circles []Circle, opts ...InfoOption) (*CollisionInformation, error) {
	if len(polygons) == 0 && len(circles) == 0 {
		return nil, ErrNoShapes
	}

	info := &CollisionInformation{
		circles: append([]Circle(nil), circles...),
	}
	for i, p := range polygons {
		if p.Count() < 3 {
			return nil, fmt.Errorf("polygon %d: %w", i, ErrTooFewVertices)
		}
		info.polygons = append(info.polygons, p.ToConvexPolygons()...)
	}
	for i, c := range circles {
		if !finite(c.radius) || c.radius < 0 {
			return nil, fmt.Errorf("circle %d: %w", i, ErrInvalidRadius)
		}
	}

	for _, opt := range opts {
		opt(info)
	}

	first := true
	for _, p := range info.polygons {
		info.bb = mergeBB(info.bb, p.BB(), first)
		first = false
	}
	for _, c := range info.circles {
		info.bb = mergeBB(info.bb, c.BB(), first)
		first = false
	}
	return info, nil
}

// MustCollisionInformation is like NewCollisionInformation but panics on invalid input.
func MustCollisionInformation(polygons []Polygon, circles []Circle, opts ...InfoOption) *CollisionInformation {
	info, err := NewCollisionInformation(polygons, circles, opts...)
	if err != nil {
		panic(err)
	}
	return info
}

// Polygons returns the convex polygons in local space.
func (info *CollisionInformation) Polygons() []Polygon {
	return info.polygons
}

func (info *CollisionInformation) Circles() []Circle {
	return info.circles
}

func (info *CollisionInformation) UsesPolygons() bool {
	return len(info.polygons) > 0
}

func (info *CollisionInformation) UsesCircles() bool {
	return len(info.circles) > 0
}

// BB is the local space bounding box of every shape.
func (info *CollisionInformation) BB() BB {
	return info.bb
}

// BoundingBoxFirst reports whether the bounding boxes are compared before the shapes.
func (info *CollisionInformation) BoundingBoxFirst() bool {
	return info.boundingBoxFirstWith(DefaultConfig())
}

func (info *CollisionInformation) boundingBoxFirstWith(cfg Config) bool {
	switch {
	case info.boundingBoxFirst != nil:
		return *info.boundingBoxFirst
	case cfg.BoundingBoxFirst != nil:
		return *cfg.BoundingBoxFirst
	}
	return len(info.polygons)+len(info.circles) > 1
}

func (info *CollisionInformation) ListenerKinds() KindSet {
	return info.listenerKinds
}

// SetListenerKinds replaces the listener allowlist. Nil allows every listener.
func (info *CollisionInformation) SetListenerKinds(kinds KindSet) {
	info.listenerKinds = kinds.Clone()
}

// AllowsEventsFor reports whether listeners of the given kind may hear about
// collisions with these shapes.
func (info *CollisionInformation) AllowsEventsFor(k Kind) bool {
	if info == nil {
		return false
	}
	return info.listenerKinds.Accepts(k)
}

// ContainsPoint tests a local space point against every shape.
func (info *CollisionInformation) ContainsPoint(p Vector) bool {
	if !info.bb.ContainsVect(p) {
		return false
	}
	for _, polygon := range info.polygons {
		if polygon.ContainsPoint(p) {
			return true
		}
	}
	for _, circle := range info.circles {
		if circle.ContainsPoint(p) {
			return true
		}
	}
	return false
}

func (info *CollisionInformation) empty() bool {
	return info == nil || len(info.polygons)+len(info.circles) == 0
}

func mergeBB(a, b BB, first bool) BB {
	if first {
		return b
	}
	return a.Merge(b)
}
