package conflict

import "fmt"

// CollisionEvent tells a listener it collided with a target during a tick. The MTV is
// the listener's way out of the target.
type CollisionEvent struct {
	listener Collidable
	target   Collidable

	mtv    Vector
	hasMTV bool
	points []Vector

	duration float64
}

func NewCollisionEvent(listener, target Collidable, data CollisionData, duration float64) CollisionEvent {
	e := CollisionEvent{
		listener: listener,
		target:   target,
		duration: duration,
	}
	if data.HasMTV {
		e.mtv = data.MTV
		e.hasMTV = true
	}
	if len(data.Points) > 0 {
		e.points = append([]Vector(nil), data.Points...)
	}
	return e
}

// Listener is the collidable the event is addressed to.
func (e CollisionEvent) Listener() Collidable {
	return e.listener
}

// Target is what the listener collided with.
func (e CollisionEvent) Target() Collidable {
	return e.target
}

// MTV returns the translation that moves the listener out of the target. ok is false
// when nobody asked for it.
func (e CollisionEvent) MTV() (mtv Vector, ok bool) {
	return e.mtv, e.hasMTV
}

// Points returns a copy of the contact points, nil if none were calculated.
func (e CollisionEvent) Points() []Vector {
	if e.points == nil {
		return nil
	}
	return append([]Vector(nil), e.points...)
}

// Duration is the length of the tick the collision happened in.
func (e CollisionEvent) Duration() float64 {
	return e.duration
}

// Flipped is the same event seen by the target.
func (e CollisionEvent) Flipped() CollisionEvent {
	e.listener, e.target = e.target, e.listener
	if e.hasMTV {
		e.mtv = e.mtv.Neg()
	}
	return e
}

func (e CollisionEvent) IsListener(c Collidable) bool {
	return c != nil && c == e.listener
}

func (e CollisionEvent) IsTarget(c Collidable) bool {
	return c != nil && c == e.target
}

// Concerns reports whether c takes part in the collision.
func (e CollisionEvent) Concerns(c Collidable) bool {
	return e.IsListener(c) || e.IsTarget(c)
}

// Counterpart returns the other participant from c's point of view, or nil when c
// isn't part of the event.
func (e CollisionEvent) Counterpart(c Collidable) Collidable {
	switch {
	case e.IsListener(c):
		return e.target
	case e.IsTarget(c):
		return e.listener
	}
	return nil
}

func (e CollisionEvent) String() string {
	if e.hasMTV {
		return fmt.Sprintf("CollisionEvent{%v -> %v, mtv=%v, points=%d}", e.listener, e.target, e.mtv, len(e.points))
	}
	return fmt.Sprintf("CollisionEvent{%v -> %v}", e.listener, e.target)
}
