package conflict

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollisionEvent_Flipped(t *testing.T) {
	a := NewBody(KindOf("a"), nil)
	b := NewBody(KindOf("b"), nil)
	data := CollisionData{Collides: true, MTV: Vector{1, -2}, HasMTV: true, Points: []Vector{{3, 3}}}

	event := NewCollisionEvent(a, b, data, 0.016)
	flipped := event.Flipped()

	assert.Equal(t, b, flipped.Listener())
	assert.Equal(t, a, flipped.Target())
	mtv, ok := flipped.MTV()
	require.True(t, ok)
	assert.Equal(t, Vector{-1, 2}, mtv)
	assert.Equal(t, event.Points(), flipped.Points())
	assert.Equal(t, 0.016, flipped.Duration())

	// the source event is untouched
	mtv, _ = event.MTV()
	assert.Equal(t, Vector{1, -2}, mtv)
	assert.Equal(t, event, flipped.Flipped())
}

func TestCollisionEvent_WithoutMTV(t *testing.T) {
	a := NewBody(KindOf("a"), nil)
	b := NewBody(KindOf("b"), nil)

	event := NewCollisionEvent(a, b, CollisionData{Collides: true}, 1)
	_, ok := event.MTV()
	assert.False(t, ok)
	assert.Nil(t, event.Points())

	_, ok = event.Flipped().MTV()
	assert.False(t, ok)
}

func TestCollisionEvent_PointsAreCopied(t *testing.T) {
	a := NewBody(KindOf("a"), nil)
	b := NewBody(KindOf("b"), nil)
	points := []Vector{{1, 1}, {2, 2}}

	event := NewCollisionEvent(a, b, CollisionData{Collides: true, HasMTV: true, Points: points}, 1)
	points[0] = Vector{9, 9}
	got := event.Points()
	assert.Equal(t, Vector{1, 1}, got[0])

	got[1] = Vector{9, 9}
	assert.Equal(t, Vector{2, 2}, event.Points()[1])
}

func TestCollisionEvent_Participants(t *testing.T) {
	a := NewBody(KindOf("a"), nil)
	b := NewBody(KindOf("b"), nil)
	c := NewBody(KindOf("c"), nil)
	event := NewCollisionEvent(a, b, CollisionData{Collides: true}, 1)

	assert.True(t, event.IsListener(a))
	assert.False(t, event.IsListener(b))
	assert.True(t, event.IsTarget(b))
	assert.True(t, event.Concerns(a))
	assert.True(t, event.Concerns(b))
	assert.False(t, event.Concerns(c))
	assert.False(t, event.Concerns(nil))

	assert.Equal(t, b, event.Counterpart(a))
	assert.Equal(t, a, event.Counterpart(b))
	assert.Nil(t, event.Counterpart(c))
}
