package conflict

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVector_Normalize(t *testing.T) {
	v := Vector{}
	assert.Equal(t, Vector{}, v.Normalize())

	u := Vector{3, 4}.Normalize()
	assert.InDelta(t, 0.6, u.X, 1e-12)
	assert.InDelta(t, 0.8, u.Y, 1e-12)
}

func TestVector_Perp(t *testing.T) {
	v := Vector{1, 0}
	assert.Equal(t, Vector{0, 1}, v.Perp())
	assert.Equal(t, Vector{0, -1}, v.ReversePerp())
}

func TestVector_Direction(t *testing.T) {
	assert.InDelta(t, 0, Vector{1, 0}.Direction(), 1e-9)
	assert.InDelta(t, 90, Vector{0, 1}.Direction(), 1e-9)
	assert.InDelta(t, 180, Vector{-1, 0}.Direction(), 1e-9)
	assert.InDelta(t, -90, Vector{0, -1}.Direction(), 1e-9)

	d := ForDirection(30)
	assert.InDelta(t, 30, d.Direction(), 1e-9)
	assert.InDelta(t, 1, d.Length(), 1e-12)
}

func TestVector_Rotate(t *testing.T) {
	v := Vector{2, 0}.Rotate(90)
	assert.InDelta(t, 0, v.X, 1e-12)
	assert.InDelta(t, 2, v.Y, 1e-12)
}

func TestVector_WithLength(t *testing.T) {
	v := Vector{10, 0}.WithLength(-3)
	assert.Equal(t, Vector{-3, 0}, v)
	assert.Equal(t, Vector{}, Vector{}.WithLength(5))
}

func TestVector_Project(t *testing.T) {
	assert.Equal(t, Vector{3, 0}, Vector{3, 4}.Project(Vector{2, 0}))
	assert.Equal(t, Vector{}, Vector{3, 4}.Project(Vector{}))
}

func TestVector_IsParallelWith(t *testing.T) {
	assert.True(t, Vector{1, 1}.IsParallelWith(Vector{2, 2}))
	assert.True(t, Vector{1, 1}.IsParallelWith(Vector{-3, -3}))
	assert.False(t, Vector{1, 0}.IsParallelWith(Vector{1, 0.1}))
}

func TestNormalizeTurn(t *testing.T) {
	assert.InDelta(t, 90, normalizeTurn(90), 1e-12)
	assert.InDelta(t, -90, normalizeTurn(270), 1e-12)
	assert.InDelta(t, 180, normalizeTurn(-180), 1e-12)
	assert.InDelta(t, 10, normalizeTurn(-350), 1e-12)
}

func TestTurnWinding(t *testing.T) {
	assert.Equal(t, CounterClockwise, TurnWinding(0))
	assert.Equal(t, CounterClockwise, TurnWinding(179))
	assert.Equal(t, Clockwise, TurnWinding(180))
	assert.Equal(t, Clockwise, TurnWinding(-10))
	assert.Equal(t, CounterClockwise, TurnWinding(360+45))
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 1.0, Clamp(5, 0, 1))
	assert.Equal(t, 0.0, Clamp(-5, 0, 1))
}
