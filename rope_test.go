package ember

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRopeConstruction(t *testing.T) {
	r := NewRope(Vec2{100, 50}, 8, 12, 30)

	require.Len(t, r.Points, 9)
	require.Len(t, r.Sticks, 8)
	assert.True(t, r.Points[0].Locked)
	for i := 1; i < len(r.Points); i++ {
		assert.False(t, r.Points[i].Locked)
	}
	assert.Equal(t, Vec2{100 + 8*12, 50}, r.Points[8].Pos)
	for _, s := range r.Sticks {
		assert.InDelta(t, 12.0, s.Rest, 1e-12)
	}
}

func TestRopeAnchorStaysPut(t *testing.T) {
	anchor := Vec2{200, 100}
	r := NewRope(anchor, 10, 10, 30)
	r.Gravity = Vec2{0, 981}

	for range 120 {
		r.Step(1.0/60.0, nil)
	}

	assert.Equal(t, anchor, r.Anchor().Pos)
}

func TestRopeSettlesUnderGravity(t *testing.T) {
	r := NewRope(Vec2{200, 100}, 10, 10, 50)
	r.Gravity = Vec2{0, 981}
	r.Damping = 0.95

	for range 600 {
		r.Step(1.0/60.0, nil)
	}

	// A damped rope hangs nearly straight down from its anchor.
	tip := r.Points[len(r.Points)-1].Pos
	assert.InDelta(t, 200.0, tip.X, 1.0)
	assert.InDelta(t, 200.0, tip.Y, 2.0)

	// Constraints hold at rest length.
	for _, s := range r.Sticks {
		assert.InDelta(t, s.Rest, stickLength(r.Points, s), 0.1)
	}
}

func TestRopeMoveAnchor(t *testing.T) {
	r := NewRope(Vec2{0, 0}, 5, 10, 30)
	r.MoveAnchor(Vec2{300, 40})

	assert.Equal(t, Vec2{300, 40}, r.Points[0].Pos)
	assert.Equal(t, Vec2{300, 40}, r.Points[0].Old)

	// The chain pulls back together within rest length per segment.
	for range 60 {
		r.Step(1.0/60.0, nil)
	}
	for _, s := range r.Sticks {
		assert.InDelta(t, s.Rest, stickLength(r.Points, s), 0.5)
	}
}

func TestRopeStaysOutOfObstacles(t *testing.T) {
	r := NewRope(Vec2{200, 100}, 12, 10, 40)
	r.Gravity = Vec2{0, 981}
	r.Damping = 0.98
	obstacles := []Circle{{Center: Vec2{200, 180}, Radius: 30}}

	for range 300 {
		r.Step(1.0/60.0, obstacles)
	}

	for i := 1; i < len(r.Points); i++ {
		d := r.Points[i].Pos.Sub(obstacles[0].Center).Length()
		assert.GreaterOrEqual(t, d, obstacles[0].Radius-1e-9,
			"point %d inside obstacle", i)
	}
}

func TestRopePathAppends(t *testing.T) {
	r := NewRope(Vec2{10, 20}, 3, 5, 10)

	buf := make([]Vec2, 0, 8)
	buf = r.Path(buf)

	require.Len(t, buf, 4)
	assert.Equal(t, Vec2{10, 20}, buf[0])
	assert.Equal(t, Vec2{25, 20}, buf[3])

	// Reuse without realloc.
	buf = r.Path(buf[:0])
	assert.Len(t, buf, 4)
}

func BenchmarkRopeStep_50(b *testing.B) {
	r := NewRope(Vec2{400, 100}, 50, 8, 30)
	r.Gravity = Vec2{0, 981}
	obstacles := []Circle{{Center: Vec2{400, 300}, Radius: 60}}

	for b.Loop() {
		r.Step(1.0/60.0, obstacles)
	}
}
