package ember

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVerletGravityDisplacement(t *testing.T) {
	// A point at rest (pos == old) under gravity g moves exactly g*dt² in one step.
	g := 981.0
	dt := 1.0 / 60.0
	points := []Point{NewPoint(10, 20)}

	IntegrateVerlet(points, Vec2{0, g}, 1.0, dt)

	assert.InDelta(t, 20+g*dt*dt, points[0].Pos.Y, 1e-12)
	assert.InDelta(t, 10.0, points[0].Pos.X, 1e-12)
}

func TestVerletCarriesVelocity(t *testing.T) {
	// No gravity, no damping: the implicit velocity persists unchanged.
	p := NewPoint(0, 0)
	p.Old = Vec2{-3, -4}
	points := []Point{p}

	IntegrateVerlet(points, Vec2{}, 1.0, 1.0/60.0)

	assert.InDelta(t, 3.0, points[0].Pos.X, 1e-12)
	assert.InDelta(t, 4.0, points[0].Pos.Y, 1e-12)
	assert.Equal(t, Vec2{0, 0}, points[0].Old)
}

func TestVerletDampingScalesVelocity(t *testing.T) {
	p := NewPoint(0, 0)
	p.Old = Vec2{-10, 0}
	points := []Point{p}

	IntegrateVerlet(points, Vec2{}, 0.5, 1.0/60.0)

	assert.InDelta(t, 5.0, points[0].Pos.X, 1e-12)
}

func TestVerletLockedPointNeverMoves(t *testing.T) {
	p := NewPoint(7, 9)
	p.Locked = true
	p.Old = Vec2{0, 0} // even with a huge implicit velocity
	points := []Point{p}

	for range 100 {
		IntegrateVerlet(points, Vec2{0, 981}, 1.0, 1.0/60.0)
	}

	assert.Equal(t, Vec2{7, 9}, points[0].Pos)
}

func TestEulerStep(t *testing.T) {
	pos := Vec2{0, 0}
	vel := Vec2{100, -50}
	dt := 0.1

	IntegrateEuler(&pos, &vel, Vec2{0, 981}, dt)

	// Gravity accelerates first, then the new velocity moves the position.
	assert.InDelta(t, -50+981*dt, vel.Y, 1e-12)
	assert.InDelta(t, 10.0, pos.X, 1e-12)
	assert.InDelta(t, vel.Y*dt, pos.Y, 1e-12)
}

func TestPointVelocity(t *testing.T) {
	p := NewPoint(5, 5)
	assert.Equal(t, Vec2{0, 0}, p.Velocity())

	p.Pos = Vec2{8, 9}
	assert.Equal(t, Vec2{3, 4}, p.Velocity())
}
