package ember

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoolSpawnVisibleNextTick(t *testing.T) {
	pool := NewParticlePool(16)
	pool.Spawn(Vec2{}, Vec2{}, 1.0, ColorWhite)

	// Queued, not yet live.
	assert.Equal(t, 0, pool.Len())

	pool.Tick(1.0 / 60.0)
	assert.Equal(t, 1, pool.Len())
}

func TestPoolLifetimeExpiry(t *testing.T) {
	const life = 0.5
	const eps = 0.01

	// Ticking past the lifetime removes the particle.
	pool := NewParticlePool(16)
	pool.Spawn(Vec2{}, Vec2{}, life, ColorWhite)
	pool.Tick(life + eps)
	assert.Equal(t, 0, pool.Len())

	// Ticking just short of it retains the particle.
	pool = NewParticlePool(16)
	pool.Spawn(Vec2{}, Vec2{}, life, ColorWhite)
	pool.Tick(life - eps)
	assert.Equal(t, 1, pool.Len())
}

func TestPoolCompactionPreservesOrder(t *testing.T) {
	pool := NewParticlePool(16)
	lives := []float64{5, 0.1, 5, 0.1, 5}
	for i, l := range lives {
		pool.Spawn(Vec2{X: float64(i)}, Vec2{}, l, ColorWhite)
	}
	pool.Tick(0.001) // admit
	pool.Tick(0.2)   // expire the short-lived ones

	ps := pool.Particles()
	require.Len(t, ps, 3)
	// Survivors keep their relative order: indices 0, 2, 4.
	assert.Equal(t, 0.0, ps[0].Pos.X)
	assert.Equal(t, 2.0, ps[1].Pos.X)
	assert.Equal(t, 4.0, ps[2].Pos.X)
}

func TestPoolGravityAndMotion(t *testing.T) {
	pool := NewParticlePool(4)
	pool.Gravity = Vec2{0, 100}
	pool.Spawn(Vec2{}, Vec2{X: 10}, 10, ColorWhite)
	pool.Tick(0) // admit without aging

	for range 60 {
		pool.Tick(1.0 / 60.0)
	}

	p := pool.Particles()[0]
	assert.InDelta(t, 100.0, p.Vel.Y, 1e-6)
	assert.InDelta(t, 10.0, p.Pos.X, 1e-6)
	assert.Greater(t, p.Pos.Y, 40.0) // fell under gravity
}

func TestPoolSpawnBurst(t *testing.T) {
	src := SeededSource(1, 2)
	pool := NewParticlePool(64)
	pool.SpawnBurst(src, Vec2{50, 50}, 20, Range{100, 200}, 1.2, Color{1, 0.8, 0, 1})
	pool.Tick(0)

	ps := pool.Particles()
	require.Len(t, ps, 20)
	for _, p := range ps {
		assert.Equal(t, Vec2{50, 50}, p.Pos)
		speed := p.Vel.Length()
		assert.GreaterOrEqual(t, speed, 100.0-1e-9)
		assert.LessOrEqual(t, speed, 200.0+1e-9)
	}
}

func TestParticleAlphaFades(t *testing.T) {
	p := Particle{Life: 0.6, MaxLife: 1.2, Color: Color{1, 1, 1, 1}}
	assert.InDelta(t, 0.5, p.Alpha(), 1e-9)

	p.Life = 0
	assert.Equal(t, 0.0, p.Alpha())

	// Base alpha scales the fade.
	p = Particle{Life: 0.6, MaxLife: 1.2, Color: Color{1, 1, 1, 0.5}}
	assert.InDelta(t, 0.25, p.Alpha(), 1e-9)
}

func TestPoolReset(t *testing.T) {
	pool := NewParticlePool(16)
	pool.Spawn(Vec2{}, Vec2{}, 1, ColorWhite)
	pool.Tick(0.01)
	pool.Spawn(Vec2{}, Vec2{}, 1, ColorWhite)

	pool.Reset()
	assert.Equal(t, 0, pool.Len())
	pool.Tick(0.01)
	assert.Equal(t, 0, pool.Len())
}

func TestPoolZeroAllocsSteadyState(t *testing.T) {
	pool := NewParticlePool(1024)
	pool.Gravity = Vec2{0, 100}
	src := SeededSource(7, 7)
	pool.SpawnBurst(src, Vec2{}, 512, Range{10, 50}, math.Inf(1), ColorWhite)
	pool.Tick(0)

	allocs := testing.AllocsPerRun(100, func() {
		pool.Tick(1.0 / 60.0)
	})
	assert.Zero(t, allocs)
}

// --- Benchmarks ---

func BenchmarkPoolTick_1000(b *testing.B) {
	pool := NewParticlePool(1000)
	pool.Gravity = Vec2{0, 100}
	src := SeededSource(3, 9)
	pool.SpawnBurst(src, Vec2{}, 1000, Range{10, 50}, math.Inf(1), ColorWhite)
	pool.Tick(0)

	b.ReportAllocs()
	b.ResetTimer()
	for b.Loop() {
		pool.Tick(1.0 / 60.0)
	}
}
