package ember

// Particle is a timed entity with a finite lifetime budget. Its alpha fades
// in proportion to remaining life.
type Particle struct {
	Pos     Vec2
	Vel     Vec2
	Life    float64 // remaining lifetime in seconds
	MaxLife float64 // initial lifetime
	Color   Color
}

// Alpha returns the particle's current opacity: its base alpha scaled by the
// fraction of lifetime remaining.
func (p *Particle) Alpha() float64 {
	if p.MaxLife <= 0 {
		return 0
	}
	return p.Color.A * clamp(p.Life/p.MaxLife, 0, 1)
}

// ParticlePool owns a set of particles with per-tick update-and-expire
// semantics. Spawns are queued and become live at the start of the next Tick,
// so input-driven spawns never mutate the set a tick is mid-way through.
//
// Expired particles are compacted out preserving the relative order of
// survivors; draw order therefore stays stable as particles die.
type ParticlePool struct {
	Gravity Vec2 // constant acceleration applied to every particle

	live    []Particle
	pending []Particle
}

// NewParticlePool creates a pool with capacity preallocated for max particles.
func NewParticlePool(max int) *ParticlePool {
	if max <= 0 {
		max = 128
	}
	return &ParticlePool{
		live:    make([]Particle, 0, max),
		pending: make([]Particle, 0, 32),
	}
}

// Spawn queues a particle. It becomes live on the next Tick.
func (pool *ParticlePool) Spawn(pos, vel Vec2, life float64, col Color) {
	pool.pending = append(pool.pending, Particle{
		Pos:     pos,
		Vel:     vel,
		Life:    life,
		MaxLife: life,
		Color:   col,
	})
}

// SpawnBurst queues count particles radiating from pos with uniformly random
// angle in [0, 2π) and speed drawn from the given range.
func (pool *ParticlePool) SpawnBurst(src Source, pos Vec2, count int, speed Range, life float64, col Color) {
	for range count {
		vel := angleVec(src.Float64()*2*pi, speed.Sample(src))
		pool.Spawn(pos, vel, life, col)
	}
}

// Tick admits pending spawns, advances every live particle by dt, and removes
// the ones whose lifetime crossed zero.
func (pool *ParticlePool) Tick(dt float64) {
	pool.live = append(pool.live, pool.pending...)
	pool.pending = pool.pending[:0]

	kept := pool.live[:0]
	for i := range pool.live {
		p := &pool.live[i]
		p.Life -= dt
		if p.Life <= 0 {
			continue
		}
		IntegrateEuler(&p.Pos, &p.Vel, pool.Gravity, dt)
		kept = append(kept, *p)
	}
	pool.live = kept
}

// Len returns the number of live particles. Pending spawns are not counted
// until the Tick that admits them.
func (pool *ParticlePool) Len() int {
	return len(pool.live)
}

// Particles returns the live particle slice for rendering. The returned slice
// MUST NOT be mutated and is invalidated by the next Tick.
func (pool *ParticlePool) Particles() []Particle {
	return pool.live
}

// Reset drops all live and pending particles.
func (pool *ParticlePool) Reset() {
	pool.live = pool.live[:0]
	pool.pending = pool.pending[:0]
}
