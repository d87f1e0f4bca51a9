package ember

// Stage identifies which phase of its life a firework is in.
type Stage uint8

const (
	// StageAscending is the rocket phase: a single point climbing against
	// gravity until apex.
	StageAscending Stage = iota
	// StageExploded is the burst phase: the rocket is gone and its child
	// particles are living out their lifetimes.
	StageExploded
)

// FireworkConfig controls how a firework's burst is spawned.
type FireworkConfig struct {
	// Gravity is the constant acceleration applied to the rocket and to every
	// burst particle.
	Gravity Vec2
	// BurstCount is the number of particles spawned at apex.
	BurstCount int
	// BurstSpeed is the range of initial burst particle speeds.
	BurstSpeed Range
	// BurstLife is each burst particle's lifetime in seconds.
	BurstLife float64
	// Palette is the set of colors bursts draw from, one picked at random per
	// particle. Empty palettes burst white.
	Palette []Color
}

// Firework is a two-stage timed entity: an ascending rocket that replaces
// itself with a burst of particles at apex. It is finished only when it has
// exploded and every burst particle has expired.
type Firework struct {
	Pos   Vec2
	Vel   Vec2
	Trail Color // rocket tint while ascending

	stage Stage
	burst *ParticlePool
	cfg   FireworkConfig
}

// NewFirework launches a rocket at pos with initial velocity vel. vel.Y
// should be negative (upward); apex is reached when gravity turns it around.
func NewFirework(pos, vel Vec2, trail Color, cfg FireworkConfig) *Firework {
	if cfg.BurstCount <= 0 {
		cfg.BurstCount = 40
	}
	burst := NewParticlePool(cfg.BurstCount)
	burst.Gravity = cfg.Gravity
	return &Firework{
		Pos:   pos,
		Vel:   vel,
		Trail: trail,
		burst: burst,
		cfg:   cfg,
	}
}

// Stage returns the firework's current stage.
func (f *Firework) Stage() Stage {
	return f.stage
}

// Burst returns the burst particle pool for rendering. Empty until apex.
func (f *Firework) Burst() *ParticlePool {
	return f.burst
}

// Update advances the firework by dt. While ascending, the rocket integrates
// under gravity; the moment its vertical velocity stops being upward it
// transitions to the burst stage, spawning the configured particles at the
// rocket's final position.
func (f *Firework) Update(src Source, dt float64) {
	switch f.stage {
	case StageAscending:
		IntegrateEuler(&f.Pos, &f.Vel, f.cfg.Gravity, dt)
		if f.Vel.Y >= 0 {
			f.explode(src)
		}
	case StageExploded:
		f.burst.Tick(dt)
	}
}

// Done reports whether the firework can be removed: it has exploded and its
// burst has fully expired.
func (f *Firework) Done() bool {
	return f.stage == StageExploded && f.burst.Len() == 0
}

func (f *Firework) explode(src Source) {
	f.stage = StageExploded
	for range f.cfg.BurstCount {
		col := ColorWhite
		if len(f.cfg.Palette) > 0 {
			col = f.cfg.Palette[src.IntN(len(f.cfg.Palette))]
		}
		vel := angleVec(src.Float64()*2*pi, f.cfg.BurstSpeed.Sample(src))
		f.burst.Spawn(f.Pos, vel, f.cfg.BurstLife, col)
	}
	// Admit the burst immediately so Done() is accurate and the burst is
	// visible the same frame the rocket disappears.
	f.burst.Tick(0)
}
