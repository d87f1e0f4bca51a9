package ember

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Shake produces a decaying random screen offset after an impact. Intensity
// tweens from the trigger peak down to zero over the configured duration; the
// per-frame offset is random jitter scaled by the current intensity.
type Shake struct {
	// Duration is how long a shake lasts, in seconds.
	Duration float64
	// Intensity is the peak offset magnitude in pixels.
	Intensity float64

	tween  *gween.Tween
	offset Vec2
}

// Trigger starts (or restarts) the shake at full intensity.
func (s *Shake) Trigger() {
	s.tween = gween.New(float32(s.Intensity), 0, float32(s.Duration), ease.OutQuad)
}

// Update advances the shake by dt and recomputes the jitter offset.
func (s *Shake) Update(src Source, dt float64) {
	if s.tween == nil {
		s.offset = Vec2{}
		return
	}
	strength, done := s.tween.Update(float32(dt))
	if done {
		s.tween = nil
		s.offset = Vec2{}
		return
	}
	s.offset = Vec2{
		X: (src.Float64() - 0.5) * float64(strength),
		Y: (src.Float64() - 0.5) * float64(strength),
	}
}

// Offset returns the current shake displacement to apply to the view.
func (s *Shake) Offset() Vec2 {
	return s.offset
}

// Active reports whether a shake is in progress.
func (s *Shake) Active() bool {
	return s.tween != nil
}
