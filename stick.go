package ember

// Stick is a distance constraint between two points in an arena. The rest
// length is captured at creation and never changes.
type Stick struct {
	A, B PointID
	Rest float64
}

// NewStick creates a stick whose rest length is the current distance between
// the two points.
func NewStick(points []Point, a, b PointID) Stick {
	return Stick{A: a, B: b, Rest: points[b].Pos.Sub(points[a].Pos).Length()}
}

// Solver iteratively relaxes stick constraints and clamps points out of
// obstacles. Relaxation is local: each pass visits every constraint once in
// list order and applies a symmetric half-correction, so results converge
// approximately over Iterations passes rather than being solved exactly.
type Solver struct {
	// Iterations is the number of full relaxation passes per Solve call.
	// Always run exactly; there is no convergence early-exit.
	Iterations int
}

// Solve runs the configured number of passes over sticks, clamping points out
// of the given obstacles after each pass. Locked points receive no correction;
// their unlocked partner absorbs the full correction instead.
func (s *Solver) Solve(points []Point, sticks []Stick, obstacles []Circle) {
	iters := s.Iterations
	if iters <= 0 {
		iters = 1
	}
	for range iters {
		for _, st := range sticks {
			relaxStick(points, st)
		}
		for i := range points {
			p := &points[i]
			if p.Locked {
				continue
			}
			for _, ob := range obstacles {
				p.Pos = ob.Resolve(p.Pos)
			}
		}
	}
}

// relaxStick moves the stick's endpoints toward its rest length. Coincident
// endpoints are skipped: the correction direction is undefined and dividing
// by the zero length would poison both positions with NaN.
func relaxStick(points []Point, st Stick) {
	a := &points[st.A]
	b := &points[st.B]
	if a.Locked && b.Locked {
		return
	}

	dx := b.Pos.X - a.Pos.X
	dy := b.Pos.Y - a.Pos.Y
	length := Vec2{dx, dy}.Length()
	if length == 0 {
		return
	}
	diff := (length - st.Rest) / length

	switch {
	case a.Locked:
		b.Pos.X -= dx * diff
		b.Pos.Y -= dy * diff
	case b.Locked:
		a.Pos.X += dx * diff
		a.Pos.Y += dy * diff
	default:
		a.Pos.X += dx * diff * 0.5
		a.Pos.Y += dy * diff * 0.5
		b.Pos.X -= dx * diff * 0.5
		b.Pos.Y -= dy * diff * 0.5
	}
}
