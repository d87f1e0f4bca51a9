package ember

// Rope is a chain of Verlet points connected by sticks, with the first point
// locked as an anchor. It owns its point arena; sticks refer to points by
// index so the arena may grow or be copied safely.
type Rope struct {
	Points []Point
	Sticks []Stick

	// Gravity and Damping feed the Verlet integrator each Step.
	Gravity Vec2
	Damping float64

	solver Solver
}

// NewRope builds a rope of segments sticks hanging from anchor. Points are
// laid out horizontally at creation; the first point is locked.
func NewRope(anchor Vec2, segments int, segLength float64, iterations int) *Rope {
	if segments < 1 {
		segments = 1
	}
	r := &Rope{
		Damping: 1.0,
		solver:  Solver{Iterations: iterations},
	}
	r.Points = make([]Point, segments+1)
	for i := range r.Points {
		r.Points[i] = NewPoint(anchor.X+float64(i)*segLength, anchor.Y)
	}
	r.Points[0].Locked = true

	r.Sticks = make([]Stick, segments)
	for i := range r.Sticks {
		r.Sticks[i] = NewStick(r.Points, PointID(i), PointID(i+1))
	}
	return r
}

// Anchor returns the rope's locked anchor point.
func (r *Rope) Anchor() *Point {
	return &r.Points[0]
}

// MoveAnchor teleports the anchor, zeroing its implicit velocity.
func (r *Rope) MoveAnchor(pos Vec2) {
	r.Points[0].Pos = pos
	r.Points[0].Old = pos
}

// Step advances the rope by one fixed timestep: Verlet integration of every
// unlocked point, then iterative constraint relaxation with obstacle clamping
// interleaved per solver pass.
func (r *Rope) Step(dt float64, obstacles []Circle) {
	IntegrateVerlet(r.Points, r.Gravity, r.Damping, dt)
	r.solver.Solve(r.Points, r.Sticks, obstacles)
}

// Path appends the rope's point positions to buf and returns it, for feeding
// a Ribbon without allocating per frame.
func (r *Rope) Path(buf []Vec2) []Vec2 {
	for i := range r.Points {
		buf = append(buf, r.Points[i].Pos)
	}
	return buf
}
