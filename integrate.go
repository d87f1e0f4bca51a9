package ember

// IntegrateVerlet advances every unlocked point by one position-based step:
//
//	vel = (pos - old) * damping
//	old = pos
//	pos += vel + gravity * dt²
//
// Damping is in (0, 1]; 1.0 conserves energy. Locked points are untouched.
func IntegrateVerlet(points []Point, gravity Vec2, damping, dt float64) {
	gx := gravity.X * dt * dt
	gy := gravity.Y * dt * dt
	for i := range points {
		p := &points[i]
		if p.Locked {
			continue
		}
		vx := (p.Pos.X - p.Old.X) * damping
		vy := (p.Pos.Y - p.Old.Y) * damping
		p.Old = p.Pos
		p.Pos.X += vx + gx
		p.Pos.Y += vy + gy
	}
}

// IntegrateEuler advances a velocity-carrying entity by one explicit step:
// gravity accelerates the velocity, then the velocity moves the position.
func IntegrateEuler(pos, vel *Vec2, gravity Vec2, dt float64) {
	vel.X += gravity.X * dt
	vel.Y += gravity.Y * dt
	pos.X += vel.X * dt
	pos.Y += vel.Y * dt
}
