package ember

import "math"

// Circle is a static circular obstacle. The radius is immutable for the
// simulation's lifetime.
type Circle struct {
	Center Vec2
	Radius float64
}

// Contains reports whether p lies strictly inside the circle.
func (c Circle) Contains(p Vec2) bool {
	dx := p.X - c.Center.X
	dy := p.Y - c.Center.Y
	return dx*dx+dy*dy < c.Radius*c.Radius
}

// Resolve returns p projected radially onto the circle boundary if p is
// inside the circle, otherwise p unchanged. The direction is recomputed from
// the angle center→p each call; a point exactly at the center projects at
// angle 0 (the +X boundary) so the result stays deterministic.
func (c Circle) Resolve(p Vec2) Vec2 {
	dx := p.X - c.Center.X
	dy := p.Y - c.Center.Y
	if dx*dx+dy*dy >= c.Radius*c.Radius {
		return p
	}
	angle := 0.0
	if dx != 0 || dy != 0 {
		angle = math.Atan2(dy, dx)
	}
	return Vec2{
		X: c.Center.X + math.Cos(angle)*c.Radius,
		Y: c.Center.Y + math.Sin(angle)*c.Radius,
	}
}

// Circles is a brute-force overlap query over a set of circular obstacles.
type Circles []Circle

// Hit returns the first obstacle containing p, or nil.
func (cs Circles) Hit(p Vec2) *Circle {
	for i := range cs {
		if cs[i].Contains(p) {
			return &cs[i]
		}
	}
	return nil
}
