package ember

// PointID is a stable index into a point arena. Constraints store PointIDs
// rather than pointers so the backing slice may reallocate freely.
type PointID int

// Point is a single movable mass in a position-based simulation. Velocity is
// implicit: the difference between Pos and Old.
type Point struct {
	Pos    Vec2
	Old    Vec2
	Locked bool // locked points are never displaced by integration or constraints
}

// NewPoint creates an at-rest point at (x, y).
func NewPoint(x, y float64) Point {
	p := Vec2{x, y}
	return Point{Pos: p, Old: p}
}

// Velocity returns the point's implicit per-step velocity.
func (p *Point) Velocity() Vec2 {
	return p.Pos.Sub(p.Old)
}
