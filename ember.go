package ember

import "math"

// Vec2 is a 2D vector used for positions, velocities, offsets, and directions
// throughout the API.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// Scale returns v scaled by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Length returns the Euclidean length of v.
func (v Vec2) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Normalize returns the unit vector in v's direction. The zero vector is
// returned unchanged.
func (v Vec2) Normalize() Vec2 {
	ln := v.Length()
	if ln == 0 {
		return v
	}
	return Vec2{v.X / ln, v.Y / ln}
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Intersects reports whether r and other overlap with positive area.
// Adjacent rectangles (sharing only an edge) do NOT intersect; a body resting
// exactly on a floor is touching it, not colliding with it.
func (r Rect) Intersects(other Rect) bool {
	return r.X < other.X+other.Width &&
		r.X+r.Width > other.X &&
		r.Y < other.Y+other.Height &&
		r.Y+r.Height > other.Y
}

// Range is a general-purpose min/max range sampled by spawning code.
type Range struct {
	Min, Max float64
}

// Sample returns a uniformly random value in [Min, Max] drawn from src.
func (r Range) Sample(src Source) float64 {
	if r.Min == r.Max {
		return r.Min
	}
	return r.Min + src.Float64()*(r.Max-r.Min)
}

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default tint (no color modification).
var ColorWhite = Color{1, 1, 1, 1}

// WithAlpha returns the color with its alpha replaced by a.
func (c Color) WithAlpha(a float64) Color {
	c.A = a
	return c
}

// RGBA implements image/color.Color (premultiplied 16-bit components), so a
// Color can be passed straight to ebiten fills and pixel writes.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(clamp(c.R*c.A, 0, 1) * 0xffff)
	g = uint32(clamp(c.G*c.A, 0, 1) * 0xffff)
	b = uint32(clamp(c.B*c.A, 0, 1) * 0xffff)
	a = uint32(clamp(c.A, 0, 1) * 0xffff)
	return
}

const pi = math.Pi

// angleVec returns the vector at the given angle (radians) with the given
// magnitude.
func angleVec(angle, speed float64) Vec2 {
	return Vec2{math.Cos(angle) * speed, math.Sin(angle) * speed}
}

// lerp linearly interpolates between a and b by t.
func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// clamp restricts v to [lo, hi].
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
