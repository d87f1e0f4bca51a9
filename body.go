package ember

// Body is a moving axis-aligned box resolved against a VoxelGrid, such as
// the shooter's player. Airborne is false only while a ground probe one unit
// below the body finds a collision-free body sitting on something.
type Body struct {
	Pos  Vec2 // top-left corner
	Vel  Vec2
	Size Vec2

	// StepHeight is the tallest ledge the body ascends automatically instead
	// of being blocked. Typically one voxel.
	StepHeight float64

	Airborne bool
}

// Bounds returns the body's current collision rectangle.
func (b *Body) Bounds() Rect {
	return Rect{X: b.Pos.X, Y: b.Pos.Y, Width: b.Size.X, Height: b.Size.Y}
}

// boundsAt returns the body's collision rectangle at an arbitrary position.
func (b *Body) boundsAt(x, y float64) Rect {
	return Rect{X: x, Y: y, Width: b.Size.X, Height: b.Size.Y}
}

// canStepUp reports whether the blocked horizontal move to pos succeeds when
// raised by StepHeight. Only meaningful when pos itself collides.
func (b *Body) canStepUp(grid *VoxelGrid, pos Vec2) bool {
	if !grid.CheckCollision(b.boundsAt(pos.X, pos.Y)) {
		return false // nothing to step over
	}
	return !grid.CheckCollision(b.boundsAt(pos.X, pos.Y-b.StepHeight))
}

// MoveAndCollide moves the body toward newPos, resolving voxel collisions.
// Resolution is ordered and must stay ordered: the horizontal sub-step runs
// first (with step-up as a conditional override of horizontal blocking), then
// the vertical sub-step at the possibly step-adjusted position, then the
// ground probe. Reordering these reintroduces the tunneling and wall-sticking
// artifacts this decomposition exists to avoid.
func (b *Body) MoveAndCollide(grid *VoxelGrid, newPos Vec2) {
	oldPos := b.Pos

	// Horizontal sub-step at the old height.
	if grid.CheckCollision(b.boundsAt(newPos.X, oldPos.Y)) {
		if b.canStepUp(grid, Vec2{newPos.X, oldPos.Y}) {
			newPos.Y = oldPos.Y - b.StepHeight
		} else {
			newPos.X = oldPos.X
			b.Vel.X = 0
		}
	}

	// Vertical sub-step at the final position.
	finalBounds := b.boundsAt(newPos.X, newPos.Y)
	if grid.CheckCollision(finalBounds) {
		if b.Vel.Y > 0 {
			newPos.Y = oldPos.Y
			b.Vel.Y = 0
			b.Airborne = false
		} else if b.Vel.Y < 0 {
			newPos.Y = oldPos.Y
			b.Vel.Y = 0
		}
		finalBounds = b.boundsAt(newPos.X, newPos.Y)
	}

	// Ground probe: airborne unless something sits one unit below.
	if !grid.CheckCollision(finalBounds) {
		probe := finalBounds
		probe.Y += 1.0
		b.Airborne = !grid.CheckCollision(probe)
	}

	b.Pos = newPos
}
