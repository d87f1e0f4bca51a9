package ember

import (
	"math"

	"github.com/kamstrup/intmap"
)

// VoxelGrid is a dynamic set of fixed-size axis-aligned cells. Voxels are
// created on demand (draw input) and destroyed when exploded. Positions snap
// to multiples of Size.
//
// Collision queries scan every voxel. That is deliberate: at the scales these
// demos run it is fast enough, and the O(n·m) cost is documented rather than
// hidden behind a spatial index. Spawn dedupe, by contrast, is keyed through
// an integer map so repeated draw strokes stay cheap.
type VoxelGrid struct {
	// Size is the side length of every voxel. Immutable after creation.
	Size float64

	voxels  []Vec2 // snapped top-left corners
	index   *intmap.Map[int64, int32]
	removed []Vec2 // reused result buffer for RemoveWithin
}

// NewVoxelGrid creates an empty grid with the given voxel side length.
func NewVoxelGrid(size float64) *VoxelGrid {
	return &VoxelGrid{
		Size:  size,
		index: intmap.New[int64, int32](256),
	}
}

// Len returns the number of voxels in the grid.
func (g *VoxelGrid) Len() int {
	return len(g.voxels)
}

// Voxels returns the grid's voxel corners. The returned slice MUST NOT be
// mutated; it is invalidated by Add, Fill, and RemoveWithin.
func (g *VoxelGrid) Voxels() []Vec2 {
	return g.voxels
}

// Add snaps (x, y) to the grid and inserts a voxel there. Reports whether a
// voxel was created (false if one already occupies the cell).
func (g *VoxelGrid) Add(x, y float64) bool {
	ix := int32(math.Round(x / g.Size))
	iy := int32(math.Round(y / g.Size))
	key := cellKey(ix, iy)
	if _, ok := g.index.Get(key); ok {
		return false
	}
	g.index.Put(key, int32(len(g.voxels)))
	g.voxels = append(g.voxels, Vec2{float64(ix) * g.Size, float64(iy) * g.Size})
	return true
}

// Fill adds voxels in a disc of the given radius around (cx, cy), snapping
// each to the grid and skipping occupied cells.
func (g *VoxelGrid) Fill(cx, cy, radius float64) {
	for x := -radius; x <= radius; x += g.Size {
		for y := -radius; y <= radius; y += g.Size {
			if math.Sqrt(x*x+y*y) <= radius {
				g.Add(cx+x, cy+y)
			}
		}
	}
}

// CheckCollision reports whether bounds intersects any voxel.
func (g *VoxelGrid) CheckCollision(bounds Rect) bool {
	for _, v := range g.voxels {
		if bounds.Intersects(Rect{X: v.X, Y: v.Y, Width: g.Size, Height: g.Size}) {
			return true
		}
	}
	return false
}

// RemoveWithin deletes every voxel whose corner lies within radius of center
// and returns the removed corners, so callers can spawn debris where voxels
// used to be. The returned slice is only valid until the next RemoveWithin.
func (g *VoxelGrid) RemoveWithin(center Vec2, radius float64) []Vec2 {
	g.removed = g.removed[:0]
	for i := 0; i < len(g.voxels); {
		v := g.voxels[i]
		if v.Sub(center).Length() < radius {
			g.removed = append(g.removed, v)
			g.deleteAt(i)
			continue
		}
		i++
	}
	return g.removed
}

// deleteAt swap-removes the voxel at slice position i, keeping the key index
// consistent for the voxel that moved into the hole.
func (g *VoxelGrid) deleteAt(i int) {
	v := g.voxels[i]
	g.index.Del(cellKey(g.cellOf(v)))

	last := len(g.voxels) - 1
	if i != last {
		moved := g.voxels[last]
		g.voxels[i] = moved
		g.index.Put(cellKey(g.cellOf(moved)), int32(i))
	}
	g.voxels = g.voxels[:last]
}

// cellOf returns the integer cell coordinates of a snapped corner.
func (g *VoxelGrid) cellOf(v Vec2) (int32, int32) {
	return int32(math.Round(v.X / g.Size)), int32(math.Round(v.Y / g.Size))
}

// cellKey packs integer cell coordinates into a single map key.
func cellKey(ix, iy int32) int64 {
	return int64(ix)<<32 | int64(uint32(iy))
}
