package ember

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// Ribbon turns a polyline into a triangle strip of constant thickness: every
// path point yields two vertices offset along the perpendicular, and each
// segment becomes a quadrilateral of two triangles. SrcX carries cumulative
// path length so a texture tiles along the ribbon; SrcY spans the image
// height.
type Ribbon struct {
	Width float64

	// Vertices and Indices are rebuilt by SetPoints and drawn with
	// ebiten.Image.DrawTriangles. For N points: 2N vertices, 6(N-1) indices.
	Vertices []ebiten.Vertex
	Indices  []uint16

	imageH float64
	cumLen []float64 // preallocated cumulative length buffer
}

// NewRibbon creates a ribbon of the given thickness. imageH is the height of
// the texture the ribbon will be drawn with (0 for untextured).
func NewRibbon(width, imageH float64) *Ribbon {
	return &Ribbon{Width: width, imageH: imageH}
}

// SetPoints rebuilds the ribbon geometry along the given path. Buffers are
// reused at their high-water mark, so a per-frame caller does not allocate.
func (rb *Ribbon) SetPoints(points []Vec2) {
	if len(points) < 2 {
		rb.Vertices = rb.Vertices[:0]
		rb.Indices = rb.Indices[:0]
		return
	}

	n := len(points)
	numVerts := n * 2
	numInds := (n - 1) * 6

	if cap(rb.Vertices) < numVerts {
		rb.Vertices = make([]ebiten.Vertex, numVerts)
	}
	rb.Vertices = rb.Vertices[:numVerts]

	if cap(rb.Indices) < numInds {
		rb.Indices = make([]uint16, numInds)
	}
	rb.Indices = rb.Indices[:numInds]

	if cap(rb.cumLen) < n {
		rb.cumLen = make([]float64, n)
	}
	rb.cumLen = rb.cumLen[:n]
	rb.cumLen[0] = 0
	for i := 1; i < n; i++ {
		rb.cumLen[i] = rb.cumLen[i-1] + points[i].Sub(points[i-1]).Length()
	}

	halfW := rb.Width / 2

	for i := 0; i < n; i++ {
		// Perpendicular normal: endpoint segments use their single neighbor,
		// interior points average the adjacent segment normals.
		var nx, ny float64
		switch {
		case i == 0:
			nx, ny = perpendicular(points[0], points[1])
		case i == n-1:
			nx, ny = perpendicular(points[n-2], points[n-1])
		default:
			nx0, ny0 := perpendicular(points[i-1], points[i])
			nx1, ny1 := perpendicular(points[i], points[i+1])
			nx, ny = nx0+nx1, ny0+ny1
			ln := math.Sqrt(nx*nx + ny*ny)
			if ln > 1e-10 {
				nx /= ln
				ny /= ln
			}
		}

		srcX := float32(rb.cumLen[i])
		vi := i * 2
		rb.Vertices[vi] = ebiten.Vertex{
			DstX:   float32(points[i].X + nx*halfW),
			DstY:   float32(points[i].Y + ny*halfW),
			SrcX:   srcX,
			SrcY:   0,
			ColorR: 1, ColorG: 1, ColorB: 1, ColorA: 1,
		}
		rb.Vertices[vi+1] = ebiten.Vertex{
			DstX:   float32(points[i].X - nx*halfW),
			DstY:   float32(points[i].Y - ny*halfW),
			SrcX:   srcX,
			SrcY:   float32(rb.imageH),
			ColorR: 1, ColorG: 1, ColorB: 1, ColorA: 1,
		}
	}

	for i := 0; i < n-1; i++ {
		ii := i * 6
		v := uint16(i * 2)
		rb.Indices[ii+0] = v
		rb.Indices[ii+1] = v + 1
		rb.Indices[ii+2] = v + 2
		rb.Indices[ii+3] = v + 1
		rb.Indices[ii+4] = v + 3
		rb.Indices[ii+5] = v + 2
	}
}

// perpendicular returns the unit left-perpendicular of the segment from a to b.
func perpendicular(a, b Vec2) (float64, float64) {
	dx := b.X - a.X
	dy := b.Y - a.Y
	ln := math.Sqrt(dx*dx + dy*dy)
	if ln < 1e-10 {
		return 0, -1
	}
	return -dy / ln, dx / ln
}

// WhitePixel returns a shared 1x1 white image for untextured geometry.
func WhitePixel() *ebiten.Image {
	if whitePixel == nil {
		whitePixel = ebiten.NewImage(1, 1)
		whitePixel.Fill(ColorWhite)
	}
	return whitePixel
}

var whitePixel *ebiten.Image
