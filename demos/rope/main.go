// Rope — hanging Verlet ropes on a CRT.
//
// Several ropes hang from anchors along the top of the screen and drape over
// circular pegs. Drag an anchor with the mouse to swing its rope around. The
// whole frame is post-processed with a CRT filter; press C to toggle it.
//
// Demonstrates: Rope, Solver obstacle clamping, Ribbon meshes and CRTFilter.
package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/solacegames/ember"
)

// ---- configuration --------------------------------------------------------

const (
	screenW = 800
	screenH = 600

	numRopes    = 5
	segments    = 24
	segLength   = 9.0
	iterations  = 30
	ropeWidth   = 5.0
	ropeGravity = 981.0
	ropeDamping = 0.98

	grabRadius = 20.0
)

var ropeColors = [numRopes]ember.Color{
	{R: 0.95, G: 0.35, B: 0.3, A: 1},
	{R: 0.95, G: 0.7, B: 0.2, A: 1},
	{R: 0.35, G: 0.85, B: 0.45, A: 1},
	{R: 0.3, G: 0.6, B: 0.95, A: 1},
	{R: 0.75, G: 0.4, B: 0.9, A: 1},
}

// ---- game -----------------------------------------------------------------

type game struct {
	ropes   [numRopes]*ember.Rope
	ribbons [numRopes]*ember.Ribbon
	pegs    []ember.Circle

	crt      *ember.CRTFilter
	frame    *ebiten.Image
	crtOn    bool
	dragging int // rope index being dragged, -1 when none

	path []ember.Vec2
}

func newGame() *game {
	g := &game{
		crt:      ember.NewCRTFilter(),
		frame:    ebiten.NewImage(screenW, screenH),
		crtOn:    true,
		dragging: -1,
		pegs: []ember.Circle{
			{Center: ember.Vec2{X: 200, Y: 300}, Radius: 45},
			{Center: ember.Vec2{X: 430, Y: 380}, Radius: 60},
			{Center: ember.Vec2{X: 640, Y: 260}, Radius: 35},
		},
	}
	for i := range g.ropes {
		anchor := ember.Vec2{X: 120 + float64(i)*140, Y: 40}
		g.ropes[i] = ember.NewRope(anchor, segments, segLength, iterations)
		g.ropes[i].Gravity = ember.Vec2{Y: ropeGravity}
		g.ropes[i].Damping = ropeDamping
		g.ribbons[i] = ember.NewRibbon(ropeWidth, 0)
	}
	return g
}

// ---- update ---------------------------------------------------------------

func (g *game) Update() error {
	dt := 1.0 / 60.0

	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.crtOn = !g.crtOn
	}

	mx, my := ebiten.CursorPosition()
	cursor := ember.Vec2{X: float64(mx), Y: float64(my)}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		for i, r := range g.ropes {
			if r.Anchor().Pos.Sub(cursor).Length() <= grabRadius {
				g.dragging = i
				break
			}
		}
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		g.dragging = -1
	}
	if g.dragging >= 0 {
		g.ropes[g.dragging].MoveAnchor(cursor)
	}

	for _, r := range g.ropes {
		r.Step(dt, g.pegs)
	}

	return nil
}

// ---- draw -----------------------------------------------------------------

func (g *game) Draw(screen *ebiten.Image) {
	g.frame.Fill(ember.Color{R: 0.07, G: 0.06, B: 0.1, A: 1})

	for _, peg := range g.pegs {
		vector.DrawFilledCircle(g.frame, float32(peg.Center.X), float32(peg.Center.Y), float32(peg.Radius),
			ember.Color{R: 0.2, G: 0.2, B: 0.28, A: 1}, true)
	}

	white := ember.WhitePixel()
	for i, r := range g.ropes {
		g.path = r.Path(g.path[:0])
		g.ribbons[i].SetPoints(g.path)

		col := ropeColors[i]
		verts := g.ribbons[i].Vertices
		for j := range verts {
			verts[j].ColorR = float32(col.R)
			verts[j].ColorG = float32(col.G)
			verts[j].ColorB = float32(col.B)
		}
		g.frame.DrawTriangles(verts, g.ribbons[i].Indices, white, nil)

		anchor := r.Anchor().Pos
		vector.DrawFilledCircle(g.frame, float32(anchor.X), float32(anchor.Y), 6, col, true)
	}

	if g.crtOn {
		g.crt.Apply(g.frame, screen)
	} else {
		screen.DrawImage(g.frame, nil)
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenW, screenH
}

// ---- main -----------------------------------------------------------------

func main() {
	ebiten.SetWindowSize(screenW, screenH)
	ebiten.SetWindowTitle("Ember — Rope")
	if err := ebiten.RunGame(newGame()); err != nil {
		log.Fatal(err)
	}
}
