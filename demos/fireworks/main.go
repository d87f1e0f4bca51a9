// Fireworks — a night-sky particle show.
//
// Rockets launch from the bottom of the screen on a timer, or wherever you
// click. Each one climbs against gravity, leaves a sparkling trail, and
// bursts at apex into a colored shell rendered additively.
//
// Demonstrates: Firework staging, ParticlePool, SeededSource determinism and
// additive layer compositing.
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

	gravityY       = 180.0
	launchInterval = 0.9 // seconds between automatic launches
	trailLife      = 0.6
)

var palettes = [][]ember.Color{
	{{R: 1, G: 0.35, B: 0.25, A: 1}, {R: 1, G: 0.65, B: 0.2, A: 1}, {R: 1, G: 0.9, B: 0.5, A: 1}},
	{{R: 0.3, G: 0.7, B: 1, A: 1}, {R: 0.5, G: 0.45, B: 1, A: 1}, {R: 0.85, G: 0.9, B: 1, A: 1}},
	{{R: 0.4, G: 1, B: 0.5, A: 1}, {R: 0.8, G: 1, B: 0.4, A: 1}, {R: 1, G: 1, B: 0.85, A: 1}},
	{{R: 1, G: 0.4, B: 0.8, A: 1}, {R: 0.8, G: 0.3, B: 1, A: 1}, {R: 1, G: 0.8, B: 0.95, A: 1}},
}

// ---- game -----------------------------------------------------------------

type game struct {
	src ember.Source

	fireworks []*ember.Firework
	trails    *ember.ParticlePool

	sky     *ebiten.Image
	elapsed float64
	nextAt  float64
}

func newGame() *game {
	return &game{
		src:    ember.DefaultSource(),
		trails: ember.NewParticlePool(4096),
		sky:    ebiten.NewImage(screenW, screenH),
	}
}

func (g *game) launch(x float64) {
	palette := palettes[g.src.IntN(len(palettes))]
	cfg := ember.FireworkConfig{
		Gravity:    ember.Vec2{Y: gravityY},
		BurstCount: 60 + g.src.IntN(60),
		BurstSpeed: ember.Range{Min: 60, Max: 220},
		BurstLife:  1.4,
		Palette:    palette,
	}
	vel := ember.Vec2{
		X: (g.src.Float64() - 0.5) * 60,
		Y: -(260 + g.src.Float64()*120),
	}
	f := ember.NewFirework(ember.Vec2{X: x, Y: screenH}, vel, palette[0], cfg)
	g.fireworks = append(g.fireworks, f)
}

// ---- update ---------------------------------------------------------------

func (g *game) Update() error {
	dt := 1.0 / 60.0
	g.elapsed += dt

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, _ := ebiten.CursorPosition()
		g.launch(float64(mx))
	}
	if g.elapsed >= g.nextAt {
		g.launch(40 + g.src.Float64()*(screenW-80))
		g.nextAt = g.elapsed + launchInterval
	}

	kept := g.fireworks[:0]
	for _, f := range g.fireworks {
		f.Update(g.src, dt)
		if f.Stage() == ember.StageAscending {
			g.trails.Spawn(f.Pos, ember.Vec2{}, trailLife, f.Trail)
		}
		if !f.Done() {
			kept = append(kept, f)
		}
	}
	g.fireworks = kept
	g.trails.Tick(dt)

	return nil
}

// ---- draw -----------------------------------------------------------------

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(ember.Color{R: 0.02, G: 0.02, B: 0.06, A: 1})

	g.sky.Clear()
	for _, p := range g.trails.Particles() {
		vector.DrawFilledCircle(g.sky, float32(p.Pos.X), float32(p.Pos.Y), 1.5, p.Color.WithAlpha(p.Alpha()), false)
	}
	for _, f := range g.fireworks {
		if f.Stage() == ember.StageAscending {
			vector.DrawFilledCircle(g.sky, float32(f.Pos.X), float32(f.Pos.Y), 2.5, f.Trail, false)
			continue
		}
		for _, p := range f.Burst().Particles() {
			vector.DrawFilledCircle(g.sky, float32(p.Pos.X), float32(p.Pos.Y), 2, p.Color.WithAlpha(p.Alpha()), false)
		}
	}

	var op ebiten.DrawImageOptions
	op.Blend = ebiten.BlendLighter
	screen.DrawImage(g.sky, &op)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenW, screenH
}

// ---- main -----------------------------------------------------------------

func main() {
	ebiten.SetWindowSize(screenW, screenH)
	ebiten.SetWindowTitle("Ember — Fireworks")
	if err := ebiten.RunGame(newGame()); err != nil {
		log.Fatal(err)
	}
}
