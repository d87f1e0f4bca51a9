// Shooter — a destructible-terrain sandbox.
//
// Paint voxel terrain with the left mouse button, then blast it apart with
// the right. Bullets glow, explosions shake the screen and throw debris, and
// the player walks, jumps and steps up single-voxel ledges.
//
// Demonstrates: VoxelGrid, Body step-up collision, ParticlePool, Shake,
// Background and GlowFilter.
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

	playerSize   = 30.0
	playerSpeed  = 300.0
	jumpVelocity = -400.0
	gravity      = 981.0

	voxelSize  = 4.0
	drawRadius = 3 * voxelSize
	stepHeight = voxelSize

	bulletSpeed     = 800.0
	bulletSize      = 5.0
	explosionRadius = 4 * voxelSize

	particleLifetime = 1.2
	shakeDuration    = 0.2
	shakeIntensity   = 8.0
)

var (
	playerColor = ember.Color{R: 0, G: 1, B: 0, A: 1}
	voxelColor  = ember.ColorWhite
	bulletColor = ember.Color{R: 1, G: 1, B: 0, A: 1}
	blastColor  = ember.Color{R: 1, G: 200.0 / 255.0, B: 0, A: 1}
	trailColor  = ember.Color{R: 1, G: 1, B: 0, A: 0.5}
)

// ---- game -----------------------------------------------------------------

type bullet struct {
	pos ember.Vec2
	vel ember.Vec2
}

type game struct {
	src ember.Source

	grid    *ember.VoxelGrid
	player  ember.Body
	bullets []bullet

	particles *ember.ParticlePool
	shake     ember.Shake

	background  *ember.Background
	glow        *ember.GlowFilter
	world       *ebiten.Image
	bulletLayer *ebiten.Image

	elapsed float64
	drawing bool
}

func newGame() *game {
	g := &game{
		src:  ember.DefaultSource(),
		grid: ember.NewVoxelGrid(voxelSize),
		player: ember.Body{
			Pos:        ember.Vec2{X: 100, Y: screenH - 100},
			Size:       ember.Vec2{X: playerSize, Y: playerSize},
			StepHeight: stepHeight,
			Airborne:   true,
		},
		particles:   ember.NewParticlePool(2048),
		shake:       ember.Shake{Duration: shakeDuration, Intensity: shakeIntensity},
		background:  ember.NewBackground(),
		glow:        ember.NewGlowFilter(3, 1.6),
		world:       ebiten.NewImage(screenW, screenH),
		bulletLayer: ebiten.NewImage(screenW, screenH),
	}
	return g
}

// ---- update ---------------------------------------------------------------

func (g *game) Update() error {
	dt := 1.0 / 60.0
	g.elapsed += dt

	g.handleInput()
	g.updatePlayer(dt)
	g.updateBullets(dt)
	g.particles.Tick(dt)
	g.shake.Update(g.src, dt)

	return nil
}

func (g *game) handleInput() {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.drawing = true
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		g.drawing = false
	}
	if g.drawing {
		mx, my := ebiten.CursorPosition()
		g.grid.Fill(float64(mx), float64(my), drawRadius)
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		mx, my := ebiten.CursorPosition()
		center := g.player.Pos.Add(g.player.Size.Scale(0.5))
		dir := ember.Vec2{X: float64(mx) - center.X, Y: float64(my) - center.Y}.Normalize()
		g.bullets = append(g.bullets, bullet{pos: center, vel: dir.Scale(bulletSpeed)})
	}
}

func (g *game) updatePlayer(dt float64) {
	switch {
	case ebiten.IsKeyPressed(ebiten.KeyA):
		g.player.Vel.X = -playerSpeed
	case ebiten.IsKeyPressed(ebiten.KeyD):
		g.player.Vel.X = playerSpeed
	default:
		g.player.Vel.X = 0
	}
	if ebiten.IsKeyPressed(ebiten.KeySpace) && !g.player.Airborne {
		g.player.Vel.Y = jumpVelocity
		g.player.Airborne = true
	}

	g.player.Vel.Y += gravity * dt
	newPos := g.player.Pos.Add(g.player.Vel.Scale(dt))
	g.player.MoveAndCollide(g.grid, newPos)

	// Window bounds.
	if g.player.Pos.X < 0 {
		g.player.Pos.X = 0
	}
	if g.player.Pos.X > screenW-playerSize {
		g.player.Pos.X = screenW - playerSize
	}
	if g.player.Pos.Y > screenH-playerSize {
		g.player.Pos.Y = screenH - playerSize
		g.player.Vel.Y = 0
		g.player.Airborne = false
	}
}

func (g *game) updateBullets(dt float64) {
	kept := g.bullets[:0]
	for _, b := range g.bullets {
		b.pos = b.pos.Add(b.vel.Scale(dt))

		// Glowing trail, roughly every other frame.
		if g.src.IntN(2) == 0 {
			g.particles.Spawn(b.pos, ember.Vec2{}, particleLifetime, trailColor)
		}

		bounds := ember.Rect{X: b.pos.X, Y: b.pos.Y, Width: bulletSize, Height: bulletSize}
		if g.grid.CheckCollision(bounds) {
			g.explode(b.pos)
			continue
		}
		if b.pos.X < 0 || b.pos.X > screenW || b.pos.Y < 0 || b.pos.Y > screenH {
			continue
		}
		kept = append(kept, b)
	}
	g.bullets = kept
}

func (g *game) explode(pos ember.Vec2) {
	g.shake.Trigger()
	g.particles.SpawnBurst(g.src, pos, 20, ember.Range{Min: 100, Max: 200}, particleLifetime, blastColor)

	for _, voxel := range g.grid.RemoveWithin(pos, explosionRadius) {
		g.particles.SpawnBurst(g.src, voxel, 3, ember.Range{Min: 50, Max: 100}, particleLifetime, voxelColor)
	}
}

// ---- draw -----------------------------------------------------------------

func (g *game) Draw(screen *ebiten.Image) {
	g.background.Draw(screen, g.elapsed)

	g.world.Clear()

	for _, v := range g.grid.Voxels() {
		vector.DrawFilledRect(g.world, float32(v.X), float32(v.Y), voxelSize, voxelSize, voxelColor, false)
	}

	g.bulletLayer.Clear()
	for _, b := range g.bullets {
		vector.DrawFilledRect(g.bulletLayer, float32(b.pos.X), float32(b.pos.Y), bulletSize, bulletSize, bulletColor, false)
	}
	g.glow.Apply(g.bulletLayer, g.world)

	for _, p := range g.particles.Particles() {
		vector.DrawFilledCircle(g.world, float32(p.Pos.X), float32(p.Pos.Y), 2, p.Color.WithAlpha(p.Alpha()), false)
	}

	vector.DrawFilledRect(g.world, float32(g.player.Pos.X), float32(g.player.Pos.Y), playerSize, playerSize, playerColor, false)

	var op ebiten.DrawImageOptions
	off := g.shake.Offset()
	op.GeoM.Translate(off.X, off.Y)
	screen.DrawImage(g.world, &op)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenW, screenH
}

// ---- main -----------------------------------------------------------------

func main() {
	ebiten.SetWindowSize(screenW, screenH)
	ebiten.SetWindowTitle("Ember — Shooter")
	if err := ebiten.RunGame(newGame()); err != nil {
		log.Fatal(err)
	}
}
