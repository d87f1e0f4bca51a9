package ember

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// Filter is the interface for post-processing effects applied to a rendered
// frame or layer.
type Filter interface {
	// Apply renders src into dst with the filter effect.
	Apply(src, dst *ebiten.Image)
}

// --- Kage shader sources ---
// All shaders use //kage:unit pixels as required by Ebitengine.

const backgroundShaderSrc = `//kage:unit pixels
package main

var Time float
var Resolution vec2

func Fragment(dst vec4, src vec2, color vec4) vec4 {
	uv := dst.xy / Resolution
	v := sin(uv.x*10.0+Time) + sin(uv.y*8.0-Time*0.7) + sin((uv.x+uv.y)*6.0+Time*0.5)
	v *= 0.25
	col := vec3(
		0.04+0.04*sin(v*3.0),
		0.05+0.05*sin(v*3.0+2.0),
		0.10+0.08*sin(v*3.0+4.0))
	return vec4(col, 1.0)
}
`

const crtShaderSrc = `//kage:unit pixels
package main

var Resolution vec2
var PixelSize float
var Curve float
var ScanlineIntensity float
var ChromaticIntensity float

func Fragment(dst vec4, src vec2, color vec4) vec4 {
	origin := imageSrc0Origin()
	uv := (src - origin) / Resolution

	// Barrel distortion toward the screen edges.
	centered := uv*2.0 - 1.0
	centered *= 1.0 + Curve*dot(centered, centered)*0.1
	uv = (centered + 1.0) / 2.0
	if uv.x < 0.0 || uv.x > 1.0 || uv.y < 0.0 || uv.y > 1.0 {
		return vec4(0.0, 0.0, 0.0, 1.0)
	}

	// Quantize sampling to a coarse pixel grid.
	if PixelSize > 1.0 {
		px := vec2(PixelSize, PixelSize) / Resolution
		uv = (floor(uv/px) + 0.5) * px
	}

	// Chromatic aberration: offset the red and blue taps horizontally.
	p := uv*Resolution + origin
	shift := vec2(ChromaticIntensity, 0.0)
	r := imageSrc0At(p + shift).r
	g := imageSrc0At(p).g
	b := imageSrc0At(p - shift).b
	col := vec3(r, g, b)

	// Scanlines.
	scan := 1.0 - ScanlineIntensity*(0.5+0.5*sin(uv.y*Resolution.y*3.14159))
	col *= scan

	return vec4(col, 1.0)
}
`

// --- Lazy shader compilation (no sync.Once, ember is single-threaded) ---

var (
	backgroundShader *ebiten.Shader
	crtShader        *ebiten.Shader
)

// A shader that fails to compile is a setup failure: the program cannot run
// without it, so the ensure helpers panic rather than return an error into
// the frame loop.

func ensureBackgroundShader() *ebiten.Shader {
	if backgroundShader == nil {
		s, err := ebiten.NewShader([]byte(backgroundShaderSrc))
		if err != nil {
			panic("ember: failed to compile background shader: " + err.Error())
		}
		backgroundShader = s
	}
	return backgroundShader
}

func ensureCRTShader() *ebiten.Shader {
	if crtShader == nil {
		s, err := ebiten.NewShader([]byte(crtShaderSrc))
		if err != nil {
			panic("ember: failed to compile CRT shader: " + err.Error())
		}
		crtShader = s
	}
	return crtShader
}

// --- Background ---

// Background fills a target with an animated procedural gradient, driven by
// elapsed time. It is a generator, not a Filter: it reads nothing back.
type Background struct {
	uniforms map[string]any
	shaderOp ebiten.DrawRectShaderOptions
}

// NewBackground creates a background generator.
func NewBackground() *Background {
	return &Background{uniforms: make(map[string]any, 2)}
}

// Draw fills dst with the background evaluated at the given time in seconds.
func (bg *Background) Draw(dst *ebiten.Image, elapsed float64) {
	shader := ensureBackgroundShader()
	bounds := dst.Bounds()
	bg.uniforms["Time"] = float32(elapsed)
	bg.uniforms["Resolution"] = []float32{float32(bounds.Dx()), float32(bounds.Dy())}
	bg.shaderOp.Uniforms = bg.uniforms
	dst.DrawRectShader(bounds.Dx(), bounds.Dy(), shader, &bg.shaderOp)
}

// --- GlowFilter ---

// GlowFilter brightens a layer with a Kawase blur composited additively over
// the source. Strength scales the bloom contribution.
type GlowFilter struct {
	// Radius is the blur radius in pixels.
	Radius int
	// Strength scales the additive bloom pass. 0 disables the glow.
	Strength float64

	temps []*ebiten.Image
	imgOp ebiten.DrawImageOptions
}

// NewGlowFilter creates a glow filter.
func NewGlowFilter(radius int, strength float64) *GlowFilter {
	if radius < 1 {
		radius = 1
	}
	return &GlowFilter{Radius: radius, Strength: strength}
}

// Apply draws src into dst, then an additive blurred copy on top.
func (f *GlowFilter) Apply(src, dst *ebiten.Image) {
	op := &f.imgOp
	op.GeoM.Reset()
	op.ColorScale.Reset()
	op.Blend = ebiten.BlendSourceOver
	dst.DrawImage(src, op)

	if f.Strength <= 0 {
		return
	}

	blurred := f.blur(src)
	op.GeoM.Reset()
	op.ColorScale.Reset()
	sw := float64(blurred.Bounds().Dx())
	sh := float64(blurred.Bounds().Dy())
	tw := float64(dst.Bounds().Dx())
	th := float64(dst.Bounds().Dy())
	op.GeoM.Scale(tw/sw, th/sh)
	s := float32(f.Strength)
	op.ColorScale.Scale(s, s, s, s)
	op.Filter = ebiten.FilterLinear
	op.Blend = ebiten.BlendLighter
	dst.DrawImage(blurred, op)
	op.Blend = ebiten.BlendSourceOver
}

// blur runs an iterative downscale chain over src and returns the smallest
// level: bilinear filtering during each half-size draw does the smoothing.
func (f *GlowFilter) blur(src *ebiten.Image) *ebiten.Image {
	passes := int(math.Ceil(math.Log2(float64(f.Radius))))
	if passes < 1 {
		passes = 1
	}

	for len(f.temps) < passes {
		f.temps = append(f.temps, nil)
	}

	op := &f.imgOp
	current := src
	w := src.Bounds().Dx()
	h := src.Bounds().Dy()
	for i := 0; i < passes; i++ {
		w = max(w/2, 1)
		h = max(h/2, 1)
		if f.temps[i] == nil || f.temps[i].Bounds().Dx() != w || f.temps[i].Bounds().Dy() != h {
			if f.temps[i] != nil {
				f.temps[i].Deallocate()
			}
			f.temps[i] = ebiten.NewImage(w, h)
		} else {
			f.temps[i].Clear()
		}
		op.GeoM.Reset()
		op.ColorScale.Reset()
		op.Blend = ebiten.BlendSourceOver
		sw := float64(current.Bounds().Dx())
		sh := float64(current.Bounds().Dy())
		op.GeoM.Scale(float64(w)/sw, float64(h)/sh)
		op.Filter = ebiten.FilterLinear
		f.temps[i].DrawImage(current, op)
		current = f.temps[i]
	}
	return current
}

// --- CRTFilter ---

// CRTFilter pixelates, curves, scanlines, and chromatically splits a frame,
// in the style of an old CRT monitor. All knobs can be tuned live.
type CRTFilter struct {
	// PixelSize quantizes sampling to a coarse grid; values <= 1 disable it.
	PixelSize float64
	// Curve is the barrel distortion amount. 0 is flat.
	Curve float64
	// ScanlineIntensity darkens alternate lines; 0 disables scanlines.
	ScanlineIntensity float64
	// ChromaticIntensity is the horizontal RGB split in pixels.
	ChromaticIntensity float64

	uniforms map[string]any
	resF32   [2]float32
	shaderOp ebiten.DrawRectShaderOptions
}

// NewCRTFilter creates a CRT filter with mild defaults.
func NewCRTFilter() *CRTFilter {
	return &CRTFilter{
		PixelSize:          2,
		Curve:              1.5,
		ScanlineIntensity:  0.25,
		ChromaticIntensity: 1.2,
		uniforms:           make(map[string]any, 5),
	}
}

// Apply renders the CRT effect from src into dst.
func (f *CRTFilter) Apply(src, dst *ebiten.Image) {
	shader := ensureCRTShader()
	bounds := src.Bounds()
	f.resF32[0] = float32(bounds.Dx())
	f.resF32[1] = float32(bounds.Dy())
	f.uniforms["Resolution"] = f.resF32[:]
	f.uniforms["PixelSize"] = float32(f.PixelSize)
	f.uniforms["Curve"] = float32(f.Curve)
	f.uniforms["ScanlineIntensity"] = float32(f.ScanlineIntensity)
	f.uniforms["ChromaticIntensity"] = float32(f.ChromaticIntensity)
	f.shaderOp.Images[0] = src
	f.shaderOp.Uniforms = f.uniforms
	dst.DrawRectShader(bounds.Dx(), bounds.Dy(), shader, &f.shaderOp)
}
