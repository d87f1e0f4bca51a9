package ember

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGlowFilterRadiusClampsToOne(t *testing.T) {
	f := NewGlowFilter(-5, 1)
	assert.Equal(t, 1, f.Radius)

	f = NewGlowFilter(0, 1)
	assert.Equal(t, 1, f.Radius)
}

func TestGlowFilterKeepsRadius(t *testing.T) {
	f := NewGlowFilter(4, 2.5)
	assert.Equal(t, 4, f.Radius)
	assert.Equal(t, 2.5, f.Strength)
}

func TestCRTFilterDefaults(t *testing.T) {
	f := NewCRTFilter()
	assert.Equal(t, 2.0, f.PixelSize)
	assert.Equal(t, 1.5, f.Curve)
	assert.Equal(t, 0.25, f.ScanlineIntensity)
	assert.Equal(t, 1.2, f.ChromaticIntensity)
}
