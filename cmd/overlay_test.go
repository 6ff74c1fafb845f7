package cmd

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderOverlay(t *testing.T) {
	snap := testSnapshot(t)
	img := renderOverlay(snap)
	require.NotNil(t, img)

	// Canvas matches the root element's bounds.
	assert.Equal(t, 800, img.Bounds().Dx())
	assert.Equal(t, 600, img.Bounds().Dy())

	// The App window's top edge runs along y=0; its outline must have been
	// drawn over the white background.
	red := color.RGBA{R: 255, G: 0, B: 0, A: 255}
	assert.Equal(t, red, img.RGBAAt(200, 0))

	// Far corner stays background white.
	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	assert.Equal(t, white, img.RGBAAt(700, 500))
}
