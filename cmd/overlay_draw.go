package cmd

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/mj1618/locator-cli/internal/model"
	"github.com/mj1618/locator-cli/internal/snapshot"
)

// renderOverlay draws every snapshot element as an outlined rectangle with
// its runtime id at the center. The canvas matches the root element's
// bounds; element coordinates are shifted to be root-relative. Elements are
// drawn in reverse hit-test order so higher-priority elements end up on top.
func renderOverlay(snap *snapshot.Snapshot) *image.RGBA {
	root := snap.Tree.Node(snap.Tree.Root()).Data
	w, h := root.Bounds.Width(), root.Bounds.Height()
	if w <= 0 || h <= 0 {
		w, h = 1920, 1080
	}
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	boxColor := color.RGBA{R: 255, G: 0, B: 0, A: 255}
	textColor := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	outlineColor := color.RGBA{R: 0, G: 0, B: 0, A: 200}

	for i := len(snap.Elements) - 1; i >= 0; i-- {
		e := snap.Elements[i]
		if e.Index == snap.Tree.Root() {
			continue
		}
		drawElementBox(img, e.Record, root.Bounds, boxColor, textColor, outlineColor)
	}
	return img
}

// drawElementBox draws one record's rectangle and runtime-id label in
// root-relative coordinates.
func drawElementBox(img *image.RGBA, rec model.NodeRecord, rootBounds model.Rect, boxColor, textColor, outlineColor color.Color) {
	x1 := rec.Bounds.Left - rootBounds.Left
	y1 := rec.Bounds.Top - rootBounds.Top
	x2 := rec.Bounds.Right - rootBounds.Left
	y2 := rec.Bounds.Bottom - rootBounds.Top

	drawRectangle(img, x1, y1, x2, y2, boxColor)

	cx, cy := rec.Bounds.Center()
	drawTextWithOutline(img, rec.RtID, cx-rootBounds.Left, cy-rootBounds.Top, textColor, outlineColor)
}

func isWithinBounds(bounds image.Rectangle, x, y int) bool {
	return x >= bounds.Min.X && x < bounds.Max.X && y >= bounds.Min.Y && y < bounds.Max.Y
}

// drawRectangle draws a rectangle outline on the image
func drawRectangle(img *image.RGBA, x1, y1, x2, y2 int, c color.Color) {
	bounds := img.Bounds()

	// Clamp to image bounds
	if x1 < bounds.Min.X {
		x1 = bounds.Min.X
	}
	if y1 < bounds.Min.Y {
		y1 = bounds.Min.Y
	}
	if x2 > bounds.Max.X {
		x2 = bounds.Max.X
	}
	if y2 > bounds.Max.Y {
		y2 = bounds.Max.Y
	}

	if x2 <= x1 || y2 <= y1 {
		return // Empty rectangle
	}

	// Draw top and bottom lines
	for x := x1; x < x2; x++ {
		if isWithinBounds(bounds, x, y1) {
			img.Set(x, y1, c)
		}
		if isWithinBounds(bounds, x, y2-1) {
			img.Set(x, y2-1, c)
		}
	}

	// Draw left and right lines
	for y := y1; y < y2; y++ {
		if isWithinBounds(bounds, x1, y) {
			img.Set(x1, y, c)
		}
		if isWithinBounds(bounds, x2-1, y) {
			img.Set(x2-1, y, c)
		}
	}
}

// drawTextWithOutline draws text with an outline for better visibility
func drawTextWithOutline(img *image.RGBA, text string, x, y int, textColor, outlineColor color.Color) {
	// basicfont.Face7x13: ~7px per character, ~13px tall
	textWidth := len(text) * 7
	textHeight := 13

	// Offset position to center the text at (x, y)
	offsetX := x - textWidth/2
	offsetY := y - textHeight/2

	// Draw outline (8 directions around the text)
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			if dx == 0 && dy == 0 {
				continue
			}
			p := fixed.Point26_6{
				X: fixed.Int26_6((offsetX + dx) * 64),
				Y: fixed.Int26_6((offsetY + dy) * 64),
			}
			d := &font.Drawer{
				Dst:  img,
				Src:  image.NewUniform(outlineColor),
				Face: basicfont.Face7x13,
				Dot:  p,
			}
			d.DrawString(text)
		}
	}

	// Draw main text
	point := fixed.Point26_6{
		X: fixed.Int26_6(offsetX * 64),
		Y: fixed.Int26_6(offsetY * 64),
	}
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(textColor),
		Face: basicfont.Face7x13,
		Dot:  point,
	}
	d.DrawString(text)
}
