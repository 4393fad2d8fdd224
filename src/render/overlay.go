package render

import (
	"image"
	"image/color"
	"image/draw"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// blank returns a white canvas matching go-chart's default background.
func blank(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	return img
}

// notice renders a blank canvas with the title at the top and msg in the middle.
func notice(w, h int, title, msg string) image.Image {
	img := blank(w, h)
	face := basicfont.Face7x13
	dark := image.NewUniform(color.RGBA{R: 51, G: 51, B: 51, A: 255})
	dr := &font.Drawer{Dst: img, Src: dark, Face: face}
	centered := func(text string, y int) {
		tw := dr.MeasureString(text).Ceil()
		dr.Dot = fixed.Point26_6{X: fixed.I((w - tw) / 2), Y: fixed.I(y)}
		dr.DrawString(text)
	}
	if strings.TrimSpace(title) != "" {
		centered(title, 28)
	}
	centered(msg, h/2)
	return img
}

// drawHint draws a small caption onto the image near the bottom-left.
func drawHint(img image.Image, text string) image.Image {
	if img == nil || strings.TrimSpace(text) == "" {
		return img
	}
	b := img.Bounds()
	rgba := image.NewRGBA(b)
	draw.Draw(rgba, b, img, b.Min, draw.Src)
	pad := 4
	face := basicfont.Face7x13
	textCol := image.NewUniform(color.RGBA{R: 255, G: 255, B: 255, A: 255})
	dr := &font.Drawer{Dst: rgba, Src: textCol, Face: face}
	tw := dr.MeasureString(text).Ceil()
	x := b.Min.X + 8
	y := b.Max.Y - 6
	// semi-opaque dark box behind the text keeps it readable over grid lines
	bg := image.NewUniform(color.RGBA{R: 0, G: 0, B: 0, A: 160})
	rect := image.Rect(x-pad, y-face.Metrics().Ascent.Ceil()-pad, x+tw+pad, y+pad/2)
	draw.Draw(rgba, rect, bg, image.Point{}, draw.Over)
	dr.Dot = fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y)}
	dr.DrawString(text)
	return rgba
}
