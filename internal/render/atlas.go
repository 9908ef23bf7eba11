package render

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	GlyphWidth  = 16
	GlyphHeight = 16
	AtlasCols   = 16
	AtlasRows   = 16
)

// CP437 codes the HUD draws besides printable ASCII.
const (
	GlyphShadeLight = 176 // ░
	GlyphShadeMid   = 177 // ▒
	GlyphVLine      = 179 // │
	GlyphTopRight   = 191 // ┐
	GlyphBotLeft    = 192 // └
	GlyphHLine      = 196 // ─
	GlyphBotRight   = 217 // ┘
	GlyphTopLeft    = 218 // ┌
	GlyphFull       = 219 // █
)

// FontAtlas is a 16x16 grid of 16px glyphs, one per CP437 code.
type FontAtlas struct {
	image  *ebiten.Image
	glyphs [256]*ebiten.Image
}

// NewFontAtlas rasterizes the atlas. Printable ASCII comes from
// basicfont.Face7x13; box and block glyphs are drawn by hand.
func NewFontAtlas() *FontAtlas {
	img := image.NewNRGBA(image.Rect(0, 0, AtlasCols*GlyphWidth, AtlasRows*GlyphHeight))
	face := basicfont.Face7x13

	for code := 0; code < 256; code++ {
		cx := (code % AtlasCols) * GlyphWidth
		cy := (code / AtlasCols) * GlyphHeight

		switch {
		case code >= 32 && code <= 126:
			drawFontGlyph(img, face, cx, cy, rune(code))
		default:
			if bc, ok := boxChars[byte(code)]; ok {
				drawBoxGlyph(img, cx, cy, bc)
			} else {
				drawBlockGlyph(img, cx, cy, byte(code))
			}
		}
	}

	eimg := ebiten.NewImageFromImage(img)
	a := &FontAtlas{image: eimg}
	for code := 0; code < 256; code++ {
		x := (code % AtlasCols) * GlyphWidth
		y := (code / AtlasCols) * GlyphHeight
		a.glyphs[code] = eimg.SubImage(image.Rect(x, y, x+GlyphWidth, y+GlyphHeight)).(*ebiten.Image)
	}
	return a
}

// Glyph returns the sub-image for a CP437 code.
func (a *FontAtlas) Glyph(code byte) *ebiten.Image {
	return a.glyphs[code]
}

// drawFontGlyph centers a 7x13 basicfont glyph in its 16x16 cell.
func drawFontGlyph(img *image.NRGBA, face font.Face, cellX, cellY int, r rune) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.White),
		Face: face,
		Dot:  fixed.P(cellX+4, cellY+13),
	}
	d.DrawString(string(r))
}

// boxChars maps CP437 codes to {left, right, top, bottom} connections.
var boxChars = map[byte][4]bool{
	GlyphVLine:    {false, false, true, true},
	GlyphTopRight: {true, false, false, true},
	GlyphBotLeft:  {false, true, true, false},
	GlyphHLine:    {true, true, false, false},
	GlyphBotRight: {true, false, true, false},
	GlyphTopLeft:  {false, true, false, true},
}

// drawBoxGlyph draws 2px single lines through the cell center.
func drawBoxGlyph(img *image.NRGBA, cellX, cellY int, conn [4]bool) {
	w := color.NRGBA{255, 255, 255, 255}
	cx, cy := cellX+7, cellY+7
	left, right, top, bottom := conn[0], conn[1], conn[2], conn[3]

	if left {
		for x := cellX; x < cx+2; x++ {
			img.SetNRGBA(x, cy, w)
			img.SetNRGBA(x, cy+1, w)
		}
	}
	if right {
		for x := cx; x < cellX+GlyphWidth; x++ {
			img.SetNRGBA(x, cy, w)
			img.SetNRGBA(x, cy+1, w)
		}
	}
	if top {
		for y := cellY; y < cy+2; y++ {
			img.SetNRGBA(cx, y, w)
			img.SetNRGBA(cx+1, y, w)
		}
	}
	if bottom {
		for y := cy; y < cellY+GlyphHeight; y++ {
			img.SetNRGBA(cx, y, w)
			img.SetNRGBA(cx+1, y, w)
		}
	}
}

// drawBlockGlyph draws shading and solid blocks; other codes stay empty.
func drawBlockGlyph(img *image.NRGBA, cellX, cellY int, code byte) {
	var on func(x, y int) bool
	switch code {
	case GlyphShadeLight:
		on = func(x, y int) bool { return (x+y)%4 == 0 }
	case GlyphShadeMid:
		on = func(x, y int) bool { return (x+y)%2 == 0 }
	case GlyphFull:
		on = func(int, int) bool { return true }
	default:
		return
	}
	w := color.NRGBA{255, 255, 255, 255}
	for y := 0; y < GlyphHeight; y++ {
		for x := 0; x < GlyphWidth; x++ {
			if on(x, y) {
				img.SetNRGBA(cellX+x, cellY+y, w)
			}
		}
	}
}
