package render

import (
	"image"
	"image/color"
	"math"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/inconsolata"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// MarkerStyle describes a filled circular point marker.
type MarkerStyle struct {
	Color  color.Color
	Radius float64
}

// TextSize selects a label face.
type TextSize int

const (
	// TextNormal uses a 16 px face.
	TextNormal TextSize = iota
	// TextSmall uses a 13 px face.
	TextSmall
)

// TextStyle describes a text label.
type TextStyle struct {
	Color color.Color
	Bold  bool
	Size  TextSize
}

func (s TextStyle) face() font.Face {
	switch {
	case s.Size == TextSmall:
		return basicfont.Face7x13
	case s.Bold:
		return inconsolata.Bold8x16
	default:
		return inconsolata.Regular8x16
	}
}

type marker struct {
	x, y  float64
	style MarkerStyle
}

func (m marker) draw(dst *image.RGBA, ax Axes) {
	if !ax.Contains(m.x, m.y) {
		return
	}
	px, py := ax.ToPixel(m.x, m.y)
	drawDisc(dst, px, py, m.style.Radius, m.style.Color)
}

type label struct {
	x, y  float64
	text  string
	style TextStyle
}

func (l label) draw(dst *image.RGBA, ax Axes) {
	px, py := ax.ToPixel(l.x, l.y)
	col := l.style.Color
	if col == nil {
		col = Black
	}
	x, y := int(math.Round(px)), int(math.Round(py))
	face := l.style.face()
	drawString(dst, face, l.text, x, y, col)
	if l.style.Bold && l.style.Size == TextSmall {
		drawString(dst, face, l.text, x+1, y, col)
	}
}

// drawDisc fills an anti-aliased circle centred on (cx, cy), clipped to dst.
func drawDisc(dst *image.RGBA, cx, cy, radius float64, col color.Color) {
	if radius <= 0 || col == nil {
		return
	}
	box := image.Rect(
		int(math.Floor(cx-radius)), int(math.Floor(cy-radius)),
		int(math.Ceil(cx+radius))+1, int(math.Ceil(cy+radius))+1,
	)
	visible := box.Intersect(dst.Bounds())
	if visible.Empty() {
		return
	}
	ox, oy := float64(box.Min.X), float64(box.Min.Y)
	z := vector.NewRasterizer(box.Dx(), box.Dy())
	const segments = 32
	for i := 0; i < segments; i++ {
		theta := 2 * math.Pi * float64(i) / segments
		x := float32(cx - ox + radius*math.Cos(theta))
		y := float32(cy - oy + radius*math.Sin(theta))
		if i == 0 {
			z.MoveTo(x, y)
			continue
		}
		z.LineTo(x, y)
	}
	z.ClosePath()
	mask := image.NewAlpha(image.Rect(0, 0, box.Dx(), box.Dy()))
	z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	xdraw.DrawMask(dst, visible, image.NewUniform(col), image.Point{}, mask, visible.Min.Sub(box.Min), xdraw.Over)
}

func drawString(dst *image.RGBA, face font.Face, s string, x, y int, col color.Color) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}

// drawVerticalString draws s rotated a quarter turn counter-clockwise so it
// reads bottom to top, with the baseline's start at (x, y).
func drawVerticalString(dst *image.RGBA, face font.Face, s string, x, y int, col color.Color) {
	w := textWidth(face, s)
	m := face.Metrics()
	ascent, descent := m.Ascent.Ceil(), m.Descent.Ceil()
	h := ascent + descent
	if w <= 0 || h <= 0 {
		return
	}
	tmp := image.NewRGBA(image.Rect(0, 0, w, h))
	drawString(tmp, face, s, 0, ascent, col)

	bounds := dst.Bounds()
	for ty := 0; ty < h; ty++ {
		for tx := 0; tx < w; tx++ {
			off := tmp.PixOffset(tx, ty)
			a := tmp.Pix[off+3]
			if a == 0 {
				continue
			}
			// (tx, ty) -> (x - ascent + ty, y - tx)
			dx, dy := x-ascent+ty, y-tx
			if !(image.Point{X: dx, Y: dy}).In(bounds) {
				continue
			}
			blendPixel(dst, dx, dy, tmp.Pix[off:off+4])
		}
	}
}

// blendPixel composites a premultiplied RGBA pixel over dst at (x, y).
func blendPixel(dst *image.RGBA, x, y int, src []uint8) {
	off := dst.PixOffset(x, y)
	inv := 255 - uint32(src[3])
	for i := 0; i < 4; i++ {
		dst.Pix[off+i] = uint8(uint32(src[i]) + uint32(dst.Pix[off+i])*inv/255)
	}
}

func textWidth(face font.Face, s string) int {
	return font.MeasureString(face, s).Ceil()
}
