package render

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/inconsolata"
)

// Colorbar is a vertical legend mapping contour levels to colours.
type Colorbar struct {
	Label  string
	levels []float64
	colors []color.NRGBA
}

func newColorbar(s *Surface, label string) *Colorbar {
	return &Colorbar{Label: label, levels: s.Levels(), colors: s.Colors()}
}

// Range returns the value span covered by the legend.
func (c *Colorbar) Range() (float64, float64) {
	if len(c.levels) == 0 {
		return 0, 0
	}
	return c.levels[0], c.levels[len(c.levels)-1]
}

func (c *Colorbar) draw(dst *image.RGBA, r image.Rectangle) {
	n := len(c.colors)
	if n == 0 || r.Dy() <= 0 {
		return
	}
	for i, col := range c.colors {
		top := r.Max.Y - int(math.Round(float64(i+1)*float64(r.Dy())/float64(n)))
		bottom := r.Max.Y - int(math.Round(float64(i)*float64(r.Dy())/float64(n)))
		fillRect(dst, image.Rect(r.Min.X, top, r.Max.X, bottom), Blend(col, White))
	}
	fillRect(dst, image.Rect(r.Min.X-1, r.Min.Y-1, r.Max.X+1, r.Min.Y), Black)
	fillRect(dst, image.Rect(r.Min.X-1, r.Max.Y, r.Max.X+1, r.Max.Y+1), Black)
	fillRect(dst, image.Rect(r.Min.X-1, r.Min.Y, r.Min.X, r.Max.Y), Black)
	fillRect(dst, image.Rect(r.Max.X, r.Min.Y, r.Max.X+1, r.Max.Y), Black)

	lo, hi := c.Range()
	face := basicfont.Face7x13
	if hi > lo {
		for _, v := range niceTicks(lo, hi, targetTicks) {
			y := r.Max.Y - int(math.Round((v-lo)/(hi-lo)*float64(r.Dy())))
			fillRect(dst, image.Rect(r.Max.X, y, r.Max.X+tickLength, y+1), Black)
			drawString(dst, face, formatTick(v), r.Max.X+tickLength+3, y+5, Black)
		}
	}
	if c.Label != "" {
		lf := inconsolata.Regular8x16
		w := textWidth(lf, c.Label)
		drawVerticalString(dst, lf, c.Label, r.Max.X+tickLength+66, r.Min.Y+(r.Dy()+w)/2, Black)
	}
}
