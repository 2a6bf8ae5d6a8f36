package render

import (
	"image"
	"image/color"

	"magmalos/internal/core"

	xdraw "golang.org/x/image/draw"
)

// MaxLevels is the largest number of contour levels a surface supports.
const MaxLevels = 256

// Surface is a filled-contour layer: every grid cell painted with the colour
// of the level band its value falls into.
type Surface struct {
	fig *Figure
	img *image.NRGBA

	levels  []float64
	colors  []color.NRGBA
	alpha   float64
	x0, x1  float64
	y0, y1  float64
	removed bool
}

// Contourf adds a filled-contour layer over the coordinate grids x, y and the
// value grid z. levels bands are spaced evenly between the minimum and maximum
// of z; each band takes the colormap colour at its midpoint and the given
// opacity.
func (f *Figure) Contourf(x, y, z *core.FloatGrid, levels int, cmap Colormap, alpha float64) *Surface {
	if levels < 1 {
		levels = 1
	}
	if levels > MaxLevels {
		levels = MaxLevels
	}
	if cmap == nil {
		cmap = Hot
	}

	lo, hi := z.Range()
	if !(hi > lo) {
		hi = lo + 1
	}
	s := &Surface{
		fig:    f,
		img:    image.NewNRGBA(image.Rect(0, 0, z.W, z.H)),
		levels: core.Linspace(lo, hi, levels+1),
		colors: make([]color.NRGBA, levels),
		alpha:  clamp01(alpha),
		x0:     x.At(0, 0),
		x1:     x.At(x.W-1, 0),
		y0:     y.At(0, 0),
		y1:     y.At(0, y.H-1),
	}
	for i := range s.colors {
		s.colors[i] = withAlpha(cmap((float64(i)+0.5)/float64(levels)), s.alpha)
	}

	idx := make([]uint8, len(z.Values()))
	span := hi - lo
	for i, v := range z.Values() {
		band := int((v - lo) / span * float64(levels))
		if band < 0 {
			band = 0
		}
		if band >= levels {
			band = levels - 1
		}
		idx[i] = uint8(band)
	}
	fillLevelNRGBA(s.img.Pix, idx, s.colors, z.W)

	f.attach(s)
	return s
}

// Remove detaches the surface from its figure. Removing twice is a no-op.
func (s *Surface) Remove() {
	if s == nil || s.removed {
		return
	}
	s.removed = true
	s.fig.detach(s)
}

// Removed reports whether Remove has been called.
func (s *Surface) Removed() bool { return s.removed }

// Levels returns the band boundaries, one more than the band count.
func (s *Surface) Levels() []float64 {
	out := make([]float64, len(s.levels))
	copy(out, s.levels)
	return out
}

// Colors returns the band colours including the layer opacity.
func (s *Surface) Colors() []color.NRGBA {
	out := make([]color.NRGBA, len(s.colors))
	copy(out, s.colors)
	return out
}

// Alpha returns the layer opacity.
func (s *Surface) Alpha() float64 { return s.alpha }

// Image exposes the grid-resolution raster of the layer, +y up.
func (s *Surface) Image() *image.NRGBA { return s.img }

func (s *Surface) draw(dst *image.RGBA, ax Axes) {
	r := ax.rectFor(s.x0, s.x1, s.y0, s.y1)
	xdraw.NearestNeighbor.Scale(dst, r, s.img, s.img.Bounds(), xdraw.Over, nil)
}
