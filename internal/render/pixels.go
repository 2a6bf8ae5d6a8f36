package render

import (
	"image"
	"image/color"
)

// fillLevelNRGBA converts per-cell level indices into NRGBA pixels using a
// palette. Grid row 0 holds the smallest y, so rows are written bottom-up to
// keep +y pointing towards the top of the image. When the palette is empty
// the buffer is cleared to transparent black.
func fillLevelNRGBA(buf []byte, levels []uint8, palette []color.NRGBA, w int) {
	if w <= 0 {
		return
	}
	h := len(levels) / w
	if len(palette) == 0 {
		for i := range buf {
			buf[i] = 0
		}
		return
	}

	last := len(palette) - 1
	for row := 0; row < h; row++ {
		dstRow := h - 1 - row
		for col := 0; col < w; col++ {
			idx := int(levels[row*w+col])
			if idx > last {
				idx = last
			}
			base := (dstRow*w + col) * 4
			c := palette[idx]
			buf[base+0] = c.R
			buf[base+1] = c.G
			buf[base+2] = c.B
			buf[base+3] = c.A
		}
	}
}

// fillRect paints a solid rectangle, replacing the destination pixels.
func fillRect(dst *image.RGBA, r image.Rectangle, c color.Color) {
	r = r.Intersect(dst.Bounds())
	if r.Empty() {
		return
	}
	cr, cg, cb, ca := c.RGBA()
	for y := r.Min.Y; y < r.Max.Y; y++ {
		off := dst.PixOffset(r.Min.X, y)
		for x := r.Min.X; x < r.Max.X; x++ {
			dst.Pix[off+0] = uint8(cr >> 8)
			dst.Pix[off+1] = uint8(cg >> 8)
			dst.Pix[off+2] = uint8(cb >> 8)
			dst.Pix[off+3] = uint8(ca >> 8)
			off += 4
		}
	}
}

// CloneRGBA returns a deep copy of img.
func CloneRGBA(img *image.RGBA) *image.RGBA {
	if img == nil {
		return nil
	}
	out := image.NewRGBA(img.Rect)
	copy(out.Pix, img.Pix)
	return out
}
