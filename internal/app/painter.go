//go:build ebiten

package app

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// FramePainter uploads rendered frames into a single reusable ebiten image.
type FramePainter struct {
	w, h int
	img  *ebiten.Image
}

// NewFramePainter allocates a painter for frames of size w*h.
func NewFramePainter(w, h int) *FramePainter {
	return &FramePainter{w: w, h: h, img: ebiten.NewImage(w, h)}
}

// Upload replaces the painter image with frame. Frames of the wrong size are
// ignored.
func (fp *FramePainter) Upload(frame *image.RGBA) {
	if frame == nil || frame.Rect.Dx() != fp.w || frame.Rect.Dy() != fp.h {
		return
	}
	fp.img.WritePixels(frame.Pix)
}

// Blit draws the current image onto dst at the origin.
func (fp *FramePainter) Blit(dst *ebiten.Image) {
	dst.DrawImage(fp.img, &ebiten.DrawImageOptions{})
}

// Size returns the dimensions of the underlying image.
func (fp *FramePainter) Size() (int, int) { return fp.w, fp.h }
