package app

import (
	"image"
	"image/color"
	"sync"
)

// quantizer maps RGBA frames onto a fixed palette. Frames repeat few
// distinct colours, so nearest-colour lookups are memoised.
type quantizer struct {
	palette color.Palette

	mu    sync.RWMutex
	cache map[uint32]uint8
}

func newQuantizer(p color.Palette) *quantizer {
	return &quantizer{palette: p, cache: make(map[uint32]uint8, 1024)}
}

func (q *quantizer) quantize(img *image.RGBA) *image.Paletted {
	b := img.Bounds()
	out := image.NewPaletted(b, q.palette)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		src := img.Pix[img.PixOffset(b.Min.X, y):]
		dst := out.Pix[out.PixOffset(b.Min.X, y):]
		for x := 0; x < b.Dx(); x++ {
			r, g, bl := src[x*4], src[x*4+1], src[x*4+2]
			dst[x] = q.index(r, g, bl)
		}
	}
	return out
}

func (q *quantizer) index(r, g, b uint8) uint8 {
	key := uint32(r)<<16 | uint32(g)<<8 | uint32(b)
	q.mu.RLock()
	idx, ok := q.cache[key]
	q.mu.RUnlock()
	if ok {
		return idx
	}
	idx = uint8(q.palette.Index(color.RGBA{R: r, G: g, B: b, A: 255}))
	q.mu.Lock()
	q.cache[key] = idx
	q.mu.Unlock()
	return idx
}
