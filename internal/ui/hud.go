//go:build ebiten

package ui

import (
	"image/color"

	"magmalos/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// HUD renders the parameter panel to the right of the figure.
type HUD struct {
	width    int
	title    string
	snapshot core.ParameterSnapshot
	status   Status

	panel      *ebiten.Image
	lastHeight int
}

// NewHUD constructs a HUD listing snapshot in a panel of the given width.
func NewHUD(title string, snapshot core.ParameterSnapshot, width int) *HUD {
	if width < 0 {
		width = 0
	}
	return &HUD{width: width, title: title, snapshot: snapshot}
}

// Width returns the panel width in pixels.
func (h *HUD) Width() int {
	if h == nil {
		return 0
	}
	return h.width
}

// Update records the playback status shown on the next Draw.
func (h *HUD) Update(status Status) {
	if h == nil {
		return
	}
	h.status = status
}

// Draw paints the panel at offsetX, spanning height pixels.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int) {
	if h == nil || h.width <= 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})
	h.drawLines()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) drawLines() {
	face := basicfont.Face7x13
	y := panelPadding + headerBaseline
	for _, line := range PanelLines(h.title, h.snapshot, h.status) {
		switch line.Kind {
		case LineTitle:
			text.Draw(h.panel, line.Text, face, panelPadding, y, color.RGBA{R: 200, G: 200, B: 210, A: 255})
			y += groupSpacing
		case LineGroup:
			y += groupGap
			text.Draw(h.panel, line.Text, face, panelPadding, y, color.RGBA{R: 255, G: 170, B: 60, A: 255})
			y += lineHeight
		case LineSummary:
			text.Draw(h.panel, line.Text, face, panelPadding+indent, y, color.RGBA{R: 140, G: 140, B: 150, A: 255})
			y += lineHeight
		case LineParam:
			fg := color.RGBA{R: 220, G: 220, B: 230, A: 255}
			text.Draw(h.panel, line.Text, face, panelPadding+indent, y, fg)
			w := text.BoundString(face, line.Value).Dx()
			text.Draw(h.panel, line.Value, face, h.width-panelPadding-w, y, fg)
			y += lineHeight
		case LineInfo:
			y += groupGap
			text.Draw(h.panel, line.Text, face, panelPadding, y, color.RGBA{R: 160, G: 160, B: 170, A: 255})
			y += lineHeight
		}
	}
}

const (
	panelPadding   = 12
	headerBaseline = 18
	lineHeight     = 18
	groupGap       = 8
	groupSpacing   = 14
	indent         = 8
)
