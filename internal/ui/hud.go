//go:build ebiten

package ui

import (
	"image"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"burn/internal/core"
)

var (
	titleColor  = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	labelColor  = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	dimColor    = color.RGBA{R: 160, G: 160, B: 170, A: 255}
	statusColor = color.RGBA{R: 255, G: 150, B: 70, A: 255}
	panelColor  = color.RGBA{R: 16, G: 16, B: 20, A: 255}
)

// HUD renders the parameter panel to the right of the burn view.
type HUD struct {
	*panel
	height       int
	panelImg     *ebiten.Image
	pixel        *ebiten.Image
	panelOffsetX int
	paused       bool
}

// NewHUD constructs a HUD of the given pixel size. A non-positive width
// disables it.
func NewHUD(sim core.Sim, width, height int) *HUD {
	if width <= 0 {
		return nil
	}
	h := &HUD{panel: newPanel(sim, width), height: height}
	h.pixel = ebiten.NewImage(1, 1)
	h.pixel.Fill(color.White)
	return h
}

// Update refreshes the cached parameters and handles clicks on the +/-
// buttons.
func (h *HUD) Update(panelOffsetX int, paused bool) {
	if h == nil {
		return
	}
	h.panelOffsetX = panelOffsetX
	h.paused = paused
	h.refresh()
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	if mx < h.panelOffsetX {
		return
	}
	h.click(mx-h.panelOffsetX, my)
}

// Draw paints the panel at offsetX.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int) {
	if h == nil || h.height <= 0 {
		return
	}
	if h.panelImg == nil || h.panelImg.Bounds().Dx() != h.width || h.panelImg.Bounds().Dy() != h.height {
		h.panelImg = ebiten.NewImage(h.width, h.height)
	}
	h.panelImg.Fill(panelColor)
	h.drawContents()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panelImg, op)
}

func (h *HUD) drawContents() {
	face := basicfont.Face7x13
	y := panelPadding + headerBaseline
	text.Draw(h.panelImg, h.title, face, panelPadding, y, titleColor)
	for i, line := range h.status(h.paused) {
		text.Draw(h.panelImg, line, face, panelPadding, y+14+(i+1)*statusSpacing, statusColor)
	}

	if len(h.controls) == 0 {
		text.Draw(h.panelImg, "No adjustable parameters", face, panelPadding, controlsTop+labelBaseline, dimColor)
	}
	for i := range h.controls {
		state := &h.controls[i]
		labelY := state.top + labelBaseline
		text.Draw(h.panelImg, state.control.Label, face, panelPadding, labelY, labelColor)
		valueColor := labelColor
		if !state.hasValue {
			valueColor = dimColor
		}
		bounds := text.BoundString(face, state.value)
		valueX := state.minusRect.Min.X - buttonGap - bounds.Dx()
		text.Draw(h.panelImg, state.value, face, valueX, labelY, valueColor)

		h.drawButton(state.minusRect, "-", h.canAdjust(i, -1))
		h.drawButton(state.plusRect, "+", h.canAdjust(i, 1))
	}

	help := strings.Split(keyHelp, "\n")
	for i, line := range help {
		y := h.height - panelPadding - (len(help)-1-i)*statusSpacing
		text.Draw(h.panelImg, line, face, panelPadding, y, dimColor)
	}
}

func (h *HUD) drawButton(rect image.Rectangle, label string, enabled bool) {
	bg := color.RGBA{R: 54, G: 56, B: 64, A: 255}
	fg := color.RGBA{R: 230, G: 230, B: 240, A: 255}
	if !enabled {
		bg = color.RGBA{R: 32, G: 34, B: 40, A: 255}
		fg = color.RGBA{R: 120, G: 120, B: 130, A: 255}
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(bg)
	h.panelImg.DrawImage(h.pixel, op)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(h.panelImg, label, face, x, y, fg)
}
