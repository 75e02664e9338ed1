//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"burn/internal/core"
	"burn/internal/render"
)

type maskProvider interface {
	SmokeMask() []float32
	HeatMask() []float32
}

var (
	smokeTint = color.RGBA{R: 150, G: 170, B: 200}
	heatTint  = color.RGBA{R: 255, G: 120, B: 40}
)

// Overlay draws optional debugging masks over the burn view.
type Overlay struct {
	sim       core.Sim
	cellW     int
	cellH     int
	showSmoke bool
	showHeat  bool
	maskImg   *ebiten.Image
	maskBuf   []byte
}

// NewOverlay constructs an overlay for cells drawn cellW x cellH pixels
// large.
func NewOverlay(sim core.Sim, cellW, cellH int) *Overlay {
	return &Overlay{sim: sim, cellW: max(cellW, 1), cellH: max(cellH, 1)}
}

// Update toggles masks from the keyboard.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showSmoke = !o.showSmoke
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.showHeat = !o.showHeat
	}
}

// Draw renders the enabled masks onto screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	provider, ok := o.sim.(maskProvider)
	if !ok || (!o.showSmoke && !o.showHeat) {
		return
	}
	size := o.sim.Size()
	total := size.Rows * size.Cols
	if total == 0 {
		return
	}
	if o.maskImg == nil || o.maskImg.Bounds().Dx() != size.Cols || o.maskImg.Bounds().Dy() != size.Rows {
		o.maskImg = ebiten.NewImage(size.Cols, size.Rows)
		o.maskBuf = make([]byte, 4*total)
	}
	if o.showSmoke {
		o.drawMask(screen, provider.SmokeMask(), smokeTint)
	}
	if o.showHeat {
		o.drawMask(screen, provider.HeatMask(), heatTint)
	}
}

func (o *Overlay) drawMask(screen *ebiten.Image, mask []float32, tint color.RGBA) {
	if len(mask)*4 != len(o.maskBuf) {
		return
	}
	render.FillMaskRGBA(o.maskBuf, mask, tint)
	o.maskImg.WritePixels(o.maskBuf)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(o.cellW), float64(o.cellH))
	screen.DrawImage(o.maskImg, op)
}
