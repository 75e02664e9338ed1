//go:build ebiten

package app

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"burn/internal/core"
	"burn/internal/layer"
	"burn/internal/render"
	"burn/internal/ui"
)

// Game adapts a burn simulation to the ebiten.Game interface.
type Game struct {
	sim     core.Sim
	opts    GameOptions
	comp    layer.Compositor
	static  []layer.Layer
	step    *core.FixedStep
	hud     *ui.HUD
	overlay *ui.Overlay

	glyphs *render.GlyphPainter
	pixels *render.PixelPainter
	frame  *ebiten.Image

	paused   bool
	tickOnce bool
	seed     int64
	fires    int
}

// New constructs a Game for the provided simulation.
func New(sim core.Sim, seed int64, opts GameOptions) *Game {
	size := sim.Size()
	cw, ch := opts.CellSize()
	_, viewH := opts.ViewSize(size)
	g := &Game{
		sim:     sim,
		opts:    opts,
		comp:    layer.Compositor{Rows: size.Rows, Cols: size.Cols},
		static:  scene(size, opts.Text, opts.Border),
		step:    core.NewFixedStep(opts.TPS),
		hud:     ui.NewHUD(sim, HUDWidth, viewH),
		overlay: ui.NewOverlay(sim, cw, ch),
		seed:    replaySeed(sim, seed),
	}
	if opts.Pixels {
		g.pixels = render.NewPixelPainter(size.Rows, size.Cols)
	} else {
		g.glyphs = render.NewGlyphPainter(size.Rows, size.Cols)
		w, h := g.glyphs.Size()
		g.frame = ebiten.NewImage(w, h)
	}
	g.fires = fireCount(sim)
	return g
}

// Reset relights the simulation with the provided seed.
func (g *Game) Reset(seed int64) {
	g.sim.Reset(seed)
	g.seed = replaySeed(g.sim, seed)
	g.tickOnce = false
	g.fires = fireCount(g.sim)
}

// Update handles per-frame input and advances the simulation at the
// configured tick rate.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}

	g.overlay.Update()
	viewW, _ := g.opts.ViewSize(g.sim.Size())
	g.hud.Update(viewW, g.paused)

	due := g.step.ShouldStep()
	if g.tickOnce || (due && !g.paused) {
		g.sim.Step()
		g.tickOnce = false
		if n := fireCount(g.sim); n > g.fires {
			if g.opts.Sound != nil {
				g.opts.Sound.Ignite(n - g.fires)
			}
			g.fires = n
		}
	}
	return nil
}

// Draw renders the current frame.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(render.Background)
	layers := append(g.static[:len(g.static):len(g.static)], g.sim.Layer())
	field := g.comp.Composite(layers...)
	if !g.opts.Color {
		render.StripColor(field)
	}

	scale := max(g.opts.Scale, 1)
	if g.pixels != nil {
		g.pixels.Blit(screen, field, scale)
	} else {
		g.glyphs.Blit(g.frame, field)
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(float64(scale), float64(scale))
		screen.DrawImage(g.frame, op)
	}
	g.overlay.Draw(screen)

	viewW, _ := g.opts.ViewSize(g.sim.Size())
	g.hud.Draw(screen, viewW)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := g.opts.ViewSize(g.sim.Size())
	return w + HUDWidth, h
}

func fireCount(sim core.Sim) int {
	if stats, ok := sim.(burnStats); ok {
		return stats.Fires()
	}
	return 0
}
