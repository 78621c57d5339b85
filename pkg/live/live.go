// Package live opens a preview window for a single trial.
//
// The windowing system owns the main goroutine, so the trial is inverted
// into the event loop: the first tick renders and persists exactly as the
// static path does, every later tick only blits the kept frame and polls for
// quit (window close, q, or Escape). The loop does no render work after the
// first tick; it exists to keep the window responsive.
package live

import (
	"context"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/seedsketch/seedsketch/pkg/sketch"
)

// Game drives the preview loop. It implements ebiten.Game.
type Game struct {
	runner *sketch.Runner
	opts   sketch.Options
	draw   sketch.DrawFunc

	// ctx rides along because the loop owns the goroutine; a canceled
	// context ends the loop on the next tick.
	ctx context.Context

	rendered bool
	result   *sketch.TrialResult
	err      error
	frame    *ebiten.Image
}

// NewGame creates the loop state for one trial.
func NewGame(ctx context.Context, runner *sketch.Runner, opts sketch.Options, draw sketch.DrawFunc) (*Game, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	return &Game{
		runner: runner,
		opts:   opts,
		draw:   draw,
		ctx:    ctx,
	}, nil
}

// Update runs the trial on the first tick, then polls for quit.
func (g *Game) Update() error {
	g.renderTrial(g.ctx)
	if g.err != nil {
		return g.err
	}
	if err := g.ctx.Err(); err != nil {
		return err
	}
	if quitRequested() {
		return ebiten.Termination
	}
	return nil
}

// Draw blits the kept frame. The upload to a GPU image is deferred to here
// because only draw ticks are guaranteed a graphics context.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.result == nil {
		return
	}
	if g.frame == nil {
		g.frame = ebiten.NewImageFromImage(g.result.Frame)
	}
	screen.DrawImage(g.frame, nil)
}

// Layout fixes the logical screen to the physical raster size so frame
// pixels map 1:1 onto the window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.opts.PhysicalWidth(), g.opts.PhysicalHeight()
}

// Result returns the trial outcome, nil until the first tick has rendered.
func (g *Game) Result() *sketch.TrialResult {
	return g.result
}

// renderTrial runs the one-shot trial. Only the first call does work.
func (g *Game) renderTrial(ctx context.Context) {
	if g.rendered {
		return
	}
	g.rendered = true
	g.result, g.err = g.runner.Trial(ctx, g.opts, g.draw)
}

func quitRequested() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape)
}

func windowTitle(opts sketch.Options) string {
	return fmt.Sprintf("seedsketch %s (%dx%d @ %gx)", opts.Name, opts.Width, opts.Height, opts.Scale)
}

// Run opens the window and drives the loop until quit. The returned result
// is nil if the window closed before the first tick rendered.
func Run(ctx context.Context, runner *sketch.Runner, opts sketch.Options, draw sketch.DrawFunc) (*sketch.TrialResult, error) {
	g, err := NewGame(ctx, runner, opts, draw)
	if err != nil {
		return nil, err
	}

	ebiten.SetWindowSize(g.opts.PhysicalWidth(), g.opts.PhysicalHeight())
	ebiten.SetWindowTitle(windowTitle(g.opts))
	ebiten.SetTPS(g.opts.FPS)

	if err := ebiten.RunGame(g); err != nil {
		return nil, err
	}
	return g.result, nil
}
