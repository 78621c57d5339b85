package sketch

import (
	"math"
	"sync/atomic"

	"github.com/gogpu/gg"
)

// Display is a live preview attached to a trial. The pipeline closes it
// during release, after the artifact has been persisted.
type Display interface {
	Close() error
}

// Context is the per-trial render state. It is created fresh at trial start,
// owned exclusively by that trial, and torn down at trial end. Drawing logic
// receives it together with the trial's seeded generator.
type Context struct {
	// Width and Height are the user-space dimensions. The raster surface is
	// created at round(Width*Scale) x round(Height*Scale) physical pixels.
	Width  int
	Height int

	// Seed is the resolved seed for this trial.
	Seed uint64

	// Scale maps user-space units to physical pixels.
	Scale float64

	// Name is the run name. Artifacts land under <out>/<Name>/.
	Name string

	// Video holds frame pacing state for callers that redraw continuously.
	Video VideoState

	dc         *gg.Context
	display    Display
	beforeSave func()
	progress   atomic.Uint64
}

// NewContext creates the render state for one trial: a raster surface at
// physical size, primed with a white ground and the global scale transform,
// so drawing logic is authored in user-space coordinates.
func NewContext(opts Options, seed uint64) *Context {
	pw := int(math.Round(float64(opts.Width) * opts.Scale))
	ph := int(math.Round(float64(opts.Height) * opts.Scale))
	dc := gg.NewContext(pw, ph)
	dc.ClearWithColor(gg.White)
	dc.Scale(opts.Scale, opts.Scale)
	return &Context{
		Width:  opts.Width,
		Height: opts.Height,
		Seed:   seed,
		Scale:  opts.Scale,
		Name:   opts.Name,
		Video:  VideoState{FPS: opts.FPS},
		dc:     dc,
	}
}

// DC returns the trial's drawing surface.
func (c *Context) DC() *gg.Context {
	return c.dc
}

// SetProgress records how far the current trial has advanced, clamped to
// [0,1]. The pipeline never interprets the value; external consumers such as
// the multi-trial progress UI poll it, possibly from another goroutine. The
// counter is atomic, so SetProgress and Progress need no lock.
func (c *Context) SetProgress(p float64) {
	if p < 0 {
		p = 0
	} else if p > 1 {
		p = 1
	}
	c.progress.Store(math.Float64bits(p))
}

// Progress returns the last value passed to SetProgress, or 0.
func (c *Context) Progress() float64 {
	return math.Float64frombits(c.progress.Load())
}

// OnBeforeSave registers fn to run exactly once, immediately before the
// artifact is persisted, with the full render state still active. At most one
// hook is active per trial; registering again replaces the previous hook.
func (c *Context) OnBeforeSave(fn func()) {
	c.beforeSave = fn
}

// AttachDisplay associates a live display with the trial. The pipeline closes
// it during release.
func (c *Context) AttachDisplay(d Display) {
	c.display = d
}

// finalize invokes the before-save hook if one was registered and clears the
// slot so the hook cannot fire twice.
func (c *Context) finalize() {
	if c.beforeSave != nil {
		c.beforeSave()
		c.beforeSave = nil
	}
}

// Close releases the surface and any attached display. Safe to call more
// than once.
func (c *Context) Close() error {
	if c.display != nil {
		if err := c.display.Close(); err != nil {
			return err
		}
		c.display = nil
	}
	if c.dc != nil {
		err := c.dc.Close()
		c.dc = nil
		return err
	}
	return nil
}
