package sketch

import (
	"math"

	"github.com/seedsketch/seedsketch/pkg/errors"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI, Config, and Live Mode
// =============================================================================

const (
	// DefaultWidth is the default user-space frame width.
	DefaultWidth = 100

	// DefaultHeight is the default user-space frame height.
	DefaultHeight = 100

	// DefaultScale is the default user-space to physical pixel factor.
	DefaultScale = 1.0

	// DefaultTimes is the default number of trials per run.
	DefaultTimes = 1

	// DefaultName is the default run name.
	DefaultName = "sketch"

	// DefaultFPS is the default frame rate for live mode and pacing state.
	DefaultFPS = 30

	// DefaultOutDir is the default artifact root directory.
	DefaultOutDir = "images"
)

// Options contains all configuration for a run.
type Options struct {
	// Width and Height are the user-space frame dimensions.
	Width  int
	Height int

	// Scale multiplies user-space dimensions into physical pixels. The
	// surface is created at round(Width*Scale) x round(Height*Scale).
	Scale float64

	// Seed pins the trial seed when non-nil. When nil each trial derives its
	// own seed from wall-clock milliseconds.
	Seed *uint64

	// Times is how many trials to run sequentially.
	Times int

	// Name is the run name, used as the artifact directory component.
	Name string

	// Metadata is an optional filename suffix appended after the scale.
	Metadata string

	// FPS is the target frame rate carried into the trial's pacing state.
	FPS int

	// OutDir is the artifact root. Artifacts land under OutDir/Name/.
	OutDir string

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// ValidateAndSetDefaults checks fields and applies defaults. This method is
// idempotent - calling it multiple times has the same effect as calling it
// once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}

	if o.Width == 0 {
		o.Width = DefaultWidth
	}
	if o.Height == 0 {
		o.Height = DefaultHeight
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	if o.Times == 0 {
		o.Times = DefaultTimes
	}
	if o.Name == "" {
		o.Name = DefaultName
	}
	if o.FPS == 0 {
		o.FPS = DefaultFPS
	}
	if o.OutDir == "" {
		o.OutDir = DefaultOutDir
	}

	if o.Width < 1 {
		return errors.New(errors.ErrCodeInvalidInput, "width must be positive, got %d", o.Width)
	}
	if o.Height < 1 {
		return errors.New(errors.ErrCodeInvalidInput, "height must be positive, got %d", o.Height)
	}
	if o.Scale < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "scale must be positive, got %g", o.Scale)
	}
	if o.Times < 1 {
		return errors.New(errors.ErrCodeInvalidInput, "times must be at least 1, got %d", o.Times)
	}
	if o.FPS < 1 {
		return errors.New(errors.ErrCodeInvalidInput, "fps must be at least 1, got %d", o.FPS)
	}
	if o.PhysicalWidth() < 1 || o.PhysicalHeight() < 1 {
		return errors.New(errors.ErrCodeInvalidInput,
			"scale %g shrinks %dx%d below one pixel", o.Scale, o.Width, o.Height)
	}
	if err := errors.ValidateRunName(o.Name); err != nil {
		return err
	}
	if err := errors.ValidateMetadata(o.Metadata); err != nil {
		return err
	}

	o.validated = true
	return nil
}

// PhysicalWidth returns the raster width in pixels.
func (o *Options) PhysicalWidth() int {
	return int(math.Round(float64(o.Width) * o.Scale))
}

// PhysicalHeight returns the raster height in pixels.
func (o *Options) PhysicalHeight() int {
	return int(math.Round(float64(o.Height) * o.Scale))
}
