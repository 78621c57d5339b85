package sketch

import (
	"context"
	"fmt"
	"image"
	"image/draw"
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/montanaflynn/stats"

	"github.com/seedsketch/seedsketch/pkg/errors"
)

// DrawFunc is user drawing logic. It renders onto the context's surface in
// user-space coordinates, using rng as its sole entropy source.
type DrawFunc func(c *Context, rng *rand.Rand) error

// Runner executes runs of sequential trials.
//
// The Runner is stateless except for the logger and hooks - it doesn't store
// trial results. It is safe to reuse across runs, but trials within a run
// never overlap: each exclusively owns its surface and the run's latest.png.
type Runner struct {
	Logger *log.Logger
	Hooks  TrialHooks
}

// NewRunner creates a runner with the given logger and hooks.
// If logger is nil, the default logger is used.
// If hooks is nil, no-op hooks are used.
func NewRunner(logger *log.Logger, hooks TrialHooks) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	if hooks == nil {
		hooks = NoopTrialHooks{}
	}
	return &Runner{
		Logger: logger,
		Hooks:  hooks,
	}
}

// Result contains the outputs of a run.
type Result struct {
	// RunID uniquely identifies this run in logs.
	RunID string

	// Seeds holds the resolved seed of each trial, in order.
	Seeds []uint64

	// Artifacts holds the written artifact path of each trial, in order.
	// With a pinned seed every trial writes the same path.
	Artifacts []string

	// Stats contains timing information across trials.
	Stats Stats
}

// Stats contains run execution statistics.
type Stats struct {
	Trials        int
	TotalTime     time.Duration
	MeanTrialTime time.Duration
	MaxTrialTime  time.Duration
}

// TrialResult is the outcome of a single trial run through Trial.
type TrialResult struct {
	Seed     uint64
	Artifact string

	// Frame is a copy of the rendered raster that stays valid after the
	// trial's surface is released.
	Frame image.Image

	Duration time.Duration
}

// Execute runs Times sequential trials, each with a fresh surface, context,
// and generator. A canceled ctx aborts between trials; once a trial's render
// begins it completes or fails. Any trial failure aborts the run and all
// remaining trials.
func (r *Runner) Execute(ctx context.Context, opts Options, draw DrawFunc) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	if draw == nil {
		return nil, errors.New(errors.ErrCodeInvalidInput, "drawing logic is required")
	}

	runDir, err := ensureRunDirs(opts.OutDir, opts.Name)
	if err != nil {
		return nil, err
	}

	result := &Result{RunID: uuid.NewString()}
	r.Logger.Info("starting run",
		"run_id", result.RunID,
		"name", opts.Name,
		"size", fmt.Sprintf("%dx%d", opts.Width, opts.Height),
		"scale", opts.Scale,
		"times", opts.Times)

	start := time.Now()
	durations := make([]float64, 0, opts.Times)
	for trial := 0; trial < opts.Times; trial++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		seed := ResolveSeed(opts.Seed)
		trialStart := time.Now()

		artifact, _, err := r.runTrial(ctx, opts, runDir, trial, seed, draw, false)
		d := time.Since(trialStart)
		r.Hooks.OnTrialComplete(ctx, trial, seed, artifact, d, err)
		if err != nil {
			return nil, err
		}

		durations = append(durations, d.Seconds())
		result.Seeds = append(result.Seeds, seed)
		result.Artifacts = append(result.Artifacts, artifact)
		r.Logger.Info("trial complete",
			"trial", trial+1,
			"seed", seed,
			"artifact", artifact,
			"duration", d)
	}

	result.Stats = summarize(durations, time.Since(start))
	return result, nil
}

// Trial runs exactly one trial and keeps a copy of the rendered frame. Live
// mode uses it to render on the first window tick and blit the kept frame on
// every tick after.
func (r *Runner) Trial(ctx context.Context, opts Options, draw DrawFunc) (*TrialResult, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	if draw == nil {
		return nil, errors.New(errors.ErrCodeInvalidInput, "drawing logic is required")
	}

	runDir, err := ensureRunDirs(opts.OutDir, opts.Name)
	if err != nil {
		return nil, err
	}

	seed := ResolveSeed(opts.Seed)
	start := time.Now()

	artifact, frame, err := r.runTrial(ctx, opts, runDir, 0, seed, draw, true)
	d := time.Since(start)
	r.Hooks.OnTrialComplete(ctx, 0, seed, artifact, d, err)
	if err != nil {
		return nil, err
	}

	r.Logger.Info("trial complete",
		"seed", seed,
		"artifact", artifact,
		"duration", d)

	return &TrialResult{
		Seed:     seed,
		Artifact: artifact,
		Frame:    frame,
		Duration: d,
	}, nil
}

// runTrial executes the acquire → render → hook → persist → release sequence
// for one trial. When keepFrame is set the raster is copied before release.
func (r *Runner) runTrial(ctx context.Context, opts Options, runDir string, trial int, seed uint64, draw DrawFunc, keepFrame bool) (string, image.Image, error) {
	c := NewContext(opts, seed)
	defer c.Close()

	r.Hooks.OnTrialStart(ctx, trial, c)

	rng := NewRand(seed)
	if err := draw(c, rng); err != nil {
		return "", nil, err
	}

	c.finalize()

	artifact, err := persist(c.dc, runDir, ArtifactName(seed, opts.Scale, opts.Metadata))
	if err != nil {
		return "", nil, err
	}

	var frame image.Image
	if keepFrame {
		frame = copyImage(c.dc.Image())
	}
	return artifact, frame, nil
}

// copyImage snapshots src into a fresh RGBA buffer so the pixels outlive the
// surface they came from.
func copyImage(src image.Image) image.Image {
	b := src.Bounds()
	dst := image.NewRGBA(b)
	draw.Draw(dst, b, src, b.Min, draw.Src)
	return dst
}

// summarize folds per-trial durations into run statistics.
func summarize(durations []float64, total time.Duration) Stats {
	s := Stats{
		Trials:    len(durations),
		TotalTime: total,
	}
	if len(durations) == 0 {
		return s
	}
	if mean, err := stats.Mean(durations); err == nil {
		s.MeanTrialTime = time.Duration(mean * float64(time.Second))
	}
	if max, err := stats.Max(durations); err == nil {
		s.MaxTrialTime = time.Duration(max * float64(time.Second))
	}
	return s
}
