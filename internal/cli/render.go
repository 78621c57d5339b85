package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/seedsketch/seedsketch/pkg/sketch"
)

// renderCommand creates the render command for running trials.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		seed       uint64
		sketchName string
		liveMode   bool
	)
	opts := sketch.Options{
		Width:  c.Config.Width,
		Height: c.Config.Height,
		Scale:  c.Config.Scale,
		Times:  c.Config.Times,
		Name:   c.Config.Name,
		FPS:    c.Config.FPS,
		OutDir: c.Config.OutDir,
	}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Run trials and persist PNG artifacts",
		Long: `Run trials and persist PNG artifacts.

Each trial resolves a seed, renders the selected sketch onto a fresh
surface, and persists the result as <out>/<name>/<seed>-<scale>.png
together with a byte-identical latest.png. Without --seed every trial
derives its seed from the wall clock; with --seed the run reproduces
the same artifact byte for byte.

With --times N the trials run sequentially. On a terminal a progress
view tracks each trial; otherwise plain log lines are emitted.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Only a flag that was actually set pins the seed; the zero
			// value is a valid seed and cannot stand in for "unset".
			if cmd.Flags().Changed("seed") {
				opts.Seed = &seed
			}
			return c.runRender(cmd.Context(), opts, sketchName, liveMode)
		},
	}

	cmd.Flags().Uint64Var(&seed, "seed", 0, "pin the trial seed (default: wall-clock milliseconds)")
	cmd.Flags().Float64Var(&opts.Scale, "scale", opts.Scale, "user-space to pixel scale factor")
	cmd.Flags().IntVarP(&opts.Width, "width", "W", opts.Width, "frame width in user-space units")
	cmd.Flags().IntVarP(&opts.Height, "height", "H", opts.Height, "frame height in user-space units")
	cmd.Flags().IntVar(&opts.Times, "times", opts.Times, "number of sequential trials")
	cmd.Flags().StringVar(&opts.Name, "name", opts.Name, "run name (artifact directory)")
	cmd.Flags().StringVar(&opts.Metadata, "metadata", "", "optional filename suffix after the scale")
	cmd.Flags().IntVar(&opts.FPS, "fps", opts.FPS, "target frame rate for live mode pacing")
	cmd.Flags().StringVar(&opts.OutDir, "out", opts.OutDir, "artifact root directory")
	cmd.Flags().StringVar(&sketchName, "sketch", "blank", "built-in drawing logic to run")
	cmd.Flags().BoolVar(&liveMode, "live", false, "render a single trial into a window")

	return cmd
}

// runRender resolves the drawing logic and executes the run, picking the
// interface by mode, trial count, and terminal.
func (c *CLI) runRender(ctx context.Context, opts sketch.Options, sketchName string, liveMode bool) error {
	draw, err := lookupSketch(sketchName)
	if err != nil {
		return err
	}

	if liveMode {
		return c.runLiveTrial(ctx, opts, sketchName, draw)
	}
	if opts.Times > 1 && isTTY(os.Stdout) {
		return c.runWithProgressUI(ctx, opts, sketchName, draw)
	}
	return c.runPlain(ctx, opts, sketchName, draw)
}

// runPlain executes the run without the interactive progress view. A spinner
// animates on a terminal; in a pipe the runner's log lines stand alone.
func (c *CLI) runPlain(ctx context.Context, opts sketch.Options, sketchName string, draw sketch.DrawFunc) error {
	runner := sketch.NewRunner(c.Logger, nil)

	var spin *Spinner
	if isTTY(os.Stderr) {
		spin = newSpinnerWithContext(ctx, fmt.Sprintf("Rendering %s...", sketchName))
		spin.Start()
	}

	result, err := runner.Execute(ctx, opts, draw)
	if spin != nil {
		switch {
		case err == nil:
			spin.Stop()
		case spin.Cancelled():
			spin.Stop()
			printWarning("Run cancelled")
		default:
			spin.StopWithError("Render failed")
		}
	}
	if err != nil {
		return err
	}

	printRunResult(result)
	return nil
}

// printRunResult prints the artifact paths and timing summary of a run.
func printRunResult(result *sketch.Result) {
	printSuccess("Run complete")
	for _, artifact := range result.Artifacts {
		printFile(artifact)
	}
	printStats(result.Stats.Trials, result.Stats.TotalTime, result.Stats.MeanTrialTime)
	printNewline()
	printNextStep("Browse", appName+" gallery")
}
