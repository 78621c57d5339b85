package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/seedsketch/seedsketch/pkg/live"
	"github.com/seedsketch/seedsketch/pkg/sketch"
)

// liveCommand creates the live command for windowed single-trial rendering.
func (c *CLI) liveCommand() *cobra.Command {
	var (
		seed       uint64
		sketchName string
	)
	opts := sketch.Options{
		Width:  c.Config.Width,
		Height: c.Config.Height,
		Scale:  c.Config.Scale,
		Name:   c.Config.Name,
		FPS:    c.Config.FPS,
		OutDir: c.Config.OutDir,
	}

	cmd := &cobra.Command{
		Use:   "live",
		Short: "Render a single trial into a window",
		Long: `Render a single trial into a window.

The trial renders and persists exactly as 'render' does. The window
then stays open showing the frame until it is closed with the window
button, q, or Escape. Live mode always runs exactly one trial.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("seed") {
				opts.Seed = &seed
			}
			draw, err := lookupSketch(sketchName)
			if err != nil {
				return err
			}
			return c.runLiveTrial(cmd.Context(), opts, sketchName, draw)
		},
	}

	cmd.Flags().Uint64Var(&seed, "seed", 0, "pin the trial seed (default: wall-clock milliseconds)")
	cmd.Flags().Float64Var(&opts.Scale, "scale", opts.Scale, "user-space to pixel scale factor")
	cmd.Flags().IntVarP(&opts.Width, "width", "W", opts.Width, "frame width in user-space units")
	cmd.Flags().IntVarP(&opts.Height, "height", "H", opts.Height, "frame height in user-space units")
	cmd.Flags().StringVar(&opts.Name, "name", opts.Name, "run name (artifact directory)")
	cmd.Flags().StringVar(&opts.Metadata, "metadata", "", "optional filename suffix after the scale")
	cmd.Flags().IntVar(&opts.FPS, "fps", opts.FPS, "window tick rate")
	cmd.Flags().StringVar(&opts.OutDir, "out", opts.OutDir, "artifact root directory")
	cmd.Flags().StringVar(&sketchName, "sketch", "blank", "built-in drawing logic to run")

	return cmd
}

// runLiveTrial renders one trial into a window and reports the artifact once
// the window closes. Shared by 'live' and 'render --live'.
func (c *CLI) runLiveTrial(ctx context.Context, opts sketch.Options, sketchName string, draw sketch.DrawFunc) error {
	opts.Times = 1
	runner := sketch.NewRunner(c.Logger, nil)

	result, err := live.Run(ctx, runner, opts, draw)
	if err != nil {
		return err
	}
	if result == nil {
		printWarning("Window closed before the trial rendered")
		return nil
	}

	printSuccess("Trial complete")
	printFile(result.Artifact)
	printStats(1, result.Duration, 0)
	printNewline()
	printNextStep("Reproduce", fmt.Sprintf("%s render --sketch %s --seed %d", appName, sketchName, result.Seed))
	return nil
}
