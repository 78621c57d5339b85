package cli

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/seedsketch/seedsketch/pkg/errors"
	"github.com/seedsketch/seedsketch/pkg/gallery"
	"github.com/seedsketch/seedsketch/pkg/sketch"
)

// cleanCommand creates the clean command for removing generated artifacts.
func (c *CLI) cleanCommand() *cobra.Command {
	var (
		all    bool
		dryRun bool
	)
	outDir := c.Config.OutDir

	cmd := &cobra.Command{
		Use:   "clean [run]",
		Short: "Remove generated artifacts",
		Long: `Remove generated artifacts.

Removes the artifacts of one named run, or of every run with --all.
Only generated files are touched: seed-named PNGs, latest.png, and the
progress directory. Foreign files in a run directory are left alone,
and a run directory is only removed once it is empty.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			run := ""
			if len(args) == 1 {
				run = args[0]
			}
			if all == (run != "") {
				return errors.New(errors.ErrCodeInvalidInput,
					"name exactly one run or pass --all")
			}
			return c.runClean(outDir, run, all, dryRun)
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "clean every run under the artifact root")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "list what would be removed without removing")
	cmd.Flags().StringVar(&outDir, "out", outDir, "artifact root directory")

	return cmd
}

// runClean removes generated artifacts for one run or all runs.
func (c *CLI) runClean(outDir, run string, all, dryRun bool) error {
	var runs []gallery.Run
	if all {
		scanned, err := gallery.ScanRoot(outDir)
		if err != nil {
			if errors.Is(err, errors.ErrCodeNotFound) {
				printInfo("Nothing to clean under %s", outDir)
				return nil
			}
			return err
		}
		runs = scanned
	} else {
		scanned, err := gallery.ScanRun(outDir, run)
		if err != nil {
			if errors.Is(err, errors.ErrCodeNotFound) {
				printInfo("No run %q under %s", run, outDir)
				return nil
			}
			return err
		}
		runs = []gallery.Run{scanned}
	}

	if dryRun {
		printWarning("Dry run, nothing will be removed")
	}

	prog := newProgress(c.Logger)
	removed := 0
	for _, r := range runs {
		n, err := c.cleanRun(outDir, r, dryRun)
		if err != nil {
			return err
		}
		removed += n
	}

	if dryRun {
		printInfo("Would remove %d generated files", removed)
		return nil
	}
	prog.done("Cleaned artifact root")
	printSuccess("Removed %d generated files", removed)
	printDetail("Directory: %s", outDir)
	return nil
}

// cleanRun removes one run's generated files and returns how many went away.
// The run directory itself is removed only when nothing foreign remains.
func (c *CLI) cleanRun(outDir string, r gallery.Run, dryRun bool) (int, error) {
	runDir := filepath.Join(outDir, r.Name)
	count := 0

	remove := func(path string, removeAll bool) error {
		if dryRun {
			printDetail("would remove %s", path)
			count++
			return nil
		}
		var err error
		if removeAll {
			err = os.RemoveAll(path)
		} else {
			err = os.Remove(path)
		}
		if err != nil && !os.IsNotExist(err) {
			return errors.Wrap(errors.ErrCodePersist, err, "remove %s", path)
		}
		count++
		return nil
	}

	for _, a := range r.Artifacts {
		if !a.Parsed {
			continue
		}
		if err := remove(filepath.Join(runDir, a.File), false); err != nil {
			return count, err
		}
	}
	if r.HasLatest {
		if err := remove(filepath.Join(runDir, sketch.LatestName), false); err != nil {
			return count, err
		}
	}
	if progressDir := filepath.Join(runDir, sketch.ProgressDirName); dirExists(progressDir) {
		if err := remove(progressDir, true); err != nil {
			return count, err
		}
	}

	// An empty run directory is generated state too; a non-empty one still
	// holds foreign files and stays.
	if !dryRun {
		_ = os.Remove(runDir)
	}
	return count, nil
}

// dirExists reports whether path exists and is a directory.
func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
