package cli

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/seedsketch/seedsketch/pkg/errors"
	"github.com/seedsketch/seedsketch/pkg/sketch"
)

func TestLookupSketch(t *testing.T) {
	for _, s := range builtinSketches {
		t.Run(s.Name, func(t *testing.T) {
			draw, err := lookupSketch(s.Name)
			if err != nil {
				t.Fatalf("lookupSketch(%q) error: %v", s.Name, err)
			}
			if draw == nil {
				t.Fatalf("lookupSketch(%q) returned nil drawing logic", s.Name)
			}
		})
	}
}

func TestLookupSketchUnknown(t *testing.T) {
	_, err := lookupSketch("mandelbrot")
	if err == nil {
		t.Fatal("expected error for unknown sketch")
	}
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("expected INVALID_INPUT, got %v", err)
	}
	// The message should steer the user toward the registry.
	if msg := err.Error(); !strings.Contains(msg, "blank") {
		t.Errorf("error %q should list available sketches", msg)
	}
}

func TestSketchNames(t *testing.T) {
	names := sketchNames()
	if len(names) != len(builtinSketches) {
		t.Fatalf("sketchNames() returned %d names, want %d", len(names), len(builtinSketches))
	}
	for _, want := range []string{"blank", "arcs", "rings", "shear"} {
		found := false
		for _, got := range names {
			if got == want {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("sketchNames() missing %q", want)
		}
	}
}

func TestSketchesCommand(t *testing.T) {
	if err := execute(t, "sketches"); err != nil {
		t.Fatalf("sketches: %v", err)
	}
}

func TestSketchesCommandRuns(t *testing.T) {
	root := t.TempDir()
	seedRun(t, root, "orbits", false)

	if err := execute(t, "sketches", "--runs", "--out", root); err != nil {
		t.Fatalf("sketches --runs: %v", err)
	}
}

func TestSketchesCommandRunsMissingRoot(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "none")
	if err := execute(t, "sketches", "--runs", "--out", missing); err != nil {
		t.Fatalf("a missing root lists nothing, got error: %v", err)
	}
}

// TestBuiltinSketchesDraw runs every registered drawing function against a
// real surface. Each must complete without error and leave the progress
// counter at 1 so the multi-trial view can report a finished bar.
func TestBuiltinSketchesDraw(t *testing.T) {
	for _, s := range builtinSketches {
		t.Run(s.Name, func(t *testing.T) {
			opts := sketch.Options{
				Width:  48,
				Height: 48,
				Scale:  1,
				Name:   "unit",
			}
			c := sketch.NewContext(opts, 42)
			defer c.Close()

			rng := sketch.NewRand(42)
			if err := s.Draw(c, rng); err != nil {
				t.Fatalf("draw %q: %v", s.Name, err)
			}
			if got := c.Progress(); got != 1 {
				t.Errorf("draw %q left progress at %v, want 1", s.Name, got)
			}
		})
	}
}
