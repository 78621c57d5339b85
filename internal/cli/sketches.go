package cli

import (
	"fmt"
	"math"
	"math/rand/v2"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/seedsketch/seedsketch/pkg/errors"
	"github.com/seedsketch/seedsketch/pkg/gallery"
	"github.com/seedsketch/seedsketch/pkg/geom"
	"github.com/seedsketch/seedsketch/pkg/shape"
	"github.com/seedsketch/seedsketch/pkg/sketch"
)

// =============================================================================
// Built-in Sketch Registry
// =============================================================================

// builtinSketch is a named piece of drawing logic selectable with --sketch.
type builtinSketch struct {
	Name        string
	Description string
	Draw        sketch.DrawFunc
}

// builtinSketches holds the registered drawing logic in listing order.
var builtinSketches = []builtinSketch{
	{"blank", "white ground only, the smallest possible run", drawBlank},
	{"arcs", "seeded arc sweeps under rotation and squash transforms", drawArcs},
	{"rings", "concentric rings of jittered polar markers", drawRings},
	{"shear", "an arc flattening into polylines under growing shear", drawShear},
}

// lookupSketch resolves a --sketch name to its drawing logic.
func lookupSketch(name string) (sketch.DrawFunc, error) {
	for _, s := range builtinSketches {
		if s.Name == name {
			return s.Draw, nil
		}
	}
	return nil, errors.New(errors.ErrCodeInvalidInput,
		"unknown sketch %q (available: %s)", name, strings.Join(sketchNames(), ", "))
}

// sketchNames returns the registered names in listing order.
func sketchNames() []string {
	names := make([]string, len(builtinSketches))
	for i, s := range builtinSketches {
		names[i] = s.Name
	}
	return names
}

// =============================================================================
// Drawing Logic
// =============================================================================

// drawBlank leaves the white ground untouched.
func drawBlank(c *sketch.Context, _ *rand.Rand) error {
	c.SetProgress(1)
	return nil
}

// drawArcs lays seeded arc sweeps over each other. Every arc is spun about
// the frame center and squashed vertically, so each stroke exercises the
// full transform chain and lands as a flattened polyline.
func drawArcs(c *sketch.Context, rng *rand.Rand) error {
	dc := c.DC()
	center := geom.Pt(float64(c.Width)/2, float64(c.Height)/2)
	maxRadius := math.Min(float64(c.Width), float64(c.Height)) * 0.42

	n := 18 + rng.IntN(10)
	for i := 0; i < n; i++ {
		start := rng.Float64() * 2 * math.Pi
		arc := shape.Arc{
			Center: center,
			Radius: maxRadius * (0.35 + rng.Float64()*0.65),
			Start:  start,
			End:    start + math.Pi/3 + rng.Float64()*math.Pi,
			Detail: 64,
		}

		spin := geom.Translation(center).
			Compose(geom.Rotation(rng.Float64() * 2 * math.Pi)).
			Compose(geom.Translation(center.Mul(-1)))
		squash := geom.Translation(center).
			Compose(geom.Scalar(geom.Pt(1, 0.55+rng.Float64()*0.45))).
			Compose(geom.Translation(center.Mul(-1)))

		shade := 0.15 + rng.Float64()*0.4
		dc.SetRGBA(shade, shade, shade, 0.9)
		dc.SetLineWidth(0.6 + rng.Float64()*1.2)
		arc.Transformed(squash.Compose(spin)).Draw(dc)
		if err := dc.Stroke(); err != nil {
			return err
		}
		c.SetProgress(float64(i+1) / float64(n))
	}

	c.OnBeforeSave(func() { signCorner(c) })
	return nil
}

// drawRings scatters markers along concentric rings. Marker positions come
// from polar coordinates with a seeded phase and radial jitter per ring.
func drawRings(c *sketch.Context, rng *rand.Rand) error {
	dc := c.DC()
	center := geom.Pt(float64(c.Width)/2, float64(c.Height)/2)
	maxRadius := math.Min(float64(c.Width), float64(c.Height)) * 0.45

	rings := 5 + rng.IntN(4)
	for ring := 0; ring < rings; ring++ {
		radius := maxRadius * float64(ring+1) / float64(rings)
		count := 8 + ring*6
		phase := rng.Float64() * 2 * math.Pi
		dot := radius / float64(count) * (0.8 + rng.Float64()*0.8)

		shade := 0.6 * float64(ring) / float64(rings)
		dc.SetRGB(shade, shade, shade)
		for i := 0; i < count; i++ {
			angle := phase + 2*math.Pi*float64(i)/float64(count)
			jitter := (rng.Float64() - 0.5) * dot
			m := shape.Marker{
				At:     center.Add(geom.Polar(angle, radius+jitter)),
				Radius: dot,
			}
			m.Draw(dc)
			if err := dc.Fill(); err != nil {
				return err
			}
		}
		c.SetProgress(float64(ring+1) / float64(rings))
	}
	return nil
}

// drawShear strokes one arc as-is, then a fading series of copies under
// increasing shear. The copies come back as polylines, which is the visible
// point of the sketch: sheared arcs are no longer arcs.
func drawShear(c *sketch.Context, rng *rand.Rand) error {
	dc := c.DC()
	center := geom.Pt(float64(c.Width)/2, float64(c.Height)*0.62)
	arc := shape.Arc{
		Center: center,
		Radius: math.Min(float64(c.Width), float64(c.Height)) * 0.3,
		Start:  math.Pi,
		End:    2 * math.Pi,
		Detail: 48,
	}

	dc.SetRGB(0, 0, 0)
	dc.SetLineWidth(1.4)
	arc.Draw(dc)
	if err := dc.Stroke(); err != nil {
		return err
	}

	steps := 7
	unit := 0.1 + rng.Float64()*0.08
	for i := 1; i <= steps; i++ {
		k := unit * float64(i)
		t := geom.Translation(center).
			Compose(geom.Shear(geom.Pt(k, -0.2*k))).
			Compose(geom.Translation(center.Mul(-1)))

		dc.SetRGBA(0, 0, 0, 0.8*(1-float64(i)/float64(steps+1)))
		dc.SetLineWidth(0.8)
		arc.Transformed(t).Draw(dc)
		if err := dc.Stroke(); err != nil {
			return err
		}
		c.SetProgress(float64(i) / float64(steps))
	}
	return nil
}

// signCorner draws a small mark in the bottom-right corner. Registered as a
// before-save hook so it lands on top of everything the trial drew.
func signCorner(c *sketch.Context) {
	dc := c.DC()
	w := float64(c.Width)
	h := float64(c.Height)
	m := math.Min(w, h) * 0.04

	dc.SetRGBA(0, 0, 0, 0.85)
	dc.SetLineWidth(m * 0.3)
	dc.DrawLine(w-3*m, h-m, w-1.6*m, h-m)
	_ = dc.Stroke()
	dc.DrawPoint(w-m, h-m, m*0.35)
	_ = dc.Fill()
}

// =============================================================================
// Sketches Command
// =============================================================================

// sketchesCommand creates the sketches command for listing drawing logic
// and rendered runs.
func (c *CLI) sketchesCommand() *cobra.Command {
	var showRuns bool
	outDir := c.Config.OutDir

	cmd := &cobra.Command{
		Use:   "sketches",
		Short: "List built-in sketches and rendered runs",
		Long: `List built-in sketches and rendered runs.

Without flags, prints the built-in drawing logic selectable with
'render --sketch'. With --runs, scans the artifact root instead and
prints a table of rendered runs.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if showRuns {
				return c.runListRuns(outDir)
			}
			return c.runListSketches()
		},
	}

	cmd.Flags().BoolVar(&showRuns, "runs", false, "list rendered runs instead of sketches")
	cmd.Flags().StringVar(&outDir, "out", outDir, "artifact root directory")

	return cmd
}

// runListSketches prints the built-in registry.
func (c *CLI) runListSketches() error {
	printInfo("Built-in sketches")
	printNewline()
	for _, s := range builtinSketches {
		printKeyValue(s.Name, s.Description)
	}
	printNewline()
	printNextStep("Render", "seedsketch render --sketch "+builtinSketches[0].Name)
	return nil
}

// runListRuns scans the artifact root and prints one row per run.
func (c *CLI) runListRuns(outDir string) error {
	runs, err := gallery.ScanRoot(outDir)
	if err != nil {
		if errors.Is(err, errors.ErrCodeNotFound) {
			printInfo("No runs under %s", outDir)
			return nil
		}
		return err
	}
	if len(runs) == 0 {
		printInfo("No runs under %s", outDir)
		return nil
	}

	rows := make([][]string, 0, len(runs))
	for _, r := range runs {
		latest := "-"
		if r.HasLatest {
			latest = "yes"
		}
		updated := "-"
		if !r.Updated.IsZero() {
			updated = r.Updated.Format("2006-01-02 15:04")
		}
		rows = append(rows, []string{r.Name, fmt.Sprintf("%d", r.ParsedCount()), latest, updated})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Run", "Artifacts", "Latest", "Updated").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return lipgloss.NewStyle().Foreground(colorCyan).Bold(true).Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})

	fmt.Println(t)
	return nil
}
