// Package sketch provides the deterministic render pipeline for seedsketch.
//
// This package implements the complete resolve → acquire → render → persist
// trial loop that backs both the one-shot CLI path and the live preview
// window. By centralizing this logic, every entry point produces the same
// bytes for the same seed.
//
// # Architecture
//
// A run consists of one or more trials, executed strictly sequentially.
// Each trial:
//
//  1. Resolve: pin the caller's seed or derive one from wall-clock time
//  2. Acquire: create the raster surface and the artifact directories
//  3. Render: prime a white ground, apply the global scale transform, and
//     run the drawing logic with a freshly seeded generator
//  4. Finalize: invoke the before-save hook, if one was registered
//  5. Persist: encode the surface to PNG once and write the artifact and
//     latest.png from the same bytes
//  6. Release: close the surface and any attached display
//
// The seeded generator is the trial's sole entropy source, so a pinned seed
// reproduces a render byte for byte.
//
// # Usage
//
// Create a Runner and execute a run:
//
//	runner := sketch.NewRunner(logger, nil)
//	seed := uint64(42)
//	opts := sketch.Options{
//	    Width:  100,
//	    Height: 100,
//	    Seed:   &seed,
//	}
//	result, err := runner.Execute(ctx, opts, func(c *sketch.Context, rng *rand.Rand) error {
//	    dc := c.DC()
//	    dc.SetRGB(0, 0, 0)
//	    dc.DrawCircle(50, 50, 10+rng.Float64()*30)
//	    return dc.Stroke()
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Artifacts[0])
//
// Run a single trial and keep the rendered frame (the live preview path):
//
//	trial, err := runner.Trial(ctx, opts, draw)
//	// trial.Frame stays valid after the trial's surface is released
package sketch
