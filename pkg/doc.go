// Package pkg provides the core libraries for Seedsketch generative art.
//
// # Overview
//
// Seedsketch turns deterministic drawing logic into reproducible image
// artifacts: every trial derives a seed, renders a sketch with that seed's
// generator, and files the result under a name that records exactly how to
// recreate it. The pkg directory is organized into four main areas:
//
//  1. [sketch] - The trial engine (seeds, surfaces, runs, artifacts)
//  2. [geom] and [shape] - Drawing vocabulary (points, transforms, shapes)
//  3. [live] and [gallery] - Front ends (preview window, artifact browser)
//  4. [config] and [errors] - Shared configuration and error taxonomy
//
// # Architecture
//
// The typical data flow through Seedsketch:
//
//	Seed (pinned or wall-clock)
//	         ↓
//	    [sketch] package (surface + seeded generator)
//	         ↓
//	    DrawFunc ([geom] transforms + [shape] primitives)
//	         ↓
//	    PNG artifact (<out>/<name>/<seed>-<scale>.png + latest.png)
//
// # Quick Start
//
// Run a pinned-seed trial and write its artifact:
//
//	import (
//	    "context"
//	    "math/rand/v2"
//	    "github.com/seedsketch/seedsketch/pkg/sketch"
//	)
//
//	draw := func(c *sketch.Context, rng *rand.Rand) error {
//	    dc := c.DC()
//	    dc.DrawCircle(50, 50, 10+20*rng.Float64())
//	    return dc.Stroke()
//	}
//
//	seed := uint64(42)
//	runner := sketch.NewRunner(nil, nil)
//	result, err := runner.Execute(context.Background(), sketch.Options{
//	    Name: "circles",
//	    Seed: &seed,
//	}, draw)
//
// Rerunning with the same seed writes a byte-identical artifact.
//
// # Main Packages
//
// ## Trial Engine
//
// [sketch] - Seed resolution, trial execution, and artifact persistence.
// A Runner owns the trial loop: acquire a surface, render, fire the
// before-save hook, persist, release. Runs are sequential; cancellation
// applies between trials, never mid-render.
//
// ## Drawing Vocabulary
//
// [geom] - Points and affine transforms in user-space coordinates.
// Transforms compose right-to-left and carry rotation, translation,
// scaling, shear, and reflection.
//
// [shape] - Drawable primitives (Arc, Marker, Polyline) that extend a
// drawing context's current path. Shapes survive affine maps through
// Transformed, falling back to sampled polylines where the parametric
// form cannot.
//
// ## Front Ends
//
// [live] - Windowed preview that renders one trial and keeps its frame on
// screen until the window closes. The artifact on disk is the same one a
// headless run would write.
//
// [gallery] - Read-only HTTP browser over the artifact root: run listing,
// per-run detail, full-size images, and cached thumbnails.
//
// ## Shared Infrastructure
//
// [config] - Layered configuration (builtins, TOML file, environment)
// shared by every command.
//
// [errors] - Coded errors (INVALID_INPUT, RESOURCE, PERSIST, NOT_FOUND,
// INTERNAL) with wrapping, classification, and user-facing messages.
//
// [buildinfo] - Version metadata injected at build time.
//
// # Common Workflows
//
// Track render progress from another goroutine:
//
//	c.SetProgress(float64(i+1) / float64(n))  // inside the DrawFunc
//	frac := c.Progress()                      // from a UI poller
//
// Defer a final touch until just before the artifact is written:
//
//	c.OnBeforeSave(func() { sign(c) })
//
// Reproduce any artifact from its filename:
//
//	seedsketch render --sketch arcs --seed 1724578800000 --scale 2.0
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...            # All tests
//	go test ./pkg/sketch/...     # Specific package
//	go test -run Example         # Examples only
//
// [sketch]: https://pkg.go.dev/github.com/seedsketch/seedsketch/pkg/sketch
// [geom]: https://pkg.go.dev/github.com/seedsketch/seedsketch/pkg/geom
// [shape]: https://pkg.go.dev/github.com/seedsketch/seedsketch/pkg/shape
// [live]: https://pkg.go.dev/github.com/seedsketch/seedsketch/pkg/live
// [gallery]: https://pkg.go.dev/github.com/seedsketch/seedsketch/pkg/gallery
// [config]: https://pkg.go.dev/github.com/seedsketch/seedsketch/pkg/config
// [errors]: https://pkg.go.dev/github.com/seedsketch/seedsketch/pkg/errors
// [buildinfo]: https://pkg.go.dev/github.com/seedsketch/seedsketch/pkg/buildinfo
package pkg
