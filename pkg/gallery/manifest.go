package gallery

import (
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/seedsketch/seedsketch/pkg/errors"
	"github.com/seedsketch/seedsketch/pkg/sketch"
)

// Artifact describes one file inside a run directory. Files following the
// <seed>-<scale>[<metadata>].png naming convention are parsed into their
// components; anything else is listed as a plain file with Parsed false.
type Artifact struct {
	Run      string    // run name (directory under the artifact root)
	File     string    // file name inside the run directory
	Seed     uint64    // seed component, valid when Parsed
	Scale    float64   // scale component, valid when Parsed
	Metadata string    // metadata suffix including its separator, valid when Parsed
	ModTime  time.Time // file modification time
	Size     int64     // file size in bytes
	Parsed   bool      // name followed the artifact convention
}

// Run summarizes one run directory under the artifact root.
type Run struct {
	Name      string
	Artifacts []Artifact // newest first
	HasLatest bool       // directory contains a latest.png preview
	Updated   time.Time  // newest artifact modification time
}

// ParsedCount returns the number of artifacts that follow the naming
// convention, excluding plain files.
func (r Run) ParsedCount() int {
	n := 0
	for _, a := range r.Artifacts {
		if a.Parsed {
			n++
		}
	}
	return n
}

// ScanRoot lists every run directory under the artifact root. Directories
// whose names would be rejected as run names are skipped, as are loose files
// at the root. Runs are sorted by name.
func ScanRoot(root string) ([]Run, error) {
	entries, err := os.ReadDir(root)
	if os.IsNotExist(err) {
		return nil, errors.New(errors.ErrCodeNotFound, "artifact root %s does not exist", root)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeResource, err, "read artifact root %s", root)
	}

	var runs []Run
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		if errors.ValidateRunName(entry.Name()) != nil {
			continue
		}
		run, err := ScanRun(root, entry.Name())
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}

	sort.Slice(runs, func(i, j int) bool { return runs[i].Name < runs[j].Name })
	return runs, nil
}

// ScanRun lists the artifacts of a single run directory, newest first.
// The latest.png preview and the progress directory are recognized rather
// than listed.
func ScanRun(root, name string) (Run, error) {
	if err := errors.ValidateRunName(name); err != nil {
		return Run{}, err
	}

	dir := filepath.Join(root, name)
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return Run{}, errors.New(errors.ErrCodeNotFound, "run %s does not exist", name)
	}
	if err != nil {
		return Run{}, errors.Wrap(errors.ErrCodeResource, err, "read run directory %s", dir)
	}

	run := Run{Name: name}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if entry.Name() == sketch.LatestName {
			run.HasLatest = true
			continue
		}

		info, err := entry.Info()
		if err != nil {
			return Run{}, errors.Wrap(errors.ErrCodeResource, err, "stat %s", filepath.Join(dir, entry.Name()))
		}

		artifact := Artifact{
			Run:     name,
			File:    entry.Name(),
			ModTime: info.ModTime(),
			Size:    info.Size(),
		}
		if seed, scale, metadata, ok := parseArtifactName(entry.Name()); ok {
			artifact.Seed = seed
			artifact.Scale = scale
			artifact.Metadata = metadata
			artifact.Parsed = true
		}
		run.Artifacts = append(run.Artifacts, artifact)

		if info.ModTime().After(run.Updated) {
			run.Updated = info.ModTime()
		}
	}

	sort.Slice(run.Artifacts, func(i, j int) bool {
		a, b := run.Artifacts[i], run.Artifacts[j]
		if !a.ModTime.Equal(b.ModTime) {
			return a.ModTime.After(b.ModTime)
		}
		return a.File < b.File
	})
	return run, nil
}

// parseArtifactName splits a file name of the form <seed>-<scale>[<metadata>].png
// into its components. ok is false for any name outside the convention.
func parseArtifactName(name string) (seed uint64, scale float64, metadata string, ok bool) {
	base, found := strings.CutSuffix(name, ".png")
	if !found {
		return 0, 0, "", false
	}

	seedStr, rest, found := strings.Cut(base, "-")
	if !found || seedStr == "" {
		return 0, 0, "", false
	}
	seed, err := strconv.ParseUint(seedStr, 10, 64)
	if err != nil {
		return 0, 0, "", false
	}

	scaleStr, metadata := splitScale(rest)
	if scaleStr == "" {
		return 0, 0, "", false
	}
	scale, err = strconv.ParseFloat(scaleStr, 64)
	if err != nil {
		return 0, 0, "", false
	}
	if metadata != "" {
		if metadata[0] != '-' && metadata[0] != '_' {
			return 0, 0, "", false
		}
		if errors.ValidateMetadata(metadata) != nil {
			return 0, 0, "", false
		}
	}
	return seed, scale, metadata, true
}

// splitScale cuts the leading decimal number (digits with at most one
// fractional part) off rest, returning it and the remainder.
func splitScale(rest string) (scaleStr, remainder string) {
	i := 0
	for i < len(rest) && rest[i] >= '0' && rest[i] <= '9' {
		i++
	}
	if i == 0 {
		return "", rest
	}
	if i < len(rest) && rest[i] == '.' {
		j := i + 1
		for j < len(rest) && rest[j] >= '0' && rest[j] <= '9' {
			j++
		}
		if j == i+1 {
			// Dot with no fractional digits is outside the convention.
			return "", rest
		}
		i = j
	}
	return rest[:i], rest[i:]
}
