package sketch

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gogpu/gg"

	"github.com/seedsketch/seedsketch/pkg/errors"
)

// LatestName is the filename of the always-overwritten copy of the most
// recent artifact in a run directory.
const LatestName = "latest.png"

// ProgressDirName is the reserved per-run subdirectory. It is created with
// the run directory but the render path never writes into it; callers that
// record work-in-progress frames use it.
const ProgressDirName = "progress"

// formatScale renders a scale factor for artifact filenames. Integral values
// keep a trailing ".0" so seed 42 at scale 1 becomes "42-1.0.png".
func formatScale(s float64) string {
	str := strconv.FormatFloat(s, 'f', -1, 64)
	if !strings.Contains(str, ".") {
		str += ".0"
	}
	return str
}

// ArtifactName returns the filename for a trial's artifact:
// <seed>-<scale><metadata>.png.
func ArtifactName(seed uint64, scale float64, metadata string) string {
	return fmt.Sprintf("%d-%s%s.png", seed, formatScale(scale), metadata)
}

// ensureRunDirs creates the artifact directory tree for a run, including the
// reserved progress subdirectory, and returns the run directory.
func ensureRunDirs(outDir, name string) (string, error) {
	runDir := filepath.Join(outDir, name)
	if err := os.MkdirAll(filepath.Join(runDir, ProgressDirName), 0o755); err != nil {
		return "", errors.Wrap(errors.ErrCodeResource, err, "create artifact directories for %q", name)
	}
	return runDir, nil
}

// persist encodes the surface to PNG in memory, then writes the trial
// artifact and latest.png from the same bytes. Encoding completes before any
// file is touched, so a failure never leaves a partial artifact, and the two
// files are byte-identical.
func persist(dc *gg.Context, runDir, filename string) (string, error) {
	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return "", errors.Wrap(errors.ErrCodePersist, err, "encode png")
	}

	path := filepath.Join(runDir, filename)
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return "", errors.Wrap(errors.ErrCodePersist, err, "write artifact %s", path)
	}

	latest := filepath.Join(runDir, LatestName)
	if err := os.WriteFile(latest, buf.Bytes(), 0o644); err != nil {
		return "", errors.Wrap(errors.ErrCodePersist, err, "write %s", latest)
	}

	return path, nil
}
