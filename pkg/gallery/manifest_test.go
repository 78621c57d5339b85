package gallery

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/seedsketch/seedsketch/pkg/errors"
)

func TestParseArtifactName(t *testing.T) {
	tests := []struct {
		name     string
		file     string
		seed     uint64
		scale    float64
		metadata string
		ok       bool
	}{
		{name: "integral scale", file: "42-1.0.png", seed: 42, scale: 1, ok: true},
		{name: "fractional scale", file: "7-0.5.png", seed: 7, scale: 0.5, ok: true},
		{name: "dash metadata", file: "9-2.0-draft.png", seed: 9, scale: 2, metadata: "-draft", ok: true},
		{name: "underscore metadata", file: "9-2.0_highres.png", seed: 9, scale: 2, metadata: "_highres", ok: true},
		{name: "millisecond seed", file: "1755000000000-1.5.png", seed: 1755000000000, scale: 1.5, ok: true},
		{name: "latest preview", file: "latest.png", ok: false},
		{name: "wrong extension", file: "42-1.0.jpg", ok: false},
		{name: "missing scale", file: "42-.png", ok: false},
		{name: "missing seed", file: "-1.0.png", ok: false},
		{name: "seed only", file: "42.png", ok: false},
		{name: "text seed", file: "abc-1.0.png", ok: false},
		{name: "double dot scale", file: "42-1..0.png", ok: false},
		{name: "trailing dot scale", file: "42-1..png", ok: false},
		{name: "unseparated suffix", file: "42-1.0x.png", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seed, scale, metadata, ok := parseArtifactName(tt.file)
			if ok != tt.ok {
				t.Fatalf("parseArtifactName(%q) ok = %v, want %v", tt.file, ok, tt.ok)
			}
			if !tt.ok {
				return
			}
			if seed != tt.seed {
				t.Errorf("seed = %d, want %d", seed, tt.seed)
			}
			if scale != tt.scale {
				t.Errorf("scale = %g, want %g", scale, tt.scale)
			}
			if metadata != tt.metadata {
				t.Errorf("metadata = %q, want %q", metadata, tt.metadata)
			}
		})
	}
}

func TestScanRun(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "orbits")
	if err := os.MkdirAll(filepath.Join(dir, "progress"), 0o755); err != nil {
		t.Fatal(err)
	}

	base := time.Now().Add(-time.Hour).Truncate(time.Second)
	writeFile := func(name string, age time.Duration) {
		t.Helper()
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte("png"), 0o644); err != nil {
			t.Fatal(err)
		}
		stamp := base.Add(age)
		if err := os.Chtimes(path, stamp, stamp); err != nil {
			t.Fatal(err)
		}
	}
	writeFile("42-1.0.png", 0)
	writeFile("7-2.0-draft.png", time.Minute)
	writeFile("notes.txt", 2*time.Minute)
	writeFile("latest.png", time.Minute)

	run, err := ScanRun(root, "orbits")
	if err != nil {
		t.Fatalf("ScanRun() error = %v", err)
	}

	if !run.HasLatest {
		t.Error("HasLatest = false, want true")
	}
	if len(run.Artifacts) != 3 {
		t.Fatalf("len(Artifacts) = %d, want 3", len(run.Artifacts))
	}

	wantOrder := []string{"notes.txt", "7-2.0-draft.png", "42-1.0.png"}
	for i, want := range wantOrder {
		if run.Artifacts[i].File != want {
			t.Errorf("Artifacts[%d].File = %q, want %q", i, run.Artifacts[i].File, want)
		}
	}

	draft := run.Artifacts[1]
	if !draft.Parsed {
		t.Fatal("7-2.0-draft.png not parsed")
	}
	if draft.Seed != 7 || draft.Scale != 2 || draft.Metadata != "-draft" {
		t.Errorf("parsed fields = (%d, %g, %q), want (7, 2, %q)", draft.Seed, draft.Scale, draft.Metadata, "-draft")
	}
	if run.Artifacts[0].Parsed {
		t.Error("notes.txt parsed as artifact")
	}
	if got := run.ParsedCount(); got != 2 {
		t.Errorf("ParsedCount() = %d, want 2", got)
	}
	if want := base.Add(2 * time.Minute); !run.Updated.Equal(want) {
		t.Errorf("Updated = %v, want %v", run.Updated, want)
	}
}

func TestScanRunMissing(t *testing.T) {
	_, err := ScanRun(t.TempDir(), "ghost")
	if !errors.Is(err, errors.ErrCodeNotFound) {
		t.Errorf("ScanRun() error = %v, want NOT_FOUND", err)
	}
}

func TestScanRunRejectsBadName(t *testing.T) {
	_, err := ScanRun(t.TempDir(), "../escape")
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("ScanRun() error = %v, want INVALID_INPUT", err)
	}
}

func TestScanRoot(t *testing.T) {
	root := t.TempDir()
	for _, name := range []string{"alpha", "beta"} {
		if err := os.MkdirAll(filepath.Join(root, name), 0o755); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.MkdirAll(filepath.Join(root, ".cache"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(root, "stray.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(root, "beta", "3-1.0.png"), []byte("png"), 0o644); err != nil {
		t.Fatal(err)
	}

	runs, err := ScanRoot(root)
	if err != nil {
		t.Fatalf("ScanRoot() error = %v", err)
	}

	if len(runs) != 2 {
		t.Fatalf("len(runs) = %d, want 2", len(runs))
	}
	if runs[0].Name != "alpha" || runs[1].Name != "beta" {
		t.Errorf("run order = [%s %s], want [alpha beta]", runs[0].Name, runs[1].Name)
	}
	if len(runs[0].Artifacts) != 0 {
		t.Errorf("alpha artifacts = %d, want 0", len(runs[0].Artifacts))
	}
	if len(runs[1].Artifacts) != 1 {
		t.Errorf("beta artifacts = %d, want 1", len(runs[1].Artifacts))
	}
}

func TestScanRootMissing(t *testing.T) {
	_, err := ScanRoot(filepath.Join(t.TempDir(), "none"))
	if !errors.Is(err, errors.ErrCodeNotFound) {
		t.Errorf("ScanRoot() error = %v, want NOT_FOUND", err)
	}
}
