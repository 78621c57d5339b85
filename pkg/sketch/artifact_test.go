package sketch

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFormatScale(t *testing.T) {
	tests := []struct {
		name     string
		scale    float64
		expected string
	}{
		{"integral one", 1, "1.0"},
		{"integral two", 2, "2.0"},
		{"integral ten", 10, "10.0"},
		{"half", 0.5, "0.5"},
		{"one and a half", 1.5, "1.5"},
		{"quarter step", 2.25, "2.25"},
		{"small", 0.1, "0.1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatScale(tt.scale); got != tt.expected {
				t.Errorf("formatScale(%v) = %q, want %q", tt.scale, got, tt.expected)
			}
		})
	}
}

func TestArtifactName(t *testing.T) {
	tests := []struct {
		name     string
		seed     uint64
		scale    float64
		metadata string
		expected string
	}{
		{"plain", 42, 1, "", "42-1.0.png"},
		{"fractional scale", 42, 1.5, "", "42-1.5.png"},
		{"with metadata", 42, 1, "-draft", "42-1.0-draft.png"},
		{"underscore metadata", 7, 2, "_highres", "7-2.0_highres.png"},
		{"zero seed", 0, 0.5, "", "0-0.5.png"},
		{"large seed", 1724575431000, 1, "", "1724575431000-1.0.png"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ArtifactName(tt.seed, tt.scale, tt.metadata); got != tt.expected {
				t.Errorf("ArtifactName(%d, %v, %q) = %q, want %q",
					tt.seed, tt.scale, tt.metadata, got, tt.expected)
			}
		})
	}
}

func TestEnsureRunDirs(t *testing.T) {
	root := t.TempDir()

	runDir, err := ensureRunDirs(root, "sketch")
	if err != nil {
		t.Fatalf("ensureRunDirs() error = %v", err)
	}
	if runDir != filepath.Join(root, "sketch") {
		t.Errorf("runDir = %q, want %q", runDir, filepath.Join(root, "sketch"))
	}

	info, err := os.Stat(filepath.Join(runDir, ProgressDirName))
	if err != nil {
		t.Fatalf("progress dir not created: %v", err)
	}
	if !info.IsDir() {
		t.Error("progress entry is not a directory")
	}

	// Idempotent over an existing tree.
	if _, err := ensureRunDirs(root, "sketch"); err != nil {
		t.Errorf("second ensureRunDirs() error = %v", err)
	}
}
