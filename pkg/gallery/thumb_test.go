package gallery

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/seedsketch/seedsketch/pkg/errors"
)

// writeTestPNG encodes a solid-color image to path and returns its bytes.
func writeTestPNG(t *testing.T, path string, width, height int, fill color.Color) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, fill)
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatalf("write png: %v", err)
	}
	return buf.Bytes()
}

func TestThumbnailerDownscales(t *testing.T) {
	path := filepath.Join(t.TempDir(), "big.png")
	writeTestPNG(t, path, 128, 64, color.White)

	data, err := NewThumbnailer(32).Render(path)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode thumbnail: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 32 || b.Dy() != 16 {
		t.Errorf("thumbnail size = %dx%d, want 32x16", b.Dx(), b.Dy())
	}
}

func TestThumbnailerPassthrough(t *testing.T) {
	path := filepath.Join(t.TempDir(), "small.png")
	raw := writeTestPNG(t, path, 16, 16, color.White)

	data, err := NewThumbnailer(32).Render(path)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if !bytes.Equal(data, raw) {
		t.Error("small image re-encoded, want original bytes")
	}
}

func TestThumbnailerMemo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "art.png")
	writeTestPNG(t, path, 64, 64, color.White)
	stamp := time.Now().Add(-time.Minute).Truncate(time.Second)
	if err := os.Chtimes(path, stamp, stamp); err != nil {
		t.Fatal(err)
	}

	th := NewThumbnailer(16)
	first, err := th.Render(path)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	// Rewrite with different pixels but the same modification time. A memo
	// hit returns the earlier thumbnail.
	writeTestPNG(t, path, 64, 64, color.Black)
	if err := os.Chtimes(path, stamp, stamp); err != nil {
		t.Fatal(err)
	}
	second, err := th.Render(path)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Error("memo missed for unchanged modification time")
	}

	// Bumping the modification time invalidates the entry.
	later := stamp.Add(time.Second)
	if err := os.Chtimes(path, later, later); err != nil {
		t.Fatal(err)
	}
	third, err := th.Render(path)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if bytes.Equal(first, third) {
		t.Error("stale thumbnail served after modification")
	}
}

func TestThumbnailerMissing(t *testing.T) {
	_, err := NewThumbnailer(32).Render(filepath.Join(t.TempDir(), "none.png"))
	if !errors.Is(err, errors.ErrCodeNotFound) {
		t.Errorf("Render() error = %v, want NOT_FOUND", err)
	}
}

func TestThumbSize(t *testing.T) {
	tests := []struct {
		name         string
		w, h, edge   int
		wantW, wantH int
	}{
		{name: "wide", w: 100, h: 50, edge: 32, wantW: 32, wantH: 16},
		{name: "tall", w: 50, h: 100, edge: 32, wantW: 16, wantH: 32},
		{name: "square", w: 100, h: 100, edge: 32, wantW: 32, wantH: 32},
		{name: "extreme ratio", w: 1000, h: 1, edge: 10, wantW: 10, wantH: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := thumbSize(tt.w, tt.h, tt.edge)
			if w != tt.wantW || h != tt.wantH {
				t.Errorf("thumbSize(%d, %d, %d) = (%d, %d), want (%d, %d)",
					tt.w, tt.h, tt.edge, w, h, tt.wantW, tt.wantH)
			}
		})
	}
}
