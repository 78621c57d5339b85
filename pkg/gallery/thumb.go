package gallery

import (
	"bytes"
	"image"
	"image/png"
	"math"
	"os"
	"sync"
	"time"

	"golang.org/x/image/draw"

	"github.com/seedsketch/seedsketch/pkg/errors"
)

// DefaultThumbEdge is the longest edge of a generated thumbnail in pixels.
const DefaultThumbEdge = 320

// Thumbnailer produces downscaled PNG previews of artifact files and
// memoizes them keyed by path and modification time, so an unchanged
// artifact is only decoded and scaled once.
type Thumbnailer struct {
	maxEdge int

	mu   sync.Mutex
	memo map[string]thumbEntry
}

type thumbEntry struct {
	modTime time.Time
	data    []byte
}

// NewThumbnailer creates a thumbnailer with the given longest edge.
// A non-positive edge falls back to DefaultThumbEdge.
func NewThumbnailer(maxEdge int) *Thumbnailer {
	if maxEdge <= 0 {
		maxEdge = DefaultThumbEdge
	}
	return &Thumbnailer{
		maxEdge: maxEdge,
		memo:    make(map[string]thumbEntry),
	}
}

// Render returns an encoded PNG thumbnail of the image at path. Images
// already within the edge limit are returned as their original bytes.
func (t *Thumbnailer) Render(path string) ([]byte, error) {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil, errors.New(errors.ErrCodeNotFound, "artifact %s does not exist", path)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeResource, err, "stat %s", path)
	}

	t.mu.Lock()
	entry, hit := t.memo[path]
	t.mu.Unlock()
	if hit && entry.modTime.Equal(info.ModTime()) {
		return entry.data, nil
	}

	data, err := t.render(path)
	if err != nil {
		return nil, err
	}

	t.mu.Lock()
	t.memo[path] = thumbEntry{modTime: info.ModTime(), data: data}
	t.mu.Unlock()
	return data, nil
}

func (t *Thumbnailer) render(path string) ([]byte, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeResource, err, "read %s", path)
	}

	src, err := png.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeResource, err, "decode %s", path)
	}

	bounds := src.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width <= t.maxEdge && height <= t.maxEdge {
		return raw, nil
	}

	tw, th := thumbSize(width, height, t.maxEdge)
	dst := image.NewRGBA(image.Rect(0, 0, tw, th))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, draw.Src, nil)

	var buf bytes.Buffer
	if err := png.Encode(&buf, dst); err != nil {
		return nil, errors.Wrap(errors.ErrCodePersist, err, "encode thumbnail for %s", path)
	}
	return buf.Bytes(), nil
}

// thumbSize scales (width, height) so the longest edge equals maxEdge,
// preserving aspect ratio. Both dimensions stay at least one pixel.
func thumbSize(width, height, maxEdge int) (int, int) {
	longest := width
	if height > longest {
		longest = height
	}
	scale := float64(maxEdge) / float64(longest)

	tw := int(math.Round(float64(width) * scale))
	th := int(math.Round(float64(height) * scale))
	if tw < 1 {
		tw = 1
	}
	if th < 1 {
		th = 1
	}
	return tw, th
}
