package sketch

import (
	"testing"

	"github.com/seedsketch/seedsketch/pkg/errors"
)

func TestOptionsDefaults(t *testing.T) {
	var o Options
	if err := o.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("ValidateAndSetDefaults() error = %v", err)
	}

	if o.Width != DefaultWidth {
		t.Errorf("Width = %d, want %d", o.Width, DefaultWidth)
	}
	if o.Height != DefaultHeight {
		t.Errorf("Height = %d, want %d", o.Height, DefaultHeight)
	}
	if o.Scale != DefaultScale {
		t.Errorf("Scale = %v, want %v", o.Scale, DefaultScale)
	}
	if o.Times != DefaultTimes {
		t.Errorf("Times = %d, want %d", o.Times, DefaultTimes)
	}
	if o.Name != DefaultName {
		t.Errorf("Name = %q, want %q", o.Name, DefaultName)
	}
	if o.FPS != DefaultFPS {
		t.Errorf("FPS = %d, want %d", o.FPS, DefaultFPS)
	}
	if o.OutDir != DefaultOutDir {
		t.Errorf("OutDir = %q, want %q", o.OutDir, DefaultOutDir)
	}
	if o.Seed != nil {
		t.Errorf("Seed = %v, want nil (unpinned)", *o.Seed)
	}
}

func TestOptionsIdempotent(t *testing.T) {
	o := Options{Width: 64}
	if err := o.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("first call error = %v", err)
	}
	if err := o.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("second call error = %v", err)
	}
	if o.Width != 64 || o.Height != DefaultHeight {
		t.Errorf("dimensions changed across calls: %dx%d", o.Width, o.Height)
	}
}

func TestOptionsValidation(t *testing.T) {
	tests := []struct {
		name string
		opts Options
	}{
		{"negative width", Options{Width: -10}},
		{"negative height", Options{Height: -10}},
		{"negative scale", Options{Scale: -1}},
		{"negative times", Options{Times: -2}},
		{"negative fps", Options{FPS: -30}},
		{"scale below one pixel", Options{Width: 10, Height: 10, Scale: 0.01}},
		{"run name with separator", Options{Name: "a/b"}},
		{"run name traversal", Options{Name: ".."}},
		{"metadata with separator", Options{Metadata: "a/b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.ValidateAndSetDefaults()
			if err == nil {
				t.Fatal("expected validation error, got nil")
			}
			if !errors.Is(err, errors.ErrCodeInvalidInput) {
				t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidInput)
			}
		})
	}
}

func TestOptionsPhysicalSize(t *testing.T) {
	tests := []struct {
		name  string
		opts  Options
		wantW int
		wantH int
	}{
		{"unit scale", Options{Width: 100, Height: 100, Scale: 1}, 100, 100},
		{"double", Options{Width: 50, Height: 50, Scale: 2}, 100, 100},
		{"fractional rounds", Options{Width: 33, Height: 33, Scale: 1.5}, 50, 50},
		{"half", Options{Width: 101, Height: 101, Scale: 0.5}, 51, 51},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.opts.PhysicalWidth(); got != tt.wantW {
				t.Errorf("PhysicalWidth() = %d, want %d", got, tt.wantW)
			}
			if got := tt.opts.PhysicalHeight(); got != tt.wantH {
				t.Errorf("PhysicalHeight() = %d, want %d", got, tt.wantH)
			}
		})
	}
}
