package sketch

import (
	"testing"
	"time"
)

func TestFrameInterval(t *testing.T) {
	tests := []struct {
		name     string
		fps      int
		expected time.Duration
	}{
		{"thirty", 30, time.Second / 30},
		{"sixty", 60, time.Second / 60},
		{"one", 1, time.Second},
		{"zero means unpaced", 0, 0},
		{"negative means unpaced", -5, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := VideoState{FPS: tt.fps}
			if got := v.FrameInterval(); got != tt.expected {
				t.Errorf("FrameInterval() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestFramePacing(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	v := VideoState{FPS: 30}

	// Nothing emitted yet, first frame is due immediately.
	if !v.FrameDue(now) {
		t.Error("first frame should be due")
	}

	v.StampFrame(now)
	if v.LastFrame != now {
		t.Errorf("LastFrame = %v, want %v", v.LastFrame, now)
	}

	// 10ms later is inside the ~33ms interval.
	if v.FrameDue(now.Add(10 * time.Millisecond)) {
		t.Error("frame due 10ms after stamp at 30fps")
	}

	// 34ms later is past it.
	if !v.FrameDue(now.Add(34 * time.Millisecond)) {
		t.Error("frame not due 34ms after stamp at 30fps")
	}
}

func TestFramePacingUnpaced(t *testing.T) {
	now := time.Now()
	v := VideoState{}
	v.StampFrame(now)

	if !v.FrameDue(now) {
		t.Error("unpaced state should always report frames due")
	}
}
