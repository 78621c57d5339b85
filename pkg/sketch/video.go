package sketch

import "time"

// VideoState holds frame pacing state for callers that redraw continuously.
// The pipeline configures the live loop's tick rate from FPS but does not
// otherwise enforce pacing; a caller performing repeated draws checks
// FrameDue before advancing and stamps each frame it emits.
type VideoState struct {
	// FPS is the target frame rate. Non-positive means unpaced.
	FPS int

	// LastFrame is the time the previous frame was emitted. The zero value
	// means no frame has been emitted yet.
	LastFrame time.Time
}

// FrameInterval returns the minimum spacing between frames, or 0 when
// pacing is disabled.
func (v *VideoState) FrameInterval() time.Duration {
	if v.FPS <= 0 {
		return 0
	}
	return time.Second / time.Duration(v.FPS)
}

// FrameDue reports whether enough time has passed since LastFrame for the
// next frame to be emitted at now.
func (v *VideoState) FrameDue(now time.Time) bool {
	return now.Sub(v.LastFrame) >= v.FrameInterval()
}

// StampFrame records that a frame was emitted at now.
func (v *VideoState) StampFrame(now time.Time) {
	v.LastFrame = now
}
