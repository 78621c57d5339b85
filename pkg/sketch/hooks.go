package sketch

import (
	"context"
	"time"
)

// TrialHooks receives events from the trial loop. The CLI's multi-trial
// progress UI implements it to follow trials while they run underneath;
// everything else uses the no-op default. Hooks are scoped to a Runner, not
// registered globally.
type TrialHooks interface {
	// OnTrialStart fires after the trial's context is created, before drawing
	// begins. trial is zero-based. The context's progress counter may be
	// polled from another goroutine until OnTrialComplete fires; the rest of
	// the context belongs to the trial.
	OnTrialStart(ctx context.Context, trial int, c *Context)

	// OnTrialComplete fires after persistence (or failure). artifact is the
	// written path, empty on error.
	OnTrialComplete(ctx context.Context, trial int, seed uint64, artifact string, duration time.Duration, err error)
}

// NoopTrialHooks is a no-op implementation of TrialHooks.
type NoopTrialHooks struct{}

func (NoopTrialHooks) OnTrialStart(context.Context, int, *Context) {}
func (NoopTrialHooks) OnTrialComplete(context.Context, int, uint64, string, time.Duration, error) {
}
