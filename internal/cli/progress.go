package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/seedsketch/seedsketch/pkg/errors"
	"github.com/seedsketch/seedsketch/pkg/sketch"
)

// pollInterval is how often the view samples the running trial's counter.
const pollInterval = 100 * time.Millisecond

// barWidth is the character width of the per-trial progress bar.
const barWidth = 30

// =============================================================================
// Messages
// =============================================================================

// trialStartMsg announces that a trial began and carries the context whose
// progress counter the view polls while the trial runs.
type trialStartMsg struct {
	trial    int
	trialCtx *sketch.Context
}

// trialDoneMsg announces a finished trial, successful or not.
type trialDoneMsg struct {
	trial    int
	seed     uint64
	artifact string
	duration time.Duration
	err      error
}

// trialTickMsg re-samples the running trial's progress counter.
type trialTickMsg struct{}

// runDoneMsg carries the final outcome of the whole run.
type runDoneMsg struct {
	result *sketch.Result
	err    error
}

// =============================================================================
// Hooks
// =============================================================================

// teaHooks forwards trial events from the runner into the progress view.
type teaHooks struct {
	p *tea.Program
}

func (h teaHooks) OnTrialStart(_ context.Context, trial int, c *sketch.Context) {
	h.p.Send(trialStartMsg{trial: trial, trialCtx: c})
}

func (h teaHooks) OnTrialComplete(_ context.Context, trial int, seed uint64, artifact string, duration time.Duration, err error) {
	h.p.Send(trialDoneMsg{trial: trial, seed: seed, artifact: artifact, duration: duration, err: err})
}

// =============================================================================
// RunModel - Multi-trial progress view
// =============================================================================

// trialStatus is one completed row in the progress view.
type trialStatus struct {
	seed     uint64
	duration time.Duration
	err      error
}

// runModel is the bubbletea model for a multi-trial run. Trials execute
// sequentially underneath; the model only observes them through messages and
// the running trial's atomic progress counter.
type runModel struct {
	sketchName string
	times      int
	cancel     context.CancelFunc

	current   int
	trialCtx  *sketch.Context
	completed []trialStatus
	quitting  bool
	result    *sketch.Result
	err       error
}

// newRunModel creates the view state for a run of times trials. cancel stops
// the run between trials when the user quits.
func newRunModel(sketchName string, times int, cancel context.CancelFunc) runModel {
	return runModel{
		sketchName: sketchName,
		times:      times,
		cancel:     cancel,
	}
}

func (m runModel) Init() tea.Cmd {
	return tickCmd()
}

func (m runModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			// The trial in flight always completes; the view stays up
			// until the run reports back.
			m.quitting = true
			m.cancel()
		}
	case trialStartMsg:
		m.current = msg.trial
		m.trialCtx = msg.trialCtx
	case trialDoneMsg:
		m.trialCtx = nil
		m.completed = append(m.completed, trialStatus{
			seed:     msg.seed,
			duration: msg.duration,
			err:      msg.err,
		})
	case trialTickMsg:
		return m, tickCmd()
	case runDoneMsg:
		m.result = msg.result
		m.err = msg.err
		return m, tea.Quit
	}
	return m, nil
}

func (m runModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(fmt.Sprintf("Rendering %s", m.sketchName)))
	b.WriteString(StyleDim.Render(fmt.Sprintf("  %d trials", m.times)))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("q to cancel after the current trial"))
	b.WriteString("\n\n")

	for i, s := range m.completed {
		icon := styleIconSuccess.Render(iconSuccess)
		detail := StyleDim.Render(s.duration.Round(time.Millisecond).String())
		if s.err != nil {
			icon = styleIconError.Render(iconError)
			detail = styleIconError.Render(s.err.Error())
		}
		b.WriteString(fmt.Sprintf("%s trial %d/%d  seed %s  %s\n",
			icon, i+1, m.times, StyleNumber.Render(fmt.Sprintf("%d", s.seed)), detail))
	}

	if m.trialCtx != nil {
		frac := m.trialCtx.Progress()
		b.WriteString(fmt.Sprintf("%s trial %d/%d  %s %s\n",
			StyleHighlight.Render("▸"), m.current+1, m.times,
			renderBar(frac, barWidth),
			StyleDim.Render(fmt.Sprintf("%3.0f%%", frac*100))))
	}

	if m.quitting {
		b.WriteString("\n")
		b.WriteString(StyleWarning.Render("Cancelling after the current trial..."))
		b.WriteString("\n")
	}

	return b.String()
}

// tickCmd schedules the next progress sample.
func tickCmd() tea.Cmd {
	return tea.Tick(pollInterval, func(time.Time) tea.Msg {
		return trialTickMsg{}
	})
}

// renderBar draws a fixed-width block bar for a fraction in [0,1].
func renderBar(frac float64, width int) string {
	if frac < 0 {
		frac = 0
	} else if frac > 1 {
		frac = 1
	}
	filled := int(frac*float64(width) + 0.5)
	return StyleSuccess.Render(strings.Repeat("█", filled)) +
		StyleDim.Render(strings.Repeat("░", width-filled))
}

// =============================================================================
// Driver
// =============================================================================

// runWithProgressUI executes the run with the interactive progress view. The
// runner works on a goroutine and reports through hooks; the view owns the
// terminal until the run finishes or is cancelled.
func (c *CLI) runWithProgressUI(ctx context.Context, opts sketch.Options, sketchName string, draw sketch.DrawFunc) error {
	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	p := tea.NewProgram(newRunModel(sketchName, opts.Times, cancel))

	// Log lines would tear the view; trial events arrive as messages instead.
	runner := sketch.NewRunner(log.New(io.Discard), teaHooks{p: p})
	go func() {
		result, err := runner.Execute(runCtx, opts, draw)
		p.Send(runDoneMsg{result: result, err: err})
	}()

	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	fm, ok := finalModel.(runModel)
	if !ok {
		return errors.New(errors.ErrCodeInternal, "unexpected progress model %T", finalModel)
	}
	if fm.err != nil {
		if fm.quitting {
			printWarning("Run cancelled")
		}
		return fm.err
	}

	printRunResult(fm.result)
	return nil
}
