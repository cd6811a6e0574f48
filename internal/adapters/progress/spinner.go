package progress

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/tokenswap/tokenswap-deploy/internal/usecase"
)

// SpinnerSink shows deployment stages behind a terminal spinner
type SpinnerSink struct {
	out     io.Writer
	spinner *spinner.Spinner
	stages  []stageInfo
}

type stageInfo struct {
	Stage     string
	StartTime time.Time
	EndTime   time.Time
	Status    string
	Message   string
}

// NewSpinnerSink creates a spinner sink writing to stderr
func NewSpinnerSink() *SpinnerSink {
	return newSpinnerSink(os.Stderr)
}

func newSpinnerSink(out io.Writer) *SpinnerSink {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(out))
	s.HideCursor = false

	return &SpinnerSink{
		out:     out,
		spinner: s,
	}
}

// OnProgress handles progress events
func (r *SpinnerSink) OnProgress(ctx context.Context, event usecase.ProgressEvent) {
	if event.Stage == usecase.StageCompleted {
		r.completeCurrentStage()
		r.spinner.Stop()
		return
	}

	r.completeCurrentStage()
	r.stages = append(r.stages, stageInfo{
		Stage:     event.Stage,
		StartTime: time.Now(),
		Status:    "running",
		Message:   event.Message,
	})

	if event.Spinner {
		r.spinner.Suffix = " " + r.display()
		if !r.spinner.Active() {
			r.spinner.Start()
		}
	} else if r.spinner.Active() {
		r.spinner.Stop()
	}
}

// Info prints an info message
func (r *SpinnerSink) Info(message string) {
	r.paused(func() {
		color.New(color.FgCyan).Fprintln(r.out, message)
	})
}

// Error prints an error message
func (r *SpinnerSink) Error(message string) {
	r.paused(func() {
		color.New(color.FgRed).Fprintln(r.out, message)
	})
}

// paused stops the spinner while fn writes, then restarts it
func (r *SpinnerSink) paused(fn func()) {
	wasActive := r.spinner.Active()
	if wasActive {
		r.spinner.Stop()
	}

	fn()

	if wasActive {
		r.spinner.Start()
	}
}

// completeCurrentStage marks the running stage as completed
func (r *SpinnerSink) completeCurrentStage() {
	if len(r.stages) == 0 {
		return
	}
	idx := len(r.stages) - 1
	if r.stages[idx].Status == "running" {
		r.stages[idx].EndTime = time.Now()
		r.stages[idx].Status = "completed"
	}
}

// display renders the stage chain shown after the spinner
func (r *SpinnerSink) display() string {
	var display string

	for i, stage := range r.stages {
		var icon string
		var stageColor *color.Color

		switch stage.Status {
		case "completed":
			icon = "✓"
			stageColor = color.New(color.FgGreen)
		case "running":
			icon = "●"
			stageColor = color.New(color.FgYellow)
		default:
			icon = "○"
			stageColor = color.New(color.FgWhite)
		}

		label := stage.Message
		if label == "" {
			label = stage.Stage
		}

		duration := ""
		if !stage.EndTime.IsZero() {
			duration = fmt.Sprintf(" (%s)", stage.EndTime.Sub(stage.StartTime).Round(time.Millisecond))
		}

		if i > 0 {
			display += " → "
		}
		display += fmt.Sprintf("%s %s%s", icon, stageColor.Sprint(label), duration)
	}

	return display
}

// Ensure SpinnerSink implements ProgressSink
var _ usecase.ProgressSink = (*SpinnerSink)(nil)
