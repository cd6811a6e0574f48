package progress

import (
	"context"
	"log/slog"

	"github.com/tokenswap/tokenswap-deploy/internal/usecase"
)

// LogSink reports progress through the structured logger, for non-interactive runs
type LogSink struct {
	log *slog.Logger
}

// NewLogSink creates a progress sink backed by log
func NewLogSink(log *slog.Logger) *LogSink {
	return &LogSink{log: log.With("component", "progress")}
}

// OnProgress logs each stage transition at debug level
func (s *LogSink) OnProgress(ctx context.Context, event usecase.ProgressEvent) {
	if event.Message == "" {
		s.log.DebugContext(ctx, "stage", "stage", event.Stage)
		return
	}
	s.log.DebugContext(ctx, event.Message, "stage", event.Stage)
}

func (s *LogSink) Info(message string) {
	s.log.Info(message)
}

func (s *LogSink) Error(message string) {
	s.log.Error(message)
}

// Ensure LogSink implements ProgressSink
var _ usecase.ProgressSink = (*LogSink)(nil)
