package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger creates a new logger with timestamp formatting.
// The logger writes to w and filters messages at the specified level.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress tracks the start time of an operation and logs completion with elapsed duration.
type progress struct {
	logger *log.Logger
	start  time.Time
}

// newProgress creates a progress tracker that captures the current time as start.
func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg along with the elapsed time since progress was created.
// Example output: "Wrote fixture.json (12ms)"
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

// logHooks forwards pipeline and output events to the debug log.
type logHooks struct {
	logger *log.Logger
}

func (h *logHooks) OnBuildStart(_ context.Context, levels, expected int) {
	h.logger.Debug("building tree", "levels", levels, "expected", expected)
}

func (h *logHooks) OnBuildComplete(_ context.Context, nodes int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("build failed", "err", err, "duration", d)
		return
	}
	h.logger.Debug("built tree", "nodes", nodes, "duration", d)
}

func (h *logHooks) OnWrite(_ context.Context, format, dest string, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("write failed", "format", format, "dest", dest, "err", err)
		return
	}
	h.logger.Debug("wrote output", "format", format, "dest", dest, "duration", d)
}
