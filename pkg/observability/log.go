package observability

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
)

// LogHooks implements [PipelineHooks] and [HTTPHooks] by writing debug
// records to a charmbracelet logger.
type LogHooks struct {
	logger *log.Logger
}

// NewLogHooks returns hooks logging to l, or to log.Default() when l is nil.
func NewLogHooks(l *log.Logger) *LogHooks {
	if l == nil {
		l = log.Default()
	}
	return &LogHooks{logger: l}
}

func (h *LogHooks) OnRunStart(_ context.Context, owner string, count int) {
	h.logger.Debug("starting run", "owner", owner, "repositories", count)
}

func (h *LogHooks) OnRowStart(_ context.Context, repo string) {
	h.logger.Debug("resolving", "repo", repo)
}

func (h *LogHooks) OnRowComplete(_ context.Context, repo, source string, d time.Duration) {
	h.logger.Debug("resolved", "repo", repo, "source", source, "duration", d.Round(time.Millisecond))
}

func (h *LogHooks) OnRunComplete(_ context.Context, rows int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("run aborted", "rows", rows, "duration", d.Round(time.Millisecond), "err", err)
		return
	}
	h.logger.Debug("run complete", "rows", rows, "duration", d.Round(time.Millisecond))
}

func (h *LogHooks) OnRequest(_ context.Context, method, host, path string) {
	h.logger.Debug("http request", "method", method, "host", host, "path", path)
}

func (h *LogHooks) OnResponse(_ context.Context, method, host, path string, status int, d time.Duration) {
	h.logger.Debug("http response", "method", method, "host", host, "path", path,
		"status", status, "duration", d.Round(time.Millisecond))
}

func (h *LogHooks) OnError(_ context.Context, method, host, path string, err error) {
	h.logger.Debug("http error", "method", method, "host", host, "path", path, "err", err)
}

var (
	_ PipelineHooks = (*LogHooks)(nil)
	_ HTTPHooks     = (*LogHooks)(nil)
)
