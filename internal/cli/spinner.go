package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/manivaultstudio/plugintable/pkg/observability"
)

var styleIconSpinner = lipgloss.NewStyle().Foreground(colorCyan)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// spinner redraws a one-line status on w until stopped or its context ends.
type spinner struct {
	w      io.Writer
	ctx    context.Context
	cancel context.CancelFunc

	mu      sync.Mutex
	message string
	width   int // width of the last drawn line
	started bool

	done     chan struct{}
	stopped  chan struct{}
	stopOnce sync.Once
}

func newSpinner(ctx context.Context, w io.Writer, message string) *spinner {
	ctx, cancel := context.WithCancel(ctx)
	return &spinner{
		w:       w,
		ctx:     ctx,
		cancel:  cancel,
		message: message,
		done:    make(chan struct{}),
		stopped: make(chan struct{}),
	}
}

// start begins the animation. Calling start more than once has no effect.
func (s *spinner) start() {
	s.mu.Lock()
	if s.started {
		s.mu.Unlock()
		return
	}
	s.started = true
	s.mu.Unlock()

	go func() {
		defer close(s.stopped)
		ticker := time.NewTicker(80 * time.Millisecond)
		defer ticker.Stop()

		for i := 0; ; i++ {
			select {
			case <-s.ctx.Done():
				s.clearLine()
				return
			case <-s.done:
				return
			case <-ticker.C:
				s.draw(spinnerFrames[i%len(spinnerFrames)])
			}
		}
	}()
}

// setMessage replaces the text shown next to the spinner.
func (s *spinner) setMessage(msg string) {
	s.mu.Lock()
	s.message = msg
	s.mu.Unlock()
}

// stop ends the animation and clears the line. It is safe to call more than
// once and without a prior start.
func (s *spinner) stop() {
	s.stopOnce.Do(func() {
		close(s.done)
		s.cancel()
	})
	s.mu.Lock()
	started := s.started
	s.mu.Unlock()
	if started {
		<-s.stopped
	}
	s.clearLine()
}

func (s *spinner) draw(frame string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	line := styleIconSpinner.Render(frame) + " " + styleDim.Render(s.message)
	pad := ""
	if w := lipgloss.Width(line); w < s.width {
		pad = strings.Repeat(" ", s.width-w)
	} else {
		s.width = w
	}
	fmt.Fprint(s.w, "\r"+line+pad)
}

func (s *spinner) clearLine() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.width == 0 {
		return
	}
	fmt.Fprintf(s.w, "\r%s\r", strings.Repeat(" ", s.width))
	s.width = 0
}

// spinnerHooks forwards pipeline events to the wrapped hooks and keeps the
// spinner message on the repository being resolved.
type spinnerHooks struct {
	observability.PipelineHooks
	spin *spinner

	total int
	index int
}

func (h *spinnerHooks) OnRunStart(ctx context.Context, owner string, count int) {
	h.total, h.index = count, 0
	h.PipelineHooks.OnRunStart(ctx, owner, count)
}

func (h *spinnerHooks) OnRowStart(ctx context.Context, repo string) {
	h.index++
	h.spin.setMessage(fmt.Sprintf("Resolving %s (%d/%d)", repo, h.index, h.total))
	h.PipelineHooks.OnRowStart(ctx, repo)
}

// OnRunComplete clears the spinner before the run summary is logged.
func (h *spinnerHooks) OnRunComplete(ctx context.Context, rows int, d time.Duration, err error) {
	h.spin.stop()
	h.PipelineHooks.OnRunComplete(ctx, rows, d, err)
}

// startSpinner shows a spinner on the diagnostics writer while a run is in
// progress. It returns nil when diagnostics do not go to a terminal or debug
// logging is on, since log records would interleave with the animation.
func (c *CLI) startSpinner(ctx context.Context, message string) *spinner {
	f, ok := c.Diag.(*os.File)
	if !ok || !isatty.IsTerminal(f.Fd()) || c.Logger.GetLevel() <= LogDebug {
		return nil
	}
	s := newSpinner(ctx, c.Diag, message)
	observability.SetPipelineHooks(&spinnerHooks{PipelineHooks: observability.Pipeline(), spin: s})
	s.start()
	return s
}
