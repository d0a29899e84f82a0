package status

import (
	"fmt"
	"io"
	"log"
	"sync"
	"time"
)

// Sink receives one human-readable diagnostic line per frame.
// Implementations must not block the frame loop.
type Sink interface {
	// Write delivers a status line.
	//
	// Parameters:
	//   - line: the status text, without a trailing newline
	Write(line string)
}

type logSink struct {
	logger *log.Logger
}

// NewLogSink creates a Sink writing each line through a standard logger under a
// "[Status]" prefix. A nil logger uses the default logger.
//
// Parameters:
//   - logger: the destination logger, or nil
//
// Returns:
//   - Sink: the log sink
func NewLogSink(logger *log.Logger) Sink {
	if logger == nil {
		logger = log.Default()
	}
	return &logSink{logger: logger}
}

func (s *logSink) Write(line string) {
	s.logger.Printf("[Status] %s", line)
}

type writerSink struct {
	mu *sync.Mutex
	w  io.Writer
}

// NewWriterSink creates a Sink writing each line followed by a newline to w.
// Write errors are dropped; the sink is diagnostic only.
//
// Parameters:
//   - w: the destination writer
//
// Returns:
//   - Sink: the writer sink
func NewWriterSink(w io.Writer) Sink {
	return &writerSink{mu: &sync.Mutex{}, w: w}
}

func (s *writerSink) Write(line string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintln(s.w, line)
}

type titleSink struct {
	prefix   string
	setTitle func(string)
}

// NewTitleSink creates a Sink that shows each line in a window title, after prefix.
// setTitle must be safe to call from the frame loop's goroutine.
//
// Parameters:
//   - prefix: fixed text shown before the status line, may be empty
//   - setTitle: function replacing the window title
//
// Returns:
//   - Sink: the title sink
func NewTitleSink(prefix string, setTitle func(string)) Sink {
	return &titleSink{prefix: prefix, setTitle: setTitle}
}

func (s *titleSink) Write(line string) {
	if s.prefix == "" {
		s.setTitle(line)
		return
	}
	s.setTitle(s.prefix + " | " + line)
}

type throttledSink struct {
	mu *sync.Mutex

	next     Sink
	interval time.Duration
	last     time.Time
	now      func() time.Time
}

// NewThrottledSink wraps next so at most one line per interval is forwarded.
// Lines arriving inside the interval are dropped, so the forwarded line is always
// the freshest one at the time it is sent.
//
// Parameters:
//   - next: the wrapped sink
//   - interval: minimum time between forwarded lines
//
// Returns:
//   - Sink: the throttled sink
func NewThrottledSink(next Sink, interval time.Duration) Sink {
	return &throttledSink{
		mu:       &sync.Mutex{},
		next:     next,
		interval: interval,
		now:      time.Now,
	}
}

func (s *throttledSink) Write(line string) {
	s.mu.Lock()
	now := s.now()
	if !s.last.IsZero() && now.Sub(s.last) < s.interval {
		s.mu.Unlock()
		return
	}
	s.last = now
	s.mu.Unlock()

	s.next.Write(line)
}

type multiSink []Sink

// NewMultiSink fans each line out to every non-nil sink in order.
//
// Parameters:
//   - sinks: the destination sinks
//
// Returns:
//   - Sink: the fan-out sink
func NewMultiSink(sinks ...Sink) Sink {
	var out multiSink
	for _, s := range sinks {
		if s != nil {
			out = append(out, s)
		}
	}
	return out
}

func (m multiSink) Write(line string) {
	for _, s := range m {
		s.Write(line)
	}
}

type discardSink struct{}

// Discard is a Sink that drops every line.
var Discard Sink = discardSink{}

func (discardSink) Write(string) {}
