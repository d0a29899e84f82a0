package status

import (
	"bytes"
	"log"
	"strings"
	"testing"
	"time"
)

type recordSink struct {
	lines []string
}

func (r *recordSink) Write(line string) {
	r.lines = append(r.lines, line)
}

func TestWriterSink(t *testing.T) {
	var buf bytes.Buffer
	s := NewWriterSink(&buf)
	s.Write("speed: 0.008 y: 0.1")
	s.Write("speed: 0 y: 0.1")

	want := "speed: 0.008 y: 0.1\nspeed: 0 y: 0.1\n"
	if buf.String() != want {
		t.Fatalf("output = %q, want %q", buf.String(), want)
	}
}

func TestLogSink(t *testing.T) {
	var buf bytes.Buffer
	NewLogSink(log.New(&buf, "", 0)).Write("speed: 1 y: 2")
	if got := strings.TrimSpace(buf.String()); got != "[Status] speed: 1 y: 2" {
		t.Fatalf("log output = %q", got)
	}
}

func TestTitleSink(t *testing.T) {
	var title string
	NewTitleSink("viewer", func(s string) { title = s }).Write("speed: 0 y: 0")
	if title != "viewer | speed: 0 y: 0" {
		t.Fatalf("title = %q", title)
	}
	NewTitleSink("", func(s string) { title = s }).Write("bare")
	if title != "bare" {
		t.Fatalf("title = %q", title)
	}
}

func TestThrottledSink(t *testing.T) {
	rec := &recordSink{}
	s := NewThrottledSink(rec, 100*time.Millisecond).(*throttledSink)

	clock := time.Unix(0, 0)
	s.now = func() time.Time { return clock }

	s.Write("a")
	clock = clock.Add(50 * time.Millisecond)
	s.Write("b")
	clock = clock.Add(60 * time.Millisecond)
	s.Write("c")
	clock = clock.Add(10 * time.Millisecond)
	s.Write("d")

	if strings.Join(rec.lines, ",") != "a,c" {
		t.Fatalf("forwarded = %v, want [a c]", rec.lines)
	}
}

func TestMultiSink(t *testing.T) {
	a, b := &recordSink{}, &recordSink{}
	s := NewMultiSink(a, nil, b, Discard)
	s.Write("x")
	if len(a.lines) != 1 || len(b.lines) != 1 {
		t.Fatalf("fan-out failed: %v %v", a.lines, b.lines)
	}
}
