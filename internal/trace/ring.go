package trace

import (
	"fmt"
	"io"
	"sync"
)

// RingTracer keeps the last events in memory for a dump after a failure.
type RingTracer struct {
	mu     sync.RWMutex
	buf    []Event
	start  int // oldest event
	n      int
	level  Level
	failed int
}

func NewRingTracer(capacity int, level Level) *RingTracer {
	if capacity <= 0 {
		capacity = defaultRingSize
	}
	return &RingTracer{buf: make([]Event, capacity), level: level}
}

// Emit stores ev, overwriting the oldest event once the ring is full.
func (t *RingTracer) Emit(ev *Event) {
	if !t.Wants(ev.Scope) {
		return
	}
	stored := *ev
	stored.Seq = NextSeq()

	t.mu.Lock()
	defer t.mu.Unlock()
	if stored.Extra[errorKey] != "" {
		t.failed++
	}
	if t.n < len(t.buf) {
		t.buf[(t.start+t.n)%len(t.buf)] = stored
		t.n++
		return
	}
	t.buf[t.start] = stored
	t.start = (t.start + 1) % len(t.buf)
}

// Wants keeps per-instrument events even at LevelError so that a dump
// shows which instrument was being parsed.
func (t *RingTracer) Wants(scope Scope) bool {
	if t.level == LevelError {
		return scope <= ScopeFile
	}
	return t.level.ShouldEmit(scope)
}

// Snapshot returns the stored events oldest first.
func (t *RingTracer) Snapshot() []Event {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]Event, t.n)
	for i := range out {
		out[i] = t.buf[(t.start+i)%len(t.buf)]
	}
	return out
}

// Dump writes a header and the stored events to w. It writes nothing when
// the ring is empty.
func (t *RingTracer) Dump(w io.Writer, format Format) error {
	events := t.Snapshot()
	if len(events) == 0 {
		return nil
	}
	t.mu.RLock()
	failed := t.failed
	t.mu.RUnlock()
	header := fmt.Sprintf("== trace: last %d events", len(events))
	if failed > 0 {
		header += fmt.Sprintf(", %d with errors", failed)
	}
	if _, err := fmt.Fprintln(w, header+" =="); err != nil {
		return err
	}
	for i := range events {
		if _, err := w.Write(FormatEvent(&events[i], format)); err != nil {
			return err
		}
	}
	return nil
}

func (t *RingTracer) Flush() error { return nil }

func (t *RingTracer) Close() error { return nil }

func (t *RingTracer) Level() Level { return t.level }

func (t *RingTracer) Enabled() bool { return t.level > LevelOff }
