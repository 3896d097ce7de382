package observ

import (
	"errors"
	"strings"
	"sync"
	"testing"
	"time"
)

func TestTimerMergeByName(t *testing.T) {
	total := NewTimer()
	var wg sync.WaitGroup
	for range 4 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			local := NewTimer()
			local.Add("build", time.Millisecond)
			total.Merge(local)
		}()
	}
	wg.Wait()

	r := total.Report()
	if len(r.Phases) != 1 || r.Phases[0].Count != 4 {
		t.Fatalf("report = %+v", r)
	}
	if r.Phases[0].DurationMS != 4 || r.TotalMS != 4 {
		t.Errorf("durations = %v / %v", r.Phases[0].DurationMS, r.TotalMS)
	}
	if s := total.Summary(); !strings.Contains(s, "build") || !strings.Contains(s, "x4") {
		t.Errorf("summary:\n%s", s)
	}
}

func TestTrackNotesFailure(t *testing.T) {
	tm := NewTimer()
	want := errors.New("boom")
	if err := tm.Track("load", func() error { return want }); err != want {
		t.Fatalf("Track returned %v", err)
	}
	if r := tm.Report(); r.Phases[0].Note != "failed" {
		t.Errorf("note = %q", r.Phases[0].Note)
	}
}

func TestNilTimer(t *testing.T) {
	var tm *Timer
	tm.End(tm.Begin("x"), "")
	tm.Add("x", time.Second)
	if r := tm.Report(); len(r.Phases) != 0 {
		t.Errorf("nil timer report = %+v", r)
	}
}
