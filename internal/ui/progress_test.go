package ui

import (
	"fmt"
	"strings"
	"testing"

	"sfzkit/internal/driver"
)

func TestProgressModelEvents(t *testing.T) {
	events := make(chan driver.Event)
	m := NewProgressModel("index", []string{"kick.sfz", "snare.sfz"}, events).(*progressModel)

	m.applyEvent(driver.Event{File: "kick.sfz", Stage: driver.StageExpand, Status: driver.StatusWorking})
	if m.items[0].status != "expanding" {
		t.Errorf("status = %q", m.items[0].status)
	}
	if got := m.percent(); got != 0.2 {
		t.Errorf("percent = %v, want 0.2", got)
	}

	m.applyEvent(driver.Event{File: "kick.sfz", Stage: driver.StageBuild, Status: driver.StatusDone})
	m.applyEvent(driver.Event{File: "snare.sfz", Stage: driver.StageBuild, Status: driver.StatusCached})
	if got := m.percent(); got != 1 {
		t.Errorf("percent = %v, want 1", got)
	}

	// events for files outside the list are ignored
	m.applyEvent(driver.Event{File: "other.sfz", Status: driver.StatusError})

	view := m.View()
	if !strings.Contains(view, "kick.sfz") || !strings.Contains(view, "cached") {
		t.Errorf("view:\n%s", view)
	}
}

func TestTruncate(t *testing.T) {
	got := truncate("library/drums/kick.sfz", 10)
	if !strings.HasSuffix(got, "...") || len(got) > 10 {
		t.Errorf("truncate = %q", got)
	}
	if got := truncate("kick.sfz", 20); got != "kick.sfz" {
		t.Errorf("truncate = %q", got)
	}
}

func TestProgressViewKeepsFailures(t *testing.T) {
	files := make([]string, 20)
	for i := range files {
		files[i] = fmt.Sprintf("lib/inst%02d.sfz", i)
	}
	m := NewProgressModel("sfz diag lib", files, make(chan driver.Event)).(*progressModel)
	for _, f := range files[:12] {
		m.applyEvent(driver.Event{File: f, Stage: driver.StageBuild, Status: driver.StatusWorking})
	}
	m.applyEvent(driver.Event{File: files[3], Stage: driver.StageBuild, Status: driver.StatusError})
	m.applyEvent(driver.Event{File: files[4], Status: driver.StatusCached})

	view := m.View()
	for _, want := range []string{"2/20 instruments", "1 cached", "1 failed", "lib/inst03.sfz", "+2 more"} {
		if !strings.Contains(view, want) {
			t.Errorf("view lacks %q:\n%s", want, view)
		}
	}
	if strings.Contains(view, "lib/inst15.sfz") {
		t.Errorf("queued instruments must not be listed:\n%s", view)
	}
}
