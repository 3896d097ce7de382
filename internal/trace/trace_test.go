package trace_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"sfzkit/internal/trace"
)

func TestStreamTextAndLevels(t *testing.T) {
	var buf bytes.Buffer
	tr := trace.NewStreamTracer(&buf, trace.LevelPhase, trace.FormatText)

	sp := trace.Begin(tr, trace.ScopePass, "build", 0)
	trace.Begin(tr, trace.ScopeFile, "file:a.sfz", sp.ID()).End("")
	sp.WithExtra("regions", "2").End("ok")

	out := buf.String()
	if strings.Contains(out, "file:a.sfz") {
		t.Errorf("file scope emitted at phase level:\n%s", out)
	}
	if !strings.Contains(out, "→ build") || !strings.Contains(out, "← build (ok) {regions=2}") {
		t.Errorf("unexpected output:\n%s", out)
	}
}

func TestStreamNDJSON(t *testing.T) {
	var buf bytes.Buffer
	tr := trace.NewStreamTracer(&buf, trace.LevelDebug, trace.FormatNDJSON)
	trace.Point(tr, trace.ScopeDebug, "cache", "hit", 0)

	var ev map[string]any
	if err := json.Unmarshal(buf.Bytes(), &ev); err != nil {
		t.Fatalf("bad json %q: %v", buf.String(), err)
	}
	if ev["name"] != "cache" || ev["scope"] != "debug" || ev["kind"] != "point" {
		t.Errorf("event = %v", ev)
	}
}

func TestRingKeepsLastEvents(t *testing.T) {
	ring := trace.NewRingTracer(2, trace.LevelError)
	if !ring.Enabled() {
		t.Fatal("ring at error level must be enabled")
	}
	for _, name := range []string{"a", "b", "c"} {
		ring.Emit(&trace.Event{Kind: trace.KindPoint, Scope: trace.ScopeFile, Name: name})
	}
	ring.Emit(&trace.Event{Kind: trace.KindPoint, Scope: trace.ScopeDebug, Name: "noise"})
	snap := ring.Snapshot()
	if len(snap) != 2 || snap[0].Name != "b" || snap[1].Name != "c" {
		t.Fatalf("snapshot = %+v", snap)
	}
}

func TestContextAndNew(t *testing.T) {
	if trace.FromContext(context.Background()) != trace.Nop {
		t.Fatal("empty context must give Nop")
	}
	tr, err := trace.New(trace.Config{Level: trace.LevelDetail, Mode: trace.ModeBoth, Output: &bytes.Buffer{}})
	if err != nil {
		t.Fatal(err)
	}
	ctx := trace.WithTracer(context.Background(), tr)
	if trace.FromContext(ctx) != tr {
		t.Fatal("tracer lost in context")
	}
	if _, ok := trace.RingOf(tr); !ok {
		t.Fatal("both mode must carry a ring")
	}
	if _, err := trace.ParseLevel("loud"); err == nil {
		t.Fatal("ParseLevel accepted junk")
	}
}

func TestSpanContextKeepsInstrument(t *testing.T) {
	ring := trace.NewRingTracer(8, trace.LevelDebug)
	ctx := trace.WithTracer(context.Background(), ring)
	ctx = trace.WithSpanContext(ctx, trace.SpanContext{SpanID: 7, Instrument: "drums/kit.sfz"})
	ctx = trace.WithSpanContext(ctx, trace.SpanContext{SpanID: 9})

	sc := trace.CurrentSpan(ctx)
	if sc.SpanID != 9 || sc.Instrument != "drums/kit.sfz" {
		t.Fatalf("span context = %+v", sc)
	}
	trace.PointHere(ctx, trace.ScopeDebug, "cache_hit", "")
	snap := ring.Snapshot()
	if len(snap) != 1 || snap[0].Detail != "drums/kit.sfz" || snap[0].ParentID != 9 {
		t.Fatalf("snapshot = %+v", snap)
	}
	if trace.CurrentSpan(context.Background()) != (trace.SpanContext{}) {
		t.Fatal("empty context must give zero span")
	}
}

func TestParseLevelNames(t *testing.T) {
	tests := map[string]trace.Level{
		"":           trace.LevelOff,
		"off":        trace.LevelOff,
		"Phase":      trace.LevelPhase,
		"instrument": trace.LevelDetail,
		" debug ":    trace.LevelDebug,
	}
	for in, want := range tests {
		got, err := trace.ParseLevel(in)
		if err != nil || got != want {
			t.Errorf("ParseLevel(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if trace.LevelPhase.ShouldEmit(trace.ScopeFile) || !trace.LevelDetail.ShouldEmit(trace.ScopeFile) {
		t.Error("detail is the first level with per-instrument events")
	}
	if trace.LevelError.ShouldEmit(trace.ScopeDriver) {
		t.Error("error level emits nothing outside the ring")
	}
}

func TestRingDumpCountsFailures(t *testing.T) {
	ring := trace.NewRingTracer(4, trace.LevelDetail)
	var buf bytes.Buffer
	if err := ring.Dump(&buf, trace.FormatText); err != nil || buf.Len() != 0 {
		t.Fatalf("empty ring dumped %q, %v", buf.String(), err)
	}
	trace.Begin(ring, trace.ScopeFile, "piano.sfz", 0).Fail(errors.New("boom")).End("error")
	trace.Begin(ring, trace.ScopeFile, "drums.sfz", 0).Fail(nil).End("done")
	if err := ring.Dump(&buf, trace.FormatText); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, "== trace: last 4 events, 1 with errors ==\n") {
		t.Fatalf("dump:\n%s", out)
	}
	if !strings.Contains(out, "piano.sfz") || !strings.Contains(out, "boom") {
		t.Fatalf("dump:\n%s", out)
	}
}

func TestNewWritesNDJSONFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.ndjson")
	tr, err := trace.New(trace.Config{Level: trace.LevelDebug, OutputPath: path})
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := trace.RingOf(tr); ok {
		t.Fatal("stream mode must not carry a ring")
	}
	trace.Point(tr, trace.ScopeDebug, "cache_hit", "kit.sfz", 0)
	if err := tr.Close(); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var ev map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(data), &ev); err != nil {
		t.Fatalf("not ndjson: %q: %v", data, err)
	}
	if ev["name"] != "cache_hit" {
		t.Fatalf("event = %v", ev)
	}

	if m, err := trace.ParseMode("RING"); err != nil || m != trace.ModeRing {
		t.Fatalf("ParseMode = %v, %v", m, err)
	}
	if _, err := trace.ParseMode("disk"); err == nil {
		t.Fatal("ParseMode accepted junk")
	}
}
