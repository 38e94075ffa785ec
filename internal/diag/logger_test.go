package diag

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{"debug": Debug, "DEBUG": Debug, "warn": Warn, "error": Error, "": Info, "bogus": Info}
	for s, want := range cases {
		if got := ParseLevel(s); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", s, got, want)
		}
	}
}

func TestLevel_String(t *testing.T) {
	if Warn.String() != "warn" {
		t.Errorf("Warn.String() = %q, want warn", Warn.String())
	}
	var unknown Level = 99
	if unknown.String() != "info" {
		t.Errorf("unknown level should default to info, got %q", unknown.String())
	}
}

func TestLogger_FiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("corr-1", Warn, &buf)
	l.Debug("comp", "should be filtered", nil)
	l.Start("comp", "should also be filtered")
	if buf.Len() != 0 {
		t.Errorf("expected no output below the Warn threshold, got %q", buf.String())
	}
}

func TestLogger_StartFinishEmitsTwoLines(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("corr-2", Info, &buf)
	timer := l.Start("mine", "mining started")
	timer.Finish("mining finished", 7)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 log lines, got %d: %q", len(lines), buf.String())
	}
	var start, finish Event
	if err := json.Unmarshal([]byte(lines[0]), &start); err != nil {
		t.Fatal(err)
	}
	if err := json.Unmarshal([]byte(lines[1]), &finish); err != nil {
		t.Fatal(err)
	}
	if start.Stage != "start" || start.CorrID != "corr-2" {
		t.Errorf("start event = %+v", start)
	}
	if finish.Stage != "finish" || finish.Count != 7 {
		t.Errorf("finish event = %+v", finish)
	}
}

func TestLogger_ErrorWithDuration(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("corr-3", Info, &buf)
	started := time.Now().Add(-10 * time.Millisecond)
	l.Error("mine", "invalid-config", "theta rejected", &started)

	var ev Event
	if err := json.Unmarshal(buf.Bytes(), &ev); err != nil {
		t.Fatal(err)
	}
	if ev.Code != "invalid-config" || ev.DurMS < 5 {
		t.Errorf("error event = %+v", ev)
	}
}

func TestTimer_NilSafe(t *testing.T) {
	var timer *Timer
	timer.Finish("no-op", 0) // must not panic
}

func TestLogger_NilWriterDefaultsToStderr(t *testing.T) {
	l := NewLogger("corr-4", Info, nil)
	if l.w == nil {
		t.Error("expected NewLogger to default a nil writer to os.Stderr")
	}
}
