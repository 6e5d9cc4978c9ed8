package core

import (
	"strings"
	"testing"
)

func TestTruncate(t *testing.T) {
	short := "deployment not found"
	if got := Truncate(short); got != short {
		t.Errorf("short string must pass through, got %q", got)
	}

	long := strings.Repeat("a", 500)
	got := Truncate(long)
	if want := strings.Repeat("a", MaxSurfacedErrorLen) + "…"; got != want {
		t.Errorf("truncation mismatch, got %d runes", len([]rune(got)))
	}
}

func TestTruncateN_MultibyteSafe(t *testing.T) {
	// Cutting must happen on rune boundaries, not bytes.
	s := strings.Repeat("न", 10)
	got := TruncateN(s, 4)
	if got != "नननन…" {
		t.Errorf("TruncateN = %q", got)
	}
}

func TestLoggerWith(t *testing.T) {
	var lastAttrs map[string]interface{}
	var lastMsg string
	logger := NewLogger(func(level, msg string, attrs map[string]interface{}) {
		lastMsg = msg
		lastAttrs = attrs
	})

	child := logger.With(map[string]interface{}{"component": "test"})
	child.Info("hello", "turn", "t1")

	if lastMsg != "hello" {
		t.Errorf("msg = %q", lastMsg)
	}
	if lastAttrs["component"] != "test" || lastAttrs["turn"] != "t1" {
		t.Errorf("attrs = %v", lastAttrs)
	}

	// Format-style args still work when they are not key/value pairs.
	logger.Info("count %d", 3)
	if lastMsg != "count 3" {
		t.Errorf("formatted msg = %q", lastMsg)
	}
}
