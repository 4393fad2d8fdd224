package logging

import (
	"bytes"
	"log"
	"os"
	"strings"
	"testing"
)

func captureLogs(t *testing.T, level string) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	saved := CurrentLevel()
	SetOutput(&buf)
	out.SetFlags(0)
	SetLevel(level)
	t.Cleanup(func() {
		SetOutput(os.Stderr)
		out.SetFlags(log.Ldate | log.Ltime | log.Lmicroseconds)
		SetLevel(strings.ToLower(levelTags[saved]))
	})
	return &buf
}

func TestInfof_NoDoubleFormattingWithPercent(t *testing.T) {
	buf := captureLogs(t, "info")

	For("plot").Infof("momentum_log.txt: 3 skipped (25.0% of lines)")

	got := buf.String()
	if !strings.Contains(got, "[INFO] [plot] momentum_log.txt: 3 skipped (25.0% of lines)") {
		t.Fatalf("unexpected log line: %s", got)
	}
	if strings.Contains(got, "MISSING") || strings.Contains(got, "NOVERB") {
		t.Fatalf("log output shows fmt artifact: %s", got)
	}
}

func TestLevelFiltering(t *testing.T) {
	buf := captureLogs(t, "warn")
	l := For("render")

	l.Debugf("debug %d", 1)
	l.Infof("info %d", 2)
	l.Warnf("warn %d", 3)
	l.Errorf("error %d", 4)

	got := buf.String()
	if strings.Contains(got, "debug 1") || strings.Contains(got, "info 2") {
		t.Fatalf("expected debug/info suppressed at warn level: %s", got)
	}
	if !strings.Contains(got, "[WARN] [render] warn 3") || !strings.Contains(got, "[ERROR] [render] error 4") {
		t.Fatalf("expected warn and error lines: %s", got)
	}
}

func TestUntaggedLogger(t *testing.T) {
	buf := captureLogs(t, "debug")
	For("").Debugf("plain")
	if strings.TrimSpace(buf.String()) != "[DEBUG] plain" {
		t.Fatalf("unexpected line: %q", buf.String())
	}
}

func TestSetLevelUnknownKeepsCurrent(t *testing.T) {
	captureLogs(t, "debug")
	if SetLevel("verbose") {
		t.Fatalf("expected unknown level to be rejected")
	}
	if CurrentLevel() != LevelDebug {
		t.Fatalf("expected level to stay debug, got %d", CurrentLevel())
	}
	if !SetLevel(" Warning ") || CurrentLevel() != LevelWarn {
		t.Fatalf("expected case-insensitive trimmed level name to parse")
	}
}
