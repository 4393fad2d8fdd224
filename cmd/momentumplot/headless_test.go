package main

import (
	"bytes"
	"errors"
	"image"
	_ "image/png" // register PNG decoder
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/iafilius/MomentumPlotter/src/logging"
	"github.com/iafilius/MomentumPlotter/src/render"
	"github.com/iafilius/MomentumPlotter/src/series"
)

func writeInput(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return p
}

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	logging.SetOutput(&buf)
	t.Cleanup(func() { logging.SetOutput(os.Stderr) })
	return &buf
}

func TestRunHeadlessWritesOnePNGPerInput(t *testing.T) {
	logs := captureLog(t)
	in := t.TempDir()
	a := writeInput(t, in, "momentum_log.txt", "1.0\n\n2.5\nfoo\n-3\n")
	b := writeInput(t, in, "angular_momentum_log.txt", "0.1\n0.2\n")
	outDir := filepath.Join(t.TempDir(), "charts")

	var diag bytes.Buffer
	written, err := RunHeadless([]string{a, b}, outDir, render.Options{}, &diag)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	want := []string{filepath.Join(outDir, "momentum_log.png"), filepath.Join(outDir, "angular_momentum_log.png")}
	if len(written) != 2 || written[0] != want[0] || written[1] != want[1] {
		t.Fatalf("written: %v want %v", written, want)
	}
	for _, p := range written {
		f, err := os.Open(p)
		if err != nil {
			t.Fatalf("open %s: %v", p, err)
		}
		img, _, err := image.Decode(f)
		f.Close()
		if err != nil {
			t.Fatalf("decode %s: %v", p, err)
		}
		if img.Bounds().Dx() != render.DefaultWidth || img.Bounds().Dy() != render.DefaultHeight {
			t.Fatalf("%s: size %v", p, img.Bounds())
		}
	}
	if diag.String() != "Skipping invalid line: foo\n" {
		t.Fatalf("diagnostics: %q", diag.String())
	}
	if !strings.Contains(logs.String(), "[INFO] [plot] "+a+": values=3 skipped=1") {
		t.Fatalf("expected summary log, got: %s", logs.String())
	}
}

func TestRunHeadlessStopsAtMissingFile(t *testing.T) {
	captureLog(t)
	in := t.TempDir()
	missing := filepath.Join(in, "momentum_log.txt")
	b := writeInput(t, in, "angular_momentum_log.txt", "bad\n")
	outDir := t.TempDir()

	var diag bytes.Buffer
	written, err := RunHeadless([]string{missing, b}, outDir, render.Options{}, &diag)
	var fae *series.FileAccessError
	if !errors.As(err, &fae) {
		t.Fatalf("expected file access error, got %v", err)
	}
	if len(written) != 0 {
		t.Fatalf("nothing should be written: %v", written)
	}
	if diag.Len() != 0 {
		t.Fatalf("second file must not be parsed after the failure: %q", diag.String())
	}
	if _, err := os.Stat(filepath.Join(outDir, "angular_momentum_log.png")); !os.IsNotExist(err) {
		t.Fatalf("unexpected output for second file: %v", err)
	}
}

func TestRunHeadlessEmptyInputStillRenders(t *testing.T) {
	captureLog(t)
	in := t.TempDir()
	p := writeInput(t, in, "momentum_log.txt", "")
	written, err := RunHeadless([]string{p}, t.TempDir(), render.Options{Width: 600}, &bytes.Buffer{})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if len(written) != 1 {
		t.Fatalf("expected one chart, got %v", written)
	}
}

func TestPNGName(t *testing.T) {
	used := map[string]int{}
	cases := []struct{ in, want string }{
		{"momentum_log.txt", "momentum_log.png"},
		{"/data/angular_momentum_log.txt", "angular_momentum_log.png"},
		{"other/momentum_log.txt", "momentum_log_2.png"},
		{"noext", "noext.png"},
	}
	for _, tc := range cases {
		if got := pngName(tc.in, used); got != tc.want {
			t.Fatalf("pngName(%q) = %q want %q", tc.in, got, tc.want)
		}
	}
}

func TestDefaultPaths(t *testing.T) {
	if len(defaultPaths) != 2 || defaultPaths[0] != "momentum_log.txt" || defaultPaths[1] != "angular_momentum_log.txt" {
		t.Fatalf("default inputs changed: %v", defaultPaths)
	}
}
