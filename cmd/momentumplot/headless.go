package main

import (
	"bytes"
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/iafilius/MomentumPlotter/src/render"
	"github.com/iafilius/MomentumPlotter/src/series"
)

// loadSeries parses one file and logs its summary. A missing or unreadable file is
// returned as *series.FileAccessError.
func loadSeries(path string, diag io.Writer) ([]float64, error) {
	res, err := series.LoadResult(path, diag)
	if err != nil {
		return nil, err
	}
	log.Infof("%s: %s", path, series.Summarize(res.Values, res.Skipped))
	return res.Values, nil
}

func loadAndRender(path string, opts render.Options, diag io.Writer) (image.Image, error) {
	values, err := loadSeries(path, diag)
	if err != nil {
		return nil, err
	}
	return render.Chart(values, opts), nil
}

// RunHeadless renders each path in order to a PNG under outDir without creating a window.
// It stops at the first failure; the files written so far are returned either way.
func RunHeadless(paths []string, outDir string, opts render.Options, diag io.Writer) ([]string, error) {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, fmt.Errorf("create out dir: %w", err)
	}
	used := map[string]int{}
	var written []string
	for _, path := range paths {
		o := opts
		o.SourceLabel = filepath.Base(path)
		values, err := loadSeries(path, diag)
		if err != nil {
			return written, err
		}
		var buf bytes.Buffer
		if err := render.PNG(values, o, &buf); err != nil {
			return written, fmt.Errorf("%s: %w", path, err)
		}
		outPath := filepath.Join(outDir, pngName(path, used))
		if err := os.WriteFile(outPath, buf.Bytes(), 0o644); err != nil {
			return written, fmt.Errorf("write %s: %w", outPath, err)
		}
		written = append(written, outPath)
	}
	return written, nil
}

// pngName maps momentum_log.txt to momentum_log.png; repeated base names get _2, _3, ...
func pngName(path string, used map[string]int) string {
	base := filepath.Base(path)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	if stem == "" {
		stem = "chart"
	}
	used[stem]++
	if n := used[stem]; n > 1 {
		return fmt.Sprintf("%s_%d.png", stem, n)
	}
	return stem + ".png"
}
