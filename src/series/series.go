// Package series turns a one-value-per-line log file into an ordered []float64.
//
// Blank lines are skipped silently. Lines that do not parse as a decimal float are
// reported on the diagnostic writer ("Skipping invalid line: <content>") and skipped.
// The position of a value in the result is its rank among parsed values, not its line number.
package series

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/iafilius/MomentumPlotter/src/logging"
)

// FileAccessError is returned when the input file cannot be opened or read.
type FileAccessError struct {
	Path string
	Err  error
}

func (e *FileAccessError) Error() string {
	return fmt.Sprintf("file access %s: %v", e.Path, e.Err)
}

func (e *FileAccessError) Unwrap() error { return e.Err }

// Result is the outcome of loading one file.
type Result struct {
	Path    string
	Values  []float64
	Skipped int // non-blank lines that failed to parse
}

var log = logging.For("series")

// universal newlines: \r\n and lone \r both end a line
var newlineNormalizer = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// Load reads the whole file at path and returns the parsed values.
// Diagnostics for invalid lines go to diag (standard output when nil).
func Load(path string, diag io.Writer) ([]float64, error) {
	res, err := LoadResult(path, diag)
	if err != nil {
		return nil, err
	}
	return res.Values, nil
}

// LoadResult is Load plus the count of skipped lines.
func LoadResult(path string, diag io.Writer) (Result, error) {
	defer log.Elapsed(time.Now(), "load "+path)
	// os.ReadFile closes the handle before we start parsing.
	data, err := os.ReadFile(path)
	if err != nil {
		return Result{Path: path}, &FileAccessError{Path: path, Err: err}
	}
	values, skipped := parseText(string(data), diag)
	log.Debugf("%s: %d bytes, %d values, %d skipped", path, len(data), len(values), skipped)
	return Result{Path: path, Values: values, Skipped: skipped}, nil
}

func parseText(text string, diag io.Writer) ([]float64, int) {
	if diag == nil {
		diag = os.Stdout
	}
	values := make([]float64, 0)
	skipped := 0
	for _, raw := range strings.Split(newlineNormalizer.Replace(text), "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		v, ok := ParseValue(line)
		if !ok {
			fmt.Fprintf(diag, "Skipping invalid line: %s\n", line)
			skipped++
			continue
		}
		values = append(values, v)
	}
	return values, skipped
}

// ParseValue parses one stripped line as a decimal float.
// Accepts an optional sign, fraction and exponent, plus nan/inf/infinity in any case
// and with an optional sign.
// Magnitudes beyond float64 become ±Inf rather than failing.
// Hexadecimal floats and underscore digit separators are rejected.
func ParseValue(s string) (float64, bool) {
	if s == "" || strings.ContainsAny(s, "_xX") {
		return 0, false
	}
	// strconv rejects a signed NaN; C printf writes one as "-nan"
	if unsigned := strings.TrimLeft(s, "+-"); len(s)-len(unsigned) == 1 && strings.EqualFold(unsigned, "nan") {
		return math.NaN(), true
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return v, true
		}
		return 0, false
	}
	return v, true
}
