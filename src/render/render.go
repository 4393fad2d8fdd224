// Package render draws a value series as a line chart image using go-chart.
//
// The chart plots value against zero-based index with a marker on every point, a dashed
// red reference line at y = 0 named "Zero Line" in the legend, major grid lines on both
// axes and a 2:1 canvas (1000x500 px by default, i.e. 10x5 at 100 px per unit).
package render

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"io"
	"math"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/iafilius/MomentumPlotter/src/logging"
)

const (
	DefaultTitle  = "Momentum Values Over Time"
	XAxisName     = "Iteration"
	YAxisName     = "Momentum Value"
	ZeroLineName  = "Zero Line"
	DefaultWidth  = 1000
	DefaultHeight = 500

	emptyNotice = "No valid values"
)

// Options controls chart appearance. Zero values fall back to the defaults above.
type Options struct {
	Title  string
	Width  int
	Height int
	// SourceLabel is drawn as a small caption at the bottom-left when non-empty.
	SourceLabel string
}

func (o Options) withDefaults() Options {
	if o.Title == "" {
		o.Title = DefaultTitle
	}
	o.Width, o.Height = ChartDimensions(o.Width, o.Height)
	return o
}

// ChartDimensions applies the size rules: width defaults to 1000, height defaults to half
// the width, and neither may drop below 200x100.
func ChartDimensions(w, h int) (int, int) {
	if w <= 0 {
		w = DefaultWidth
	}
	if w < 200 {
		w = 200
	}
	if h <= 0 {
		h = w / 2
	}
	if h < 100 {
		h = 100
	}
	return w, h
}

var log = logging.For("render")

var (
	seriesColor = chart.ColorBlue
	zeroColor   = chart.ColorRed
	gridColor   = drawing.Color{R: 200, G: 200, B: 200, A: 255}
)

func gridStyle() chart.Style {
	return chart.Style{StrokeColor: gridColor, StrokeWidth: 1}
}

// Build assembles the go-chart definition. ok is false when there is no finite value to
// plot, in which case the caller should render a notice instead.
//
// Non-finite values keep their index slot and break the line there, so the data is one
// unlabelled series per run of finite values. Values of magnitude 1e6 and above are drawn
// scaled by a power of ten, named in the Y axis label.
func Build(values []float64, opts Options) (ch chart.Chart, ok bool) {
	opts = opts.withDefaults()
	minY := math.MaxFloat64
	maxY := -math.MaxFloat64
	finite := 0
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		finite++
		minY = math.Min(minY, v)
		maxY = math.Max(maxY, v)
	}
	if finite == 0 {
		return chart.Chart{}, false
	}
	scale, exp := axisScale(math.Max(math.Abs(minY), math.Abs(maxY)))
	yName := YAxisName
	if exp != 0 {
		yName = fmt.Sprintf("%s (x1e%d)", YAxisName, exp)
	}

	xRange, xTicks := indexRangeAndTicks(len(values), 10)
	// the reference line must stay in view
	yRange, yTicks := valueRangeAndTicks(math.Min(minY/scale, 0), math.Max(maxY/scale, 0), 6)

	dataStyle := chart.Style{
		StrokeColor: seriesColor,
		StrokeWidth: 2,
		DotColor:    seriesColor,
		DotWidth:    3,
	}
	if finite == 1 { // emphasize single-point sets
		dataStyle.DotWidth = 5
	}
	var series []chart.Series
	var xs, ys []float64
	flush := func() {
		if len(xs) > 0 {
			series = append(series, chart.ContinuousSeries{XValues: xs, YValues: ys, Style: dataStyle})
		}
		xs, ys = nil, nil
	}
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			flush()
			continue
		}
		xs = append(xs, float64(i))
		ys = append(ys, v/scale)
	}
	flush()

	series = append(series, chart.ContinuousSeries{
		Name:    ZeroLineName,
		XValues: []float64{xRange.Min, xRange.Max},
		YValues: []float64{0, 0},
		Style: chart.Style{
			StrokeColor:     zeroColor,
			StrokeWidth:     1.5,
			StrokeDashArray: []float64{6, 4},
		},
	})

	ch = chart.Chart{
		Title:      opts.Title,
		Width:      opts.Width,
		Height:     opts.Height,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 20, Bottom: 16}},
		XAxis: chart.XAxis{
			Name:           XAxisName,
			Range:          xRange,
			Ticks:          xTicks,
			GridMajorStyle: gridStyle(),
		},
		YAxis: chart.YAxis{
			Name:           yName,
			Range:          yRange,
			Ticks:          yTicks,
			GridMajorStyle: gridStyle(),
		},
		Series: series,
	}
	ch.Elements = []chart.Renderable{chart.Legend(&chart.Chart{Series: labelled(series)})}
	return ch, true
}

// labelled keeps the named series; unnamed data runs stay out of the legend.
func labelled(series []chart.Series) []chart.Series {
	var out []chart.Series
	for _, s := range series {
		if s.GetName() != "" {
			out = append(out, s)
		}
	}
	return out
}

// axisScale returns the power of ten to divide values by so tick labels stay short and the
// padded range cannot overflow float64. Magnitudes below 1e6 are left alone.
func axisScale(maxAbs float64) (float64, int) {
	if maxAbs < 1e6 {
		return 1, 0
	}
	exp := int(math.Floor(math.Log10(maxAbs)))
	// Log10 may land a hair off an exact power
	if math.Pow10(exp+1) <= maxAbs {
		exp++
	} else if math.Pow10(exp) > maxAbs {
		exp--
	}
	return math.Pow10(exp), exp
}

// Chart renders values to an image. It never fails: an empty series or a go-chart error
// yields a blank canvas of the requested size carrying a notice.
func Chart(values []float64, opts Options) image.Image {
	opts = opts.withDefaults()
	ch, ok := Build(values, opts)
	if !ok {
		return withCaption(notice(opts.Width, opts.Height, opts.Title, emptyNotice), opts.SourceLabel)
	}
	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		log.Warnf("chart render error: %v; showing blank fallback", err)
		return withCaption(notice(opts.Width, opts.Height, opts.Title, "Chart could not be rendered"), opts.SourceLabel)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		log.Warnf("chart decode error: %v; showing blank fallback", err)
		return withCaption(notice(opts.Width, opts.Height, opts.Title, "Chart could not be rendered"), opts.SourceLabel)
	}
	return withCaption(img, opts.SourceLabel)
}

// PNG renders values and writes the encoded image to w.
func PNG(values []float64, opts Options, w io.Writer) error {
	if err := png.Encode(w, Chart(values, opts)); err != nil {
		return fmt.Errorf("png encode: %w", err)
	}
	return nil
}

func withCaption(img image.Image, caption string) image.Image {
	if caption == "" {
		return img
	}
	return drawHint(img, caption)
}
