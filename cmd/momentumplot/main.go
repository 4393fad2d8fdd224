// momentumplot charts one-value-per-line log files.
//
// With no arguments it plots momentum_log.txt and then angular_momentum_log.txt from the
// current directory, one window each; the second file is read once the first window is
// dismissed. Lines that are not numbers are reported on stdout as
// "Skipping invalid line: <content>" and left out of the chart.
//
// With -out DIR no window is opened and each chart is written to DIR/<name>.png instead.
package main

import (
	"flag"
	"fmt"
	"image"
	"os"

	"github.com/iafilius/MomentumPlotter/src/logging"
	"github.com/iafilius/MomentumPlotter/src/render"
	"github.com/iafilius/MomentumPlotter/src/viewer"
)

var log = logging.For("plot")

var defaultPaths = []string{"momentum_log.txt", "angular_momentum_log.txt"}

func main() {
	var outDir, logLevel string
	var width, height int
	flag.StringVar(&outDir, "out", "", "Write charts as PNG files into this directory instead of opening windows")
	flag.StringVar(&logLevel, "log-level", "info", "Log level (debug|info|warn|error)")
	flag.IntVar(&width, "width", render.DefaultWidth, "Chart width in pixels")
	flag.IntVar(&height, "height", render.DefaultHeight, "Chart height in pixels")
	flag.Parse()

	if !logging.SetLevel(logLevel) {
		log.Warnf("unknown log level %q; keeping info", logLevel)
	}
	paths := flag.Args()
	if len(paths) == 0 {
		paths = defaultPaths
	}
	opts := render.Options{Width: width, Height: height}

	var err error
	if outDir != "" {
		var written []string
		written, err = RunHeadless(paths, outDir, opts, os.Stdout)
		for _, p := range written {
			fmt.Printf("[momentumplot] wrote %s\n", p)
		}
	} else {
		w, h := render.ChartDimensions(width, height)
		err = viewer.Run(paths, func(path string) (image.Image, error) {
			return loadAndRender(path, opts, os.Stdout)
		}, viewer.Options{Title: render.DefaultTitle, Width: w, Height: h})
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
