// Package viewer shows rendered charts in a desktop window, one input file at a time.
//
// Dismissing the window (close button, Escape, or File > Next) moves on to the next file;
// the next file is not loaded until then. After the last chart the window closes and the
// app quits.
package viewer

import (
	"fmt"
	"image"
	"image/png"
	"path/filepath"

	fyne "fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"

	"github.com/iafilius/MomentumPlotter/src/logging"
)

var log = logging.For("viewer")

// LoadFunc loads and renders one input file.
type LoadFunc func(path string) (image.Image, error)

type Options struct {
	Title  string
	Width  int
	Height int
}

// Viewer walks a list of files through a single window.
type Viewer struct {
	app    fyne.App
	window fyne.Window
	img    *canvas.Image
	paths  []string
	next   int
	load   LoadFunc
	opts   Options
	err    error
}

// WindowTitle is "<title> - <file name>".
func WindowTitle(title, path string) string {
	return fmt.Sprintf("%s - %s", title, filepath.Base(path))
}

// New creates a viewer bound to app a. Nothing is loaded until Start.
func New(a fyne.App, paths []string, load LoadFunc, opts Options) *Viewer {
	return &Viewer{app: a, paths: paths, load: load, opts: opts}
}

// Start loads the first file and shows its window.
func (v *Viewer) Start() error {
	v.window = v.app.NewWindow(v.opts.Title)
	v.img = canvas.NewImageFromImage(image.NewRGBA(image.Rect(0, 0, 100, 50)))
	v.img.FillMode = canvas.ImageFillContain
	v.img.SetMinSize(fyne.NewSize(float32(v.opts.Width), float32(v.opts.Height)))
	v.window.SetContent(v.img)
	v.window.Resize(fyne.NewSize(float32(v.opts.Width), float32(v.opts.Height)))
	v.window.SetCloseIntercept(v.dismiss)
	v.buildMenus()
	if !v.Advance() {
		v.window.Close()
		return v.err
	}
	v.window.Show()
	return nil
}

// Advance loads the next file into the window. It returns false when no file is left or
// loading failed; Err reports the failure.
func (v *Viewer) Advance() bool {
	if v.next >= len(v.paths) {
		return false
	}
	path := v.paths[v.next]
	v.next++
	img, err := v.load(path)
	if err != nil {
		v.err = err
		return false
	}
	v.img.Image = img
	v.img.Refresh()
	v.window.SetTitle(WindowTitle(v.opts.Title, path))
	log.Debugf("showing %s (%d/%d)", path, v.next, len(v.paths))
	return true
}

// Err returns the load error that stopped the sequence, if any.
func (v *Viewer) Err() error { return v.err }

func (v *Viewer) dismiss() {
	if v.Advance() {
		return
	}
	v.window.Close()
	v.app.Quit()
}

func (v *Viewer) stop() {
	v.next = len(v.paths)
	v.window.Close()
	v.app.Quit()
}

func (v *Viewer) buildMenus() {
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("Export PNG…", v.exportPNG),
		fyne.NewMenuItem("Next", v.dismiss),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", v.stop),
	)
	v.window.SetMainMenu(fyne.NewMainMenu(fileMenu))

	canv := v.window.Canvas()
	if canv == nil {
		return
	}
	canv.SetOnTypedKey(func(ev *fyne.KeyEvent) {
		if ev.Name == fyne.KeyEscape {
			v.dismiss()
		}
	})
	canv.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyW, Modifier: fyne.KeyModifierSuper}, func(fyne.Shortcut) { v.dismiss() })
	canv.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyW, Modifier: fyne.KeyModifierControl}, func(fyne.Shortcut) { v.dismiss() })
	canv.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyQ, Modifier: fyne.KeyModifierControl}, func(fyne.Shortcut) { v.stop() })
}

func (v *Viewer) exportPNG() {
	if v.img == nil || v.img.Image == nil {
		dialog.ShowInformation("Export", "No chart to export.", v.window)
		return
	}
	fs := dialog.NewFileSave(func(wc fyne.URIWriteCloser, err error) {
		if err != nil || wc == nil {
			return
		}
		defer wc.Close()
		if err := png.Encode(wc, v.img.Image); err != nil {
			dialog.ShowError(err, v.window)
		}
	}, v.window)
	fs.SetFileName("momentum_chart.png")
	fs.Show()
}

// Run shows every path in order and blocks until the last window is dismissed.
func Run(paths []string, load LoadFunc, opts Options) error {
	if len(paths) == 0 {
		return nil
	}
	a := app.NewWithID("com.iafilius.momentumplot")
	v := New(a, paths, load, opts)
	if err := v.Start(); err != nil {
		return err
	}
	a.Run()
	return v.Err()
}
