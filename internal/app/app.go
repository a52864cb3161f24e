package app

import (
	"fmt"
	"time"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/philipparndt/goplot3d/pkg/dataset"
	"github.com/philipparndt/goplot3d/pkg/plot"
	"github.com/philipparndt/goplot3d/pkg/watcher"
)

// App wires the viewer widget, the info panel and dataset loading into
// one window.
type App struct {
	window    fyne.Window
	viewer    *plot.Viewer[dataset.Sample]
	infoLabel *widget.Label
	watch     *watcher.FileWatcher
	source    string
}

// Run opens the viewer window, optionally preloaded with a point file.
func Run(filename string) {
	a := fyneapp.New()
	w := a.NewWindow("goplot3d")

	application := &App{
		window:    w,
		viewer:    plot.NewViewer[dataset.Sample](),
		infoLabel: widget.NewLabel("No dataset loaded."),
	}

	w.SetContent(application.makeContent())

	if filename != "" {
		application.loadFile(filename)
	}

	w.Resize(fyne.NewSize(1200, 800))
	w.ShowAndRun()
}

func (a *App) makeContent() fyne.CanvasObject {
	openButton := widget.NewButton("Open Point File", func() {
		a.showFileDialog()
	})

	reloadButton := widget.NewButton("Reload", func() {
		if a.source != "" {
			a.loadFile(a.source)
		}
	})

	perspectiveCheck := widget.NewCheck("Perspective projection", func(checked bool) {
		if checked != a.viewer.PerspectiveEnabled() {
			a.viewer.TogglePerspective()
		}
	})

	instructions := widget.NewLabel(
		"• Drag to rotate the view\n" +
			"• Scroll to zoom in/out\n" +
			"• Open files reload automatically on change",
	)
	instructions.Wrapping = fyne.TextWrapWord

	panel := container.NewVBox(
		widget.NewLabel("Dataset:"),
		widget.NewSeparator(),
		a.infoLabel,
		widget.NewSeparator(),
		widget.NewLabel("Display Options:"),
		perspectiveCheck,
		widget.NewSeparator(),
		instructions,
		widget.NewSeparator(),
		openButton,
		reloadButton,
	)

	scroll := container.NewVScroll(panel)
	scroll.SetMinSize(fyne.NewSize(280, 0))

	return container.NewBorder(nil, nil, nil, scroll, a.viewer)
}

func (a *App) showFileDialog() {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		if reader == nil {
			return
		}
		defer reader.Close()

		a.loadFile(reader.URI().Path())
	}, a.window)
}

func (a *App) loadFile(filename string) {
	samples, err := dataset.Parse(filename)
	if err != nil {
		dialog.ShowError(fmt.Errorf("failed to load point file: %w", err), a.window)
		return
	}

	a.source = filename
	a.viewer.SetDataset(samples, dataset.NewSampleView(samples))
	a.updateInfo(filename, samples)
	a.watchFile(filename)
}

func (a *App) updateInfo(filename string, samples []dataset.Sample) {
	if len(samples) == 0 {
		a.infoLabel.SetText(fmt.Sprintf("File: %s\nPoints: 0", filename))
		return
	}

	size := dataset.Bounds(samples).Size()
	a.infoLabel.SetText(fmt.Sprintf(
		"File: %s\nPoints: %d\n\nRange:\n  X: %.2f\n  Y: %.2f\n  Z: %.2f",
		filename, len(samples), size.X, size.Y, size.Z,
	))
}

// watchFile reloads the dataset when the source file changes on disk.
func (a *App) watchFile(filename string) {
	if a.watch == nil {
		watch, err := watcher.New(500 * time.Millisecond)
		if err != nil {
			fmt.Printf("Warning: failed to set up file watching: %v\n", err)
			fmt.Println("Auto-reload will not be available")
			return
		}
		a.watch = watch
		a.watch.Start()
	}

	// Re-arm on every load: editors that replace the file on save
	// break the previous watch.
	if err := a.watch.Watch(filename, func(path string) {
		fyne.Do(func() {
			a.loadFile(path)
		})
	}); err != nil {
		fmt.Printf("Warning: failed to watch %s: %v\n", filename, err)
	}
}
