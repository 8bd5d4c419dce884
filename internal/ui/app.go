package ui

import (
	"SketchBoard/internal/state"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// BuildWindow lays out toolbar, board and status line in win. shareLink is
// shown when the pointer bridge is running.
func BuildWindow(win fyne.Window, board *BoardWidget, shareLink string) {
	toolbar := NewToolbar(board, win)
	bottom := fyne.CanvasObject(board.StatusBar())
	if shareLink != "" {
		link := widget.NewLabel("Pointer link: " + shareLink)
		link.TextStyle = fyne.TextStyle{Monospace: true}
		bottom = container.NewVBox(board.StatusBar(), link)
	}
	win.SetContent(container.NewBorder(toolbar, bottom, nil, nil, board))
}

// NewApp creates the Fyne application. It must exist before remote events
// are handed to fyne.DoAndWait.
func NewApp() fyne.App {
	return app.NewWithID("io.sketchboard")
}

// RunApp opens the editor window and blocks until it is closed.
func RunApp(myApp fyne.App, board *BoardWidget, shareLink string) {
	myWindow := myApp.NewWindow("SketchBoard " + state.ShortSession(board.Editor().Session))
	myWindow.Resize(fyne.NewSize(1024, 768))
	BuildWindow(myWindow, board, shareLink)
	myWindow.ShowAndRun()
}

// Remote returns a bridge delivery func that replays events on the Fyne
// main goroutine, one at a time, in arrival order, and reports whether the
// board took them.
func Remote(board *BoardWidget) func(source string, ev state.Event, tool *state.Tool) error {
	return func(source string, ev state.Event, tool *state.Tool) error {
		var err error
		fyne.DoAndWait(func() {
			err = board.HandleRemote(source, ev, tool)
		})
		return err
	}
}
