package ui

import (
	"fmt"
	"io"
	"log"
	"strings"

	"SketchBoard/internal/export"
	"SketchBoard/internal/state"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

var toolLabels = map[state.Tool]string{
	state.ToolSelection: "Selection",
	state.ToolLine:      "Line",
	state.ToolRectangle: "Rectangle",
}

// NewToolSelector is the radio group that owns the current tool. It stays
// in sync when the board switches tools on its own (remote input).
func NewToolSelector(board *BoardWidget) *widget.RadioGroup {
	options := []string{toolLabels[state.ToolSelection], toolLabels[state.ToolLine], toolLabels[state.ToolRectangle]}
	radio := widget.NewRadioGroup(options, func(label string) {
		for t, l := range toolLabels {
			if l == label {
				board.SetTool(t)
				return
			}
		}
	})
	radio.Horizontal = true
	radio.Required = true
	radio.SetSelected(toolLabels[board.Tool()])
	board.OnToolChange = func(t state.Tool) {
		if radio.Selected != toolLabels[t] {
			radio.SetSelected(toolLabels[t])
		}
	}
	return radio
}

// --- The Main Toolbar ---
func NewToolbar(board *BoardWidget, win fyne.Window) fyne.CanvasObject {
	tb := widget.NewToolbar(
		widget.NewToolbarAction(theme.DocumentPrintIcon(), func() {
			showExportDialog(board, win, ".pdf")
		}), // PDF
		widget.NewToolbarAction(theme.FileImageIcon(), func() {
			showExportDialog(board, win, ".png")
		}), // PNG
	)

	return container.NewHBox(
		widget.NewLabel("Tool:"),
		NewToolSelector(board),
		widget.NewSeparator(),
		widget.NewLabel("Export:"),
		tb,
		layout.NewSpacer(),
	)
}

func showExportDialog(board *BoardWidget, win fyne.Window, ext string) {
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, win)
			return
		}
		if writer == nil {
			return // cancelled
		}
		if err := board.ExportTo(writer); err != nil {
			dialog.ShowError(err, win)
		}
	}, win)
	d.SetFileName("board" + ext)
	d.SetFilter(storage.NewExtensionFileFilter([]string{ext}))
	d.Show()
}

// ExportTo writes the board to writer, picking PDF or PNG from the URI's
// extension, and closes the writer.
func (b *BoardWidget) ExportTo(writer fyne.URIWriteCloser) error {
	defer func() {
		if err := writer.Close(); err != nil {
			log.Printf("[EXPORT] Error closing writer: %v", err)
		}
	}()
	shapes := b.editor.Shapes()
	if err := exportShapes(writer, writer.URI().Extension(), shapes, b); err != nil {
		b.statusBar.SetText("Export failed")
		return err
	}
	b.statusBar.SetText(fmt.Sprintf("Exported %d shapes to %s", len(shapes), writer.URI().Name()))
	log.Printf("[EXPORT] Exported %d shapes to %s", len(shapes), writer.URI())
	return nil
}

func exportShapes(w io.Writer, ext string, shapes []state.Shape, b *BoardWidget) error {
	switch strings.ToLower(ext) {
	case ".pdf":
		return export.WritePDF(w, shapes, b.gen, b.editor.Session)
	case ".png":
		return export.WritePNG(w, shapes, b.gen)
	}
	return fmt.Errorf("unsupported export format %q", ext)
}
