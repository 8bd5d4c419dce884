package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"SketchBoard/internal/export"
	"SketchBoard/internal/sketch"
	"SketchBoard/internal/state"

	"github.com/spf13/cobra"
)

var renderOut string

var renderCmd = &cobra.Command{
	Use:   "render [script]",
	Short: "Replay a pointer script without a window and export the board",
	Long: `Replay a pointer script through the editor and write the resulting board
as PDF or PNG, chosen by the --out extension. The script is read from stdin
when no file is given. Each line is one of:

  tool selection|line|rectangle
  down|move|up X Y
  # comment`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRender,
}

func init() {
	renderCmd.Flags().StringVarP(&renderOut, "out", "o", "board.png", "output file, .pdf or .png")
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	tool, err := state.ParseTool(toolName)
	if err != nil {
		return err
	}
	steps, err := readScript(cmd, args, tool)
	if err != nil {
		return err
	}

	gen := generator()
	editor := newEditor(gen)
	editor.Replay(steps)
	shapes := editor.Shapes()

	if err := save(renderOut, shapes, gen, editor.Session); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Rendered %d shapes to %s\n", len(shapes), renderOut)
	return nil
}

func save(path string, shapes []state.Shape, gen *sketch.Generator, session string) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return export.SavePDF(path, shapes, gen, session)
	case ".png":
		return export.SavePNG(path, shapes, gen)
	}
	return fmt.Errorf("unsupported export format %q", filepath.Ext(path))
}

// readScript parses args[0], or the command's stdin when no file is given.
func readScript(cmd *cobra.Command, args []string, tool state.Tool) ([]state.Step, error) {
	var r io.Reader = cmd.InOrStdin()
	name := "stdin"
	if len(args) > 0 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return nil, fmt.Errorf("opening script: %w", err)
		}
		defer f.Close()
		r, name = f, args[0]
	}
	steps, err := state.ParseScript(r, tool)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return steps, nil
}
