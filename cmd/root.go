package cmd

import (
	"context"
	"fmt"
	"log"
	"os"

	"SketchBoard/internal/net"
	"SketchBoard/internal/sketch"
	"SketchBoard/internal/state"
	"SketchBoard/internal/ui"

	"github.com/spf13/cobra"
)

var (
	toolName  string
	remote    string
	port      int
	advertise bool
	roughness float64
	seed      uint64
	verbose   bool
)

var rootCmd = &cobra.Command{
	Use:   "sketchboard",
	Short: "Hand-drawn diagram board for lines and rectangles",
	Long: `SketchBoard is a small diagram editor. Draw lines and rectangles, then
select them to move or resize by their handles. Other devices on the LAN can
drive the pointer through the share link shown in the window.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runBoard,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&toolName, "tool", state.ToolLine.String(), "starting tool: selection, line or rectangle")
	rootCmd.PersistentFlags().Float64Var(&roughness, "roughness", sketch.DefaultOptions().Roughness, "stroke roughness, 0 draws straight lines")
	rootCmd.PersistentFlags().Uint64Var(&seed, "seed", 0, "seed mixed into the stroke jitter")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log editor transitions")

	rootCmd.Flags().StringVar(&remote, "remote", "", "share link of a running board; pointer script is read from stdin")
	rootCmd.Flags().IntVar(&port, "port", net.DefaultBridgePort, "pointer bridge port, 0 disables the bridge")
	rootCmd.Flags().BoolVar(&advertise, "advertise", true, "announce the board on the LAN over mDNS")
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func generator() *sketch.Generator {
	opts := sketch.DefaultOptions()
	opts.Roughness = roughness
	opts.Seed = seed
	return sketch.NewGenerator(opts)
}

func newEditor(gen *sketch.Generator) *state.Editor {
	editor := state.NewEditor(gen)
	editor.Verbose = verbose
	return editor
}

func runBoard(cmd *cobra.Command, args []string) error {
	tool, err := state.ParseTool(toolName)
	if err != nil {
		return err
	}
	if remote != "" {
		return sendScript(cmd, remote, cmd.InOrStdin(), tool)
	}

	// widgets and fyne.DoAndWait need the app in place
	myApp := ui.NewApp()
	gen := generator()
	editor := newEditor(gen)
	board := ui.NewBoardWidget(editor, gen)
	board.SetTool(tool)
	log.Printf("Starting board %s", state.ShortSession(editor.Session))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	shareLink := ""
	if port > 0 {
		ln, err := net.Listen(port)
		if err != nil {
			return fmt.Errorf("%w (use --port 0 to run without it)", err)
		}
		bridge := net.NewBridge(editor.Session, ui.Remote(board))
		go func() {
			if err := bridge.Serve(ctx, ln); err != nil {
				log.Printf("[BRIDGE] %v", err)
			}
		}()
		shareLink = net.ShareLink(net.LANHost(), port)

		if advertise {
			server, err := net.Advertise(port, editor.Session)
			if err != nil {
				log.Printf("[MDNS] %v", err)
			} else {
				defer server.Shutdown()
			}
		}
	}

	ui.RunApp(myApp, board, shareLink)
	return nil
}
