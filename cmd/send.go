package cmd

import (
	"fmt"
	"io"

	"SketchBoard/internal/net"
	"SketchBoard/internal/state"

	"github.com/spf13/cobra"
)

var sendCmd = &cobra.Command{
	Use:   "send <link> [script]",
	Short: "Play a pointer script into a running board",
	Long: `Connect to a board's pointer bridge through its share link and play a
pointer script into it. The script format is the one render reads.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runSend,
}

func init() {
	rootCmd.AddCommand(sendCmd)
}

func runSend(cmd *cobra.Command, args []string) error {
	tool, err := state.ParseTool(toolName)
	if err != nil {
		return err
	}
	steps, err := readScript(cmd, args[1:], tool)
	if err != nil {
		return err
	}
	return sendSteps(cmd, args[0], steps)
}

func sendScript(cmd *cobra.Command, link string, r io.Reader, tool state.Tool) error {
	steps, err := state.ParseScript(r, tool)
	if err != nil {
		return fmt.Errorf("stdin: %w", err)
	}
	return sendSteps(cmd, link, steps)
}

func sendSteps(cmd *cobra.Command, link string, steps []state.Step) error {
	session, err := net.Send(link, steps)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Sent %d events to board %s\n", len(steps), state.ShortSession(session))
	return nil
}
