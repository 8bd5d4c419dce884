package cmd

import (
	"fmt"
	"time"

	"SketchBoard/internal/net"

	"github.com/spf13/cobra"
)

var discoverTimeout time.Duration

var discoverCmd = &cobra.Command{
	Use:   "discover",
	Short: "List boards advertised on the LAN",
	Args:  cobra.NoArgs,
	RunE:  runDiscover,
}

func init() {
	discoverCmd.Flags().DurationVarP(&discoverTimeout, "timeout", "t", 3*time.Second, "how long to wait for answers")
	rootCmd.AddCommand(discoverCmd)
}

func runDiscover(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	seen := make(map[string]bool)
	err := net.Browse(discoverTimeout, func(b net.Board) {
		if seen[b.Addr] {
			return
		}
		seen[b.Addr] = true
		fmt.Fprintf(out, "%s\t%s%s%s\t%s\n", b.Name, net.ShareScheme, b.Addr, net.BridgePath, b.Session)
	})
	if err != nil {
		return err
	}
	if len(seen) == 0 {
		fmt.Fprintln(out, "No boards found")
	}
	return nil
}
