// Command oscctl is a small interactive client and traffic monitor for
// the osc/slip core: send one-off messages, dump incoming traffic,
// drive a device over a SLIP-framed serial link, or fire messages from
// the keyboard, the way the teacher's examples/ mains each did one of
// these things standalone.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
)

func main() {
	root := &cobra.Command{
		Use:   "oscctl",
		Short: "Send, receive, and replay Open Sound Control traffic",
	}

	root.AddCommand(
		newSendCmd(),
		newDumpCmd(),
		newSerialCmd(),
		newKeysCmd(),
		newReplayCmd(),
		newVersionCmd(),
	)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version info",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("oscctl %s (%s)\n", version, commit)
		},
	}
}
