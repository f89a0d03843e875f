// Package cli implements the rsvp command line tool.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var Version = "dev"

func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "rsvp",
		Short: "RSVP speed-reading frame generator",
		Long:  "rsvp tokenizes plain text chapters and turns them into timed display frames for rapid serial visual presentation.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	root.AddCommand(
		newReadCmd(),
		newEstimateCmd(),
	)

	root.Version = Version
	root.SetVersionTemplate(fmt.Sprintf("rsvp %s\n", Version))

	return root
}

func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
