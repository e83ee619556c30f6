package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is the tool version; overridable at build time via -ldflags.
var Version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version of commonize",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "commonize version %s\n", Version)
	},
}
