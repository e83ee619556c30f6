// Package commands provides the CLI commands for the commonize tool.
package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "commonize [directory] [typecount]",
	Short: "Move shared generated types into one common module",
	Long: `commonize scans a directory of generated Rust sources for type
declarations that follow the generator's annotation template, collects
frequently used types into a single shared module file, and strips
duplicate and unconventionally named declarations from the originals.

Usage:
  commonize                 Scan the current directory, threshold 1
  commonize ./src           Scan ./src
  commonize ./src 3         Promote types used at least 3 times
  commonize version         Print version`,
	Args:          cobra.MaximumNArgs(2),
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE:          runDedup,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(versionCmd)

	rootCmd.Flags().BoolVar(&dedupDryRun, "dry-run", false, "Report what would change without writing any file")
	rootCmd.Flags().BoolVar(&dedupForce, "force", false, "Skip the clean-worktree check")
	rootCmd.Flags().StringVar(&dedupExtension, "ext", "", "Source file extension (default \".rs\")")
	rootCmd.Flags().StringVar(&dedupSharedFile, "shared-file", "", "Shared module file name (default \"common.rs\")")
}
