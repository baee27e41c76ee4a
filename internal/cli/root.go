// Package cli wires the generate-rows command tree.
package cli

import (
	"github.com/spf13/cobra"
)

// rootCmd is the root command for generate-rows.
var rootCmd = &cobra.Command{
	Use:     "generate-rows",
	Version: "dev",
	Short:   "Coverage path planner for an autonomous sowing rover",
	Long: `generate-rows computes a deterministic, complete-coverage traversal plan
for a rectangular field: a serpentine sweep of the interior lanes, a headland
retrace of the perimeter, and an intentional unsown buffer before the exit.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
}

// SetVersion overrides the build-time version string.
func SetVersion(v string) {
	if v == "" {
		return
	}
	rootCmd.Version = v
	rootCmd.SetVersionTemplate("{{.Version}}\n")
}

func init() {
	rootCmd.AddCommand(planCmd)
}

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}
