package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lance13c/testforge/internal/compile"
	"github.com/lance13c/testforge/internal/logging"
)

var packageCmd = &cobra.Command{
	Use:   "package <project-dir>",
	Short: "Package a compiled project as a ZIP archive",
	Long: `Package archives an already compiled project directory as
<project>.zip next to it, preserving executable bits on the scripts.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		archive, err := compile.New().Package(args[0])
		if err != nil {
			return reportCompileError(err)
		}

		logging.Info("packaged %s -> %s", args[0], archive)
		fmt.Printf("%s %s\n", successStyle.Render("✓ Packaged:"), archive)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(packageCmd)
}
