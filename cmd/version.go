package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var appVersion = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("testforge version %s\n", appVersion)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

// SetVersion overrides the reported version, set from main at build time.
func SetVersion(version string) {
	appVersion = version
}
