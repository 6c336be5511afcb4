package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/lance13c/testforge/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default .testforge/config.yaml",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := filepath.Join(projectDir, config.ConfigDirName, config.ConfigFileName)
		if _, err := os.Stat(path); err == nil {
			fmt.Println(warnStyle.Render("Config already exists: " + path))
			return nil
		}

		loader := config.NewLoader(projectDir)
		if err := loader.Save(config.DefaultConfig(), path); err != nil {
			fmt.Println(errorStyle.Render("✗ " + err.Error()))
			return errSilent
		}

		fmt.Printf("%s %s\n", successStyle.Render("✓ Config written:"), path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
