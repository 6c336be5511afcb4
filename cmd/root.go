package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lance13c/testforge/internal/config"
	"github.com/lance13c/testforge/internal/logging"
)

var (
	projectDir string
	verbose    bool

	forgeConfig *config.Config
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "testforge",
	Short: "Testforge - scenario tables in, runnable test projects out",
	Long: `Testforge compiles tabular test scenarios (.xlsx or .csv) into
runnable automation projects for Selenium, Appium, Playwright, Cypress,
REST Assured and plain HTTP testing.

Start with 'testforge template' to get a scenario workbook, fill it in,
then run 'testforge compile' to generate a project.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&projectDir, "project", "p", ".", "project directory")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "V", false, "verbose output")
}

// initConfig sets up logging and loads the configuration file if present.
func initConfig() {
	if err := logging.Initialize(projectDir); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to initialize logging: %v\n", err)
	}
	if verbose {
		logging.GetLogger().SetLevel(logging.DEBUG)
	}

	cfg, err := config.NewLoader(projectDir).Load()
	if err != nil {
		logging.Warn("Failed to load config: %v", err)
		cfg = config.DefaultConfig()
	}
	forgeConfig = cfg

	if !verbose {
		logging.GetLogger().SetLevel(logging.ParseLevel(cfg.Logging.Level))
	}
}
