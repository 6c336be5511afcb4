package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/lance13c/testforge/internal/compile"
	"github.com/lance13c/testforge/internal/logging"
	"github.com/lance13c/testforge/internal/quota"
)

var (
	compileFramework string
	compileName      string
	compileOutput    string
	compileZip       bool
)

var compileCmd = &cobra.Command{
	Use:   "compile <scenarios.xlsx|scenarios.csv>",
	Short: "Compile a scenario table into a runnable test project",
	Long: `Compile reads a scenario table, validates it, and generates a complete
test project for the chosen framework: sources, configuration, dependency
manifest, runner and setup scripts.

Use --zip to also package the project as a single archive.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCompile(cmd.Context(), args[0])
	},
}

func init() {
	rootCmd.AddCommand(compileCmd)
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true

	compileCmd.Flags().StringVarP(&compileFramework, "framework", "f", "", "target framework (see 'testforge frameworks')")
	compileCmd.Flags().StringVarP(&compileName, "name", "n", "", "project name (default derived from the source file)")
	compileCmd.Flags().StringVarP(&compileOutput, "output", "o", "", "output directory (default from config, else current)")
	compileCmd.Flags().BoolVar(&compileZip, "zip", false, "also package the project as <project>.zip")
}

func runCompile(parent context.Context, source string) error {
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	frameworkID := compileFramework
	if frameworkID == "" {
		frameworkID = forgeConfig.Compile.Framework
	}
	outputDir := compileOutput
	if outputDir == "" {
		outputDir = forgeConfig.Compile.OutputDir
	}

	compiler := compile.New()
	result, err := compiler.Compile(ctx, compile.Options{
		Source:      source,
		Framework:   frameworkID,
		ProjectName: compileName,
		OutputDir:   outputDir,
		Quota:       openQuota(),
	})
	if err != nil {
		return reportCompileError(err)
	}

	logging.Info("compiled %s -> %s (%d tests, run %s)", source, result.ProjectPath, result.TestCount, result.RunID)

	fmt.Println(successStyle.Render("✓ Compilation succeeded"))
	fmt.Printf("  Project:   %s\n", result.ProjectPath)
	fmt.Printf("  Framework: %s\n", result.Framework)
	fmt.Printf("  Tests:     %d\n", result.TestCount)
	fmt.Printf("  Files:     %d\n", len(result.Files))
	fmt.Printf("  Run ID:    %s\n", dimStyle.Render(result.RunID))

	if len(result.Warnings) > 0 {
		fmt.Println()
		fmt.Println(warnStyle.Render(fmt.Sprintf("%d warning(s):", len(result.Warnings))))
		for _, w := range result.Warnings {
			fmt.Printf("  • %s\n", w)
		}
	}

	if compileZip {
		archive, err := compiler.Package(result.ProjectPath)
		if err != nil {
			return reportCompileError(err)
		}
		fmt.Printf("\n%s %s\n", successStyle.Render("✓ Packaged:"), archive)
	}

	return nil
}

// openQuota builds the quota service from config. Failures fall back to
// an open gate so a broken quota database never blocks compilation.
func openQuota() quota.Service {
	if forgeConfig == nil || forgeConfig.Quota.DailyLimit <= 0 {
		return quota.Unlimited{}
	}

	dbPath := forgeConfig.Quota.Database
	if dbPath == "" {
		dbPath = filepath.Join(projectDir, ".testforge", "testforge.db")
	}

	store, err := quota.Open(dbPath, forgeConfig.Quota.DailyLimit)
	if err != nil {
		logging.Warn("quota database unavailable: %v", err)
		return quota.Unlimited{}
	}
	return store
}

// reportCompileError prints a classified failure and returns a bare error
// so cobra sets a non-zero exit code without double-printing.
func reportCompileError(err error) error {
	var cerr *compile.Error
	if !errors.As(err, &cerr) {
		fmt.Println(errorStyle.Render("✗ " + err.Error()))
		return errSilent
	}

	switch cerr.Kind {
	case compile.KindValidationFailed:
		fmt.Println(errorStyle.Render("✗ Scenario validation failed:"))
		for _, reason := range cerr.Reasons {
			fmt.Printf("  • %s\n", reason)
		}
	case compile.KindCanceled:
		fmt.Println(warnStyle.Render("Compilation canceled."))
	default:
		fmt.Println(errorStyle.Render("✗ " + cerr.Error()))
	}

	logging.Error("compile failed: %v", err)
	return errSilent
}

// errSilent signals failure without a message; printing happened already.
var errSilent = errors.New("")
