package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/lance13c/testforge/internal/logging"
	"github.com/lance13c/testforge/internal/watch"
)

var watchCmd = &cobra.Command{
	Use:   "watch <scenarios.xlsx|scenarios.csv>",
	Short: "Recompile automatically whenever the scenario table changes",
	Long: `Watch compiles the source once, then keeps watching it and recompiles
after every save. Compile flags (--framework, --name, --output) apply to
every run. Stop with Ctrl-C.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runWatch(cmd.Context(), args[0])
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().StringVarP(&compileFramework, "framework", "f", "", "target framework (see 'testforge frameworks')")
	watchCmd.Flags().StringVarP(&compileName, "name", "n", "", "project name (default derived from the source file)")
	watchCmd.Flags().StringVarP(&compileOutput, "output", "o", "", "output directory (default from config, else current)")
}

func runWatch(parent context.Context, source string) error {
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	recompile := func(path string) error {
		fmt.Println(dimStyle.Render("change detected, recompiling"))
		// Failures are already reported; keep watching either way.
		runCompile(ctx, path)
		return nil
	}

	// First build before watching, so errors surface immediately.
	if err := runCompile(ctx, source); err != nil {
		fmt.Println(warnStyle.Render("Initial compile failed; watching for fixes."))
	}

	debounce := time.Duration(forgeConfig.Watch.DebounceMS) * time.Millisecond
	fmt.Printf("%s %s\n", headerStyle.Render("Watching"), source)

	w := watch.New(source, debounce, recompile)
	err := w.Run(ctx, func(format string, args ...interface{}) {
		msg := fmt.Sprintf(format, args...)
		logging.Warn("%s", msg)
		fmt.Println(warnStyle.Render(msg))
	})
	if errors.Is(err, context.Canceled) {
		fmt.Println(dimStyle.Render("Watch stopped."))
		return nil
	}
	return err
}
