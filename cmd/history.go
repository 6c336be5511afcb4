package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/lance13c/testforge/internal/quota"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent compile runs",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath := forgeConfig.Quota.Database
		if dbPath == "" {
			dbPath = filepath.Join(projectDir, ".testforge", "testforge.db")
		}

		store, err := quota.Open(dbPath, forgeConfig.Quota.DailyLimit)
		if err != nil {
			fmt.Println(errorStyle.Render("✗ " + err.Error()))
			return errSilent
		}
		defer store.Close()

		runs, err := store.Recent(historyLimit)
		if err != nil {
			fmt.Println(errorStyle.Render("✗ " + err.Error()))
			return errSilent
		}
		if len(runs) == 0 {
			fmt.Println(dimStyle.Render("No compile runs recorded yet."))
			return nil
		}

		fmt.Println(headerStyle.Render("Recent compile runs"))
		for _, run := range runs {
			fmt.Printf("%s  %-12s %-20s %2d test(s)  %s\n",
				run.CreatedAt.Format("2006-01-02 15:04"),
				run.Framework,
				run.Project,
				run.TestCount,
				dimStyle.Render(run.RunID),
			)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "l", 10, "number of runs to show")
}
