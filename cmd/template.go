package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lance13c/testforge/internal/ingest"
)

var templateOutput string

var templateCmd = &cobra.Command{
	Use:   "template",
	Short: "Write an example scenario workbook to fill in",
	Long: `Template writes an .xlsx workbook with the expected columns, a few
example scenarios, and an instructions sheet describing the action tokens
and locator strategies.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := ingest.WriteTemplate(templateOutput); err != nil {
			fmt.Println(errorStyle.Render("✗ " + err.Error()))
			return errSilent
		}

		fmt.Printf("%s %s\n", successStyle.Render("✓ Template written:"), templateOutput)
		fmt.Println(dimStyle.Render("Fill it in, then run: testforge compile " + templateOutput))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(templateCmd)
	templateCmd.Flags().StringVarP(&templateOutput, "output", "o", "scenarios.xlsx", "where to write the workbook")
}
