package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lance13c/testforge/internal/framework"
	"github.com/lance13c/testforge/internal/scenario"
)

var frameworksCmd = &cobra.Command{
	Use:   "frameworks",
	Short: "List the supported target frameworks",
	Run: func(cmd *cobra.Command, args []string) {
		registry := framework.NewRegistry()

		fmt.Println(headerStyle.Render("Supported frameworks"))
		fmt.Println()

		for _, group := range []struct {
			label string
			kind  scenario.TestKind
		}{
			{"Web", scenario.KindWeb},
			{"Mobile", scenario.KindMobile},
			{"API", scenario.KindAPI},
		} {
			fmt.Println(headerStyle.Render(group.label))
			def := registry.DefaultForKind(group.kind)
			for _, d := range registry.ByKind(group.kind) {
				marker := " "
				if def != nil && def.ID == d.ID {
					marker = "*"
				}
				fmt.Printf("  %s %-15s %s %s\n", marker, d.ID, d.DisplayName, dimStyle.Render("("+string(d.Language)+")"))
			}
			fmt.Println()
		}

		fmt.Println(dimStyle.Render("* default for its kind. Pick one with: testforge compile -f <id> ..."))
	},
}

func init() {
	rootCmd.AddCommand(frameworksCmd)
}
