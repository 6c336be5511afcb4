package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/lance13c/testforge/internal/locator"
)

var suggestLimit int

var suggestCmd = &cobra.Command{
	Use:   "suggest [page.html]",
	Short: "Suggest locators for the interactive elements of an HTML page",
	Long: `Suggest parses an HTML file (or stdin when no file is given) and prints
ranked locator suggestions. Copy the strategy/value pairs into the
LocatorStrategy and LocatorValue columns of your scenario table.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var html []byte
		var err error
		if len(args) == 1 {
			html, err = os.ReadFile(args[0])
		} else {
			html, err = io.ReadAll(os.Stdin)
		}
		if err != nil {
			fmt.Println(errorStyle.Render("✗ " + err.Error()))
			return errSilent
		}

		suggestions, err := locator.Suggest(string(html))
		if err != nil {
			fmt.Println(errorStyle.Render("✗ " + err.Error()))
			return errSilent
		}
		if len(suggestions) == 0 {
			fmt.Println(dimStyle.Render("No interactive elements found."))
			return nil
		}

		if suggestLimit > 0 && len(suggestions) > suggestLimit {
			suggestions = suggestions[:suggestLimit]
		}

		fmt.Println(headerStyle.Render("Locator suggestions"))
		fmt.Printf("%-10s %-10s %-30s %s\n", "ELEMENT", "STRATEGY", "VALUE", "LABEL")
		for _, s := range suggestions {
			fmt.Printf("%-10s %-10s %-30s %s\n", s.Element, s.Strategy, s.Value, dimStyle.Render(s.Label))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(suggestCmd)
	suggestCmd.Flags().IntVarP(&suggestLimit, "limit", "l", 20, "maximum number of suggestions to print")
}
