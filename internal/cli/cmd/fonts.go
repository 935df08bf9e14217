package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/dumbvim/internal/cli/styles"
)

var fontsCmd = &cobra.Command{
	Use:   "fonts [query]",
	Short: "List installed font families",
	Long: `List the font families guifont can resolve. With a query, only
families fuzzily matching it are shown.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runFonts,
}

func init() {
	rootCmd.AddCommand(fontsCmd)
}

func runFonts(_ *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	var query string
	if len(args) == 1 {
		query = args[0]
	}

	families := app.Fonts.Filter(app.Ctx(), query)
	fmt.Println(styles.NewFontRenderer(app.Theme).RenderFamilies(query, families))
	return nil
}
