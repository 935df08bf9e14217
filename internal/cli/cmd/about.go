package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/dumbvim/internal/cli/styles"
)

var aboutCmd = &cobra.Command{
	Use:   "about",
	Short: "Show version and build information",
	Long:  `Display version, build info, repository URL, and contributors.`,
	RunE:  runAbout,
}

func init() {
	rootCmd.AddCommand(aboutCmd)
}

func runAbout(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	fmt.Println(styles.NewAboutRenderer(app.Theme).Render(app.BuildInfo))
	return nil
}
