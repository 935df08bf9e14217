package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/dumbvim/internal/application/usecase"
	"github.com/bnema/dumbvim/internal/cli/styles"
	"github.com/bnema/dumbvim/internal/domain/fontspec"
)

// errRejected makes the command exit non-zero after the rejection is printed.
var errRejected = errors.New("font rejected")

var fontCmd = &cobra.Command{
	Use:   "font",
	Short: "Inspect guifont values",
}

var fontParseCmd = &cobra.Command{
	Use:   "parse <guifont>",
	Short: "Validate a guifont value the way an attached session would",
	Long: `Parse a guifont value, clamp its size to the configured range and
resolve the family against the installed fonts.

Examples:
  dumbvim font parse 'Fira Code:h14'
  dumbvim font parse 'Fira_Code:h14'`,
	Args: cobra.ExactArgs(1),
	RunE: runFontParse,
}

func init() {
	rootCmd.AddCommand(fontCmd)
	fontCmd.AddCommand(fontParseCmd)
}

func runFontParse(_ *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	spec := args[0]
	renderer := styles.NewFontRenderer(app.Theme)
	errLine := usecase.FormatErrorLine(usecase.ErrCodeInvalidFont, usecase.InvalidFontMessage(spec))

	req, err := fontspec.Parse(spec, app.Config.Font.Bounds())
	if err != nil {
		fmt.Println(renderer.RenderRejected(errLine, err))
		return errRejected
	}

	font, err := app.Fonts.Resolve(app.Ctx(), req.Family, req.Size)
	if err != nil {
		fmt.Println(renderer.RenderRejected(errLine, err))
		return errRejected
	}

	fmt.Println(renderer.RenderParsed(spec, font, fontspec.Format(font)))
	return nil
}
