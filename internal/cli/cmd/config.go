package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/bnema/dumbvim/internal/cli/styles"
	"github.com/bnema/dumbvim/internal/infrastructure/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long:  `View the effective configuration and regenerate its JSON schema.`,
}

var configStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show config file path and effective settings",
	RunE:  runConfigStatus,
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Write the JSON schema next to the config file",
	Long: `Regenerate config.schema.json in the config directory. Editors with
TOML schema support use it for completion and validation.`,
	RunE: runConfigSchema,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configStatusCmd)
	configCmd.AddCommand(configSchemaCmd)
}

func runConfigStatus(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	renderer := styles.NewConfigRenderer(app.Theme)
	fmt.Println(renderer.RenderStatus(app.Manager.ConfigFile(), app.Config))
	return nil
}

func runConfigSchema(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	renderer := styles.NewConfigRenderer(app.Theme)
	dir := filepath.Dir(app.Manager.ConfigFile())
	if err := config.WriteSchemaFile(dir); err != nil {
		fmt.Println(renderer.RenderError(err))
		return nil
	}

	fmt.Println(renderer.RenderSchemaWritten(dir))
	return nil
}
