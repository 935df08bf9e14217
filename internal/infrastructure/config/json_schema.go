package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/invopop/jsonschema"
)

// GenerateSchema returns the JSON schema of Config.
func GenerateSchema() ([]byte, error) {
	r := new(jsonschema.Reflector)
	schema := r.Reflect(&Config{})

	schema.ID = "https://github.com/bnema/dumbvim/config.schema.json"
	schema.Title = "dumbvim configuration"
	schema.Description = "Configuration schema for dumbvim, a Neovim host front-end"

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}
	return data, nil
}

// WriteSchemaFile writes config.schema.json into dir.
func WriteSchemaFile(dir string) error {
	data, err := GenerateSchema()
	if err != nil {
		return err
	}

	schemaFile := filepath.Join(dir, "config.schema.json")
	if err := os.WriteFile(schemaFile, data, filePerm); err != nil {
		return fmt.Errorf("failed to write schema file: %w", err)
	}
	return nil
}
