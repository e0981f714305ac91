package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/invopop/jsonschema"
)

// Schema returns the JSON schema of Config.
func Schema() ([]byte, error) {
	r := &jsonschema.Reflector{
		FieldNameTag:              "toml",
		DoNotReference:            true,
		AllowAdditionalProperties: false,
	}
	schema := r.Reflect(&Config{})
	schema.ID = "https://github.com/bnema/tabmaster/config.schema.json"
	schema.Title = "tabmaster configuration"
	schema.Description = "Configuration schema for tabmaster"

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}
	return data, nil
}

// GenerateSchemaFile writes config.schema.json into dir and returns its path.
func GenerateSchemaFile(dir string) (string, error) {
	data, err := Schema()
	if err != nil {
		return "", err
	}
	schemaFile := filepath.Join(dir, schemaName)
	if err := os.WriteFile(schemaFile, data, filePerm); err != nil {
		return "", fmt.Errorf("failed to write schema file: %w", err)
	}
	return schemaFile, nil
}
