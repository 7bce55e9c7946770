package preset

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// fileCatalog is the on-disk catalog format
type fileCatalog struct {
	Default  ID           `yaml:"default"`
	Rotation []ID         `yaml:"rotation"`
	Presets  []Definition `yaml:"presets"`
}

// LoadFile reads a YAML catalog. The result replaces the builtin table
// entirely; it is not merged.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read preset file: %w", err)
	}
	return Parse(data)
}

// Parse builds a catalog from YAML
func Parse(data []byte) (*Catalog, error) {
	var fc fileCatalog
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("failed to parse preset YAML: %w", err)
	}

	c, err := NewCatalog(fc.Presets, fc.Default, fc.Rotation)
	if err != nil {
		return nil, fmt.Errorf("invalid preset catalog: %w", err)
	}
	return c, nil
}

// Load returns the catalog at path, or the builtin catalog when path is empty
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Builtin(), nil
	}
	return LoadFile(path)
}
