// ABOUTME: YAML catalog overrides for role slots, rules, prefixes and models
// ABOUTME: Absent sections keep the compiled-in defaults

package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mauromedda/modelmap/internal/catalog"
	"github.com/mauromedda/modelmap/internal/mapping"
	"github.com/mauromedda/modelmap/internal/migrate"
)

// catalogFile is the optional --catalog override document.
type catalogFile struct {
	Roles      []mapping.RoleSlot `yaml:"roles"`
	Migrations []migrate.Rule     `yaml:"migrations"`
	Prefixes   []string           `yaml:"prefixes"`
	GPTModels  []string           `yaml:"gptModels"`
	Models     []catalog.Model    `yaml:"models"`
}

// loadCatalogFile parses a YAML override file.
func loadCatalogFile(path string) (*catalogFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog file: %w", err)
	}
	var cf catalogFile
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &cf, nil
}
