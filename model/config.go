package model

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// QueryConfig represents configuration for an entity detail query
type QueryConfig struct {
	// Language preference list for the label resolution service, in order.
	// "[AUTO_LANGUAGE]" is resolved by the remote service itself.
	Languages []string `json:"languages" yaml:"languages"`

	// OnlyEntityValues filters property values to graph entities only
	// (ex. Q84 but not the literal "douglasadams").
	OnlyEntityValues bool `json:"only_entity_values" yaml:"only_entity_values"`
}

// DefaultQueryConfig returns a sensible default configuration
func DefaultQueryConfig() QueryConfig {
	return QueryConfig{
		Languages:        []string{"[AUTO_LANGUAGE]", "en"},
		OnlyEntityValues: true,
	}
}

// LoadQueryConfig reads a QueryConfig from a YAML file. Fields missing from
// the file keep their default values.
func LoadQueryConfig(path string) (*QueryConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read query config: %w", err)
	}

	config := DefaultQueryConfig()
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("parse query config: %w", err)
	}

	return &config, nil
}
