package config

import (
	"fmt"
	"os"

	"github.com/KirkDiggler/roomease/internal/entities"
	"gopkg.in/yaml.v3"
)

// LayoutFile is the YAML document describing a hotel, one entry per floor
// starting at the ground floor:
//
//	floors: [10, 10, 10, 10, 10, 10, 10, 10, 10, 7]
type LayoutFile struct {
	Floors []int `yaml:"floors"`
}

// LoadLayoutFile reads and validates a hotel layout file
func LoadLayoutFile(path string) (entities.Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read layout file %s: %w", path, err)
	}
	return ParseLayout(data)
}

// ParseLayout decodes and validates a YAML layout document
func ParseLayout(data []byte) (entities.Layout, error) {
	var file LayoutFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse layout: %w", err)
	}

	layout := entities.Layout(file.Floors)
	if err := layout.Validate(); err != nil {
		return nil, fmt.Errorf("invalid layout: %w", err)
	}
	return layout, nil
}
