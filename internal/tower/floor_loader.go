package tower

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed rooms.yaml
var defaultRoomsYAML []byte

// RoomsConfig represents the structure of the rooms.yaml file
type RoomsConfig struct {
	Descriptions []string `yaml:"descriptions"`
}

// LoadRoomsFromYAML loads normal-room descriptions from a YAML file
func LoadRoomsFromYAML(filename string) (*RoomsConfig, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read rooms file: %w", err)
	}
	return parseRooms(data)
}

func parseRooms(data []byte) (*RoomsConfig, error) {
	var config RoomsConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse rooms YAML: %w", err)
	}
	if len(config.Descriptions) == 0 {
		return nil, fmt.Errorf("rooms file has no descriptions")
	}
	return &config, nil
}

// DefaultDescriptions returns the built-in normal-room descriptions
func DefaultDescriptions() []string {
	config, err := parseRooms(defaultRoomsYAML)
	if err != nil {
		panic(err)
	}
	return config.Descriptions
}

// LoadDescriptions loads descriptions from path, or the built-in list when path is empty
func LoadDescriptions(path string) ([]string, error) {
	if path == "" {
		return DefaultDescriptions(), nil
	}
	config, err := LoadRoomsFromYAML(path)
	if err != nil {
		return nil, err
	}
	return config.Descriptions, nil
}
