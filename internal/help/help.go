// Package help provides help text loading and lookup from YAML files.
package help

import (
	_ "embed"
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed help.yaml
var defaultHelpYAML []byte

// Topic represents a single help topic with aliases and text.
type Topic struct {
	Aliases []string `yaml:"aliases"`
	Text    string   `yaml:"text"`
}

// HelpData represents the structure of the help.yaml file.
type HelpData struct {
	Banner      string           `yaml:"banner"`
	Topics      map[string]Topic `yaml:"topics"`
	GeneralHelp string           `yaml:"general_help"`
}

// Help provides help text lookup. It is read-only once built.
type Help struct {
	data        *HelpData
	aliasLookup map[string]string // maps alias -> topic name
}

// Load loads help data from a YAML file, or the built-in text when path is empty.
func Load(path string) (*Help, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read help file: %w", err)
	}
	return parse(data)
}

// Default returns the built-in help text
func Default() *Help {
	h, err := parse(defaultHelpYAML)
	if err != nil {
		panic(err)
	}
	return h
}

func parse(data []byte) (*Help, error) {
	var helpData HelpData
	if err := yaml.Unmarshal(data, &helpData); err != nil {
		return nil, fmt.Errorf("failed to parse help file: %w", err)
	}

	h := &Help{
		data:        &helpData,
		aliasLookup: make(map[string]string),
	}

	// Build alias lookup map; a topic is always reachable by its own name
	for topicName, topic := range helpData.Topics {
		h.aliasLookup[strings.ToLower(topicName)] = topicName
		for _, alias := range topic.Aliases {
			h.aliasLookup[strings.ToLower(alias)] = topicName
		}
	}

	return h, nil
}

// Banner returns the text shown when a game starts
func (h *Help) Banner() string {
	return strings.TrimSpace(h.data.Banner)
}

// Topics returns the topic names in alphabetical order
func (h *Help) Topics() []string {
	names := make([]string, 0, len(h.data.Topics))
	for name := range h.data.Topics {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GetTopic returns help text for a given topic/alias.
// Returns empty string if topic not found.
func (h *Help) GetTopic(topic string) string {
	topicName, ok := h.aliasLookup[strings.ToLower(topic)]
	if !ok {
		return ""
	}
	return strings.TrimSpace(h.data.Topics[topicName].Text)
}

// GetHelpText returns help for a topic, or general help if topic is empty.
func (h *Help) GetHelpText(topic string) string {
	if topic == "" {
		general := strings.TrimSpace(h.data.GeneralHelp)
		if topics := h.Topics(); len(topics) > 0 {
			general += "\n\nTopics: " + strings.Join(topics, ", ")
		}
		return general
	}

	text := h.GetTopic(topic)
	if text == "" {
		return fmt.Sprintf("No help available for '%s'.\nType 'help' for a list of commands.", topic)
	}
	return text
}
