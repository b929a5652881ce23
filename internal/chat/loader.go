package chat

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

type ruleFile struct {
	Fallback string `yaml:"fallback"`
	Rules    []Rule `yaml:"rules"`
}

// LoadRules decodes an ordered rule table and its fallback from YAML.
func LoadRules(r io.Reader) ([]Rule, string, error) {
	var rf ruleFile
	if err := yaml.NewDecoder(r).Decode(&rf); err != nil {
		return nil, "", fmt.Errorf("chat: decode rules: %w", err)
	}
	return rf.Rules, rf.Fallback, nil
}

// LoadEngine builds an engine from a YAML file, or the default engine when
// path is empty.
func LoadEngine(path string) (*Engine, error) {
	if path == "" {
		return Default(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rules, fallback, err := LoadRules(f)
	if err != nil {
		return nil, err
	}
	return NewEngine(rules, fallback)
}
