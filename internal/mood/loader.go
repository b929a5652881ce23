package mood

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

type fileBand struct {
	Min         *int     `yaml:"min"`
	CatchAll    bool     `yaml:"catch_all"`
	Label       string   `yaml:"label"`
	Emoji       string   `yaml:"emoji"`
	Suggestions []string `yaml:"suggestions"`
}

type fileConfig struct {
	Questions []Question        `yaml:"questions"`
	Scores    map[string]int    `yaml:"scores"`
	Bands     []fileBand        `yaml:"bands"`
	Actions   map[string]string `yaml:"actions"`
}

// LoadConfig decodes a questionnaire definition from YAML. A band is marked as
// the catch-all with `catch_all: true` instead of a `min`.
func LoadConfig(r io.Reader) (Config, error) {
	var fc fileConfig
	if err := yaml.NewDecoder(r).Decode(&fc); err != nil {
		return Config{}, fmt.Errorf("mood: decode config: %w", err)
	}

	cfg := Config{
		Questions: fc.Questions,
		Scores:    ScoreTable(fc.Scores),
		Bands:     make([]Band, 0, len(fc.Bands)),
		Actions:   make(map[string]Action, len(fc.Actions)),
	}
	for _, b := range fc.Bands {
		band := Band{Label: b.Label, Emoji: b.Emoji, Suggestions: b.Suggestions}
		switch {
		case b.CatchAll:
			band.Min = CatchAll
		case b.Min != nil:
			band.Min = *b.Min
		default:
			return Config{}, fmt.Errorf("mood: band %q has neither min nor catch_all", b.Label)
		}
		cfg.Bands = append(cfg.Bands, band)
	}
	for text, a := range fc.Actions {
		cfg.Actions[text] = Action(a)
	}
	return cfg, nil
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

	cfg, err := LoadConfig(f)
	if err != nil {
		return nil, err
	}
	return NewEngine(cfg)
}
