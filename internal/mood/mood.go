// Package mood scores the daily mood questionnaire and classifies the result
// into a mood band with suggestions.
package mood

import (
	"errors"
	"fmt"
	"math"
)

// Action is the navigation intent attached to a suggestion.
type Action string

const (
	ActionNone                  Action = "none"
	ActionOpenJournal           Action = "open_journal"
	ActionOpenBreathingExercise Action = "open_breathing_exercise"
	ActionOpenSocialShare       Action = "open_social_share"
	ActionOpenCamera            Action = "open_camera"
)

// CatchAll is the lower bound of the band that matches every score.
const CatchAll = math.MinInt

// Score contributions are limited to this closed range.
const (
	MinContribution = -2
	MaxContribution = 2
)

var (
	ErrNoQuestions          = errors.New("mood: no questions configured")
	ErrIncompleteScoreTable = errors.New("mood: score table is missing an option")
	ErrScoreOutOfRange      = errors.New("mood: score outside [-2, 2]")
	ErrNoBands              = errors.New("mood: no bands configured")
	ErrBandsNotDescending   = errors.New("mood: bands must be strictly descending")
	ErrNoCatchAllBand       = errors.New("mood: last band must be a catch-all")
	ErrUnknownAction        = errors.New("mood: unknown action")
)

// Question is one questionnaire item. Options run from the most negative to
// the most positive answer.
type Question struct {
	Prompt  string   `json:"prompt" yaml:"prompt"`
	Options []string `json:"options" yaml:"options"`
}

// ScoreTable maps option text to its score contribution.
type ScoreTable map[string]int

// Band maps every score >= Min (and below the previous band) to a mood.
type Band struct {
	Min         int      `json:"min" yaml:"min"`
	Label       string   `json:"label" yaml:"label"`
	Emoji       string   `json:"emoji" yaml:"emoji"`
	Suggestions []string `json:"suggestions" yaml:"suggestions"`
}

// Config is the static data an Engine is built from.
type Config struct {
	Questions []Question
	Scores    ScoreTable
	Bands     []Band
	Actions   map[string]Action
}

// Classification is the band selected for a score. Rank 0 is the lowest band.
type Classification struct {
	Label       string   `json:"label"`
	Emoji       string   `json:"emoji"`
	Suggestions []string `json:"suggestions"`
	Rank        int      `json:"rank"`
}

// Suggestion pairs a suggestion text with its action tag.
type Suggestion struct {
	Text   string `json:"text"`
	Action Action `json:"action"`
}

// Assessment is the full result for one answer set.
type Assessment struct {
	Score          int          `json:"score"`
	Label          string       `json:"label"`
	Emoji          string       `json:"emoji"`
	Rank           int          `json:"rank"`
	Suggestions    []Suggestion `json:"suggestions"`
	Unrecognized   []int        `json:"-"`
	AnswersScored  int          `json:"answers_scored"`
	QuestionsTotal int          `json:"questions_total"`
}

// Engine is immutable after construction and safe for concurrent use.
type Engine struct {
	questions []Question
	scores    ScoreTable
	bands     []Band
	actions   map[string]Action
}

// NewEngine validates cfg and builds an engine from a private copy of it.
func NewEngine(cfg Config) (*Engine, error) {
	if err := Validate(cfg); err != nil {
		return nil, err
	}

	e := &Engine{
		questions: make([]Question, len(cfg.Questions)),
		scores:    make(ScoreTable, len(cfg.Scores)),
		bands:     make([]Band, len(cfg.Bands)),
		actions:   make(map[string]Action, len(cfg.Actions)),
	}
	for i, q := range cfg.Questions {
		e.questions[i] = Question{Prompt: q.Prompt, Options: append([]string(nil), q.Options...)}
	}
	for k, v := range cfg.Scores {
		e.scores[k] = v
	}
	for i, b := range cfg.Bands {
		b.Suggestions = append([]string(nil), b.Suggestions...)
		e.bands[i] = b
	}
	for k, v := range cfg.Actions {
		e.actions[k] = v
	}
	return e, nil
}

// MustNewEngine is NewEngine for static configuration known to be valid.
func MustNewEngine(cfg Config) *Engine {
	e, err := NewEngine(cfg)
	if err != nil {
		panic(err)
	}
	return e
}

// Validate checks the configuration invariants: every option is scored within
// range, bands are strictly descending and end with a catch-all, and every
// action is one of the known tags.
func Validate(cfg Config) error {
	if len(cfg.Questions) == 0 {
		return ErrNoQuestions
	}
	for _, q := range cfg.Questions {
		for _, opt := range q.Options {
			if _, ok := cfg.Scores[opt]; !ok {
				return fmt.Errorf("%w: %q (question %q)", ErrIncompleteScoreTable, opt, q.Prompt)
			}
		}
	}
	for opt, v := range cfg.Scores {
		if v < MinContribution || v > MaxContribution {
			return fmt.Errorf("%w: %q = %d", ErrScoreOutOfRange, opt, v)
		}
	}

	if len(cfg.Bands) == 0 {
		return ErrNoBands
	}
	for i := 1; i < len(cfg.Bands); i++ {
		if cfg.Bands[i].Min >= cfg.Bands[i-1].Min {
			return fmt.Errorf("%w: %q after %q", ErrBandsNotDescending, cfg.Bands[i].Label, cfg.Bands[i-1].Label)
		}
	}
	if cfg.Bands[len(cfg.Bands)-1].Min != CatchAll {
		return ErrNoCatchAllBand
	}

	for text, a := range cfg.Actions {
		if !a.valid() {
			return fmt.Errorf("%w: %q for %q", ErrUnknownAction, a, text)
		}
	}
	return nil
}

func (a Action) valid() bool {
	switch a {
	case ActionNone, ActionOpenJournal, ActionOpenBreathingExercise, ActionOpenSocialShare, ActionOpenCamera:
		return true
	}
	return false
}

// Questions returns a copy of the configured questionnaire.
func (e *Engine) Questions() []Question {
	out := make([]Question, len(e.questions))
	for i, q := range e.questions {
		out[i] = Question{Prompt: q.Prompt, Options: append([]string(nil), q.Options...)}
	}
	return out
}

// Score sums the contribution of each answer. Empty and unknown answers
// contribute zero; the answer count is not checked against the questionnaire.
func (e *Engine) Score(answers []string) int {
	total, _ := e.score(answers)
	return total
}

func (e *Engine) score(answers []string) (int, []int) {
	var (
		total   int
		unknown []int
	)
	for i, a := range answers {
		if a == "" {
			continue
		}
		v, ok := e.scores[a]
		if !ok {
			unknown = append(unknown, i)
			continue
		}
		total += v
	}
	return total, unknown
}

// Classify returns the first band, from the highest, whose lower bound is at
// most total. A score on a boundary belongs to the higher band.
func (e *Engine) Classify(total int) Classification {
	for i, b := range e.bands {
		if b.Min <= total {
			return e.classification(i)
		}
	}
	// unreachable: Validate guarantees a catch-all band
	return e.classification(len(e.bands) - 1)
}

func (e *Engine) classification(i int) Classification {
	b := e.bands[i]
	return Classification{
		Label:       b.Label,
		Emoji:       b.Emoji,
		Suggestions: append([]string(nil), b.Suggestions...),
		Rank:        len(e.bands) - 1 - i,
	}
}

// SuggestionAction maps a suggestion text to its navigation intent.
func (e *Engine) SuggestionAction(suggestion string) Action {
	if a, ok := e.actions[suggestion]; ok {
		return a
	}
	return ActionNone
}

// Assess scores answers, classifies the total and tags every suggestion.
func (e *Engine) Assess(answers []string) Assessment {
	total, unknown := e.score(answers)
	c := e.Classify(total)

	suggestions := make([]Suggestion, 0, len(c.Suggestions))
	for _, s := range c.Suggestions {
		suggestions = append(suggestions, Suggestion{Text: s, Action: e.SuggestionAction(s)})
	}

	scored := 0
	for _, a := range answers {
		if a != "" {
			scored++
		}
	}

	return Assessment{
		Score:          total,
		Label:          c.Label,
		Emoji:          c.Emoji,
		Rank:           c.Rank,
		Suggestions:    suggestions,
		Unrecognized:   unknown,
		AnswersScored:  scored - len(unknown),
		QuestionsTotal: len(e.questions),
	}
}
