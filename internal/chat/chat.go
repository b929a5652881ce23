// Package chat selects a canned supportive reply for a user message from an
// ordered list of keyword rules.
package chat

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
)

// Intent is the screen a reply points the user to.
type Intent string

const (
	IntentNone      Intent = ""
	IntentBreathing Intent = "breathing"
	IntentMeditate  Intent = "meditate"
	IntentJournal   Intent = "journal"
	IntentMood      Intent = "mood"
	IntentCare      Intent = "care"
	IntentTherapist Intent = "therapist"
	IntentProfile   Intent = "profile"
)

// Greeting opens every new conversation.
const Greeting = "Hello! How are you feeling today?"

var (
	ErrEmptyFallback = errors.New("chat: fallback reply is empty")
	ErrInvalidRule   = errors.New("chat: rule needs keywords and a reply")
	ErrUnknownIntent = errors.New("chat: unknown intent")
)

// Valid reports whether i is one of the known intents.
func (i Intent) Valid() bool {
	switch i {
	case IntentNone, IntentBreathing, IntentMeditate, IntentJournal,
		IntentMood, IntentCare, IntentTherapist, IntentProfile:
		return true
	}
	return false
}

// Predicate reports whether a case-folded utterance matches.
type Predicate func(folded string) bool

// Rule pairs a predicate with its reply. Keywords, when set, build the
// predicate as a case-insensitive substring match of any keyword.
type Rule struct {
	Name     string    `json:"name" yaml:"name"`
	Keywords []string  `json:"keywords" yaml:"keywords"`
	Reply    string    `json:"reply" yaml:"reply"`
	Intent   Intent    `json:"intent,omitempty" yaml:"intent"`
	Match    Predicate `json:"-" yaml:"-"`
}

// Fold applies Unicode case folding. A Caser is not safe for concurrent use,
// so one is created per call.
func Fold(s string) string {
	return cases.Fold().String(s)
}

// ContainsAny matches when the folded utterance contains any keyword.
func ContainsAny(keywords ...string) Predicate {
	folded := make([]string, 0, len(keywords))
	for _, k := range keywords {
		if k = Fold(k); strings.TrimSpace(k) != "" {
			folded = append(folded, k)
		}
	}
	return func(s string) bool {
		for _, k := range folded {
			if strings.Contains(s, k) {
				return true
			}
		}
		return false
	}
}

// Engine is immutable after construction and safe for concurrent use.
type Engine struct {
	rules    []Rule
	fallback string
}

// NewEngine copies rules, deriving each missing predicate from its keywords.
// Declaration order is the match precedence.
func NewEngine(rules []Rule, fallback string) (*Engine, error) {
	if strings.TrimSpace(fallback) == "" {
		return nil, ErrEmptyFallback
	}
	e := &Engine{rules: make([]Rule, 0, len(rules)), fallback: fallback}
	for _, r := range rules {
		if r.Reply == "" || (r.Match == nil && !hasKeyword(r.Keywords)) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidRule, r.Name)
		}
		if !r.Intent.Valid() {
			return nil, fmt.Errorf("%w %q in rule %q", ErrUnknownIntent, r.Intent, r.Name)
		}
		r.Keywords = append([]string(nil), r.Keywords...)
		if r.Match == nil {
			r.Match = ContainsAny(r.Keywords...)
		}
		e.rules = append(e.rules, r)
	}
	return e, nil
}

func hasKeyword(keywords []string) bool {
	for _, k := range keywords {
		if strings.TrimSpace(Fold(k)) != "" {
			return true
		}
	}
	return false
}

// MustNewEngine is NewEngine for static rule tables.
func MustNewEngine(rules []Rule, fallback string) *Engine {
	e, err := NewEngine(rules, fallback)
	if err != nil {
		panic(err)
	}
	return e
}

// Match returns the first rule matching utterance.
func (e *Engine) Match(utterance string) (Rule, bool) {
	folded := Fold(utterance)
	if strings.TrimSpace(folded) == "" {
		return Rule{}, false
	}
	for _, r := range e.rules {
		if r.Match(folded) {
			return r, true
		}
	}
	return Rule{}, false
}

// Reply returns the reply of the first matching rule, or the fallback.
func (e *Engine) Reply(utterance string) string {
	if r, ok := e.Match(utterance); ok {
		return r.Reply
	}
	return e.fallback
}

// Fallback is the reply used when no rule matches.
func (e *Engine) Fallback() string { return e.fallback }

// Rules returns the rule names in precedence order.
func (e *Engine) Rules() []string {
	names := make([]string, len(e.rules))
	for i, r := range e.rules {
		names[i] = r.Name
	}
	return names
}
