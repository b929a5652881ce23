package chat

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func replyOf(t *testing.T, name string) string {
	t.Helper()
	for _, r := range DefaultRules() {
		if r.Name == name {
			return r.Reply
		}
	}
	t.Fatalf("no rule %q", name)
	return ""
}

func TestReplyFallback(t *testing.T) {
	e := Default()
	assert.Equal(t, DefaultFallback, e.Reply(""))
	assert.Equal(t, DefaultFallback, e.Reply("   \t\n"))
	assert.Equal(t, DefaultFallback, e.Reply("xyzzy"))
}

func TestReplyIsCaseInsensitive(t *testing.T) {
	e := Default()
	assert.Equal(t, e.Reply("hello there"), e.Reply("HELLO there"))
	assert.Equal(t, replyOf(t, "greeting"), e.Reply("HELLO there"))
	assert.Equal(t, replyOf(t, "anxiety"), e.Reply("PANIC"))
}

func TestReplyPrecedence(t *testing.T) {
	e := Default()
	assert.Equal(t, replyOf(t, "help"), e.Reply("help, I feel anxious"))
	assert.Equal(t, replyOf(t, "sadness"), e.Reply("I am sad and stressed"))
	assert.Equal(t, replyOf(t, "mood"), e.Reply("can I track my mood in my journal"))
}

func TestReplyMatchesSubstrings(t *testing.T) {
	e := Default()
	// "nothing" contains "hi"
	assert.Equal(t, replyOf(t, "greeting"), e.Reply("nothing works"))
	assert.Equal(t, replyOf(t, "thanks"), e.Reply("Thanks a lot"))
}

func TestReplyRules(t *testing.T) {
	e := Default()
	tests := []struct {
		in     string
		rule   string
		intent Intent
	}{
		{"I can't stop the panic", "anxiety", IntentBreathing},
		{"feeling depressed", "sadness", IntentJournal},
		{"so overwhelmed today", "stress", IntentMeditate},
		{"I feel lonely", "loneliness", IntentJournal},
		{"self care ideas", "self_care", IntentCare},
		{"let me write", "journal", IntentJournal},
		{"I want to meditate", "meditation", IntentMeditate},
		{"need a professional", "therapist", IntentTherapist},
		{"update my data", "profile", IntentProfile},
	}
	for _, tt := range tests {
		r, ok := e.Match(tt.in)
		require.True(t, ok, tt.in)
		assert.Equal(t, tt.rule, r.Name, tt.in)
		assert.Equal(t, tt.intent, r.Intent, tt.in)
		assert.Equal(t, replyOf(t, tt.rule), e.Reply(tt.in), tt.in)
	}
}

func TestFirstMatchWinsOverSpecificity(t *testing.T) {
	e := MustNewEngine([]Rule{
		{Name: "r1", Keywords: []string{"help"}, Reply: "first"},
		{Name: "r2", Keywords: []string{"anxious"}, Reply: "second"},
	}, "fallback")

	assert.Equal(t, "first", e.Reply("help, I feel anxious"))
	assert.Equal(t, "second", e.Reply("anxious"))
	assert.Equal(t, "fallback", e.Reply("calm"))
	assert.Equal(t, []string{"r1", "r2"}, e.Rules())
}

func TestCustomPredicate(t *testing.T) {
	e := MustNewEngine([]Rule{
		{Name: "question", Reply: "good question", Match: func(s string) bool { return strings.HasSuffix(s, "?") }},
	}, "ok")

	assert.Equal(t, "good question", e.Reply("Why?"))
	assert.Equal(t, "ok", e.Reply("Because."))
}

func TestNewEngineValidation(t *testing.T) {
	_, err := NewEngine(DefaultRules(), " ")
	assert.ErrorIs(t, err, ErrEmptyFallback)

	_, err = NewEngine([]Rule{{Name: "empty", Reply: "x"}}, "fb")
	assert.ErrorIs(t, err, ErrInvalidRule)

	_, err = NewEngine([]Rule{{Name: "silent", Keywords: []string{"x"}}}, "fb")
	assert.ErrorIs(t, err, ErrInvalidRule)

	_, err = NewEngine([]Rule{{Name: "blank", Keywords: []string{"", "  ", "\t"}, Reply: "x"}}, "fb")
	assert.ErrorIs(t, err, ErrInvalidRule)

	_, err = NewEngine([]Rule{{Name: "typo", Keywords: []string{"x"}, Reply: "x", Intent: "breath"}}, "fb")
	assert.ErrorIs(t, err, ErrUnknownIntent)
}

func TestBlankKeywordsNeverMatch(t *testing.T) {
	e := MustNewEngine([]Rule{{Name: "sad", Keywords: []string{" ", "sad"}, Reply: "I'm here."}}, "fb")
	assert.Equal(t, "fb", e.Reply("a calm day"))
	assert.Equal(t, "I'm here.", e.Reply("so sad"))
}

func TestDefaultRulesHaveKnownIntents(t *testing.T) {
	for _, r := range DefaultRules() {
		assert.True(t, r.Intent.Valid(), r.Name)
	}
}

func TestEngineCopiesRules(t *testing.T) {
	rules := []Rule{{Name: "a", Keywords: []string{"apple"}, Reply: "fruit"}}
	e := MustNewEngine(rules, "fb")
	rules[0].Reply = "changed"
	rules[0].Keywords[0] = "pear"

	assert.Equal(t, "fruit", e.Reply("apple"))
}

func TestConcurrentReplies(t *testing.T) {
	e := Default()
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if got := e.Reply("HELLO"); got != replyOf(t, "greeting") {
					t.Errorf("unexpected reply %q", got)
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestLoadRules(t *testing.T) {
	const doc = `
fallback: Tell me more.
rules:
  - name: sleep
    keywords: [tired, sleep]
    reply: Rest matters.
    intent: meditate
  - name: hi
    keywords: [hey]
    reply: Hey!
`
	rules, fallback, err := LoadRules(strings.NewReader(doc))
	require.NoError(t, err)
	require.Len(t, rules, 2)

	e, err := NewEngine(rules, fallback)
	require.NoError(t, err)

	r, ok := e.Match("So TIRED, hey")
	require.True(t, ok)
	assert.Equal(t, "sleep", r.Name)
	assert.Equal(t, IntentMeditate, r.Intent)
	assert.Equal(t, "Tell me more.", e.Reply("nope"))
}

func TestLoadRulesRejectsUnknownIntent(t *testing.T) {
	const doc = `
fallback: Tell me more.
rules:
  - name: sleep
    keywords: [tired]
    reply: Rest matters.
    intent: nap
`
	rules, fallback, err := LoadRules(strings.NewReader(doc))
	require.NoError(t, err)

	_, err = NewEngine(rules, fallback)
	assert.ErrorIs(t, err, ErrUnknownIntent)
	assert.Contains(t, err.Error(), `"nap"`)
}

func TestLoadRulesRejectsBlankKeywords(t *testing.T) {
	const doc = `
fallback: Tell me more.
rules:
  - name: empty
    keywords: ["", "   "]
    reply: Hmm.
`
	rules, fallback, err := LoadRules(strings.NewReader(doc))
	require.NoError(t, err)

	_, err = NewEngine(rules, fallback)
	assert.ErrorIs(t, err, ErrInvalidRule)
}

func TestLoadEngineDefaultsWithoutPath(t *testing.T) {
	e, err := LoadEngine("")
	require.NoError(t, err)
	assert.Equal(t, DefaultFallback, e.Fallback())
}
