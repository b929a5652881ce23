package mood

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func answersAt(e *Engine, idx func(n int) int) []string {
	qs := e.Questions()
	out := make([]string, len(qs))
	for i, q := range qs {
		out[i] = q.Options[idx(len(q.Options))]
	}
	return out
}

func TestScoreIsDeterministic(t *testing.T) {
	e := Default()
	answers := []string{"Well", "Low", "Good", "Isolated", "Calm", "A little", "Often"}
	first := e.Score(answers)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, e.Score(answers))
	}
	assert.Equal(t, 1, first)
}

func TestEmptyAnswersScoreZero(t *testing.T) {
	e := Default()
	assert.Equal(t, 0, e.Score([]string{"", "", "", "", "", "", ""}))
	assert.Equal(t, 0, e.Score(nil))
}

func TestAllMostPositive(t *testing.T) {
	e := Default()
	answers := answersAt(e, func(n int) int { return n - 1 })

	score := e.Score(answers)
	require.Equal(t, 14, score)

	c := e.Classify(score)
	assert.Equal(t, "Excited", c.Label)
	assert.Equal(t, "😄", c.Emoji)
}

func TestAllMostNegative(t *testing.T) {
	e := Default()
	answers := answersAt(e, func(int) int { return 0 })

	score := e.Score(answers)
	require.Equal(t, -14, score)

	c := e.Classify(score)
	assert.Equal(t, "Depression", c.Label)
	assert.Contains(t, c.Suggestions, "Seek help")
}

func TestClassifyIsTotal(t *testing.T) {
	e := Default()
	for s := -1000; s <= 1000; s++ {
		c := e.Classify(s)
		require.NotEmpty(t, c.Label, "score %d", s)
		require.NotEmpty(t, c.Emoji, "score %d", s)
		require.NotEmpty(t, c.Suggestions, "score %d", s)
	}
}

func TestClassifyIsMonotonic(t *testing.T) {
	e := Default()
	prev := e.Classify(-1000).Rank
	for s := -999; s <= 1000; s++ {
		r := e.Classify(s).Rank
		require.GreaterOrEqual(t, r, prev, "score %d", s)
		prev = r
	}
}

func TestClassifyBoundariesAreInclusive(t *testing.T) {
	e := Default()
	for _, b := range DefaultConfig().Bands {
		if b.Min == CatchAll {
			continue
		}
		assert.Equal(t, b.Label, e.Classify(b.Min).Label, "lower bound %d", b.Min)
		assert.NotEqual(t, b.Label, e.Classify(b.Min-1).Label, "below bound %d", b.Min)
	}
}

func TestClassifyBands(t *testing.T) {
	e := Default()
	tests := []struct {
		score int
		label string
	}{
		{14, "Excited"},
		{10, "Excited"},
		{9, "Happy"},
		{5, "Happy"},
		{4, "Calm"},
		{1, "Calm"},
		{0, "Neutral"},
		{-1, "Boredom"},
		{-2, "Boredom"},
		{-3, "Lonely"},
		{-5, "Sad"},
		{-7, "Frustration"},
		{-9, "Anxious"},
		{-10, "Anxious"},
		{-11, "Depression"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.label, e.Classify(tt.score).Label, "score %d", tt.score)
	}
}

func TestSuggestionAction(t *testing.T) {
	e := Default()
	assert.Equal(t, ActionOpenJournal, e.SuggestionAction("Write in your journal"))
	assert.Equal(t, ActionOpenJournal, e.SuggestionAction("Journal your feelings"))
	assert.Equal(t, ActionOpenBreathingExercise, e.SuggestionAction("Breathe deeply"))
	assert.Equal(t, ActionOpenSocialShare, e.SuggestionAction("Engage on social media"))
	assert.Equal(t, ActionOpenCamera, e.SuggestionAction("Take photos"))
	assert.Equal(t, ActionNone, e.SuggestionAction("Read a book"))
	assert.Equal(t, ActionNone, e.SuggestionAction(""))
}

func TestAssessReportsUnrecognizedAnswers(t *testing.T) {
	e := Default()
	a := e.Assess([]string{"Very well", "Sleepy", "", "Sociable", "", "", "Meh"})

	assert.Equal(t, 3, a.Score)
	assert.Equal(t, "Calm", a.Label)
	assert.Equal(t, []int{1, 6}, a.Unrecognized)
	assert.Equal(t, 2, a.AnswersScored)
	assert.Equal(t, 7, a.QuestionsTotal)
	require.Len(t, a.Suggestions, 3)
	assert.Equal(t, "Try meditation", a.Suggestions[0].Text)
	assert.Equal(t, ActionNone, a.Suggestions[0].Action)
}

func TestAssessTagsSuggestions(t *testing.T) {
	e := Default()
	a := e.Assess(answersAt(e, func(n int) int { return n - 1 }))
	require.Len(t, a.Suggestions, 3)
	assert.Equal(t, ActionOpenJournal, a.Suggestions[1].Action)
}

func TestEngineCopiesConfig(t *testing.T) {
	cfg := DefaultConfig()
	e := MustNewEngine(cfg)

	cfg.Scores["Very well"] = -2
	cfg.Bands[0].Label = "Changed"
	cfg.Questions[0].Options[0] = "Changed"

	assert.Equal(t, 2, e.Score([]string{"Very well"}))
	assert.Equal(t, "Excited", e.Classify(14).Label)
	assert.Equal(t, "Very poorly", e.Questions()[0].Options[0])
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   error
	}{
		{"no questions", func(c *Config) { c.Questions = nil }, ErrNoQuestions},
		{"missing score", func(c *Config) { delete(c.Scores, "Rarely") }, ErrIncompleteScoreTable},
		{"score out of range", func(c *Config) { c.Scores["A lot"] = 3 }, ErrScoreOutOfRange},
		{"no bands", func(c *Config) { c.Bands = nil }, ErrNoBands},
		{"not descending", func(c *Config) { c.Bands[1].Min = 10 }, ErrBandsNotDescending},
		{"no catch-all", func(c *Config) { c.Bands[len(c.Bands)-1].Min = -12 }, ErrNoCatchAllBand},
		{"unknown action", func(c *Config) { c.Actions["Read a book"] = "open_library" }, ErrUnknownAction},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			_, err := NewEngine(cfg)
			assert.ErrorIs(t, err, tt.want)
		})
	}

	assert.NoError(t, Validate(DefaultConfig()))
}

func TestMustNewEnginePanicsOnInvalidConfig(t *testing.T) {
	assert.Panics(t, func() { MustNewEngine(Config{}) })
}

func TestConcurrentUse(t *testing.T) {
	e := Default()
	answers := answersAt(e, func(n int) int { return n - 1 })

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				a := e.Assess(answers)
				if a.Score != 14 || a.Label != "Excited" {
					t.Errorf("unexpected assessment %+v", a)
					return
				}
			}
		}()
	}
	wg.Wait()
}

const testYAML = `
questions:
  - prompt: How are you?
    options: [Bad, Okay, Good]
scores:
  Bad: -1
  Okay: 0
  Good: 1
bands:
  - min: 1
    label: Good
    emoji: "🙂"
    suggestions: [Write in your journal]
  - catch_all: true
    label: Low
    emoji: "🙁"
    suggestions: [Take deep breaths]
actions:
  Write in your journal: open_journal
  Take deep breaths: open_breathing_exercise
`

func TestLoadConfig(t *testing.T) {
	cfg, err := LoadConfig(strings.NewReader(testYAML))
	require.NoError(t, err)

	e, err := NewEngine(cfg)
	require.NoError(t, err)

	assert.Equal(t, 1, e.Score([]string{"Good"}))
	assert.Equal(t, "Good", e.Classify(1).Label)
	assert.Equal(t, "Low", e.Classify(-100).Label)
	assert.Equal(t, ActionOpenBreathingExercise, e.SuggestionAction("Take deep breaths"))
}

func TestLoadConfigRejectsBandWithoutBound(t *testing.T) {
	_, err := LoadConfig(strings.NewReader("bands:\n  - label: Lost\n"))
	assert.Error(t, err)
}

func TestLoadEngineDefaultsWithoutPath(t *testing.T) {
	e, err := LoadEngine("")
	require.NoError(t, err)
	assert.Len(t, e.Questions(), 7)
}
