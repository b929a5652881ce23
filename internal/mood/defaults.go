package mood

// DefaultConfig returns the canonical seven-question check-in.
//
// The smiling question scores asymmetrically ("Rarely" -1, "Sometimes" 0)
// compared to its neighbours. The table is kept as the product defined it.
func DefaultConfig() Config {
	return Config{
		Questions: []Question{
			{Prompt: "How did you sleep last night?", Options: []string{"Very poorly", "Poorly", "Okay", "Well", "Very well"}},
			{Prompt: "How is your energy level right now?", Options: []string{"Very low", "Low", "Neutral", "High", "Very high"}},
			{Prompt: "How is your mood today?", Options: []string{"Very bad", "Bad", "Neutral", "Good", "Excellent"}},
			{Prompt: "How social do you feel?", Options: []string{"Very isolated", "Isolated", "Neutral", "Sociable", "Very sociable"}},
			{Prompt: "How anxious do you feel?", Options: []string{"Extremely anxious", "Anxious", "Neutral", "Calm", "Very calm"}},
			{Prompt: "How motivated are you today?", Options: []string{"Not at all", "A little", "Neutral", "Motivated", "Very motivated"}},
			{Prompt: "How often have you smiled today?", Options: []string{"Not at all", "Rarely", "Sometimes", "Often", "A lot"}},
		},
		Scores: ScoreTable{
			"Very poorly": -2, "Poorly": -1, "Okay": 0, "Well": 1, "Very well": 2,
			"Very low": -2, "Low": -1, "Neutral": 0, "High": 1, "Very high": 2,
			"Very bad": -2, "Bad": -1, "Good": 1, "Excellent": 2,
			"Very isolated": -2, "Isolated": -1, "Sociable": 1, "Very sociable": 2,
			"Extremely anxious": -2, "Anxious": -1, "Calm": 1, "Very calm": 2,
			"Not at all": -2, "A little": -1, "Motivated": 1, "Very motivated": 2,
			"Rarely": -1, "Sometimes": 0, "Often": 1, "A lot": 2,
		},
		Bands: []Band{
			{Min: 10, Label: "Excited", Emoji: "😄", Suggestions: []string{"Go for a walk", "Write in your journal", "Call a friend"}},
			{Min: 5, Label: "Happy", Emoji: "😃", Suggestions: []string{"Celebrate small wins", "Share your joy on Instagram", "Listen to music"}},
			{Min: 1, Label: "Calm", Emoji: "🌊", Suggestions: []string{"Try meditation", "Read a book", "Enjoy nature"}},
			{Min: 0, Label: "Neutral", Emoji: "😐", Suggestions: []string{"Reflect on your day", "Take a break", "Do breathing exercises"}},
			{Min: -2, Label: "Boredom", Emoji: "😴", Suggestions: []string{"Try something new", "Watch a movie", "Take photos"}},
			{Min: -4, Label: "Lonely", Emoji: "😔", Suggestions: []string{"Talk to someone", "Journal your feelings", "Engage on social media"}},
			{Min: -6, Label: "Sad", Emoji: "😢", Suggestions: []string{"Watch comedy", "Breathe deeply", "Reach out to someone"}},
			{Min: -8, Label: "Frustration", Emoji: "😠", Suggestions: []string{"Take a walk", "Try journaling", "Take deep breaths"}},
			{Min: -10, Label: "Anxious", Emoji: "😯", Suggestions: []string{"Do a breathing exercise", "Avoid screens for a while", "Drink water"}},
			{Min: CatchAll, Label: "Depression", Emoji: "😞", Suggestions: []string{"Seek help", "Talk to a therapist", "Use a support group"}},
		},
		Actions: map[string]Action{
			"Write in your journal":       ActionOpenJournal,
			"Journal your feelings":       ActionOpenJournal,
			"Do a breathing exercise":     ActionOpenBreathingExercise,
			"Take deep breaths":           ActionOpenBreathingExercise,
			"Breathe deeply":              ActionOpenBreathingExercise,
			"Share your joy on Instagram": ActionOpenSocialShare,
			"Engage on social media":      ActionOpenSocialShare,
			"Take photos":                 ActionOpenCamera,
		},
	}
}

// Default returns an engine over DefaultConfig.
func Default() *Engine {
	return MustNewEngine(DefaultConfig())
}
