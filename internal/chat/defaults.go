package chat

// DefaultFallback is the reply when no keyword matches.
const DefaultFallback = "I’m here for you. You can talk to me about anything — feelings, fears, hopes, or questions. Or say 'meditate', 'journal', 'track my mood', 'self-care', or 'therapist' to explore more 💙."

// DefaultRules is the companion's rule table. Order matters: a message
// mentioning both "help" and "anxious" gets the help reply.
func DefaultRules() []Rule {
	return []Rule{
		{
			Name:     "greeting",
			Keywords: []string{"hello", "hi"},
			Reply:    "Hello! I’m Serenity 💬, your mental health companion. How are you feeling today?",
		},
		{
			Name:     "help",
			Keywords: []string{"help", "support"},
			Reply:    "I'm here to support you. Are you feeling anxious, sad, lonely, or just overwhelmed? I can also connect you to breathing exercises, meditation, self-care, journaling, mood tracking, or a therapist.",
		},
		{
			Name:     "anxiety",
			Keywords: []string{"anxious", "panic"},
			Reply:    "I understand how tough anxiety can be. Let's try a calming breathing exercise 🌬️. Would you like me to take you there?",
			Intent:   IntentBreathing,
		},
		{
			Name:     "sadness",
			Keywords: []string{"depressed", "sad"},
			Reply:    "I'm sorry you're feeling this way. You're not alone. Maybe journaling 📝 or a short meditation 🧘 could help. Want to try one?",
			Intent:   IntentJournal,
		},
		{
			Name:     "stress",
			Keywords: []string{"stressed", "overwhelmed"},
			Reply:    "Stress can be heavy. A deep breath or a moment of mindfulness might help. Want to go to the meditation screen?",
			Intent:   IntentMeditate,
		},
		{
			Name:     "loneliness",
			Keywords: []string{"lonely", "alone"},
			Reply:    "Feeling lonely is hard. Talking about it helps. Would you like to write in your journal or connect to a therapist?",
			Intent:   IntentJournal,
		},
		{
			Name:     "self_care",
			Keywords: []string{"self care", "care myself"},
			Reply:    "Self-care is so important 💖. I can take you to the self-care screen where you'll find relaxing and inspiring ideas.",
			Intent:   IntentCare,
		},
		{
			Name:     "mood",
			Keywords: []string{"track my mood", "mood"},
			Reply:    "Let’s take a quick mood check-in 📊. It only takes a moment and can really help understand how you're doing.",
			Intent:   IntentMood,
		},
		{
			Name:     "journal",
			Keywords: []string{"journal", "write"},
			Reply:    "Writing down your thoughts can be powerful. I’ll open the journal for you 📝.",
			Intent:   IntentJournal,
		},
		{
			Name:     "meditation",
			Keywords: []string{"meditate", "calm"},
			Reply:    "Let’s find your calm together. I’ll guide you to a peaceful meditation session 🧘.",
			Intent:   IntentMeditate,
		},
		{
			Name:     "therapist",
			Keywords: []string{"therapist", "professional", "match"},
			Reply:    "I can help match you with a mental health professional 🧑‍⚕️. Would you like to continue?",
			Intent:   IntentTherapist,
		},
		{
			Name:     "profile",
			Keywords: []string{"profile", "my data"},
			Reply:    "You can update your profile here, including your age, bio, and interests 👤.",
			Intent:   IntentProfile,
		},
		{
			Name:     "thanks",
			Keywords: []string{"thank"},
			Reply:    "You're very welcome 😊. I'm always here to talk or guide you.",
		},
	}
}

// Default returns an engine over DefaultRules and DefaultFallback.
func Default() *Engine {
	return MustNewEngine(DefaultRules(), DefaultFallback)
}
