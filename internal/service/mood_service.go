package service

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"serenity-backend/internal/model"
	"serenity-backend/internal/mood"
	"serenity-backend/internal/repository"
	"serenity-backend/utilities"
)

// CheckInResult is a stored assessment.
type CheckInResult struct {
	SessionID string    `json:"session_id"`
	CreatedAt time.Time `json:"created_at"`
	mood.Assessment
}

type MoodService interface {
	Questions() []mood.Question
	// CheckIn scores answers, one per question in order. Missing trailing
	// answers count as unanswered; more answers than questions is an error.
	CheckIn(userID uint, answers []string) (*CheckInResult, error)
	History(userID uint) ([]model.MoodCheckIn, error)
	// GetCheckIn returns one of the user's stored check-ins as it was scored.
	GetCheckIn(userID uint, sessionID string) (*CheckInResult, error)
	Classify(score int) mood.Classification
}

type moodService struct {
	engine   *mood.Engine
	moodRepo repository.MoodRepository
	bus      *utilities.EventBus
}

func NewMoodService(engine *mood.Engine, moodRepo repository.MoodRepository, bus *utilities.EventBus) MoodService {
	return &moodService{engine: engine, moodRepo: moodRepo, bus: bus}
}

func (s *moodService) Questions() []mood.Question {
	return s.engine.Questions()
}

func (s *moodService) Classify(score int) mood.Classification {
	return s.engine.Classify(score)
}

func (s *moodService) CheckIn(userID uint, answers []string) (*CheckInResult, error) {
	n := len(s.engine.Questions())
	if len(answers) > n {
		return nil, fmt.Errorf("%w: got %d, want at most %d", ErrTooManyAnswers, len(answers), n)
	}
	padded := make([]string, n)
	copy(padded, answers)

	result := s.engine.Assess(padded)
	for _, i := range result.Unrecognized {
		utilities.Warn("user %d: unrecognized answer %q for question %d", userID, padded[i], i+1)
	}

	answersJSON, err := json.Marshal(padded)
	if err != nil {
		return nil, err
	}
	texts := make([]string, len(result.Suggestions))
	for i, sg := range result.Suggestions {
		texts[i] = sg.Text
	}

	checkIn := &model.MoodCheckIn{
		UserID:      userID,
		SessionID:   uuid.NewString(),
		Answers:     string(answersJSON),
		Score:       result.Score,
		Label:       result.Label,
		Emoji:       result.Emoji,
		Suggestions: strings.Join(texts, "\n"),
	}
	if err := s.moodRepo.CreateCheckIn(checkIn); err != nil {
		return nil, fmt.Errorf("save check-in: %w", err)
	}

	out := &CheckInResult{SessionID: checkIn.SessionID, CreatedAt: checkIn.CreatedAt, Assessment: result}
	if s.bus != nil {
		s.bus.Publish(utilities.EventMoodCheckedIn, utilities.UserEvent{UserID: userID, Data: out})
	}
	utilities.Info("user %d checked in: %s (%d)", userID, result.Label, result.Score)
	return out, nil
}

func (s *moodService) History(userID uint) ([]model.MoodCheckIn, error) {
	return s.moodRepo.GetCheckIns(userID)
}

func (s *moodService) GetCheckIn(userID uint, sessionID string) (*CheckInResult, error) {
	checkIn, err := s.moodRepo.GetCheckInBySessionID(userID, strings.TrimSpace(sessionID))
	if err != nil {
		return nil, err
	}
	var answers []string
	if err := json.Unmarshal([]byte(checkIn.Answers), &answers); err != nil {
		return nil, fmt.Errorf("decode check-in %s: %w", checkIn.SessionID, err)
	}

	// Score, label and suggestions are kept as stored even if the
	// questionnaire has changed since.
	result := s.engine.Assess(answers)
	result.Score = checkIn.Score
	result.Label = checkIn.Label
	result.Emoji = checkIn.Emoji
	result.Rank = s.engine.Classify(checkIn.Score).Rank
	result.Suggestions = []mood.Suggestion{}
	for _, text := range strings.Split(checkIn.Suggestions, "\n") {
		if text == "" {
			continue
		}
		result.Suggestions = append(result.Suggestions, mood.Suggestion{Text: text, Action: s.engine.SuggestionAction(text)})
	}
	return &CheckInResult{SessionID: checkIn.SessionID, CreatedAt: checkIn.CreatedAt, Assessment: result}, nil
}
