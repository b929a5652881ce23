package service

import (
	"fmt"
	"sort"

	"serenity-backend/internal/model"
	"serenity-backend/internal/repository"
)

// ProgressData holds the metrics for the progress report.
type ProgressData struct {
	InitialProgress map[string]interface{} `json:"initial_progress"`
	CurrentProgress map[string]interface{} `json:"current_progress"`
}

type ProgressService interface {
	GenerateProgressData(userID uint) (*ProgressData, error)
}

type progressService struct {
	moodRepo       repository.MoodRepository
	journalRepo    repository.JournalRepository
	meditationRepo repository.MeditationRepository
}

func NewProgressService(moodRepo repository.MoodRepository, journalRepo repository.JournalRepository, meditationRepo repository.MeditationRepository) ProgressService {
	return &progressService{moodRepo: moodRepo, journalRepo: journalRepo, meditationRepo: meditationRepo}
}

// GenerateProgressData computes the progress data for a given user. A user
// without check-ins gets zeroed scores.
func (s *progressService) GenerateProgressData(userID uint) (*ProgressData, error) {
	checkIns, err := s.moodRepo.GetCheckIns(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch check-ins: %w", err)
	}
	entries, err := s.journalRepo.GetEntries(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch journal entries: %w", err)
	}
	sessions, err := s.meditationRepo.GetSessions(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch meditation sessions: %w", err)
	}

	// Check-ins arrive newest first.
	var initial, latest *model.MoodCheckIn
	if n := len(checkIns); n > 0 {
		latest = &checkIns[0]
		initial = &checkIns[n-1]
	}

	var total int
	for _, c := range checkIns {
		total += c.Score
	}
	var average float64
	if len(checkIns) > 0 {
		average = float64(total) / float64(len(checkIns))
	}

	initialProgress := map[string]interface{}{
		"score": 0,
		"label": "",
	}
	currentProgress := map[string]interface{}{
		"score":       0,
		"label":       "",
		"improvement": 0,
		"stats": map[string]interface{}{
			"check_ins":           len(checkIns),
			"average_score":       average,
			"journal_entries":     len(entries),
			"meditation_sessions": len(sessions),
			"most_frequent_mood":  mostFrequentLabel(checkIns),
		},
	}
	if initial != nil {
		initialProgress["score"] = initial.Score
		initialProgress["label"] = initial.Label
		currentProgress["score"] = latest.Score
		currentProgress["label"] = latest.Label
		currentProgress["improvement"] = latest.Score - initial.Score
	}

	return &ProgressData{
		InitialProgress: initialProgress,
		CurrentProgress: currentProgress,
	}, nil
}

// mostFrequentLabel breaks ties alphabetically.
func mostFrequentLabel(checkIns []model.MoodCheckIn) string {
	counts := make(map[string]int)
	for _, c := range checkIns {
		counts[c.Label]++
	}
	labels := make([]string, 0, len(counts))
	for l := range counts {
		labels = append(labels, l)
	}
	sort.Slice(labels, func(i, j int) bool {
		if counts[labels[i]] != counts[labels[j]] {
			return counts[labels[i]] > counts[labels[j]]
		}
		return labels[i] < labels[j]
	})
	if len(labels) == 0 {
		return ""
	}
	return labels[0]
}
