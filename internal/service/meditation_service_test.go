package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"serenity-backend/internal/model"
)

func TestComputeMeditationStats(t *testing.T) {
	now := time.Date(2025, 7, 10, 18, 0, 0, 0, time.UTC)
	day := func(offset, minutes int) model.MeditationSession {
		return model.MeditationSession{
			StartedAt:       now.AddDate(0, 0, -offset).Add(-time.Hour),
			DurationSeconds: minutes * 60,
		}
	}

	tests := []struct {
		name         string
		sessions     []model.MeditationSession
		streak       int
		today        float64
		challenge    bool
		achievements []string
	}{
		{"nothing yet", nil, 0, 0, false, []string{}},
		{"today only", []model.MeditationSession{day(0, 4), day(0, 6)}, 1, 10, true, []string{}},
		{"streak ending yesterday", []model.MeditationSession{day(1, 3), day(2, 3), day(3, 3)}, 3, 0, false, []string{}},
		{"gap breaks streak", []model.MeditationSession{day(0, 2), day(1, 2), day(3, 2)}, 2, 2, false, []string{}},
		{
			"five days and a long session",
			[]model.MeditationSession{day(0, 1), day(1, 1), day(2, 12), day(3, 1), day(4, 1)},
			5, 1, false,
			[]string{AchievementStreak, AchievementSession},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := ComputeMeditationStats(tt.sessions, now)
			assert.Equal(t, tt.streak, s.CurrentStreak)
			assert.InDelta(t, tt.today, s.TodayMinutes, 1e-9)
			assert.Equal(t, tt.challenge, s.ChallengeComplete)
			assert.Equal(t, tt.achievements, s.Achievements)
			assert.Equal(t, DailyChallengeMinutes, s.ChallengeMinutes)
			assert.Equal(t, len(tt.sessions), s.Sessions)
		})
	}
}

func TestMeditationRecord(t *testing.T) {
	repo := &fakeMeditationRepo{}
	svc := NewMeditationService(repo, nil).(*meditationService)
	now := time.Date(2025, 7, 10, 8, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	s, err := svc.Record(1, 600, nil)
	require.NoError(t, err)
	assert.Equal(t, now.Add(-10*time.Minute), s.StartedAt)

	_, err = svc.Record(1, 0, nil)
	assert.ErrorIs(t, err, ErrInvalidDuration)

	stats, err := svc.Stats(1)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.CurrentStreak)
	assert.True(t, stats.ChallengeComplete)
	assert.InDelta(t, 10.0, stats.TotalMinutes, 1e-9)
}
