package service

import (
	"fmt"
	"time"

	"serenity-backend/internal/model"
	"serenity-backend/internal/repository"
	"serenity-backend/utilities"
)

const (
	// DailyChallengeMinutes is the daily meditation goal.
	DailyChallengeMinutes = 10
	// StreakAchievementDays unlocks the streak achievement.
	StreakAchievementDays = 5

	AchievementStreak  = "Meditated for 5 days in a row"
	AchievementSession = "Completed 10 minutes of meditation"
)

type MeditationStats struct {
	Sessions          int      `json:"sessions"`
	TotalMinutes      float64  `json:"total_minutes"`
	TodayMinutes      float64  `json:"today_minutes"`
	CurrentStreak     int      `json:"current_streak"`
	ChallengeMinutes  int      `json:"challenge_minutes"`
	ChallengeComplete bool     `json:"challenge_complete"`
	Achievements      []string `json:"achievements"`
}

type MeditationService interface {
	Record(userID uint, durationSeconds int, startedAt *time.Time) (*model.MeditationSession, error)
	Stats(userID uint) (*MeditationStats, error)
}

type meditationService struct {
	repo repository.MeditationRepository
	bus  *utilities.EventBus
	now  func() time.Time
}

func NewMeditationService(repo repository.MeditationRepository, bus *utilities.EventBus) MeditationService {
	return &meditationService{repo: repo, bus: bus, now: time.Now}
}

func (s *meditationService) Record(userID uint, durationSeconds int, startedAt *time.Time) (*model.MeditationSession, error) {
	if durationSeconds <= 0 {
		return nil, ErrInvalidDuration
	}
	start := s.now().Add(-time.Duration(durationSeconds) * time.Second)
	if startedAt != nil && !startedAt.IsZero() {
		start = *startedAt
	}
	session := &model.MeditationSession{UserID: userID, DurationSeconds: durationSeconds, StartedAt: start}
	if err := s.repo.CreateSession(session); err != nil {
		return nil, fmt.Errorf("save meditation: %w", err)
	}
	if s.bus != nil {
		s.bus.Publish(utilities.EventMeditationLogged, utilities.UserEvent{UserID: userID, Data: session})
	}
	return session, nil
}

func (s *meditationService) Stats(userID uint) (*MeditationStats, error) {
	sessions, err := s.repo.GetSessions(userID)
	if err != nil {
		return nil, err
	}
	stats := ComputeMeditationStats(sessions, s.now())
	return &stats, nil
}

// ComputeMeditationStats summarises sessions as of now, using now's location
// to decide calendar days. The streak counts consecutive days with at least
// one session, ending today or, if nothing happened yet today, yesterday.
func ComputeMeditationStats(sessions []model.MeditationSession, now time.Time) MeditationStats {
	loc := now.Location()
	today := dayOf(now, loc)

	stats := MeditationStats{
		Sessions:         len(sessions),
		ChallengeMinutes: DailyChallengeMinutes,
		Achievements:     []string{},
	}
	days := make(map[time.Time]bool)
	longest := 0
	for _, ss := range sessions {
		minutes := float64(ss.DurationSeconds) / 60
		stats.TotalMinutes += minutes
		d := dayOf(ss.StartedAt, loc)
		days[d] = true
		if d.Equal(today) {
			stats.TodayMinutes += minutes
		}
		if ss.DurationSeconds > longest {
			longest = ss.DurationSeconds
		}
	}

	day := today
	if !days[day] {
		day = day.AddDate(0, 0, -1)
	}
	for days[day] {
		stats.CurrentStreak++
		day = day.AddDate(0, 0, -1)
	}

	stats.ChallengeComplete = stats.TodayMinutes >= DailyChallengeMinutes
	if stats.CurrentStreak >= StreakAchievementDays {
		stats.Achievements = append(stats.Achievements, AchievementStreak)
	}
	if longest >= DailyChallengeMinutes*60 {
		stats.Achievements = append(stats.Achievements, AchievementSession)
	}
	return stats
}

func dayOf(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}
