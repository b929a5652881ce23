package repository

import (
	"serenity-backend/internal/db"
	"serenity-backend/internal/model"
)

type MoodRepository interface {
	CreateCheckIn(checkIn *model.MoodCheckIn) error
	// GetCheckIns returns the user's check-ins, newest first.
	GetCheckIns(userID uint) ([]model.MoodCheckIn, error)
	GetCheckInBySessionID(userID uint, sessionID string) (*model.MoodCheckIn, error)
}

type moodRepository struct{}

func NewMoodRepository() MoodRepository {
	return &moodRepository{}
}

func (r *moodRepository) CreateCheckIn(checkIn *model.MoodCheckIn) error {
	return db.GetDB().Create(checkIn).Error
}

func (r *moodRepository) GetCheckIns(userID uint) ([]model.MoodCheckIn, error) {
	var checkIns []model.MoodCheckIn
	err := db.GetDB().Where("user_id = ?", userID).Order("created_at DESC, id DESC").Find(&checkIns).Error
	return checkIns, err
}

func (r *moodRepository) GetCheckInBySessionID(userID uint, sessionID string) (*model.MoodCheckIn, error) {
	var checkIn model.MoodCheckIn
	err := db.GetDB().Where("user_id = ? AND session_id = ?", userID, sessionID).First(&checkIn).Error
	if err != nil {
		return nil, notFound(err)
	}
	return &checkIn, nil
}
