package repository

import (
	"serenity-backend/internal/db"
	"serenity-backend/internal/model"
)

type MeditationRepository interface {
	CreateSession(session *model.MeditationSession) error
	GetSessions(userID uint) ([]model.MeditationSession, error)
}

type meditationRepository struct{}

func NewMeditationRepository() MeditationRepository {
	return &meditationRepository{}
}

func (r *meditationRepository) CreateSession(session *model.MeditationSession) error {
	return db.GetDB().Create(session).Error
}

func (r *meditationRepository) GetSessions(userID uint) ([]model.MeditationSession, error) {
	var sessions []model.MeditationSession
	err := db.GetDB().Where("user_id = ?", userID).Order("started_at ASC").Find(&sessions).Error
	return sessions, err
}
