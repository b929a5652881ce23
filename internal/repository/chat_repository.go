package repository

import (
	"serenity-backend/internal/db"
	"serenity-backend/internal/model"
)

type ChatRepository interface {
	SaveMessages(messages ...*model.ChatMessage) error
	// GetMessages returns the conversation oldest first.
	GetMessages(userID uint) ([]model.ChatMessage, error)
	ClearMessages(userID uint) error
}

type chatRepository struct{}

func NewChatRepository() ChatRepository {
	return &chatRepository{}
}

func (r *chatRepository) SaveMessages(messages ...*model.ChatMessage) error {
	if len(messages) == 0 {
		return nil
	}
	return db.GetDB().Create(messages).Error
}

func (r *chatRepository) GetMessages(userID uint) ([]model.ChatMessage, error) {
	var messages []model.ChatMessage
	err := db.GetDB().Where("user_id = ?", userID).Order("created_at ASC, id ASC").Find(&messages).Error
	return messages, err
}

func (r *chatRepository) ClearMessages(userID uint) error {
	return db.GetDB().Where("user_id = ?", userID).Delete(&model.ChatMessage{}).Error
}
