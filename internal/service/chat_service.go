package service

import (
	"fmt"
	"strings"
	"time"

	"serenity-backend/internal/chat"
	"serenity-backend/internal/model"
	"serenity-backend/internal/repository"
)

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatReply is the companion's answer to one message.
type ChatReply struct {
	Reply  string      `json:"reply"`
	Intent chat.Intent `json:"intent,omitempty"`
}

type ChatService interface {
	Send(userID uint, message string) (*ChatReply, error)
	// History returns the conversation oldest first, opening with the
	// greeting when nothing has been said yet.
	History(userID uint) ([]model.ChatMessage, error)
	Clear(userID uint) error
	// Preview replies without storing anything.
	Preview(message string) (*ChatReply, error)
}

type chatService struct {
	engine   *chat.Engine
	chatRepo repository.ChatRepository
	now      func() time.Time
}

func NewChatService(engine *chat.Engine, chatRepo repository.ChatRepository) ChatService {
	return &chatService{engine: engine, chatRepo: chatRepo, now: time.Now}
}

func (s *chatService) reply(message string) (*ChatReply, error) {
	if strings.TrimSpace(message) == "" {
		return nil, ErrEmptyMessage
	}
	rule, ok := s.engine.Match(message)
	if !ok {
		return &ChatReply{Reply: s.engine.Fallback()}, nil
	}
	return &ChatReply{Reply: rule.Reply, Intent: rule.Intent}, nil
}

func (s *chatService) Preview(message string) (*ChatReply, error) {
	return s.reply(message)
}

func (s *chatService) Send(userID uint, message string) (*ChatReply, error) {
	r, err := s.reply(message)
	if err != nil {
		return nil, err
	}

	history, err := s.chatRepo.GetMessages(userID)
	if err != nil {
		return nil, fmt.Errorf("load conversation: %w", err)
	}

	now := s.now()
	var batch []*model.ChatMessage
	if len(history) == 0 {
		batch = append(batch, &model.ChatMessage{UserID: userID, Role: RoleAssistant, Content: chat.Greeting, CreatedAt: now})
	}
	batch = append(batch,
		&model.ChatMessage{UserID: userID, Role: RoleUser, Content: strings.TrimSpace(message), CreatedAt: now},
		&model.ChatMessage{UserID: userID, Role: RoleAssistant, Content: r.Reply, Intent: string(r.Intent), CreatedAt: now},
	)
	if err := s.chatRepo.SaveMessages(batch...); err != nil {
		return nil, fmt.Errorf("save conversation: %w", err)
	}
	return r, nil
}

func (s *chatService) History(userID uint) ([]model.ChatMessage, error) {
	messages, err := s.chatRepo.GetMessages(userID)
	if err != nil {
		return nil, err
	}
	if len(messages) == 0 {
		return []model.ChatMessage{{UserID: userID, Role: RoleAssistant, Content: chat.Greeting, CreatedAt: s.now()}}, nil
	}
	return messages, nil
}

func (s *chatService) Clear(userID uint) error {
	return s.chatRepo.ClearMessages(userID)
}
