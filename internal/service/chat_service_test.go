package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"serenity-backend/internal/chat"
)

func TestChatSendSeedsGreeting(t *testing.T) {
	repo := &fakeChatRepo{}
	svc := NewChatService(chat.Default(), repo)

	r, err := svc.Send(1, "I feel anxious today")
	require.NoError(t, err)
	assert.Equal(t, chat.IntentBreathing, r.Intent)

	history, err := svc.History(1)
	require.NoError(t, err)
	require.Len(t, history, 3)
	assert.Equal(t, chat.Greeting, history[0].Content)
	assert.Equal(t, RoleUser, history[1].Role)
	assert.Equal(t, "I feel anxious today", history[1].Content)
	assert.Equal(t, RoleAssistant, history[2].Role)
	assert.Equal(t, r.Reply, history[2].Content)

	_, err = svc.Send(1, "zzz")
	require.NoError(t, err)
	history, _ = svc.History(1)
	assert.Len(t, history, 5, "greeting is only added once")
	assert.Equal(t, chat.DefaultFallback, history[4].Content)
}

func TestChatRejectsBlank(t *testing.T) {
	svc := NewChatService(chat.Default(), &fakeChatRepo{})
	_, err := svc.Send(1, "   ")
	assert.ErrorIs(t, err, ErrEmptyMessage)
	_, err = svc.Preview("")
	assert.ErrorIs(t, err, ErrEmptyMessage)
}

func TestChatHistoryAndClear(t *testing.T) {
	repo := &fakeChatRepo{}
	svc := NewChatService(chat.Default(), repo)

	history, err := svc.History(5)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, chat.Greeting, history[0].Content)
	assert.Empty(t, repo.messages, "greeting is not stored by reading")

	_, err = svc.Send(5, "thanks")
	require.NoError(t, err)
	_, err = svc.Send(6, "thanks")
	require.NoError(t, err)
	require.NoError(t, svc.Clear(5))

	history, _ = svc.History(5)
	assert.Len(t, history, 1)
	other, _ := svc.History(6)
	assert.Len(t, other, 3)
}

func TestChatPreview(t *testing.T) {
	svc := NewChatService(chat.Default(), &fakeChatRepo{})
	r, err := svc.Preview("I want to write in my journal")
	require.NoError(t, err)
	assert.Equal(t, chat.IntentJournal, r.Intent)
	assert.Equal(t, chat.Default().Reply("I want to write in my journal"), r.Reply)
}
