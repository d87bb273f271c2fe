package service

import (
	"testing"

	"faculty_hub_backend/internal/model"
	"faculty_hub_backend/internal/repository"
	"faculty_hub_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newChatService(db *gorm.DB) *ChatService {
	return NewChatService(
		repository.NewChatRepository(db),
		repository.NewUserRepository(db),
		nil,
	)
}

func TestSendMessageValidation(t *testing.T) {
	db := newTestDB(t)
	svc := newChatService(db)
	a := createStudent(t, db, "a@uni.test")

	_, err := svc.SendMessage(a.ID, a.ID, "hi me")
	assert.ErrorIs(t, err, util.ErrPermissionDenied)

	_, err = svc.SendMessage(a.ID, 9999, "hello?")
	assert.ErrorIs(t, err, util.ErrUserNotFound)
}

func TestSendMessageSharesOneConversationPerPair(t *testing.T) {
	db := newTestDB(t)
	svc := newChatService(db)
	a := createStudent(t, db, "a@uni.test")
	b := createStudent(t, db, "b@uni.test")

	first, err := svc.SendMessage(a.ID, b.ID, "hello")
	require.NoError(t, err)

	// The reply lands in the same thread regardless of direction.
	second, err := svc.SendMessage(b.ID, a.ID, "hi back")
	require.NoError(t, err)
	assert.Equal(t, first.ConversationID, second.ConversationID)

	var count int64
	db.Model(&model.Conversation{}).Count(&count)
	assert.EqualValues(t, 1, count)

	convs, err := svc.ListConversations(a.ID)
	require.NoError(t, err)
	require.Len(t, convs, 1)
	require.Len(t, convs[0].Messages, 2)
	assert.Equal(t, "hello", convs[0].Messages[0].Content)
}
