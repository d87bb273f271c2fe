package service

import (
	"errors"

	"faculty_hub_backend/internal/model"
	"faculty_hub_backend/internal/repository"
	"faculty_hub_backend/internal/util"

	"gorm.io/gorm"
)

type ChatService struct {
	ChatRepo *repository.ChatRepository
	UserRepo *repository.UserRepository
	Hub      *ChatHub
}

func NewChatService(chatRepo *repository.ChatRepository, userRepo *repository.UserRepository, hub *ChatHub) *ChatService {
	return &ChatService{
		ChatRepo: chatRepo,
		UserRepo: userRepo,
		Hub:      hub,
	}
}

func (s *ChatService) ListConversations(userID uint) ([]model.Conversation, error) {
	return s.ChatRepo.ListConversations(userID)
}

// SendMessage persists the message first, then pushes it to the recipient's
// live connection if there is one.
func (s *ChatService) SendMessage(senderID, recipientID uint, content string) (*model.ChatMessage, error) {
	if senderID == recipientID {
		return nil, util.ErrPermissionDenied
	}

	if _, err := s.UserRepo.FindByID(recipientID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrUserNotFound
		}
		return nil, err
	}

	conv, err := s.ChatRepo.FindOrCreateConversation(senderID, recipientID)
	if err != nil {
		return nil, err
	}

	msg := &model.ChatMessage{
		ConversationID: conv.ID,
		SenderID:       senderID,
		Content:        content,
	}
	if err := s.ChatRepo.AppendMessage(msg); err != nil {
		return nil, err
	}

	if s.Hub != nil {
		s.Hub.SendToUser(recipientID, WSMessage{Type: "NEW_MESSAGE", Data: msg})
	}
	return msg, nil
}
