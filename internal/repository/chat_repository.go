package repository

import (
	"errors"

	"faculty_hub_backend/internal/model"

	"gorm.io/gorm"
)

type ChatRepository struct {
	DB *gorm.DB
}

func NewChatRepository(db *gorm.DB) *ChatRepository {
	return &ChatRepository{DB: db}
}

// FindOrCreateConversation maps an unordered user pair to its single thread.
func (r *ChatRepository) FindOrCreateConversation(userA, userB uint) (*model.Conversation, error) {
	if userA > userB {
		userA, userB = userB, userA
	}

	var conv model.Conversation
	err := r.DB.Where("participant_a = ? AND participant_b = ?", userA, userB).First(&conv).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		conv = model.Conversation{ParticipantA: userA, ParticipantB: userB}
		if err := r.DB.Create(&conv).Error; err != nil {
			return nil, err
		}
		return &conv, nil
	}
	if err != nil {
		return nil, err
	}
	return &conv, nil
}

func (r *ChatRepository) FindConversation(id string) (*model.Conversation, error) {
	var conv model.Conversation
	err := r.DB.Where("id = ?", id).First(&conv).Error
	if err != nil {
		return nil, err
	}
	return &conv, nil
}

func (r *ChatRepository) ListConversations(userID uint) ([]model.Conversation, error) {
	var convs []model.Conversation
	err := r.DB.
		Preload("Messages", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		Where("participant_a = ? OR participant_b = ?", userID, userID).
		Order("updated_at DESC").
		Find(&convs).Error
	return convs, err
}

func (r *ChatRepository) AppendMessage(msg *model.ChatMessage) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(msg).Error; err != nil {
			return err
		}
		// Bump the thread so conversation lists sort by activity.
		return tx.Model(&model.Conversation{}).
			Where("id = ?", msg.ConversationID).
			Update("updated_at", msg.CreatedAt).
			Error
	})
}
