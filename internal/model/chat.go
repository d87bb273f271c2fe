package model

// Conversation is a two-party direct-message thread. ParticipantA holds the
// smaller user id so each pair maps to exactly one row.
// swagger:model Conversation
type Conversation struct {
	UUIDBase
	ParticipantA uint          `gorm:"not null;uniqueIndex:idx_conversation_pair" json:"participantA"`
	ParticipantB uint          `gorm:"not null;uniqueIndex:idx_conversation_pair" json:"participantB"`
	Messages     []ChatMessage `gorm:"foreignKey:ConversationID;constraint:OnDelete:CASCADE" json:"messages"`
}

func (Conversation) TableName() string {
	return "conversations"
}

// swagger:model ChatMessage
type ChatMessage struct {
	UUIDBase
	ConversationID string `gorm:"type:varchar(36);not null;index" json:"conversationId"`
	SenderID       uint   `gorm:"not null" json:"senderId"`
	Content        string `gorm:"type:text;not null" json:"content"`
}

func (ChatMessage) TableName() string {
	return "chat_messages"
}
