// file: internals/features/messaging/chat/model/chat_message_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Room default "general"; tiap production line bisa punya room sendiri
// dengan key "line:<uuid>".
type ChatMessageModel struct {
	ChatMessageID         uuid.UUID `gorm:"type:uuid;primaryKey;column:chat_message_id" json:"chat_message_id"`
	ChatMessageSenderID   uuid.UUID `gorm:"type:uuid;not null;column:chat_message_sender_id;index" json:"chat_message_sender_id"`
	ChatMessageSenderName string    `gorm:"column:chat_message_sender_name;type:varchar(64);not null" json:"chat_message_sender_name"`
	ChatMessageRoom       string    `gorm:"column:chat_message_room;type:varchar(64);not null;default:'general';index" json:"chat_message_room"`
	ChatMessageBody       string    `gorm:"column:chat_message_body;type:text;not null" json:"chat_message_body"`

	ChatMessageCreatedAt time.Time `gorm:"column:chat_message_created_at;not null;autoCreateTime" json:"chat_message_created_at"`
}

func (ChatMessageModel) TableName() string { return "chat_messages" }

func (m *ChatMessageModel) BeforeCreate(tx *gorm.DB) error {
	if m.ChatMessageID == uuid.Nil {
		m.ChatMessageID = uuid.New()
	}
	return nil
}
