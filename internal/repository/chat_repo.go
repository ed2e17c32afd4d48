package repository

import (
	"context"
	"time"

	"stayelo/internal/domain"

	"gorm.io/gorm"
)

type ChatRepository struct {
	db *gorm.DB
}

func NewChatRepository(db *gorm.DB) *ChatRepository {
	return &ChatRepository{db: db}
}

type chatMessageModel struct {
	ID        int64     `gorm:"column:id;primaryKey"`
	Sender    string    `gorm:"column:sender"`
	Text      string    `gorm:"column:text"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (chatMessageModel) TableName() string { return "chat_messages" }

func (r *ChatRepository) Save(ctx context.Context, msg *domain.ChatMessage) error {
	m := chatMessageModel{Sender: msg.Sender, Text: msg.Text}
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	msg.ID = m.ID
	msg.CreatedAt = m.CreatedAt
	return nil
}

// History returns messages oldest first, so a newly connected client can
// replay the conversation in order.
func (r *ChatRepository) History(ctx context.Context, limit int) ([]domain.ChatMessage, error) {
	if limit <= 0 || limit > 500 {
		limit = 200
	}

	var models []chatMessageModel
	tx := r.db.WithContext(ctx).Order("created_at ASC").Limit(limit).Find(&models)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.ChatMessage, 0, len(models))
	for _, m := range models {
		out = append(out, domain.ChatMessage{
			ID:        m.ID,
			Sender:    m.Sender,
			Text:      m.Text,
			CreatedAt: m.CreatedAt,
		})
	}
	return out, nil
}
