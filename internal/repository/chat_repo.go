package repository

import (
	"context"

	"github.com/beknazar93/CRM2/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ChatRepository interface {
	Create(ctx context.Context, m *model.ChatMessage) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.ChatMessage, error)
	List(ctx context.Context, limit int) ([]model.ChatMessage, error)
	// MarkForwarded is called by the relay worker after the HR email lands.
	MarkForwarded(ctx context.Context, id uuid.UUID) error
}

type chatRepo struct{ db *gorm.DB }

func NewChatRepository(db *gorm.DB) ChatRepository { return &chatRepo{db: db} }

func (r *chatRepo) Create(ctx context.Context, m *model.ChatMessage) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *chatRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.ChatMessage, error) {
	var m model.ChatMessage
	err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *chatRepo) List(ctx context.Context, limit int) ([]model.ChatMessage, error) {
	var messages []model.ChatMessage
	err := r.db.WithContext(ctx).Order("created_at DESC").Limit(limit).Find(&messages).Error
	return messages, err
}

func (r *chatRepo) MarkForwarded(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.ChatMessage{}).
		Where("id = ?", id).Update("is_forwarded", true).Error
}
