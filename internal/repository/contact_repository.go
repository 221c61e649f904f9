package repository

import (
	"context"

	"gorm.io/gorm"

	"gymhub/internal/model"
)

// ContactMessageRepository defines contact message persistence operations.
type ContactMessageRepository interface {
	Create(ctx context.Context, message *model.ContactMessage) error
	List(ctx context.Context) ([]model.ContactMessage, error)
}

type contactMessageRepository struct {
	db *gorm.DB
}

// NewContactMessageRepository builds a GORM-backed repository.
func NewContactMessageRepository(db *gorm.DB) ContactMessageRepository {
	return &contactMessageRepository{db: db}
}

func (r *contactMessageRepository) Create(ctx context.Context, message *model.ContactMessage) error {
	return r.db.WithContext(ctx).Create(message).Error
}

// List returns all messages, newest first, for the administrative listing.
func (r *contactMessageRepository) List(ctx context.Context) ([]model.ContactMessage, error) {
	var messages []model.ContactMessage
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&messages).Error; err != nil {
		return nil, err
	}
	return messages, nil
}
