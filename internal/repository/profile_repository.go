package repository

import (
	"context"

	"gorm.io/gorm"

	"gymhub/internal/model"
)

// ProfileRepository defines profile persistence operations.
type ProfileRepository interface {
	FindByMemberID(ctx context.Context, memberID uint) (*model.Profile, error)
}

type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository builds a GORM-backed repository.
func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) FindByMemberID(ctx context.Context, memberID uint) (*model.Profile, error) {
	var profile model.Profile
	if err := r.db.WithContext(ctx).Where("member_id = ?", memberID).First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}
