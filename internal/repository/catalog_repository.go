package repository

import (
	"context"

	"gorm.io/gorm"

	"gymhub/internal/model"
)

// PlanRepository defines membership plan persistence operations.
type PlanRepository interface {
	Create(ctx context.Context, plan *model.MembershipPlan) error
	FindByLabel(ctx context.Context, label string) (*model.MembershipPlan, error)
	List(ctx context.Context) ([]model.MembershipPlan, error)
}

// TrainerRepository defines trainer persistence operations.
type TrainerRepository interface {
	Create(ctx context.Context, trainer *model.Trainer) error
	FindByName(ctx context.Context, name string) (*model.Trainer, error)
	// List returns trainers newest first.
	List(ctx context.Context) ([]model.Trainer, error)
}

// TestimonialRepository defines testimonial persistence operations.
type TestimonialRepository interface {
	Create(ctx context.Context, testimonial *model.Testimonial) error
	FindByName(ctx context.Context, name string) (*model.Testimonial, error)
	List(ctx context.Context) ([]model.Testimonial, error)
}

type planRepository struct {
	db *gorm.DB
}

// NewPlanRepository builds a GORM-backed repository.
func NewPlanRepository(db *gorm.DB) PlanRepository {
	return &planRepository{db: db}
}

func (r *planRepository) Create(ctx context.Context, plan *model.MembershipPlan) error {
	return r.db.WithContext(ctx).Create(plan).Error
}

func (r *planRepository) FindByLabel(ctx context.Context, label string) (*model.MembershipPlan, error) {
	var plan model.MembershipPlan
	if err := r.db.WithContext(ctx).Where("plan = ?", label).First(&plan).Error; err != nil {
		return nil, err
	}
	return &plan, nil
}

func (r *planRepository) List(ctx context.Context) ([]model.MembershipPlan, error) {
	var plans []model.MembershipPlan
	if err := r.db.WithContext(ctx).Find(&plans).Error; err != nil {
		return nil, err
	}
	return plans, nil
}

type trainerRepository struct {
	db *gorm.DB
}

// NewTrainerRepository builds a GORM-backed repository.
func NewTrainerRepository(db *gorm.DB) TrainerRepository {
	return &trainerRepository{db: db}
}

func (r *trainerRepository) Create(ctx context.Context, trainer *model.Trainer) error {
	return r.db.WithContext(ctx).Create(trainer).Error
}

func (r *trainerRepository) FindByName(ctx context.Context, name string) (*model.Trainer, error) {
	var trainer model.Trainer
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&trainer).Error; err != nil {
		return nil, err
	}
	return &trainer, nil
}

func (r *trainerRepository) List(ctx context.Context) ([]model.Trainer, error) {
	var trainers []model.Trainer
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&trainers).Error; err != nil {
		return nil, err
	}
	return trainers, nil
}

type testimonialRepository struct {
	db *gorm.DB
}

// NewTestimonialRepository builds a GORM-backed repository.
func NewTestimonialRepository(db *gorm.DB) TestimonialRepository {
	return &testimonialRepository{db: db}
}

func (r *testimonialRepository) Create(ctx context.Context, testimonial *model.Testimonial) error {
	return r.db.WithContext(ctx).Create(testimonial).Error
}

func (r *testimonialRepository) FindByName(ctx context.Context, name string) (*model.Testimonial, error) {
	var testimonial model.Testimonial
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&testimonial).Error; err != nil {
		return nil, err
	}
	return &testimonial, nil
}

func (r *testimonialRepository) List(ctx context.Context) ([]model.Testimonial, error) {
	var testimonials []model.Testimonial
	if err := r.db.WithContext(ctx).Find(&testimonials).Error; err != nil {
		return nil, err
	}
	return testimonials, nil
}
