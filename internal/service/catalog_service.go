package service

import (
	"context"
	"time"

	"gymhub/internal/cache"
	"gymhub/internal/model"
	"gymhub/internal/repository"
)

const (
	plansCacheKey        = "catalog:plans"
	trainersCacheKey     = "catalog:trainers"
	testimonialsCacheKey = "catalog:testimonials"
	catalogCacheTTL      = 5 * time.Minute
)

// CatalogService serves the reference data shown on public pages. Staff
// manage this data out of band, so listings are cached with a short TTL.
type CatalogService interface {
	Plans(ctx context.Context) ([]model.MembershipPlan, error)
	Trainers(ctx context.Context) ([]model.Trainer, error)
	Testimonials(ctx context.Context) ([]model.Testimonial, error)
}

type catalogService struct {
	planRepo        repository.PlanRepository
	trainerRepo     repository.TrainerRepository
	testimonialRepo repository.TestimonialRepository
	cache           *cache.Client
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(
	planRepo repository.PlanRepository,
	trainerRepo repository.TrainerRepository,
	testimonialRepo repository.TestimonialRepository,
	cache *cache.Client,
) CatalogService {
	return &catalogService{
		planRepo:        planRepo,
		trainerRepo:     trainerRepo,
		testimonialRepo: testimonialRepo,
		cache:           cache,
	}
}

func (s *catalogService) Plans(ctx context.Context) ([]model.MembershipPlan, error) {
	var plans []model.MembershipPlan
	if s.cache.GetJSON(ctx, plansCacheKey, &plans) {
		return plans, nil
	}

	plans, err := s.planRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.SetJSON(ctx, plansCacheKey, plans, catalogCacheTTL)
	return plans, nil
}

// Trainers returns trainers newest first.
func (s *catalogService) Trainers(ctx context.Context) ([]model.Trainer, error) {
	var trainers []model.Trainer
	if s.cache.GetJSON(ctx, trainersCacheKey, &trainers) {
		return trainers, nil
	}

	trainers, err := s.trainerRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.SetJSON(ctx, trainersCacheKey, trainers, catalogCacheTTL)
	return trainers, nil
}

func (s *catalogService) Testimonials(ctx context.Context) ([]model.Testimonial, error) {
	var testimonials []model.Testimonial
	if s.cache.GetJSON(ctx, testimonialsCacheKey, &testimonials) {
		return testimonials, nil
	}

	testimonials, err := s.testimonialRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.SetJSON(ctx, testimonialsCacheKey, testimonials, catalogCacheTTL)
	return testimonials, nil
}
