package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"gymhub/internal/cache"
	"gymhub/internal/model"
)

// MockPlanRepository is a mock implementation of PlanRepository.
type MockPlanRepository struct {
	mock.Mock
}

func (m *MockPlanRepository) Create(ctx context.Context, plan *model.MembershipPlan) error {
	args := m.Called(ctx, plan)
	return args.Error(0)
}

func (m *MockPlanRepository) FindByLabel(ctx context.Context, label string) (*model.MembershipPlan, error) {
	args := m.Called(ctx, label)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.MembershipPlan), args.Error(1)
}

func (m *MockPlanRepository) List(ctx context.Context) ([]model.MembershipPlan, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.MembershipPlan), args.Error(1)
}

// MockTrainerRepository is a mock implementation of TrainerRepository.
type MockTrainerRepository struct {
	mock.Mock
}

func (m *MockTrainerRepository) Create(ctx context.Context, trainer *model.Trainer) error {
	args := m.Called(ctx, trainer)
	return args.Error(0)
}

func (m *MockTrainerRepository) FindByName(ctx context.Context, name string) (*model.Trainer, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Trainer), args.Error(1)
}

func (m *MockTrainerRepository) List(ctx context.Context) ([]model.Trainer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Trainer), args.Error(1)
}

// MockTestimonialRepository is a mock implementation of TestimonialRepository.
type MockTestimonialRepository struct {
	mock.Mock
}

func (m *MockTestimonialRepository) Create(ctx context.Context, testimonial *model.Testimonial) error {
	args := m.Called(ctx, testimonial)
	return args.Error(0)
}

func (m *MockTestimonialRepository) FindByName(ctx context.Context, name string) (*model.Testimonial, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Testimonial), args.Error(1)
}

func (m *MockTestimonialRepository) List(ctx context.Context) ([]model.Testimonial, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Testimonial), args.Error(1)
}

// A zero-value cache.Client behaves as an always-miss cache, so these tests
// exercise the repository fallthrough path.
func TestCatalogService_Plans(t *testing.T) {
	mockPlans := new(MockPlanRepository)
	mockPlans.On("List", mock.Anything).Return([]model.MembershipPlan{
		{ID: 1, Plan: "Basic", Price: decimal.NewFromInt(999)},
		{ID: 2, Plan: "Premium", Price: decimal.NewFromInt(2499)},
	}, nil)

	service := NewCatalogService(mockPlans, new(MockTrainerRepository), new(MockTestimonialRepository), &cache.Client{})
	plans, err := service.Plans(context.Background())

	assert.NoError(t, err)
	assert.Len(t, plans, 2)
	assert.Equal(t, "Basic", plans[0].Plan)
	mockPlans.AssertExpectations(t)
}

func TestCatalogService_Trainers(t *testing.T) {
	mockTrainers := new(MockTrainerRepository)
	mockTrainers.On("List", mock.Anything).Return([]model.Trainer{
		{ID: 2, Name: "Priya Sharma"},
		{ID: 1, Name: "Arjun Mehta"},
	}, nil)

	service := NewCatalogService(new(MockPlanRepository), mockTrainers, new(MockTestimonialRepository), &cache.Client{})
	trainers, err := service.Trainers(context.Background())

	assert.NoError(t, err)
	assert.Len(t, trainers, 2)
	// Repository contract: newest first.
	assert.Equal(t, "Priya Sharma", trainers[0].Name)
	mockTrainers.AssertExpectations(t)
}

func TestCatalogService_Testimonials(t *testing.T) {
	mockTestimonials := new(MockTestimonialRepository)
	mockTestimonials.On("List", mock.Anything).Return([]model.Testimonial{
		{ID: 1, Name: "Rahul Verma", Role: "Member"},
	}, nil)

	service := NewCatalogService(new(MockPlanRepository), new(MockTrainerRepository), mockTestimonials, &cache.Client{})
	testimonials, err := service.Testimonials(context.Background())

	assert.NoError(t, err)
	assert.Len(t, testimonials, 1)
	mockTestimonials.AssertExpectations(t)
}
