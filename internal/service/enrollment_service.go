package service

import (
	"context"
	"fmt"
	"time"

	"gymhub/internal/model"
	"gymhub/internal/repository"
)

// EnrollmentInput carries the raw enrollment form fields. Plan and trainer
// are accepted as submitted; their existence is not checked.
type EnrollmentInput struct {
	FullName       string
	Email          string
	PhoneNumber    string
	Gender         string
	DOB            *time.Time
	Address        string
	MembershipPlan string
	Trainer        string
}

// EnrollmentService handles member enrollments.
type EnrollmentService interface {
	Enroll(ctx context.Context, memberID uint, input EnrollmentInput) (*model.Enrollment, error)
	ListByMember(ctx context.Context, memberID uint) ([]model.Enrollment, error)
	// IsEnrolled reports whether at least one enrollment exists for the member.
	IsEnrolled(ctx context.Context, memberID uint) (bool, error)
}

type enrollmentService struct {
	enrollmentRepo repository.EnrollmentRepository
}

// NewEnrollmentService creates a new enrollment service.
func NewEnrollmentService(enrollmentRepo repository.EnrollmentRepository) EnrollmentService {
	return &enrollmentService{enrollmentRepo: enrollmentRepo}
}

// Enroll creates one enrollment row for the member. Payment status always
// starts at Pending; nothing ever transitions it. Repeat enrollments are
// allowed and each creates a fresh row.
func (s *enrollmentService) Enroll(ctx context.Context, memberID uint, input EnrollmentInput) (*model.Enrollment, error) {
	enrollment := &model.Enrollment{
		MemberID:       memberID,
		FullName:       input.FullName,
		Email:          input.Email,
		PhoneNumber:    input.PhoneNumber,
		Gender:         input.Gender,
		DOB:            input.DOB,
		Address:        input.Address,
		MembershipPlan: input.MembershipPlan,
		Trainer:        input.Trainer,
		PaymentStatus:  model.PaymentStatusPending,
	}

	if err := s.enrollmentRepo.Create(ctx, enrollment); err != nil {
		return nil, fmt.Errorf("create enrollment: %w", err)
	}

	return enrollment, nil
}

func (s *enrollmentService) ListByMember(ctx context.Context, memberID uint) ([]model.Enrollment, error) {
	return s.enrollmentRepo.ListByMember(ctx, memberID)
}

func (s *enrollmentService) IsEnrolled(ctx context.Context, memberID uint) (bool, error) {
	return s.enrollmentRepo.ExistsForMember(ctx, memberID)
}
