package service

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"gymhub/internal/model"
	"gymhub/internal/repository"
)

// ProfileOverview is the read-only profile page payload: everything the
// member has enrolled in and checked in for, in storage order.
type ProfileOverview struct {
	Member      *model.Member      `json:"member"`
	Profile     *model.Profile     `json:"profile,omitempty"`
	Enrollments []model.Enrollment `json:"enrollments"`
	Attendance  []model.Attendance `json:"attendance"`
}

// MemberService serves member-facing reads.
type MemberService interface {
	Overview(ctx context.Context, memberID uint) (*ProfileOverview, error)
}

type memberService struct {
	memberRepo     repository.MemberRepository
	profileRepo    repository.ProfileRepository
	enrollmentRepo repository.EnrollmentRepository
	attendanceRepo repository.AttendanceRepository
}

// NewMemberService creates a new member service.
func NewMemberService(
	memberRepo repository.MemberRepository,
	profileRepo repository.ProfileRepository,
	enrollmentRepo repository.EnrollmentRepository,
	attendanceRepo repository.AttendanceRepository,
) MemberService {
	return &memberService{
		memberRepo:     memberRepo,
		profileRepo:    profileRepo,
		enrollmentRepo: enrollmentRepo,
		attendanceRepo: attendanceRepo,
	}
}

// Overview assembles the profile page. A missing Profile row is not an
// error; nothing in the current flows creates one.
func (s *memberService) Overview(ctx context.Context, memberID uint) (*ProfileOverview, error) {
	member, err := s.memberRepo.FindByID(ctx, memberID)
	if err != nil {
		return nil, fmt.Errorf("find member: %w", err)
	}

	profile, err := s.profileRepo.FindByMemberID(ctx, memberID)
	if err != nil && err != gorm.ErrRecordNotFound {
		return nil, fmt.Errorf("find profile: %w", err)
	}

	enrollments, err := s.enrollmentRepo.ListByMember(ctx, memberID)
	if err != nil {
		return nil, fmt.Errorf("list enrollments: %w", err)
	}

	attendance, err := s.attendanceRepo.ListByMember(ctx, memberID)
	if err != nil {
		return nil, fmt.Errorf("list attendance: %w", err)
	}

	// Serialize empty lists as [] rather than null.
	if enrollments == nil {
		enrollments = []model.Enrollment{}
	}
	if attendance == nil {
		attendance = []model.Attendance{}
	}

	return &ProfileOverview{
		Member:      member,
		Profile:     profile,
		Enrollments: enrollments,
		Attendance:  attendance,
	}, nil
}
