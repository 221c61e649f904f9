package service

import (
	"context"
	"fmt"
	"time"

	apperrors "gymhub/internal/errors"
	"gymhub/internal/model"
	"gymhub/internal/repository"
)

// CheckInInput carries the raw attendance form fields.
type CheckInInput struct {
	StartingTime string
	EndingTime   string
	WorkoutType  string
	Trainer      string
}

// AttendanceService handles daily check-ins.
type AttendanceService interface {
	CheckIn(ctx context.Context, memberID uint, input CheckInInput) (*model.Attendance, error)
	ListByMember(ctx context.Context, memberID uint) ([]model.Attendance, error)
}

type attendanceService struct {
	attendanceRepo repository.AttendanceRepository
	// now is injectable for tests; defaults to time.Now.
	now func() time.Time
}

// NewAttendanceService creates a new attendance service.
func NewAttendanceService(attendanceRepo repository.AttendanceRepository) AttendanceService {
	return &attendanceService{
		attendanceRepo: attendanceRepo,
		now:            time.Now,
	}
}

// CheckIn records today's attendance for the member. At most one row per
// member per day: a pre-check produces the friendly warning, and the unique
// index behind the repository catches the race two concurrent submissions
// would otherwise win together. Status is always recorded as Present; the
// Absent value exists only as the schema default.
func (s *attendanceService) CheckIn(ctx context.Context, memberID uint, input CheckInInput) (*model.Attendance, error) {
	// Truncate rounds to UTC day boundaries, which shifts evening check-ins
	// onto the wrong date in zones west of UTC. Take the calendar day in the
	// clock's own zone instead.
	now := s.now()
	y, m, d := now.Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, now.Location())

	exists, err := s.attendanceRepo.ExistsForDate(ctx, memberID, today)
	if err != nil {
		return nil, fmt.Errorf("check attendance: %w", err)
	}
	if exists {
		return nil, apperrors.ErrAlreadyCheckedIn
	}

	attendance := &model.Attendance{
		MemberID:     memberID,
		Date:         today,
		StartingTime: input.StartingTime,
		EndingTime:   input.EndingTime,
		WorkoutType:  input.WorkoutType,
		Trainer:      input.Trainer,
		Status:       model.AttendanceStatusPresent,
	}

	if err := s.attendanceRepo.Create(ctx, attendance); err != nil {
		if err == apperrors.ErrAlreadyCheckedIn {
			return nil, err
		}
		return nil, fmt.Errorf("create attendance: %w", err)
	}

	return attendance, nil
}

func (s *attendanceService) ListByMember(ctx context.Context, memberID uint) ([]model.Attendance, error) {
	return s.attendanceRepo.ListByMember(ctx, memberID)
}
