package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	apperrors "gymhub/internal/errors"
	"gymhub/internal/model"
)

// MockAttendanceRepository is a mock implementation of AttendanceRepository.
type MockAttendanceRepository struct {
	mock.Mock
}

func (m *MockAttendanceRepository) Create(ctx context.Context, attendance *model.Attendance) error {
	args := m.Called(ctx, attendance)
	return args.Error(0)
}

func (m *MockAttendanceRepository) ListByMember(ctx context.Context, memberID uint) ([]model.Attendance, error) {
	args := m.Called(ctx, memberID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Attendance), args.Error(1)
}

func (m *MockAttendanceRepository) ExistsForDate(ctx context.Context, memberID uint, date time.Time) (bool, error) {
	args := m.Called(ctx, memberID, date)
	return args.Bool(0), args.Error(1)
}

func TestAttendanceService_CheckIn(t *testing.T) {
	input := CheckInInput{
		StartingTime: "07:00",
		EndingTime:   "08:30",
		WorkoutType:  "Chest",
		Trainer:      "Arjun Mehta",
	}

	tests := []struct {
		name          string
		setupMock     func(*MockAttendanceRepository)
		expectedError error
	}{
		{
			name: "first check-in of the day is recorded as Present",
			setupMock: func(m *MockAttendanceRepository) {
				m.On("ExistsForDate", mock.Anything, uint(1), mock.AnythingOfType("time.Time")).Return(false, nil)
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.Attendance")).Return(nil)
			},
			expectedError: nil,
		},
		{
			name: "second same-day check-in is rejected without a write",
			setupMock: func(m *MockAttendanceRepository) {
				m.On("ExistsForDate", mock.Anything, uint(1), mock.AnythingOfType("time.Time")).Return(true, nil)
			},
			expectedError: apperrors.ErrAlreadyCheckedIn,
		},
		{
			name: "duplicate-key race surfaces the same warning",
			setupMock: func(m *MockAttendanceRepository) {
				m.On("ExistsForDate", mock.Anything, uint(1), mock.AnythingOfType("time.Time")).Return(false, nil)
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.Attendance")).Return(apperrors.ErrAlreadyCheckedIn)
			},
			expectedError: apperrors.ErrAlreadyCheckedIn,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockAttendanceRepository)
			tt.setupMock(mockRepo)

			service := NewAttendanceService(mockRepo)
			attendance, err := service.CheckIn(context.Background(), 1, input)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError, err)
				assert.Nil(t, attendance)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, attendance)
				assert.Equal(t, model.AttendanceStatusPresent, attendance.Status)
				assert.Equal(t, uint(1), attendance.MemberID)
				assert.Equal(t, "Chest", attendance.WorkoutType)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestAttendanceService_CheckIn_NewDayCreatesOneRow(t *testing.T) {
	mockRepo := new(MockAttendanceRepository)

	day := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	svc := &attendanceService{
		attendanceRepo: mockRepo,
		now:            func() time.Time { return day },
	}

	mockRepo.On("ExistsForDate", mock.Anything, uint(7), day).Return(false, nil).Once()
	mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(a *model.Attendance) bool {
		return a.MemberID == 7 && a.Date.Equal(day)
	})).Return(nil).Once()

	_, err := svc.CheckIn(context.Background(), 7, CheckInInput{StartingTime: "18:00", EndingTime: "19:00", WorkoutType: "Legs"})
	assert.NoError(t, err)

	// The next day is a fresh slate.
	nextDay := day.Add(24 * time.Hour)
	svc.now = func() time.Time { return nextDay }

	mockRepo.On("ExistsForDate", mock.Anything, uint(7), nextDay).Return(false, nil).Once()
	mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(a *model.Attendance) bool {
		return a.MemberID == 7 && a.Date.Equal(nextDay)
	})).Return(nil).Once()

	_, err = svc.CheckIn(context.Background(), 7, CheckInInput{StartingTime: "18:00", EndingTime: "19:00", WorkoutType: "Back"})
	assert.NoError(t, err)

	mockRepo.AssertExpectations(t)
	mockRepo.AssertNumberOfCalls(t, "Create", 2)
}

func TestAttendanceService_CheckIn_UsesLocalCalendarDay(t *testing.T) {
	mockRepo := new(MockAttendanceRepository)

	// An evening clock west of UTC. Rounding to UTC day boundaries would
	// date an 18:00 check-in the previous local day; the row must carry
	// the local calendar day.
	zone := time.FixedZone("UTC-5", -5*60*60)
	evening := time.Date(2026, 3, 1, 18, 0, 0, 0, zone)
	svc := &attendanceService{
		attendanceRepo: mockRepo,
		now:            func() time.Time { return evening },
	}

	sameLocalDay := func(d time.Time) bool { return d.Format("2006-01-02") == "2026-03-01" }

	mockRepo.On("ExistsForDate", mock.Anything, uint(3), mock.MatchedBy(sameLocalDay)).Return(false, nil).Once()
	mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(a *model.Attendance) bool {
		return sameLocalDay(a.Date)
	})).Return(nil).Once()

	attendance, err := svc.CheckIn(context.Background(), 3, CheckInInput{StartingTime: "18:00", EndingTime: "19:00", WorkoutType: "Cardio"})
	assert.NoError(t, err)
	assert.Equal(t, "2026-03-01", attendance.Date.Format("2006-01-02"))

	// Two hours later, still the same local day: the pre-check must see the
	// same date and refuse a second row.
	svc.now = func() time.Time { return evening.Add(2 * time.Hour) }
	mockRepo.On("ExistsForDate", mock.Anything, uint(3), mock.MatchedBy(sameLocalDay)).Return(true, nil).Once()

	_, err = svc.CheckIn(context.Background(), 3, CheckInInput{StartingTime: "20:00", EndingTime: "21:00", WorkoutType: "Cardio"})
	assert.Equal(t, apperrors.ErrAlreadyCheckedIn, err)

	mockRepo.AssertExpectations(t)
	mockRepo.AssertNumberOfCalls(t, "Create", 1)
}
