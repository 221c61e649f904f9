package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"gymhub/internal/model"
)

// MockProfileRepository is a mock implementation of ProfileRepository.
type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) FindByMemberID(ctx context.Context, memberID uint) (*model.Profile, error) {
	args := m.Called(ctx, memberID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Profile), args.Error(1)
}

func TestMemberService_Overview(t *testing.T) {
	t.Run("collects enrollments and attendance for the member", func(t *testing.T) {
		memberRepo := new(MockMemberRepository)
		profileRepo := new(MockProfileRepository)
		enrollmentRepo := new(MockEnrollmentRepository)
		attendanceRepo := new(MockAttendanceRepository)

		memberRepo.On("FindByID", mock.Anything, uint(1)).Return(&model.Member{ID: 1, Name: "Jane Doe"}, nil)
		profileRepo.On("FindByMemberID", mock.Anything, uint(1)).Return(nil, gorm.ErrRecordNotFound)
		enrollmentRepo.On("ListByMember", mock.Anything, uint(1)).Return([]model.Enrollment{
			{ID: 1, MemberID: 1, MembershipPlan: "Premium", PaymentStatus: model.PaymentStatusPending},
			{ID: 2, MemberID: 1, MembershipPlan: "Basic", PaymentStatus: model.PaymentStatusPending},
		}, nil)
		attendanceRepo.On("ListByMember", mock.Anything, uint(1)).Return([]model.Attendance{
			{ID: 1, MemberID: 1, Status: model.AttendanceStatusPresent},
		}, nil)

		service := NewMemberService(memberRepo, profileRepo, enrollmentRepo, attendanceRepo)
		overview, err := service.Overview(context.Background(), 1)

		assert.NoError(t, err)
		assert.NotNil(t, overview)
		assert.Len(t, overview.Enrollments, 2)
		assert.Len(t, overview.Attendance, 1)
		// A member without a profile row still gets the page.
		assert.Nil(t, overview.Profile)
	})

	t.Run("includes the profile row when one exists", func(t *testing.T) {
		memberRepo := new(MockMemberRepository)
		profileRepo := new(MockProfileRepository)
		enrollmentRepo := new(MockEnrollmentRepository)
		attendanceRepo := new(MockAttendanceRepository)

		memberRepo.On("FindByID", mock.Anything, uint(2)).Return(&model.Member{ID: 2}, nil)
		profileRepo.On("FindByMemberID", mock.Anything, uint(2)).Return(&model.Profile{ID: 5, MemberID: 2, Address: "12 High St"}, nil)
		enrollmentRepo.On("ListByMember", mock.Anything, uint(2)).Return([]model.Enrollment{}, nil)
		attendanceRepo.On("ListByMember", mock.Anything, uint(2)).Return([]model.Attendance{}, nil)

		service := NewMemberService(memberRepo, profileRepo, enrollmentRepo, attendanceRepo)
		overview, err := service.Overview(context.Background(), 2)

		assert.NoError(t, err)
		assert.NotNil(t, overview.Profile)
		assert.Equal(t, "12 High St", overview.Profile.Address)
	})

	t.Run("brand-new member gets empty lists, not null", func(t *testing.T) {
		memberRepo := new(MockMemberRepository)
		profileRepo := new(MockProfileRepository)
		enrollmentRepo := new(MockEnrollmentRepository)
		attendanceRepo := new(MockAttendanceRepository)

		memberRepo.On("FindByID", mock.Anything, uint(3)).Return(&model.Member{ID: 3}, nil)
		profileRepo.On("FindByMemberID", mock.Anything, uint(3)).Return(nil, gorm.ErrRecordNotFound)
		enrollmentRepo.On("ListByMember", mock.Anything, uint(3)).Return(nil, nil)
		attendanceRepo.On("ListByMember", mock.Anything, uint(3)).Return(nil, nil)

		service := NewMemberService(memberRepo, profileRepo, enrollmentRepo, attendanceRepo)
		overview, err := service.Overview(context.Background(), 3)

		assert.NoError(t, err)
		assert.NotNil(t, overview.Enrollments)
		assert.NotNil(t, overview.Attendance)
		assert.Empty(t, overview.Enrollments)
		assert.Empty(t, overview.Attendance)
	})

	t.Run("unknown member is an error", func(t *testing.T) {
		memberRepo := new(MockMemberRepository)
		memberRepo.On("FindByID", mock.Anything, uint(9)).Return(nil, gorm.ErrRecordNotFound)

		service := NewMemberService(memberRepo, new(MockProfileRepository), new(MockEnrollmentRepository), new(MockAttendanceRepository))
		overview, err := service.Overview(context.Background(), 9)

		assert.Error(t, err)
		assert.Nil(t, overview)
	})
}
