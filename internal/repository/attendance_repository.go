package repository

import (
	"context"
	"errors"
	"time"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"

	apperrors "gymhub/internal/errors"
	"gymhub/internal/model"
)

const mysqlDuplicateEntry = 1062

// AttendanceRepository defines attendance persistence operations.
type AttendanceRepository interface {
	Create(ctx context.Context, attendance *model.Attendance) error
	ListByMember(ctx context.Context, memberID uint) ([]model.Attendance, error)
	ExistsForDate(ctx context.Context, memberID uint, date time.Time) (bool, error)
}

type attendanceRepository struct {
	db *gorm.DB
}

// NewAttendanceRepository builds a GORM-backed repository.
func NewAttendanceRepository(db *gorm.DB) AttendanceRepository {
	return &attendanceRepository{db: db}
}

// Create inserts a check-in row. A duplicate-key violation on the
// (member_id, date) unique index maps to ErrAlreadyCheckedIn so concurrent
// same-day submissions surface the same warning as the pre-check.
func (r *attendanceRepository) Create(ctx context.Context, attendance *model.Attendance) error {
	if err := r.db.WithContext(ctx).Create(attendance).Error; err != nil {
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlDuplicateEntry {
			return apperrors.ErrAlreadyCheckedIn
		}
		return err
	}
	return nil
}

func (r *attendanceRepository) ListByMember(ctx context.Context, memberID uint) ([]model.Attendance, error) {
	var attendance []model.Attendance
	if err := r.db.WithContext(ctx).Where("member_id = ?", memberID).Find(&attendance).Error; err != nil {
		return nil, err
	}
	return attendance, nil
}

func (r *attendanceRepository) ExistsForDate(ctx context.Context, memberID uint, date time.Time) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Attendance{}).
		Where("member_id = ? AND date = ?", memberID, date.Format("2006-01-02")).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
