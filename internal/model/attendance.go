package model

import "time"

// AttendanceStatus represents the status of a daily check-in.
type AttendanceStatus string

const (
	AttendanceStatusPresent AttendanceStatus = "Present"
	AttendanceStatusAbsent  AttendanceStatus = "Absent"
)

// Attendance is a per-day check-in record for a member. The composite unique
// index on (member_id, date) guarantees at most one row per member per day
// even under concurrent submissions.
type Attendance struct {
	ID           uint             `json:"id" gorm:"primaryKey"`
	MemberID     uint             `json:"member_id" gorm:"not null;uniqueIndex:idx_attendance_member_date"`
	Date         time.Time        `json:"date" gorm:"type:date;not null;uniqueIndex:idx_attendance_member_date"`
	StartingTime string           `json:"starting_time" gorm:"size:16"`
	EndingTime   string           `json:"ending_time" gorm:"size:16"`
	WorkoutType  string           `json:"workout_type" gorm:"size:50"` // e.g. Biceps, Chest
	Trainer      string           `json:"trainer" gorm:"size:100;default:'Unknown'"`
	Status       AttendanceStatus `json:"status" gorm:"type:varchar(10);not null;default:'Absent'"`
	CreatedAt    time.Time        `json:"created_at"`

	Member Member `json:"-" gorm:"foreignKey:MemberID;constraint:OnDelete:CASCADE"`
}
