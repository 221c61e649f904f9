package model

import (
	"time"

	"gorm.io/gorm"
)

// Member represents a registered gym member account. The phone number doubles
// as the login identifier.
type Member struct {
	ID           uint           `json:"id" gorm:"primaryKey"`
	Name         string         `json:"name" gorm:"size:255;not null"`
	Phone        string         `json:"phone" gorm:"uniqueIndex;size:15;not null"`
	Email        string         `json:"email" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string         `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `json:"-" gorm:"index"`

	// Relations
	Enrollments []Enrollment `json:"enrollments,omitempty" gorm:"foreignKey:MemberID"`
	Attendance  []Attendance `json:"attendance,omitempty" gorm:"foreignKey:MemberID"`
}

// Profile extends a Member with optional contact details. At most one row per
// member; nothing in the current flows creates it automatically.
type Profile struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	MemberID uint   `json:"member_id" gorm:"uniqueIndex;not null"`
	Phone    string `json:"phone,omitempty" gorm:"size:15"`
	Address  string `json:"address,omitempty" gorm:"type:text"`

	Member Member `json:"-" gorm:"foreignKey:MemberID;constraint:OnDelete:CASCADE"`
}
