package model

import "time"

// PaymentStatusPending is the free-text payment marker every enrollment
// starts with. Nothing in the system ever transitions it.
const PaymentStatusPending = "Pending"

// Enrollment records a member selecting a membership plan and trainer. Plan
// and trainer are stored as free text exactly as submitted; a member may hold
// any number of enrollments.
type Enrollment struct {
	ID             uint       `json:"id" gorm:"primaryKey"`
	MemberID       uint       `json:"member_id" gorm:"not null;index"`
	FullName       string     `json:"full_name" gorm:"size:100;not null"`
	Email          string     `json:"email" gorm:"size:255;not null"`
	PhoneNumber    string     `json:"phone_number" gorm:"size:15"`
	Gender         string     `json:"gender" gorm:"size:10"`
	DOB            *time.Time `json:"dob,omitempty" gorm:"type:date"`
	Address        string     `json:"address,omitempty" gorm:"type:text"`
	MembershipPlan string     `json:"membership_plan" gorm:"size:50"`
	Trainer        string     `json:"trainer" gorm:"size:50"`
	PaymentStatus  string     `json:"payment_status" gorm:"size:20;not null;default:'Pending'"`
	CreatedAt      time.Time  `json:"created_at"`

	Member Member `json:"-" gorm:"foreignKey:MemberID;constraint:OnDelete:CASCADE"`
}
