package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Trainer stores trainer reference data managed by gym staff.
type Trainer struct {
	ID             uint            `json:"id" gorm:"primaryKey"`
	Name           string          `json:"name" gorm:"size:55;not null"`
	Gender         string          `json:"gender" gorm:"size:25"`
	Phone          string          `json:"phone" gorm:"size:25"`
	Salary         decimal.Decimal `json:"salary" gorm:"type:decimal(20,2)"`
	Specialization string          `json:"specialization" gorm:"size:100"`
	Image          string          `json:"image" gorm:"size:255;default:'assets/img/trainers/user_profile.jpg'"`
	CreatedAt      time.Time       `json:"created_at"`
}

// MembershipPlan stores a plan label and its price.
type MembershipPlan struct {
	ID    uint            `json:"id" gorm:"primaryKey"`
	Plan  string          `json:"plan" gorm:"size:185;not null"`
	Price decimal.Decimal `json:"price" gorm:"type:decimal(20,2);not null"`
}

// Testimonial is a public feedback entry, unrelated to membership records.
type Testimonial struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	Name     string `json:"name" gorm:"size:100;not null"`
	Role     string `json:"role" gorm:"size:50;default:'Member'"`
	Feedback string `json:"feedback" gorm:"type:text"`
	Image    string `json:"image" gorm:"size:255;default:'assets/img/trainers/user_profile.jpg'"`
}
