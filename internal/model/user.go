package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Role identifies what a user may do in the system.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleEmployee Role = "employee"
)

// Valid reports whether the role is a known value.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleEmployee
}

// User represents an admin or employee account.
// Department and Salary are set later by an admin; they are stored empty/zero
// until assigned and defaulted for display only.
type User struct {
	ID           uuid.UUID       `json:"id" gorm:"type:char(36);primaryKey"`
	// Binary collation keeps email lookups and the unique index
	// case-sensitive under MySQL's default case-insensitive collation.
	Email        string          `json:"email" gorm:"type:varchar(255) COLLATE utf8mb4_bin;uniqueIndex;not null"`
	PasswordHash string          `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	FullName     string          `json:"full_name" gorm:"size:255;not null"`
	Role         Role            `json:"role" gorm:"type:varchar(20);not null;default:'employee';index"`
	Department   string          `json:"department,omitempty" gorm:"size:255"`
	Salary       decimal.Decimal `json:"salary" gorm:"type:decimal(20,2);default:0"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
	DeletedAt    gorm.DeletedAt  `json:"-" gorm:"index"`
}

// BeforeCreate sets UUID before creating the record.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
