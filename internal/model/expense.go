package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ExpenseStatus represents the status of an expense claim.
type ExpenseStatus string

const (
	ExpenseStatusPending  ExpenseStatus = "pending"
	ExpenseStatusApproved ExpenseStatus = "approved"
	ExpenseStatusRejected ExpenseStatus = "rejected"
)

// ExpenseClaim represents an employee's reimbursement request.
// EmployeeName is a snapshot taken at submission time; it is not refreshed
// when the user record changes later.
type ExpenseClaim struct {
	ID           uuid.UUID       `json:"id" gorm:"type:char(36);primaryKey"`
	EmployeeID   uuid.UUID       `json:"employee_id" gorm:"type:char(36);not null;index"`
	EmployeeName string          `json:"employee_name" gorm:"size:255;not null"`
	Title        string          `json:"title" gorm:"size:255;not null"`
	Amount       decimal.Decimal `json:"amount" gorm:"type:decimal(20,2);not null"`
	Date         time.Time       `json:"date" gorm:"not null"`
	Category     string          `json:"category" gorm:"size:100;not null"`
	Description  string          `json:"description,omitempty" gorm:"type:text"`
	Status       ExpenseStatus   `json:"status" gorm:"type:varchar(20);not null;default:'pending';index"`
	SubmittedAt  time.Time       `json:"submitted_at"`
	DeletedAt    gorm.DeletedAt  `json:"-" gorm:"index"`

	// Relations
	Employee User `json:"-" gorm:"foreignKey:EmployeeID"`
}

// BeforeCreate sets UUID before creating the record.
func (e *ExpenseClaim) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}
