package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// SlipStatus represents the status of a salary slip.
type SlipStatus string

const (
	SlipStatusIssued    SlipStatus = "issued"
	SlipStatusPaid      SlipStatus = "paid"
	SlipStatusCancelled SlipStatus = "cancelled"
)

// Valid reports whether the status is a known value.
func (s SlipStatus) Valid() bool {
	return s == SlipStatusIssued || s == SlipStatusPaid || s == SlipStatusCancelled
}

// SalarySlip represents a per-period salary record issued to an employee.
// NetSalary always equals BasicSalary + Allowances - Deductions at write
// time. Unlike ExpenseClaim there is no name snapshot here: the employee
// name is resolved live when slips are read.
type SalarySlip struct {
	ID          uuid.UUID       `json:"id" gorm:"type:char(36);primaryKey"`
	EmployeeID  uuid.UUID       `json:"employee_id" gorm:"type:char(36);not null;index"`
	Month       string          `json:"month" gorm:"size:20;not null"`
	Year        int             `json:"year" gorm:"not null"`
	BasicSalary decimal.Decimal `json:"basic_salary" gorm:"type:decimal(20,2);not null"`
	Allowances  decimal.Decimal `json:"allowances" gorm:"type:decimal(20,2);default:0"`
	Deductions  decimal.Decimal `json:"deductions" gorm:"type:decimal(20,2);default:0"`
	NetSalary   decimal.Decimal `json:"net_salary" gorm:"type:decimal(20,2);not null"`
	Status      SlipStatus      `json:"status" gorm:"type:varchar(20);not null;default:'issued';index"`
	CreatedBy   uuid.UUID       `json:"created_by" gorm:"type:char(36);not null"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedBy   *uuid.UUID      `json:"updated_by,omitempty" gorm:"type:char(36)"`
	UpdatedAt   time.Time       `json:"updated_at"`
	DeletedAt   gorm.DeletedAt  `json:"-" gorm:"index"`

	// Relations
	Employee User `json:"-" gorm:"foreignKey:EmployeeID"`
}

// BeforeCreate sets UUID before creating the record.
func (s *SalarySlip) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
