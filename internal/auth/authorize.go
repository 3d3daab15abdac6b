package auth

import (
	"github.com/google/uuid"

	"payroll/internal/model"
)

// Identity is the authenticated principal derived from a validated session token.
type Identity struct {
	ID    uuid.UUID
	Email string
	Role  model.Role
	Name  string
}

// IsAdmin reports whether the identity carries the admin role.
func (i *Identity) IsAdmin() bool {
	return i != nil && i.Role == model.RoleAdmin
}

// Action is a role-gated operation on the API surface.
type Action string

const (
	ActionViewOwnProfile     Action = "viewOwnProfile"
	ActionViewAllEmployees   Action = "viewAllEmployees"
	ActionEditEmployee       Action = "editEmployee"
	ActionSubmitExpense      Action = "submitExpense"
	ActionViewOwnExpenses    Action = "viewOwnExpenses"
	ActionViewAllExpenses    Action = "viewAllExpenses"
	ActionDecideExpense      Action = "decideExpense"
	ActionCreateSalarySlip   Action = "createSalarySlip"
	ActionEditSalarySlip     Action = "editSalarySlip"
	ActionViewAllSalarySlips Action = "viewAllSalarySlips"
	ActionViewOwnSalarySlips Action = "viewOwnSalarySlips"
	ActionDownloadSalarySlip Action = "downloadSalarySlip"
)

// adminOnly lists the actions reserved for the admin role. Everything else
// requires authentication only; owner checks on ":id" routes are handled by
// AllowForEmployee.
var adminOnly = map[Action]bool{
	ActionViewAllEmployees:   true,
	ActionEditEmployee:       true,
	ActionViewAllExpenses:    true,
	ActionDecideExpense:      true,
	ActionCreateSalarySlip:   true,
	ActionEditSalarySlip:     true,
	ActionViewAllSalarySlips: true,
}

// Allow decides whether the identity may perform the action. A nil identity
// is never allowed; authentication is checked strictly before authorization.
func Allow(identity *Identity, action Action) bool {
	if identity == nil {
		return false
	}
	if adminOnly[action] {
		return identity.Role == model.RoleAdmin
	}
	return true
}

// AllowForEmployee decides owner-or-admin access to records belonging to
// employeeID.
func AllowForEmployee(identity *Identity, employeeID uuid.UUID) bool {
	if identity == nil {
		return false
	}
	return identity.Role == model.RoleAdmin || identity.ID == employeeID
}
