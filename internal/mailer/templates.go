package mailer

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// The message bodies below follow the house style of the system's
// transactional emails: a branded header, a short lead paragraph, and a
// detail block. All amounts are rendered with two decimal places.

const bodyFooter = `
      <div style="text-align: center; margin-top: 30px; padding-top: 20px; border-top: 2px solid #eee;">
        <p style="color: #999; font-size: 12px; margin: 0;">
          This is an automated email from Payroll Management System. Please do not reply to this email.
        </p>
      </div>
    </div>`

func wrap(title, lead, detail string) string {
	return fmt.Sprintf(`
    <div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
      <div style="text-align: center; margin-bottom: 30px;">
        <h1 style="color: #1976d2; margin: 0;">Payroll Management System</h1>
      </div>
      <h2 style="color: #333;">%s</h2>
      <p style="color: #555; font-size: 16px; line-height: 1.6;">%s</p>
      %s%s`, title, lead, detail, bodyFooter)
}

func detailList(items ...string) string {
	out := `<ul style="color: #555; line-height: 1.8;">`
	for _, item := range items {
		out += "<li>" + item + "</li>"
	}
	return out + "</ul>"
}

// RegistrationBody is the welcome email sent to a newly registered employee.
func RegistrationBody(name, email string) (subject, body string) {
	subject = "Welcome to Payroll Management System - Registration Successful"
	body = wrap(
		fmt.Sprintf("Welcome %s!", name),
		"Your employee account has been successfully registered. Please wait while the admin team assigns your department and salary details.",
		detailList(
			"<strong>Name:</strong> "+name,
			"<strong>Email:</strong> "+email,
			"<strong>Role:</strong> Employee",
			"<strong>Status:</strong> Pending Department Assignment",
		))
	return subject, body
}

// AdminNewEmployeeBody notifies an admin that an employee registered.
func AdminNewEmployeeBody(employeeName, employeeEmail string) (subject, body string) {
	subject = "New Employee Registration - Action Required"
	body = wrap(
		"New Employee Registered",
		fmt.Sprintf("%s has registered and is waiting for a department assignment and salary setup.", employeeName),
		detailList(
			"<strong>Name:</strong> "+employeeName,
			"<strong>Email:</strong> "+employeeEmail,
		))
	return subject, body
}

// DepartmentAssignmentBody notifies an employee of their department assignment.
func DepartmentAssignmentBody(name, department string, salary decimal.Decimal) (subject, body string) {
	subject = "Department Assignment Complete - Payroll Management System"
	body = wrap(
		"Profile Setup Complete!",
		fmt.Sprintf("Great news %s! Your department has been assigned and your profile setup is now complete.", name),
		detailList(
			"<strong>Department:</strong> "+department,
			"<strong>Salary:</strong> $"+salary.StringFixed(2),
		))
	return subject, body
}

// ExpenseSubmittedEmployeeBody confirms a submission to the employee.
func ExpenseSubmittedEmployeeBody(name, title string, amount decimal.Decimal) (subject, body string) {
	subject = "Expense Submitted - Payroll Management System"
	body = wrap(
		"Expense Submitted",
		fmt.Sprintf("Hi %s, your expense claim has been submitted and is pending review.", name),
		detailList(
			"<strong>Title:</strong> "+title,
			"<strong>Amount:</strong> $"+amount.StringFixed(2),
			"<strong>Status:</strong> Pending",
		))
	return subject, body
}

// ExpenseSubmittedAdminBody alerts an admin to a new claim.
func ExpenseSubmittedAdminBody(employeeName, title string, amount decimal.Decimal) (subject, body string) {
	subject = "New Expense Claim Submitted - Action Required"
	body = wrap(
		"New Expense Claim",
		fmt.Sprintf("%s submitted an expense claim that needs your review.", employeeName),
		detailList(
			"<strong>Employee:</strong> "+employeeName,
			"<strong>Title:</strong> "+title,
			"<strong>Amount:</strong> $"+amount.StringFixed(2),
		))
	return subject, body
}

// ExpenseDecisionBody notifies the claim owner of the outcome.
func ExpenseDecisionBody(name, title string, amount decimal.Decimal, approved bool) (subject, body string) {
	outcome := "Approved"
	lead := fmt.Sprintf("Good news %s! Your expense claim has been approved for reimbursement.", name)
	if !approved {
		outcome = "Rejected"
		lead = fmt.Sprintf("Hi %s, unfortunately your expense claim has been rejected. Please contact HR for details.", name)
	}
	subject = fmt.Sprintf("Expense %s - Payroll Management System", outcome)
	body = wrap(
		"Expense "+outcome,
		lead,
		detailList(
			"<strong>Title:</strong> "+title,
			"<strong>Amount:</strong> $"+amount.StringFixed(2),
			"<strong>Status:</strong> "+outcome,
		))
	return subject, body
}

// SalarySlipBody notifies an employee that a slip was issued or updated.
func SalarySlipBody(name, month string, year int, net decimal.Decimal, updated bool) (subject, body string) {
	verb := "Issued"
	if updated {
		verb = "Updated"
	}
	subject = fmt.Sprintf("Salary Slip %s - %s %d", verb, month, year)
	body = wrap(
		"Salary Slip "+verb,
		fmt.Sprintf("Hi %s, your salary slip for %s %d is available in the payroll dashboard.", name, month, year),
		detailList(
			fmt.Sprintf("<strong>Pay Period:</strong> %s %d", month, year),
			"<strong>Net Salary:</strong> $"+net.StringFixed(2),
		))
	return subject, body
}
