// Package pdf renders salary slips as one-page PDF documents.
package pdf

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"
)

// SlipDocument is the value object consumed by the renderer. It carries
// everything the document shows so rendering needs no further lookups.
type SlipDocument struct {
	EmployeeName string
	EmployeeID   string
	Department   string
	Month        string
	Year         int
	BasicSalary  decimal.Decimal
	Allowances   decimal.Decimal
	Deductions   decimal.Decimal
	NetSalary    decimal.Decimal
	GeneratedAt  time.Time
}

// row is a label/value pair in a document section. An empty value renders
// the label as a plain left-aligned line.
type row struct {
	Label string
	Value string
}

func money(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}

// earningsRows builds the Earnings section. Allowances appear only when
// positive.
func (d *SlipDocument) earningsRows() []row {
	rows := []row{{Label: "Basic Salary:", Value: money(d.BasicSalary)}}
	if d.Allowances.IsPositive() {
		rows = append(rows, row{Label: "Allowances:", Value: money(d.Allowances)})
	}
	return rows
}

// deductionsRows builds the Deductions section, or the literal
// "No deductions" line when there are none.
func (d *SlipDocument) deductionsRows() []row {
	if d.Deductions.IsPositive() {
		return []row{{Label: "Deductions:", Value: money(d.Deductions)}}
	}
	return []row{{Label: "No deductions"}}
}

// Render produces the fixed one-page layout: header, employee and period
// lines, earnings, deductions, a ruled net-salary total, and a
// generation-timestamp footer.
func (d *SlipDocument) Render() ([]byte, error) {
	doc := gofpdf.New("P", "mm", "A4", "")
	doc.SetMargins(18, 18, 18)
	doc.AddPage()
	width, _ := doc.GetPageSize()
	usable := width - 36

	doc.SetFont("Arial", "B", 20)
	doc.CellFormat(usable, 10, "Payroll Management System", "", 1, "C", false, 0, "")
	doc.Ln(2)
	doc.SetFont("Arial", "B", 16)
	doc.CellFormat(usable, 8, "Salary Slip", "", 1, "C", false, 0, "")
	doc.Ln(4)

	rule(doc, usable)
	doc.Ln(6)

	department := d.Department
	if department == "" {
		department = "N/A"
	}
	doc.SetFont("Arial", "", 12)
	keyValueLine(doc, usable, "Employee: "+d.EmployeeName, "Department: "+department)
	keyValueLine(doc, usable, "Employee ID: "+d.EmployeeID, fmt.Sprintf("Pay Period: %s %d", d.Month, d.Year))
	doc.Ln(8)

	section(doc, usable, "Earnings", d.earningsRows())
	doc.Ln(4)
	section(doc, usable, "Deductions", d.deductionsRows())
	doc.Ln(8)

	rule(doc, usable)
	doc.Ln(4)
	doc.SetFont("Arial", "B", 14)
	keyValueLine(doc, usable, "Net Salary:", money(d.NetSalary))

	doc.Ln(16)
	doc.SetFont("Arial", "", 10)
	doc.SetTextColor(120, 120, 120)
	doc.CellFormat(usable, 5, "This is a computer-generated document. No signature is required.", "", 1, "C", false, 0, "")
	doc.Ln(2)
	doc.CellFormat(usable, 5, "Generated on: "+d.GeneratedAt.Format("1/2/2006"), "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("render salary slip pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func section(doc *gofpdf.Fpdf, usable float64, title string, rows []row) {
	doc.SetFont("Arial", "BU", 14)
	doc.CellFormat(usable, 8, title, "", 1, "L", false, 0, "")
	doc.SetFont("Arial", "", 12)
	for _, r := range rows {
		if r.Value == "" {
			doc.CellFormat(usable, 7, r.Label, "", 1, "L", false, 0, "")
			continue
		}
		keyValueLine(doc, usable, r.Label, r.Value)
	}
}

func keyValueLine(doc *gofpdf.Fpdf, usable float64, left, right string) {
	doc.CellFormat(usable/2, 7, left, "", 0, "L", false, 0, "")
	doc.CellFormat(usable/2, 7, right, "", 1, "R", false, 0, "")
}

func rule(doc *gofpdf.Fpdf, usable float64) {
	x, y := doc.GetXY()
	doc.Line(x, y, x+usable, y)
}
