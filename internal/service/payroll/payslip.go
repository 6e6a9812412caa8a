package payroll

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jung-kurt/gofpdf"
)

// GeneratePayslipPDF renders a payslip for one payroll record and returns
// the PDF bytes together with a reference number for the document.
func (s *PayrollServiceImpl) GeneratePayslipPDF(ctx context.Context, recordID string) ([]byte, string, error) {
	record, err := s.GetByID(ctx, recordID)
	if err != nil {
		return nil, "", err
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, record.EmployeeID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to get employee: %w", err)
	}

	reference := "PS-" + uuid.NewString()[:8]
	period := time.Date(record.PeriodYear, time.Month(record.PeriodMonth), 1, 0, 0, 0, 0, time.Local)

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Payslip")
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Reference: %s", reference))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Employee: %s", emp.FullName))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Email: %s", emp.Email))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Period: %s", period.Format("January 2006")))
	pdf.Ln(10)
	pdf.Cell(0, 8, fmt.Sprintf("Base salary: %s", record.BaseSalary.StringFixed(2)))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Allowances: %s", record.Allowances.StringFixed(2)))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Deductions: %s", record.Deductions.StringFixed(2)))
	pdf.Ln(7)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Net pay: %s", record.NetPay.StringFixed(2)))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", fmt.Errorf("failed to render payslip PDF: %w", err)
	}

	return buf.Bytes(), reference, nil
}
