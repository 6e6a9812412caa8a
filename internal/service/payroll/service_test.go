package payroll

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/worklane-hq/hrm-backend-go/internal/domain/payroll"
)

func money(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func TestBuildSummary(t *testing.T) {
	t.Parallel()
	records := []payroll.PayrollRecord{
		{
			ID:          "pr-1",
			EmployeeID:  "emp-1",
			PeriodMonth: 3,
			PeriodYear:  2024,
			BaseSalary:  money("5000.00"),
			Allowances:  money("250.50"),
			Deductions:  money("125.25"),
			NetPay:      money("5125.25"),
		},
		{
			ID:          "pr-2",
			EmployeeID:  "emp-2",
			PeriodMonth: 3,
			PeriodYear:  2024,
			BaseSalary:  money("4200.00"),
			Allowances:  money("0.10"),
			Deductions:  money("0.00"),
			NetPay:      money("4200.10"),
		},
	}

	summary := BuildSummary(records, 3, 2024)

	assert.Equal(t, "9450.60", summary.TotalGross)
	assert.Equal(t, "9325.35", summary.TotalNet)
	require.Len(t, summary.Records, 2)
	assert.Equal(t, "5125.25", summary.Records[0].NetPay)
}

func TestBuildSummary_Empty(t *testing.T) {
	t.Parallel()
	summary := BuildSummary(nil, 1, 2024)

	assert.Equal(t, "0.00", summary.TotalGross)
	assert.Equal(t, "0.00", summary.TotalNet)
	assert.Empty(t, summary.Records)
}

func TestComputeNetPay(t *testing.T) {
	t.Parallel()
	record := payroll.PayrollRecord{
		BaseSalary: money("3000.00"),
		Allowances: money("100.00"),
		Deductions: money("350.75"),
	}

	assert.Equal(t, "2749.25", record.ComputeNetPay().StringFixed(2))
}
