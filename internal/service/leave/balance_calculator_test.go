package leave

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/worklane-hq/hrm-backend-go/internal/domain/employee"
	"github.com/worklane-hq/hrm-backend-go/internal/domain/leave"
)

func approvedRequest(employeeID, leaveTypeID string, start time.Time, days int) leave.LeaveRequest {
	return leave.LeaveRequest{
		EmployeeID:  employeeID,
		LeaveTypeID: leaveTypeID,
		StartDate:   start,
		EndDate:     start.AddDate(0, 0, days-1),
		DaysCount:   days,
		Status:      leave.LeaveRequestStatusApproved,
	}
}

func TestComputeBalances_UsedAndRemaining(t *testing.T) {
	t.Parallel()
	types := []leave.LeaveType{
		{ID: "lt-annual", Name: "Annual", DaysPerYear: 12},
	}
	approved := []leave.LeaveRequest{
		approvedRequest("emp-1", "lt-annual", date(2024, time.February, 5), 3),
		approvedRequest("emp-1", "lt-annual", date(2024, time.August, 19), 2),
	}

	balances := ComputeBalances(types, approved, 2024)

	require.Len(t, balances, 1)
	assert.Equal(t, 12.0, balances[0].Total)
	assert.Equal(t, 5.0, balances[0].Used)
	assert.Equal(t, 7.0, balances[0].Remaining)
}

func TestComputeBalances_ExcludesOtherYears(t *testing.T) {
	t.Parallel()
	types := []leave.LeaveType{
		{ID: "lt-annual", Name: "Annual", DaysPerYear: 12},
	}
	approved := []leave.LeaveRequest{
		approvedRequest("emp-1", "lt-annual", date(2023, time.December, 28), 4),
		approvedRequest("emp-1", "lt-annual", date(2024, time.March, 4), 2),
		approvedRequest("emp-1", "lt-annual", date(2025, time.January, 2), 3),
	}

	balances := ComputeBalances(types, approved, 2024)

	require.Len(t, balances, 1)
	assert.Equal(t, 2.0, balances[0].Used)
}

func TestComputeBalances_ExcludesNonApprovedStatuses(t *testing.T) {
	t.Parallel()
	types := []leave.LeaveType{
		{ID: "lt-sick", Name: "Sick", DaysPerYear: 10},
	}
	pending := approvedRequest("emp-1", "lt-sick", date(2024, time.May, 1), 2)
	pending.Status = leave.LeaveRequestStatusPending
	rejected := approvedRequest("emp-1", "lt-sick", date(2024, time.May, 10), 2)
	rejected.Status = leave.LeaveRequestStatusRejected

	balances := ComputeBalances(types, []leave.LeaveRequest{pending, rejected}, 2024)

	require.Len(t, balances, 1)
	assert.Equal(t, 0.0, balances[0].Used)
	assert.Equal(t, 10.0, balances[0].Remaining)
}

func TestComputeBalances_RowPerTypeAtZeroUsage(t *testing.T) {
	t.Parallel()
	types := []leave.LeaveType{
		{ID: "lt-annual", Name: "Annual", DaysPerYear: 12},
		{ID: "lt-sick", Name: "Sick", DaysPerYear: 10},
		{ID: "lt-unpaid", Name: "Unpaid", DaysPerYear: 0},
	}

	balances := ComputeBalances(types, nil, 2024)

	require.Len(t, balances, 3)
	for _, b := range balances {
		assert.Equal(t, 0.0, b.Used)
		assert.Equal(t, b.Total, b.Remaining)
	}
}

func TestComputeBalances_SortedByTypeName(t *testing.T) {
	t.Parallel()
	types := []leave.LeaveType{
		{ID: "lt-3", Name: "Sick", DaysPerYear: 10},
		{ID: "lt-1", Name: "Annual", DaysPerYear: 12},
		{ID: "lt-2", Name: "Parental", DaysPerYear: 90},
	}

	balances := ComputeBalances(types, nil, 2024)

	require.Len(t, balances, 3)
	assert.Equal(t, "Annual", balances[0].LeaveTypeName)
	assert.Equal(t, "Parental", balances[1].LeaveTypeName)
	assert.Equal(t, "Sick", balances[2].LeaveTypeName)
}

func TestComputeBalances_UnknownTypeSilentlyDropped(t *testing.T) {
	t.Parallel()
	types := []leave.LeaveType{
		{ID: "lt-annual", Name: "Annual", DaysPerYear: 12},
	}
	approved := []leave.LeaveRequest{
		approvedRequest("emp-1", "lt-orphaned", date(2024, time.April, 1), 3),
	}

	balances := ComputeBalances(types, approved, 2024)

	require.Len(t, balances, 1)
	assert.Equal(t, 0.0, balances[0].Used)
}

func TestComputeBalances_RemainingMayGoNegative(t *testing.T) {
	t.Parallel()
	types := []leave.LeaveType{
		{ID: "lt-annual", Name: "Annual", DaysPerYear: 5},
	}
	approved := []leave.LeaveRequest{
		approvedRequest("emp-1", "lt-annual", date(2024, time.July, 1), 8),
	}

	balances := ComputeBalances(types, approved, 2024)

	require.Len(t, balances, 1)
	assert.Equal(t, -3.0, balances[0].Remaining)
}

func TestComputeBalanceReport_OneRowPerPair(t *testing.T) {
	t.Parallel()
	employees := []employee.Employee{
		{ID: "emp-1", FullName: "Ari"},
		{ID: "emp-2", FullName: "Bela"},
	}
	types := []leave.LeaveType{
		{ID: "lt-sick", Name: "Sick", DaysPerYear: 10},
		{ID: "lt-annual", Name: "Annual", DaysPerYear: 12},
	}
	approved := []leave.LeaveRequest{
		approvedRequest("emp-1", "lt-annual", date(2024, time.March, 11), 4),
		approvedRequest("emp-2", "lt-sick", date(2024, time.June, 3), 1),
	}

	rows := ComputeBalanceReport(employees, types, approved, 2024)

	require.Len(t, rows, 4)

	// Stable leave-type name order within each employee
	assert.Equal(t, "emp-1", rows[0].EmployeeID)
	assert.Equal(t, "Annual", rows[0].LeaveTypeName)
	assert.Equal(t, 4.0, rows[0].Used)
	assert.Equal(t, "Sick", rows[1].LeaveTypeName)
	assert.Equal(t, 0.0, rows[1].Used)

	assert.Equal(t, "emp-2", rows[2].EmployeeID)
	assert.Equal(t, "Annual", rows[2].LeaveTypeName)
	assert.Equal(t, 0.0, rows[2].Used)
	assert.Equal(t, "Sick", rows[3].LeaveTypeName)
	assert.Equal(t, 1.0, rows[3].Used)
}

func TestComputeBalanceReport_FiltersByEmployee(t *testing.T) {
	t.Parallel()
	employees := []employee.Employee{{ID: "emp-1"}}
	types := []leave.LeaveType{
		{ID: "lt-annual", Name: "Annual", DaysPerYear: 12},
	}
	approved := []leave.LeaveRequest{
		approvedRequest("emp-1", "lt-annual", date(2024, time.March, 11), 4),
		approvedRequest("emp-other", "lt-annual", date(2024, time.March, 11), 9),
	}

	rows := ComputeBalanceReport(employees, types, approved, 2024)

	require.Len(t, rows, 1)
	assert.Equal(t, 4.0, rows[0].Used)
}
