package leave

import (
	"sort"

	"github.com/worklane-hq/hrm-backend-go/internal/domain/employee"
	"github.com/worklane-hq/hrm-backend-go/internal/domain/leave"
)

// ComputeBalances computes the remaining balance per leave type for one
// employee and year. leaveTypes is the full reference catalog; approved must
// be pre-filtered to approved requests. Requests outside the year or
// referencing a type absent from the catalog contribute to no bucket. One
// row is emitted per catalog type, zero usage included, sorted by type name.
// Remaining may go negative; over-drawing is not forbidden here.
func ComputeBalances(leaveTypes []leave.LeaveType, approved []leave.LeaveRequest, year int) []leave.LeaveBalance {
	used := usedDaysByType(approved, "", year)

	balances := make([]leave.LeaveBalance, 0, len(leaveTypes))
	for _, lt := range leaveTypes {
		total := lt.DaysPerYear
		u := used[lt.ID]
		employeeID := ""
		if len(approved) > 0 {
			employeeID = approved[0].EmployeeID
		}
		balances = append(balances, leave.LeaveBalance{
			EmployeeID:    employeeID,
			LeaveTypeID:   lt.ID,
			LeaveTypeName: lt.Name,
			Year:          year,
			Total:         total,
			Used:          u,
			Remaining:     total - u,
		})
	}

	sort.SliceStable(balances, func(i, j int) bool {
		return balances[i].LeaveTypeName < balances[j].LeaveTypeName
	})

	return balances
}

// ComputeBalanceReport computes balances for many employees at once:
// exactly one row per (employee, leaveType) pair, leave types in stable name
// order within each employee. approved may contain requests from any
// employee; each row only counts the matching one.
func ComputeBalanceReport(employees []employee.Employee, leaveTypes []leave.LeaveType, approved []leave.LeaveRequest, year int) []leave.LeaveBalance {
	sortedTypes := make([]leave.LeaveType, len(leaveTypes))
	copy(sortedTypes, leaveTypes)
	sort.SliceStable(sortedTypes, func(i, j int) bool {
		return sortedTypes[i].Name < sortedTypes[j].Name
	})

	var rows []leave.LeaveBalance
	for _, emp := range employees {
		used := usedDaysByType(approved, emp.ID, year)
		for _, lt := range sortedTypes {
			u := used[lt.ID]
			rows = append(rows, leave.LeaveBalance{
				EmployeeID:    emp.ID,
				LeaveTypeID:   lt.ID,
				LeaveTypeName: lt.Name,
				Year:          year,
				Total:         lt.DaysPerYear,
				Used:          u,
				Remaining:     lt.DaysPerYear - u,
			})
		}
	}

	return rows
}

// usedDaysByType sums days_count per leave type over approved requests whose
// start date falls in year. employeeID narrows to one employee when non-empty.
func usedDaysByType(approved []leave.LeaveRequest, employeeID string, year int) map[string]float64 {
	used := make(map[string]float64)
	for _, req := range approved {
		if req.Status != leave.LeaveRequestStatusApproved {
			continue
		}
		if employeeID != "" && req.EmployeeID != employeeID {
			continue
		}
		if req.StartDate.Year() != year {
			continue
		}
		used[req.LeaveTypeID] += float64(req.DaysCount)
	}
	return used
}
