package leave

import (
	"context"
	"fmt"

	"github.com/worklane-hq/hrm-backend-go/internal/domain/leave"
	"github.com/worklane-hq/hrm-backend-go/internal/pkg/database"
)

// LeaveService owns the leave-type catalog and the balance projection.
type LeaveService struct {
	db *database.DB
	leave.LeaveTypeRepository
	leave.LeaveRequestRepository
}

func NewLeaveService(db *database.DB, leaveTypeRepository leave.LeaveTypeRepository, leaveRequestRepository leave.LeaveRequestRepository) *LeaveService {
	return &LeaveService{
		db:                     db,
		LeaveTypeRepository:    leaveTypeRepository,
		LeaveRequestRepository: leaveRequestRepository,
	}
}

func (s *LeaveService) CreateLeaveType(ctx context.Context, req leave.CreateLeaveTypeRequest) (leave.LeaveType, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveType{}, err
	}

	created, err := s.LeaveTypeRepository.Create(ctx, leave.LeaveType{
		Name:        req.Name,
		DaysPerYear: req.DaysPerYear,
		IsPaid:      req.IsPaid,
	})
	if err != nil {
		return leave.LeaveType{}, fmt.Errorf("failed to create leave type: %w", err)
	}
	return created, nil
}

func (s *LeaveService) ListLeaveTypes(ctx context.Context) ([]leave.LeaveType, error) {
	types, err := s.LeaveTypeRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave types: %w", err)
	}
	return types, nil
}

// GetMyBalances assembles the balance projection for the calling employee:
// fetch the full type catalog and the year's approved requests, then run the
// pure aggregation.
func (s *LeaveService) GetMyBalances(ctx context.Context, year int) ([]leave.LeaveBalance, error) {
	employeeID, err := employeeIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	return s.GetBalances(ctx, employeeID, year)
}

func (s *LeaveService) GetBalances(ctx context.Context, employeeID string, year int) ([]leave.LeaveBalance, error) {
	types, err := s.LeaveTypeRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave types: %w", err)
	}

	approved, err := s.LeaveRequestRepository.GetApprovedByEmployeeAndYear(ctx, employeeID, year)
	if err != nil {
		return nil, fmt.Errorf("failed to get approved leave requests: %w", err)
	}

	return ComputeBalances(types, approved, year), nil
}
