package leave

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"

	"github.com/worklane-hq/hrm-backend-go/internal/domain/employee"
	"github.com/worklane-hq/hrm-backend-go/internal/domain/leave"
	"github.com/worklane-hq/hrm-backend-go/internal/pkg/database"
)

type RequestService struct {
	db *database.DB
	leave.LeaveTypeRepository
	leave.LeaveRequestRepository
	employee.EmployeeRepository
}

func NewRequestService(db *database.DB, leaveTypeRepository leave.LeaveTypeRepository, leaveRequestRepository leave.LeaveRequestRepository, employeeRepository employee.EmployeeRepository) *RequestService {
	return &RequestService{
		db:                     db,
		LeaveTypeRepository:    leaveTypeRepository,
		LeaveRequestRepository: leaveRequestRepository,
		EmployeeRepository:     employeeRepository,
	}
}

func (r *RequestService) CreateRequest(ctx context.Context, req leave.CreateLeaveRequestRequest) (leave.LeaveRequest, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequest{}, err
	}

	employeeID, err := employeeIDFromContext(ctx)
	if err != nil {
		return leave.LeaveRequest{}, err
	}

	emp, err := r.EmployeeRepository.GetByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return leave.LeaveRequest{}, err
		}
		return leave.LeaveRequest{}, fmt.Errorf("failed to get employee: %w", err)
	}

	leaveType, err := r.LeaveTypeRepository.GetByID(ctx, req.LeaveTypeID)
	if err != nil {
		if errors.Is(err, leave.ErrLeaveTypeNotFound) {
			return leave.LeaveRequest{}, err
		}
		return leave.LeaveRequest{}, fmt.Errorf("failed to get leave type: %w", err)
	}

	startDate, err := time.ParseInLocation("2006-01-02", req.StartDate, time.Local)
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to parse start date: %w", err)
	}
	endDate, err := time.ParseInLocation("2006-01-02", req.EndDate, time.Local)
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to parse end date: %w", err)
	}

	request := leave.LeaveRequest{
		EmployeeID:  emp.ID,
		LeaveTypeID: leaveType.ID,
		StartDate:   startDate,
		EndDate:     endDate,
		DaysCount:   CountDays(startDate, endDate),
		Reason:      req.Reason,
		Status:      leave.LeaveRequestStatusPending,
	}

	created, err := r.LeaveRequestRepository.Create(ctx, request)
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return created, nil
}

func (r *RequestService) Approve(ctx context.Context, requestID string, reviewerID string) (leave.LeaveRequest, error) {
	return r.review(ctx, requestID, reviewerID, leave.LeaveRequestStatusApproved)
}

func (r *RequestService) Reject(ctx context.Context, requestID string, reviewerID string) (leave.LeaveRequest, error) {
	return r.review(ctx, requestID, reviewerID, leave.LeaveRequestStatusRejected)
}

// review mutates a pending request exactly once; every other status is
// terminal and stays untouched.
func (r *RequestService) review(ctx context.Context, requestID, reviewerID string, status leave.LeaveRequestStatus) (leave.LeaveRequest, error) {
	request, err := r.LeaveRequestRepository.GetByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, leave.ErrLeaveRequestNotFound) {
			return leave.LeaveRequest{}, err
		}
		return leave.LeaveRequest{}, fmt.Errorf("failed to get leave request: %w", err)
	}

	if request.IsTerminal() {
		return leave.LeaveRequest{}, leave.ErrLeaveRequestAlreadyProcessed
	}

	reviewedAt := time.Now()
	request.Status = status
	request.ReviewedBy = &reviewerID
	request.ReviewedAt = &reviewedAt

	if err := r.LeaveRequestRepository.UpdateStatus(ctx, request.ID, status, &reviewerID, &reviewedAt); err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to update leave request status: %w", err)
	}

	return request, nil
}

// Cancel is a self-service terminal transition available to the owning
// employee while the request is still pending.
func (r *RequestService) Cancel(ctx context.Context, requestID string) (leave.LeaveRequest, error) {
	employeeID, err := employeeIDFromContext(ctx)
	if err != nil {
		return leave.LeaveRequest{}, err
	}

	request, err := r.LeaveRequestRepository.GetByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, leave.ErrLeaveRequestNotFound) {
			return leave.LeaveRequest{}, err
		}
		return leave.LeaveRequest{}, fmt.Errorf("failed to get leave request: %w", err)
	}

	if request.EmployeeID != employeeID {
		return leave.LeaveRequest{}, leave.ErrNotRequestOwner
	}
	if request.IsTerminal() {
		return leave.LeaveRequest{}, leave.ErrLeaveRequestAlreadyProcessed
	}

	cancelledAt := time.Now()
	request.Status = leave.LeaveRequestStatusCancelled
	request.CancelledAt = &cancelledAt

	// reviewed_by and reviewed_at stay empty; the row stamps cancelled_at itself.
	if err := r.LeaveRequestRepository.UpdateStatus(ctx, request.ID, leave.LeaveRequestStatusCancelled, nil, nil); err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to cancel leave request: %w", err)
	}

	return request, nil
}

func (r *RequestService) GetMyRequests(ctx context.Context) ([]leave.LeaveRequest, error) {
	employeeID, err := employeeIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	requests, err := r.LeaveRequestRepository.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	return requests, nil
}

func (r *RequestService) List(ctx context.Context, status string) ([]leave.LeaveRequest, int64, error) {
	requests, total, err := r.LeaveRequestRepository.List(ctx, status)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list leave requests: %w", err)
	}
	return requests, total, nil
}

// employeeIDFromContext extracts employee_id from JWT claims
func employeeIDFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	employeeID, ok := claims["employee_id"].(string)
	if !ok || employeeID == "" {
		return "", fmt.Errorf("employee_id claim is missing or invalid")
	}

	return employeeID, nil
}
