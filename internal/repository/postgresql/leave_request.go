package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/worklane-hq/hrm-backend-go/internal/domain/leave"
	"github.com/worklane-hq/hrm-backend-go/internal/pkg/database"
)

type leaveRequestRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) leave.LeaveRequestRepository {
	return &leaveRequestRepositoryImpl{db: db}
}

const leaveRequestColumns = `
	lr.id, lr.employee_id, lr.leave_type_id, lr.start_date, lr.end_date, lr.days_count,
	lr.reason, lr.status, lr.reviewed_by, lr.reviewed_at, lr.cancelled_at,
	lr.created_at, lr.updated_at, lt.name, e.full_name
`

func scanLeaveRequest(row pgx.Row) (leave.LeaveRequest, error) {
	var lr leave.LeaveRequest
	err := row.Scan(
		&lr.ID,
		&lr.EmployeeID,
		&lr.LeaveTypeID,
		&lr.StartDate,
		&lr.EndDate,
		&lr.DaysCount,
		&lr.Reason,
		&lr.Status,
		&lr.ReviewedBy,
		&lr.ReviewedAt,
		&lr.CancelledAt,
		&lr.CreatedAt,
		&lr.UpdatedAt,
		&lr.LeaveTypeName,
		&lr.EmployeeName,
	)
	return lr, err
}

func (r *leaveRequestRepositoryImpl) queryRequests(ctx context.Context, query string, args ...any) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []leave.LeaveRequest
	for rows.Next() {
		lr, err := scanLeaveRequest(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, lr)
	}
	return requests, rows.Err()
}

func (r *leaveRequestRepositoryImpl) Create(ctx context.Context, request leave.LeaveRequest) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_requests (
			id, employee_id, leave_type_id, start_date, end_date, days_count,
			reason, status, created_at, updated_at
		) VALUES (
			uuidv7(), $1, $2, $3, $4, $5, $6, $7, NOW(), NOW()
		)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		request.EmployeeID,
		request.LeaveTypeID,
		request.StartDate,
		request.EndDate,
		request.DaysCount,
		request.Reason,
		request.Status,
	).Scan(&request.ID, &request.CreatedAt, &request.UpdatedAt)
	if err != nil {
		return leave.LeaveRequest{}, err
	}
	return request, nil
}

func (r *leaveRequestRepositoryImpl) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + leaveRequestColumns + `
		FROM leave_requests lr
		INNER JOIN leave_types lt ON lt.id = lr.leave_type_id
		INNER JOIN employees e ON e.id = lr.employee_id
		WHERE lr.id = $1
	`

	lr, err := scanLeaveRequest(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
		}
		return leave.LeaveRequest{}, err
	}
	return lr, nil
}

func (r *leaveRequestRepositoryImpl) GetByEmployeeID(ctx context.Context, employeeID string) ([]leave.LeaveRequest, error) {
	query := `
		SELECT ` + leaveRequestColumns + `
		FROM leave_requests lr
		INNER JOIN leave_types lt ON lt.id = lr.leave_type_id
		INNER JOIN employees e ON e.id = lr.employee_id
		WHERE lr.employee_id = $1
		ORDER BY lr.created_at DESC
	`
	return r.queryRequests(ctx, query, employeeID)
}

func (r *leaveRequestRepositoryImpl) List(ctx context.Context, status string) ([]leave.LeaveRequest, int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + leaveRequestColumns + `
		FROM leave_requests lr
		INNER JOIN leave_types lt ON lt.id = lr.leave_type_id
		INNER JOIN employees e ON e.id = lr.employee_id
		WHERE ($1 = '' OR lr.status = $1)
		ORDER BY lr.created_at DESC
	`

	requests, err := r.queryRequests(ctx, query, status)
	if err != nil {
		return nil, 0, err
	}

	countQuery := `
		SELECT COUNT(*)
		FROM leave_requests
		WHERE ($1 = '' OR status = $1)
	`
	var total int64
	if err := q.QueryRow(ctx, countQuery, status).Scan(&total); err != nil {
		return nil, 0, err
	}

	return requests, total, nil
}

func (r *leaveRequestRepositoryImpl) UpdateStatus(ctx context.Context, id string, status leave.LeaveRequestStatus, reviewedBy *string, reviewedAt *time.Time) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_requests
		SET status = $2,
			reviewed_by = $3,
			reviewed_at = $4,
			cancelled_at = CASE WHEN $2 = 'cancelled' THEN NOW() ELSE cancelled_at END,
			updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, id, status, reviewedBy, reviewedAt)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrLeaveRequestNotFound
	}
	return nil
}

func (r *leaveRequestRepositoryImpl) GetApprovedByEmployeeAndYear(ctx context.Context, employeeID string, year int) ([]leave.LeaveRequest, error) {
	query := `
		SELECT ` + leaveRequestColumns + `
		FROM leave_requests lr
		INNER JOIN leave_types lt ON lt.id = lr.leave_type_id
		INNER JOIN employees e ON e.id = lr.employee_id
		WHERE lr.employee_id = $1
		  AND lr.status = 'approved'
		  AND EXTRACT(YEAR FROM lr.start_date) = $2
		ORDER BY lr.start_date ASC
	`
	return r.queryRequests(ctx, query, employeeID, year)
}

func (r *leaveRequestRepositoryImpl) GetApprovedByYear(ctx context.Context, year int) ([]leave.LeaveRequest, error) {
	query := `
		SELECT ` + leaveRequestColumns + `
		FROM leave_requests lr
		INNER JOIN leave_types lt ON lt.id = lr.leave_type_id
		INNER JOIN employees e ON e.id = lr.employee_id
		WHERE lr.status = 'approved'
		  AND EXTRACT(YEAR FROM lr.start_date) = $1
		ORDER BY lr.start_date ASC
	`
	return r.queryRequests(ctx, query, year)
}
