package postgresql

import (
	"context"
	"fmt"

	"github.com/worklane-hq/hrm-backend-go/internal/domain/dashboard"
	"github.com/worklane-hq/hrm-backend-go/internal/pkg/database"
)

type dashboardRepositoryImpl struct {
	db *database.DB
}

func NewDashboardRepository(db *database.DB) dashboard.DashboardRepository {
	return &dashboardRepositoryImpl{db: db}
}

// GetAdminSummary returns all admin widget counts in a single query.
func (r *dashboardRepositoryImpl) GetAdminSummary(ctx context.Context, today string) (dashboard.AdminSummary, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			(SELECT COUNT(*) FROM employees WHERE status = 'active') AS active_employees,
			(SELECT COUNT(*) FROM employees WHERE status = 'pending') AS pending_onboarding,
			(SELECT COUNT(*) FROM leave_requests WHERE status = 'pending') AS pending_leave,
			(SELECT COUNT(*) FROM leave_requests
				WHERE status = 'approved'
				AND start_date <= $1::date AND end_date >= $1::date) AS on_leave_today,
			(SELECT COUNT(*) FROM assets WHERE status = 'available') AS unassigned_assets
	`

	var summary dashboard.AdminSummary
	err := q.QueryRow(ctx, query, today).Scan(
		&summary.ActiveEmployees,
		&summary.PendingOnboarding,
		&summary.PendingLeave,
		&summary.OnLeaveToday,
		&summary.UnassignedAssets,
	)
	if err != nil {
		return dashboard.AdminSummary{}, fmt.Errorf("failed to get admin summary: %w", err)
	}
	return summary, nil
}
