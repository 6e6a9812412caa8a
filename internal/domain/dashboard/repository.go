package dashboard

import (
	"context"
)

type DashboardRepository interface {
	// GetAdminSummary aggregates the admin widget counts. today is the local
	// calendar date in YYYY-MM-DD form.
	GetAdminSummary(ctx context.Context, today string) (AdminSummary, error)
}
