package dashboard

import (
	"context"
)

type DashboardRepository interface {
	AccountantStats(ctx context.Context) (AccountantStats, error)
	AdminStats(ctx context.Context) (AdminStats, error)
}
