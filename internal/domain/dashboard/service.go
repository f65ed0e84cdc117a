package dashboard

import (
	"context"
)

type Service interface {
	AccountantStats(ctx context.Context) (AccountantStatsResponse, error)
	AdminStats(ctx context.Context) (AdminStatsResponse, error)
}
