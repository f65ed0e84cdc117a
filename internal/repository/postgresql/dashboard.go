package postgresql

import (
	"context"
	"fmt"

	"github.com/edupay/edupay-backend-go/internal/domain/dashboard"
	"github.com/edupay/edupay-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type dashboardRepository struct {
	db *database.DB
}

func NewDashboardRepository(db *database.DB) dashboard.DashboardRepository {
	return &dashboardRepository{db: db}
}

func (r *dashboardRepository) AccountantStats(ctx context.Context) (dashboard.AccountantStats, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			(SELECT COUNT(*) FROM teachers WHERE is_active = true),
			(SELECT COUNT(*) FROM payroll),
			(SELECT COUNT(*) FROM payroll WHERE status IN ('draft', 'processed')),
			(SELECT COALESCE(SUM(total_net), 0) FROM payroll WHERE status IN ('approved', 'paid'))
	`

	var stats dashboard.AccountantStats
	err := q.QueryRow(ctx, query).Scan(
		&stats.ActiveTeachers, &stats.TotalBatches, &stats.PendingBatches, &stats.TotalPaidNet,
	)
	if err != nil {
		return dashboard.AccountantStats{}, fmt.Errorf("failed to load accountant stats: %w", err)
	}

	stats.LatestBatchID, err = r.latestBatchID(ctx)
	if err != nil {
		return dashboard.AccountantStats{}, err
	}

	return stats, nil
}

func (r *dashboardRepository) AdminStats(ctx context.Context) (dashboard.AdminStats, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			(SELECT COUNT(*) FROM users),
			(SELECT COUNT(*) FROM teachers WHERE is_active = true),
			(SELECT COUNT(*) FROM payroll)
	`

	var stats dashboard.AdminStats
	err := q.QueryRow(ctx, query).Scan(&stats.TotalUsers, &stats.ActiveTeachers, &stats.TotalBatches)
	if err != nil {
		return dashboard.AdminStats{}, fmt.Errorf("failed to load admin stats: %w", err)
	}

	stats.LatestBatchID, err = r.latestBatchID(ctx)
	if err != nil {
		return dashboard.AdminStats{}, err
	}

	return stats, nil
}

func (r *dashboardRepository) latestBatchID(ctx context.Context) (*string, error) {
	q := GetQuerier(ctx, r.db)

	var id string
	err := q.QueryRow(ctx, `SELECT id FROM payroll ORDER BY year DESC, month DESC LIMIT 1`).Scan(&id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get latest payroll batch: %w", err)
	}

	return &id, nil
}
