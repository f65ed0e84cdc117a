package dashboard

import (
	"context"

	"github.com/edupay/edupay-backend-go/internal/domain/dashboard"
	"github.com/edupay/edupay-backend-go/internal/domain/payroll"
)

type DashboardServiceImpl struct {
	dashboardRepo dashboard.DashboardRepository
	payrollRepo   payroll.PayrollRepository
}

func NewDashboardService(dashboardRepo dashboard.DashboardRepository, payrollRepo payroll.PayrollRepository) dashboard.Service {
	return &DashboardServiceImpl{
		dashboardRepo: dashboardRepo,
		payrollRepo:   payrollRepo,
	}
}

func (s *DashboardServiceImpl) AccountantStats(ctx context.Context) (dashboard.AccountantStatsResponse, error) {
	stats, err := s.dashboardRepo.AccountantStats(ctx)
	if err != nil {
		return dashboard.AccountantStatsResponse{}, err
	}

	resp := dashboard.AccountantStatsResponse{
		ActiveTeachers: stats.ActiveTeachers,
		TotalBatches:   stats.TotalBatches,
		PendingBatches: stats.PendingBatches,
		TotalPaidNet:   stats.TotalPaidNet,
	}

	resp.LatestBatch, err = s.latestBatch(ctx, stats.LatestBatchID)
	if err != nil {
		return dashboard.AccountantStatsResponse{}, err
	}

	return resp, nil
}

func (s *DashboardServiceImpl) AdminStats(ctx context.Context) (dashboard.AdminStatsResponse, error) {
	stats, err := s.dashboardRepo.AdminStats(ctx)
	if err != nil {
		return dashboard.AdminStatsResponse{}, err
	}

	resp := dashboard.AdminStatsResponse{
		TotalUsers:     stats.TotalUsers,
		ActiveTeachers: stats.ActiveTeachers,
		TotalBatches:   stats.TotalBatches,
	}

	resp.LatestBatch, err = s.latestBatch(ctx, stats.LatestBatchID)
	if err != nil {
		return dashboard.AdminStatsResponse{}, err
	}

	return resp, nil
}

func (s *DashboardServiceImpl) latestBatch(ctx context.Context, id *string) (*payroll.BatchResponse, error) {
	if id == nil {
		return nil, nil
	}

	b, err := s.payrollRepo.GetBatchByID(ctx, *id)
	if err != nil {
		return nil, err
	}

	resp := payroll.ToBatchResponse(b)
	return &resp, nil
}
