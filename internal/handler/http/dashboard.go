package http

import (
	"log/slog"
	"net/http"

	"github.com/edupay/edupay-backend-go/internal/domain/dashboard"
	"github.com/edupay/edupay-backend-go/internal/handler/http/response"
)

type DashboardHandler interface {
	AccountantStats(w http.ResponseWriter, r *http.Request)
	AdminStats(w http.ResponseWriter, r *http.Request)
}

type DashboardHandlerImpl struct {
	dashboardService dashboard.Service
}

func NewDashboardHandler(dashboardService dashboard.Service) DashboardHandler {
	return &DashboardHandlerImpl{
		dashboardService: dashboardService,
	}
}

// AccountantStats implements DashboardHandler.
func (h *DashboardHandlerImpl) AccountantStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.dashboardService.AccountantStats(r.Context())
	if err != nil {
		slog.Error("Accountant stats service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, stats)
}

// AdminStats implements DashboardHandler.
func (h *DashboardHandlerImpl) AdminStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.dashboardService.AdminStats(r.Context())
	if err != nil {
		slog.Error("Admin stats service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, stats)
}
