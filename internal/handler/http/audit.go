package http

import (
	"log/slog"
	"net/http"

	"github.com/edupay/edupay-backend-go/internal/domain/audit"
	"github.com/edupay/edupay-backend-go/internal/handler/http/response"
)

type AuditHandler interface {
	List(w http.ResponseWriter, r *http.Request)
}

type AuditHandlerImpl struct {
	auditService audit.Service
}

func NewAuditHandler(auditService audit.Service) AuditHandler {
	return &AuditHandlerImpl{
		auditService: auditService,
	}
}

// List implements AuditHandler.
func (h *AuditHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	entries, err := h.auditService.ListRecent(r.Context())
	if err != nil {
		slog.Error("List audit log service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, entries)
}
