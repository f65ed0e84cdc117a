package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/edupay/edupay-backend-go/internal/domain/audit"
	"github.com/edupay/edupay-backend-go/internal/domain/sysconfig"
	"github.com/edupay/edupay-backend-go/internal/handler/http/response"
)

type ConfigHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
}

type ConfigHandlerImpl struct {
	configService sysconfig.Service
	auditService  audit.Service
}

func NewConfigHandler(configService sysconfig.Service, auditService audit.Service) ConfigHandler {
	return &ConfigHandlerImpl{
		configService: configService,
		auditService:  auditService,
	}
}

// Get implements ConfigHandler.
func (h *ConfigHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	settings, err := h.configService.GetAll(r.Context())
	if err != nil {
		slog.Error("Get config service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, settings)
}

// Update implements ConfigHandler.
func (h *ConfigHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var settings map[string]string

	if err := json.NewDecoder(r.Body).Decode(&settings); err != nil {
		slog.Error("Update config decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	if len(settings) == 0 {
		response.BadRequest(w, "No settings provided", nil)
		return
	}

	updated, err := h.configService.Update(r.Context(), settings)
	if err != nil {
		slog.Error("Update config service error", "error", err)
		response.HandleError(w, err)
		return
	}

	h.auditService.Record(r.Context(), "UPDATE_CONFIG", "Updated system configuration", r.RemoteAddr)
	response.SuccessWithMessage(w, "Configuration updated successfully", updated)
}
