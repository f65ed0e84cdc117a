package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/edupay/edupay-backend-go/internal/domain/audit"
	"github.com/edupay/edupay-backend-go/internal/domain/structure"
	"github.com/edupay/edupay-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type StructureHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Save(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type StructureHandlerImpl struct {
	structureService structure.StructureService
	auditService     audit.Service
}

func NewStructureHandler(structureService structure.StructureService, auditService audit.Service) StructureHandler {
	return &StructureHandlerImpl{
		structureService: structureService,
		auditService:     auditService,
	}
}

// List implements StructureHandler.
func (h *StructureHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	structures, err := h.structureService.List(r.Context())
	if err != nil {
		slog.Error("List structures service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, structures)
}

// Save implements StructureHandler.
func (h *StructureHandlerImpl) Save(w http.ResponseWriter, r *http.Request) {
	var saveReq structure.SaveStructureRequest

	if err := json.NewDecoder(r.Body).Decode(&saveReq); err != nil {
		slog.Error("Save structure decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := saveReq.Validate(); err != nil {
		slog.Error("Save structure validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	saved, err := h.structureService.Save(r.Context(), saveReq)
	if err != nil {
		slog.Error("Save structure service error", "error", err)
		response.HandleError(w, err)
		return
	}

	h.auditService.Record(r.Context(), "SAVE_SALARY_STRUCTURE",
		fmt.Sprintf("Saved salary structure %s", saved.SalaryScale), r.RemoteAddr)
	response.SuccessWithMessage(w, "Salary structure saved successfully", saved)
}

// Delete implements StructureHandler.
func (h *StructureHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.structureService.Delete(r.Context(), id); err != nil {
		slog.Error("Delete structure service error", "error", err)
		response.HandleError(w, err)
		return
	}

	h.auditService.Record(r.Context(), "DELETE_SALARY_STRUCTURE",
		fmt.Sprintf("Deleted salary structure %s", id), r.RemoteAddr)
	response.SuccessWithMessage(w, "Salary structure deleted successfully", nil)
}
