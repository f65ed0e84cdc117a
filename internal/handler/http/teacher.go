package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/edupay/edupay-backend-go/internal/domain/audit"
	"github.com/edupay/edupay-backend-go/internal/domain/teacher"
	"github.com/edupay/edupay-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type TeacherHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Compensation(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)

	Profile(w http.ResponseWriter, r *http.Request)
	UpdateProfile(w http.ResponseWriter, r *http.Request)
}

type TeacherHandlerImpl struct {
	teacherService teacher.TeacherService
	auditService   audit.Service
}

func NewTeacherHandler(teacherService teacher.TeacherService, auditService audit.Service) TeacherHandler {
	return &TeacherHandlerImpl{
		teacherService: teacherService,
		auditService:   auditService,
	}
}

// List implements TeacherHandler.
func (h *TeacherHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	teachers, err := h.teacherService.List(r.Context())
	if err != nil {
		slog.Error("List teachers service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, teachers)
}

// Compensation implements TeacherHandler. It lists the pay inputs payroll
// processing would use for each active teacher.
func (h *TeacherHandlerImpl) Compensation(w http.ResponseWriter, r *http.Request) {
	rows, err := h.teacherService.ListCompensation(r.Context())
	if err != nil {
		slog.Error("List compensation service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, rows)
}

// Get implements TeacherHandler.
func (h *TeacherHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	found, err := h.teacherService.Get(r.Context(), id)
	if err != nil {
		slog.Error("Get teacher service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, found)
}

// Create implements TeacherHandler.
func (h *TeacherHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var createReq teacher.CreateTeacherRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create teacher decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := createReq.Validate(); err != nil {
		slog.Error("Create teacher validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	created, err := h.teacherService.Create(r.Context(), createReq)
	if err != nil {
		slog.Error("Create teacher service error", "error", err)
		response.HandleError(w, err)
		return
	}

	h.auditService.Record(r.Context(), "CREATE_TEACHER",
		fmt.Sprintf("Created teacher %s (%s)", created.Teacher.FullName, created.Teacher.EmployeeID), r.RemoteAddr)
	slog.Info("Teacher created successfully", "employee_id", created.Teacher.EmployeeID)
	response.Created(w, "Teacher created successfully", created)
}

// Update implements TeacherHandler.
func (h *TeacherHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var updateReq teacher.UpdateTeacherRequest

	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("Update teacher decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	updateReq.ID = chi.URLParam(r, "id")

	if err := updateReq.Validate(); err != nil {
		slog.Error("Update teacher validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	updated, err := h.teacherService.Update(r.Context(), updateReq)
	if err != nil {
		slog.Error("Update teacher service error", "error", err)
		response.HandleError(w, err)
		return
	}

	h.auditService.Record(r.Context(), "UPDATE_TEACHER",
		fmt.Sprintf("Updated teacher %s", updated.EmployeeID), r.RemoteAddr)
	response.SuccessWithMessage(w, "Teacher updated successfully", updated)
}

// Delete implements TeacherHandler.
func (h *TeacherHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.teacherService.Delete(r.Context(), id); err != nil {
		slog.Error("Delete teacher service error", "error", err)
		response.HandleError(w, err)
		return
	}

	h.auditService.Record(r.Context(), "DELETE_TEACHER",
		fmt.Sprintf("Deleted teacher %s", id), r.RemoteAddr)
	response.SuccessWithMessage(w, "Teacher deleted successfully", nil)
}

// Profile implements TeacherHandler.
func (h *TeacherHandlerImpl) Profile(w http.ResponseWriter, r *http.Request) {
	profile, err := h.teacherService.Profile(r.Context())
	if err != nil {
		slog.Error("Teacher profile service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, profile)
}

// UpdateProfile implements TeacherHandler.
func (h *TeacherHandlerImpl) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var updateReq teacher.UpdateProfileRequest

	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("Update profile decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := updateReq.Validate(); err != nil {
		slog.Error("Update profile validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	updated, err := h.teacherService.UpdateProfile(r.Context(), updateReq)
	if err != nil {
		slog.Error("Update profile service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Profile updated successfully", updated)
}
