package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/edupay/edupay-backend-go/internal/domain/audit"
	"github.com/edupay/edupay-backend-go/internal/domain/payroll"
	"github.com/edupay/edupay-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type PayrollHandler interface {
	ListBatches(w http.ResponseWriter, r *http.Request)
	Process(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	ListItems(w http.ResponseWriter, r *http.Request)
	SetItemPaymentStatus(w http.ResponseWriter, r *http.Request)
}

type PayrollHandlerImpl struct {
	payrollService payroll.PayrollService
	auditService   audit.Service
}

func NewPayrollHandler(payrollService payroll.PayrollService, auditService audit.Service) PayrollHandler {
	return &PayrollHandlerImpl{
		payrollService: payrollService,
		auditService:   auditService,
	}
}

// ListBatches implements PayrollHandler.
func (h *PayrollHandlerImpl) ListBatches(w http.ResponseWriter, r *http.Request) {
	batches, err := h.payrollService.ListBatches(r.Context())
	if err != nil {
		slog.Error("List payroll batches service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, batches)
}

// Process implements PayrollHandler.
func (h *PayrollHandlerImpl) Process(w http.ResponseWriter, r *http.Request) {
	var processReq payroll.ProcessRequest

	if err := json.NewDecoder(r.Body).Decode(&processReq); err != nil {
		slog.Error("Process payroll decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := processReq.Validate(); err != nil {
		slog.Error("Process payroll validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	batch, err := h.payrollService.Process(r.Context(), processReq)
	if err != nil {
		slog.Error("Process payroll service error", "error", err)
		response.HandleError(w, err)
		return
	}

	h.auditService.Record(r.Context(), "PROCESS_PAYROLL",
		fmt.Sprintf("Processed payroll for %s %d (%d items)", time.Month(batch.Month), batch.Year, batch.ItemCount), r.RemoteAddr)
	slog.Info("Payroll processed successfully", "month", batch.Month, "year", batch.Year, "items", batch.ItemCount)
	response.Created(w, "Payroll processed successfully", batch)
}

// Approve implements PayrollHandler.
func (h *PayrollHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	batch, err := h.payrollService.Approve(r.Context(), id)
	if err != nil {
		slog.Error("Approve payroll service error", "error", err)
		response.HandleError(w, err)
		return
	}

	h.auditService.Record(r.Context(), "APPROVE_PAYROLL",
		fmt.Sprintf("Approved payroll for %s %d", time.Month(batch.Month), batch.Year), r.RemoteAddr)
	slog.Info("Payroll approved successfully", "month", batch.Month, "year", batch.Year)
	response.SuccessWithMessage(w, "Payroll approved successfully", batch)
}

// ListItems implements PayrollHandler.
func (h *PayrollHandlerImpl) ListItems(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	items, err := h.payrollService.ListItems(r.Context(), id)
	if err != nil {
		slog.Error("List payroll items service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, items)
}

// SetItemPaymentStatus implements PayrollHandler.
func (h *PayrollHandlerImpl) SetItemPaymentStatus(w http.ResponseWriter, r *http.Request) {
	var statusReq payroll.PaymentStatusRequest

	if err := json.NewDecoder(r.Body).Decode(&statusReq); err != nil {
		slog.Error("Set payment status decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	statusReq.ItemID = chi.URLParam(r, "id")

	if err := statusReq.Validate(); err != nil {
		slog.Error("Set payment status validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	item, err := h.payrollService.SetItemPaymentStatus(r.Context(), statusReq)
	if err != nil {
		slog.Error("Set payment status service error", "error", err)
		response.HandleError(w, err)
		return
	}

	h.auditService.Record(r.Context(), "SET_PAYMENT_STATUS",
		fmt.Sprintf("Marked payroll item %s as %s", item.ID, item.PaymentStatus), r.RemoteAddr)
	response.SuccessWithMessage(w, "Payment status updated successfully", item)
}
