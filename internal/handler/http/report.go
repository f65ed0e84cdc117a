package http

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/edupay/edupay-backend-go/internal/domain/payroll"
	"github.com/edupay/edupay-backend-go/internal/domain/report"
	"github.com/edupay/edupay-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type ReportHandler interface {
	Monthly(w http.ResponseWriter, r *http.Request)
	ExportExcel(w http.ResponseWriter, r *http.Request)
	ExportPDF(w http.ResponseWriter, r *http.Request)
	PayslipPDF(w http.ResponseWriter, r *http.Request)

	TeacherPayslips(w http.ResponseWriter, r *http.Request)
	TeacherPayslipPDF(w http.ResponseWriter, r *http.Request)
	SalaryHistory(w http.ResponseWriter, r *http.Request)
}

type ReportHandlerImpl struct {
	reportService  report.Service
	payrollService payroll.PayrollService
}

func NewReportHandler(reportService report.Service, payrollService payroll.PayrollService) ReportHandler {
	return &ReportHandlerImpl{
		reportService:  reportService,
		payrollService: payrollService,
	}
}

// Monthly implements ReportHandler. Month and year query params are
// optional; without them every batch is returned.
func (h *ReportHandlerImpl) Monthly(w http.ResponseWriter, r *http.Request) {
	month, err := optionalIntQuery(r, "month")
	if err != nil {
		response.BadRequest(w, "month must be a number", nil)
		return
	}
	year, err := optionalIntQuery(r, "year")
	if err != nil {
		response.BadRequest(w, "year must be a number", nil)
		return
	}

	batches, err := h.payrollService.MonthlyReport(r.Context(), month, year)
	if err != nil {
		slog.Error("Monthly report service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, batches)
}

// ExportExcel implements ReportHandler.
func (h *ReportHandlerImpl) ExportExcel(w http.ResponseWriter, r *http.Request) {
	export, err := h.reportService.ExportBatchExcel(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		slog.Error("Export excel service error", "error", err)
		response.HandleError(w, err)
		return
	}

	writeExport(w, export)
}

// ExportPDF implements ReportHandler.
func (h *ReportHandlerImpl) ExportPDF(w http.ResponseWriter, r *http.Request) {
	export, err := h.reportService.ExportBatchPDF(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		slog.Error("Export pdf service error", "error", err)
		response.HandleError(w, err)
		return
	}

	writeExport(w, export)
}

// PayslipPDF implements ReportHandler.
func (h *ReportHandlerImpl) PayslipPDF(w http.ResponseWriter, r *http.Request) {
	export, err := h.reportService.PayslipPDF(r.Context(), chi.URLParam(r, "itemID"))
	if err != nil {
		slog.Error("Payslip pdf service error", "error", err)
		response.HandleError(w, err)
		return
	}

	writeExport(w, export)
}

// TeacherPayslips implements ReportHandler.
func (h *ReportHandlerImpl) TeacherPayslips(w http.ResponseWriter, r *http.Request) {
	payslips, err := h.reportService.TeacherPayslips(r.Context())
	if err != nil {
		slog.Error("Teacher payslips service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, payslips)
}

// TeacherPayslipPDF implements ReportHandler.
func (h *ReportHandlerImpl) TeacherPayslipPDF(w http.ResponseWriter, r *http.Request) {
	export, err := h.reportService.PayslipPDFForTeacher(r.Context(), chi.URLParam(r, "itemID"))
	if err != nil {
		slog.Error("Teacher payslip pdf service error", "error", err)
		response.HandleError(w, err)
		return
	}

	writeExport(w, export)
}

// SalaryHistory implements ReportHandler.
func (h *ReportHandlerImpl) SalaryHistory(w http.ResponseWriter, r *http.Request) {
	history, err := h.reportService.SalaryHistory(r.Context())
	if err != nil {
		slog.Error("Salary history service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, history)
}

func writeExport(w http.ResponseWriter, export report.Export) {
	w.Header().Set("Content-Type", export.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.Filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(export.Data)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(export.Data)
}

func optionalIntQuery(r *http.Request, key string) (*int, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
