package http

import (
	"fmt"
	"net/http"

	"github.com/Jaganbehera1/Worker-Management-System/internal/domain/report"
	"github.com/Jaganbehera1/Worker-Management-System/internal/handler/http/response"
	"github.com/Jaganbehera1/Worker-Management-System/internal/pkg/validator"
	"github.com/go-chi/chi/v5"
)

type ReportHandler interface {
	GetMonthlyReport(w http.ResponseWriter, r *http.Request)
	GetMonthlySummary(w http.ResponseWriter, r *http.Request)
	DownloadPayslip(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{reportService: reportService}
}

func monthParam(r *http.Request) (report.Month, error) {
	monthStr := r.URL.Query().Get("month")
	if !validator.IsValidMonth(monthStr) {
		return report.Month{}, report.ErrInvalidMonth
	}
	m, err := report.ParseMonth(monthStr)
	if err != nil {
		return report.Month{}, report.ErrInvalidMonth
	}
	return m, nil
}

func (h *reportHandlerImpl) GetMonthlyReport(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeId")
	if employeeID == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	m, err := monthParam(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.reportService.GetMonthlyReport(r.Context(), employeeID, m)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *reportHandlerImpl) GetMonthlySummary(w http.ResponseWriter, r *http.Request) {
	m, err := monthParam(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.reportService.GetMonthlySummary(r.Context(), m)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *reportHandlerImpl) DownloadPayslip(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeId")
	if employeeID == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	m, err := monthParam(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	export, err := h.reportService.ExportPayslip(r.Context(), employeeID, m)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.Filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(export.Content))
}
