package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Jaganbehera1/Worker-Management-System/internal/domain/employee"
	"github.com/Jaganbehera1/Worker-Management-System/internal/domain/payment"
	"github.com/Jaganbehera1/Worker-Management-System/internal/domain/report"
	"github.com/Jaganbehera1/Worker-Management-System/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeReportService struct {
	report  report.MonthlyReportResponse
	summary report.MonthlySummaryResponse
	export  report.PayslipExport
	err     error
}

func (f *fakeReportService) GetMonthlyReport(_ context.Context, employeeID string, m report.Month) (report.MonthlyReportResponse, error) {
	if f.err != nil {
		return report.MonthlyReportResponse{}, f.err
	}
	return f.report, nil
}

func (f *fakeReportService) GetMonthlySummary(_ context.Context, m report.Month) (report.MonthlySummaryResponse, error) {
	if f.err != nil {
		return report.MonthlySummaryResponse{}, f.err
	}
	return f.summary, nil
}

func (f *fakeReportService) ExportPayslip(_ context.Context, employeeID string, m report.Month) (report.PayslipExport, error) {
	if f.err != nil {
		return report.PayslipExport{}, f.err
	}
	return f.export, nil
}

func reportTestRouter(svc report.ReportService) *chi.Mux {
	h := NewReportHandler(svc)
	r := chi.NewRouter()
	r.Get("/reports/summary", h.GetMonthlySummary)
	r.Get("/reports/employees/{employeeId}", h.GetMonthlyReport)
	r.Get("/reports/employees/{employeeId}/payslip", h.DownloadPayslip)
	return r
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) response.Response {
	var resp response.Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp
}

func TestGetMonthlyReportHandler(t *testing.T) {
	svc := &fakeReportService{report: report.MonthlyReportResponse{
		Month:          "2024-03",
		FinalAmount:    decimal.NewFromInt(3300),
		BalanceDisplay: "+₹3,300",
	}}

	req := httptest.NewRequest(http.MethodGet, "/reports/employees/emp-1?month=2024-03", nil)
	rec := httptest.NewRecorder()
	reportTestRouter(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	resp := decodeResponse(t, rec)
	assert.True(t, resp.Success)
}

func TestGetMonthlyReportHandler_MissingMonth(t *testing.T) {
	svc := &fakeReportService{}

	req := httptest.NewRequest(http.MethodGet, "/reports/employees/emp-1", nil)
	rec := httptest.NewRecorder()
	reportTestRouter(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decodeResponse(t, rec)
	assert.False(t, resp.Success)
}

func TestGetMonthlyReportHandler_BadMonth(t *testing.T) {
	svc := &fakeReportService{}

	for _, month := range []string{"march", "2024-1", "2024-13", "2024-00", "2024-03-01"} {
		req := httptest.NewRequest(http.MethodGet, "/reports/employees/emp-1?month="+month, nil)
		rec := httptest.NewRecorder()
		reportTestRouter(svc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code, "month=%s", month)
	}
}

func TestGetMonthlyReportHandler_EmployeeNotFound(t *testing.T) {
	svc := &fakeReportService{err: employee.ErrEmployeeNotFound}

	req := httptest.NewRequest(http.MethodGet, "/reports/employees/missing?month=2024-03", nil)
	rec := httptest.NewRecorder()
	reportTestRouter(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetMonthlySummaryHandler(t *testing.T) {
	svc := &fakeReportService{summary: report.MonthlySummaryResponse{
		Month:             "2024-03",
		PaymentsAvailable: true,
	}}

	req := httptest.NewRequest(http.MethodGet, "/reports/summary?month=2024-03", nil)
	rec := httptest.NewRecorder()
	reportTestRouter(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	resp := decodeResponse(t, rec)
	assert.True(t, resp.Success)
}

func TestGetMonthlySummaryHandler_PaymentStoreError(t *testing.T) {
	svc := &fakeReportService{err: payment.ErrStoreUnavailable}

	req := httptest.NewRequest(http.MethodGet, "/reports/summary?month=2024-03", nil)
	rec := httptest.NewRecorder()
	reportTestRouter(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestDownloadPayslipHandler(t *testing.T) {
	svc := &fakeReportService{export: report.PayslipExport{
		Filename: "Ramesh Kumar_2024-03_payslip.txt",
		Content:  "PAYSLIP\nMarch 2024\n",
	}}

	req := httptest.NewRequest(http.MethodGet, "/reports/employees/emp-1/payslip?month=2024-03", nil)
	rec := httptest.NewRecorder()
	reportTestRouter(svc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/plain; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="Ramesh Kumar_2024-03_payslip.txt"`, rec.Header().Get("Content-Disposition"))
	assert.Contains(t, rec.Body.String(), "PAYSLIP")
}
