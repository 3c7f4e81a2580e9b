package http

import (
	"encoding/json"
	"net/http"

	"access-stats/internal/reports"

	"github.com/go-chi/chi/v5"
)

type getReportHandler struct {
	reportService reports.ReportService
}

func NewGetReportHandler(reportService reports.ReportService) AppHttpHandler {
	return &getReportHandler{
		reportService: reportService,
	}
}

// Handle processes GET /reports/{reportID} requests.
func (h *getReportHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	report, err := h.reportService.GetReport(r.Context(), chi.URLParam(r, "reportID"))
	if err != nil {
		return err
	}

	w.Header().Set("Content-Type", "application/json")
	return json.NewEncoder(w).Encode(report)
}
