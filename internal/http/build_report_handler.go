package http

import (
	"encoding/json"
	"io"
	"net/http"

	"access-stats/internal/reports"
	"access-stats/internal/shared/svcerrors"
)

type AppHttpHandler interface {
	Handle(w http.ResponseWriter, r *http.Request) error
}

// BuildReportRequest is the POST /reports body. Both fields are optional
// overrides of the configured defaults.
type BuildReportRequest struct {
	DateCutoff           string `json:"dateCutoff"`
	ExcludeLinesMatching string `json:"excludeLinesMatching"`
}

type buildReportHandler struct {
	reportService reports.ReportService
}

func NewBuildReportHandler(reportService reports.ReportService) AppHttpHandler {
	return &buildReportHandler{
		reportService: reportService,
	}
}

// Handle processes POST /reports requests.
func (h *buildReportHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	var req BuildReportRequest
	if r.Body != nil {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			return svcerrors.NewInvalidArgumentError("RPT_1000", "failed to read request body", err)
		}
		if len(body) > 0 {
			if err := json.Unmarshal(body, &req); err != nil {
				return svcerrors.NewInvalidArgumentError("RPT_1000", "invalid json", err)
			}
		}
	}

	report, err := h.reportService.BuildReport(r.Context(), reports.BuildOptions{
		DateCutoff:           req.DateCutoff,
		ExcludeLinesMatching: req.ExcludeLinesMatching,
	})
	if err != nil {
		return err
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	return json.NewEncoder(w).Encode(report)
}
