package reports

import (
	"fmt"

	"access-stats/internal/shared/svcerrors"
)

// ReportService errors
const (
	codeValidationFailed  = "RPT_1000"
	codeReportNotFound    = "RPT_1001"
	codeSourceUnavailable = "RPT_2000"

	codeInternalReportStoreFailed = "RPT_9000"
)

// errValidationFailed returns an error for invalid report options.
func errValidationFailed(msg string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeValidationFailed, msg, cause)
}

// errReportNotFound returns an error for an unknown report ID.
func errReportNotFound(reportID string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewNotFoundError(codeReportNotFound, fmt.Sprintf("report %q not found", reportID), cause)
}

// errSourceUnavailable returns an error when the log source cannot be enumerated.
func errSourceUnavailable(cause error) *svcerrors.ServiceError {
	return svcerrors.NewUnavailableError(codeSourceUnavailable, "log source unavailable", cause)
}

// errInternalReportStoreFailed returns an error when a report store operation fails.
func errInternalReportStoreFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalReportStoreFailed, fmt.Errorf("reportStoreFailed: %w", cause))
}
