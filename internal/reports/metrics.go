package reports

import (
	"access-stats/internal/shared/metrics"
)

var (
	metricReportRunsTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubReport,
			Name:      "runs_total",
		},
		[]string{metrics.FieldErrorCode},
	)

	metricSourceBlobsTotal = metrics.NewCounter(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubSource,
			Name:      "blobs_total",
		},
	)
)
