package processors

import (
	"access-stats/internal/shared/metrics"
)

var (
	metricBlobsProcessedTotal = metrics.NewCounter(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubProcessing,
			Name:      "blobs_processed_total",
		},
	)

	metricRecordsParsedTotal = metrics.NewCounter(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubProcessing,
			Name:      "records_parsed_total",
		},
	)

	metricDownloadsRetainedTotal = metrics.NewCounter(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubProcessing,
			Name:      "downloads_retained_total",
		},
	)
)
