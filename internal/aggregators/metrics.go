package aggregators

import (
	"access-stats/internal/shared/metrics"
)

var (
	metricRecordsAggregatedTotal = metrics.NewCounter(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubReport,
			Name:      "records_aggregated_total",
		},
	)

	metricRecordsMalformedDateTotal = metrics.NewCounter(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubReport,
			Name:      "records_malformed_date_total",
		},
	)
)
