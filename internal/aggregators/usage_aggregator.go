package aggregators

import (
	"strconv"
	"strings"
	"time"

	"access-stats/internal/models"
)

const (
	logDateLayout = "02/Jan/2006"
	isoDateLayout = "2006-01-02"
)

//go:generate mockgen -source=usage_aggregator.go -destination=./mocks/usage_aggregator_mock.go -package=mocks
type UsageAggregator interface {
	// Aggregate folds retained download records, in order, into a statistics
	// table keyed by resource. Records with an empty key are skipped.
	//
	// Downloads counts every record regardless of the cutoff date; bandwidth,
	// request time and the date set accumulate only for records dated on or
	// after the cutoff. The asymmetry is contract: download totals stay
	// comparable across runs while the per-day views honor the cutoff.
	Aggregate(records []*models.LogRecord) models.StatisticsTable
}

type usageAggregator struct {
	cutoff string // ISO day (2006-01-02) or "" for no cutoff
}

// NewUsageAggregator creates an aggregator with an optional earliest-date
// cutoff. An empty cutoff disables date filtering.
func NewUsageAggregator(cutoff string) UsageAggregator {
	return &usageAggregator{cutoff: cutoff}
}

func (a *usageAggregator) Aggregate(records []*models.LogRecord) models.StatisticsTable {
	table := models.NewStatisticsTable()

	for _, record := range records {
		if record.Key == "" {
			continue
		}

		stats := table.Get(record.Key)
		stats.Downloads++

		day, ok := calendarDay(record.Time)
		if !ok {
			// the downloads increment above stands; only the date-dependent
			// effects of this record are dropped
			metricRecordsMalformedDateTotal.Inc()
			continue
		}

		// ISO day strings order lexicographically like dates
		if a.cutoff != "" && day < a.cutoff {
			continue
		}

		stats.Dates.Add(day)
		if bytes, err := strconv.ParseInt(record.BytesSent, 10, 64); err == nil {
			stats.Bandwidth += bytes
		}
		if millis, err := strconv.ParseFloat(record.TotalTime, 64); err == nil {
			stats.TotalRequestTimeInMinutes += millis / 60000
		}
	}

	metricRecordsAggregatedTotal.Add(float64(len(records)))

	return table
}

// calendarDay extracts the date portion of a bracketed timestamp like
// [19/Apr/2022:10:00:00 +0000] and reformats it as an ISO day.
func calendarDay(bracketedTime string) (string, bool) {
	trimmed := strings.TrimPrefix(bracketedTime, "[")
	datePart, _, found := strings.Cut(trimmed, ":")
	if !found {
		return "", false
	}
	day, err := time.Parse(logDateLayout, datePart)
	if err != nil {
		return "", false
	}
	return day.Format(isoDateLayout), true
}
