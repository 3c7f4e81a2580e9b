package reports

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"
	"sync"
	"time"

	"access-stats/internal/aggregators"
	"access-stats/internal/models"
	"access-stats/internal/parsers"
	"access-stats/internal/processors"
	"access-stats/internal/shared/filestorages"
	"access-stats/internal/shared/loggers"
	"access-stats/internal/shared/metrics"
	"access-stats/internal/shared/svcerrors"
	"access-stats/internal/shared/ulid"
	"access-stats/internal/shared/validators"
	"access-stats/internal/sources"
	"access-stats/internal/streams"
)

// BuildOptions are the per-run filtering options. Zero values fall back to
// the configured defaults; the resolved options are immutable for the run.
type BuildOptions struct {
	ExcludeLinesMatching string
	DateCutoff           string // ISO day, e.g. 2022-04-16
}

//go:generate mockgen -source=report_service.go -destination=./mocks/report_service_mock.go -package=mocks
type ReportService interface {
	// BuildReport enumerates every blob of the source, processes blobs in
	// parallel and merges the partial statistics tables into one report,
	// which is stored as a JSON artifact and returned.
	BuildReport(ctx context.Context, opts BuildOptions) (*models.Report, error)

	// GetReport loads a previously stored report.
	GetReport(ctx context.Context, reportID string) (*models.Report, error)
}

type reportService struct {
	source      sources.Source
	reportStore ReportStore
	rolluper    aggregators.StatisticsTableRolluper
	defaults    BuildOptions
	validate    *validators.Validate
}

func NewReportService(source sources.Source, reportStore ReportStore, rolluper aggregators.StatisticsTableRolluper, defaults BuildOptions) ReportService {
	return &reportService{
		source:      source,
		reportStore: reportStore,
		rolluper:    rolluper,
		defaults:    defaults,
		validate:    validators.New(),
	}
}

func (s *reportService) BuildReport(ctx context.Context, opts BuildOptions) (*models.Report, error) {
	logger := loggers.Ctx(ctx)

	opts = s.resolveOptions(opts)
	if err := s.validate.Var(opts.DateCutoff, "omitempty,datetime=2006-01-02"); err != nil {
		return nil, errValidationFailed(fmt.Sprintf("dateCutoff must be a calendar day (2006-01-02), got %q", opts.DateCutoff), err)
	}

	logger.Debug().
		Str("date_cutoff", opts.DateCutoff).
		Str("exclude_lines_matching", opts.ExcludeLinesMatching).
		Msg("started report run")

	table, err := s.aggregateAll(ctx, opts)
	if err != nil {
		var svcErr *svcerrors.ServiceError
		if errors.Is(err, sources.ErrSourceUnavailable) {
			svcErr = errSourceUnavailable(err)
		} else {
			svcErr = svcerrors.NewInternalErrorUndefined(err)
		}
		metricReportRunsTotal.WithLabelValues(svcErr.Code).Inc()
		return nil, svcErr
	}

	report := &models.Report{
		ReportID:    ulid.NewULID(),
		GeneratedAt: time.Now().UTC(),
		Stats:       table,
	}

	if err := s.reportStore.Put(ctx, report); err != nil {
		svcErr := errInternalReportStoreFailed(err)
		metricReportRunsTotal.WithLabelValues(svcErr.Code).Inc()
		return nil, svcErr
	}

	metricReportRunsTotal.WithLabelValues(metrics.ValueNoError).Inc()
	logger.Info().
		Str(loggers.FieldReportID, report.ReportID).
		Int("resources", len(table)).
		Msg("report run completed")

	return report, nil
}

func (s *reportService) GetReport(ctx context.Context, reportID string) (*models.Report, error) {
	if reportID == "" {
		return nil, errValidationFailed("reportID is required", nil)
	}

	report, err := s.reportStore.Get(ctx, reportID)
	if err != nil {
		if errors.Is(err, filestorages.ErrFileNotFound) || errors.Is(err, filestorages.ErrInvalidKey) {
			return nil, errReportNotFound(reportID, err)
		}
		return nil, errInternalReportStoreFailed(err)
	}
	return report, nil
}

// aggregateAll runs the fan-out/fan-in pipeline: blobs are distributed over
// the queue's partitions, each partition worker parses and aggregates its
// blobs into partial tables, and a single reduce loop merges the partials.
// Blob processing is pure, so only the final merge needs serialization.
func (s *reportService) aggregateAll(ctx context.Context, opts BuildOptions) (models.StatisticsTable, error) {
	processor := processors.NewBatchProcessor(parsers.NewRecordFilter(opts.ExcludeLinesMatching))
	aggregator := aggregators.NewUsageAggregator(opts.DateCutoff)

	queue := streams.NewPartitionedQueue[*sources.Blob]()
	partials := make(chan models.StatisticsTable, queue.PartitionCount())

	var workers sync.WaitGroup
	for partitionIndex := 0; partitionIndex < queue.PartitionCount(); partitionIndex++ {
		ch := queue.Partition(partitionIndex)
		workers.Add(1)
		go func() {
			defer workers.Done()
			s.runPartitionWorker(ctx, processor, aggregator, ch, partials)
		}()
	}

	// Enumerate in a separate goroutine so publishing can block on the
	// partition buffers while workers drain them.
	enumErr := make(chan error, 1)
	go func() {
		defer queue.Close()
		enumErr <- s.source.EachBlob(ctx, func(_ context.Context, blob *sources.Blob) error {
			metricSourceBlobsTotal.Inc()
			queue.Publish(blob.Key, blob)
			return nil
		})
	}()

	go func() {
		workers.Wait()
		close(partials)
	}()

	table := models.NewStatisticsTable()
	for partial := range partials {
		s.rolluper.Rollup(table, partial)
	}

	if err := <-enumErr; err != nil {
		return nil, err
	}
	return table, nil
}

func (s *reportService) runPartitionWorker(ctx context.Context, processor processors.BatchProcessor, aggregator aggregators.UsageAggregator, ch <-chan *sources.Blob, partials chan<- models.StatisticsTable) {
	for blob := range ch {
		// Contain panics so one malformed blob cannot take down the run.
		func() {
			defer func() {
				if r := recover(); r != nil {
					loggers.Ctx(ctx).Error().
						Str(loggers.FieldBlobKey, blob.Key).
						Bytes(loggers.FieldErrorStack, debug.Stack()).
						Msg("blob worker panic recovered")
				}
			}()

			result := processor.Process(blob.Text)
			loggers.Ctx(ctx).Debug().
				Str(loggers.FieldBlobKey, blob.Key).
				Interface("operation_counts", result.OperationCounts).
				Interface("user_agent_counts", result.UserAgentCounts).
				Msg("blob processed")

			partials <- aggregator.Aggregate(result.Downloads)
		}()
	}
}

func (s *reportService) resolveOptions(opts BuildOptions) BuildOptions {
	if opts.ExcludeLinesMatching == "" {
		opts.ExcludeLinesMatching = s.defaults.ExcludeLinesMatching
	}
	if opts.DateCutoff == "" {
		opts.DateCutoff = s.defaults.DateCutoff
	}
	return opts
}
