package processors

import (
	"strings"

	"access-stats/internal/models"
	"access-stats/internal/parsers"

	"github.com/mileusna/useragent"
)

//go:generate mockgen -source=batch_processor.go -destination=./mocks/batch_processor_mock.go -package=mocks
type BatchProcessor interface {
	// Process parses one blob's full text into a BatchResult. It is a pure
	// function of the blob text and the immutable filter; safe to call
	// concurrently for independent blobs.
	Process(blobText string) *models.BatchResult
}

type batchProcessor struct {
	filter *parsers.RecordFilter
}

func NewBatchProcessor(filter *parsers.RecordFilter) BatchProcessor {
	return &batchProcessor{filter: filter}
}

func (p *batchProcessor) Process(blobText string) *models.BatchResult {
	result := models.NewBatchResult()

	// A trailing line break must not produce a spurious empty record.
	blobText = strings.TrimSuffix(blobText, "\n")
	if blobText == "" {
		return result
	}

	for _, line := range strings.Split(blobText, "\n") {
		line = strings.TrimSuffix(line, "\r")

		if p.filter.ExcludesLine(line) {
			continue
		}

		record, ok := parsers.ParseLine(line)
		if !ok {
			continue
		}

		result.OperationCounts[record.Operation]++
		result.UserAgentCounts[p.normalizeUserAgent(record.UserAgent)]++

		if record.IsDownload() {
			result.Downloads = append(result.Downloads, record)
		}
	}

	metricBlobsProcessedTotal.Inc()
	metricRecordsParsedTotal.Add(float64(sumCounts(result.OperationCounts)))
	metricDownloadsRetainedTotal.Add(float64(len(result.Downloads)))

	return result
}

// normalizeUserAgent parses the user agent to extract its family, or returns
// the original string if parsing yields nothing.
func (p *batchProcessor) normalizeUserAgent(ua string) string {
	parsed := useragent.Parse(ua)
	if parsed.Name != "" {
		return parsed.Name
	}
	return ua
}

func sumCounts(counts map[string]int64) int64 {
	var total int64
	for _, n := range counts {
		total += n
	}
	return total
}
