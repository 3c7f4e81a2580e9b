package processors

import (
	"strings"
	"testing"

	"access-stats/internal/parsers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	downloadLine = `webmaster webmaster-logs [19/Apr/2022:10:00:00 +0000] 1.2.3.4 - REQID REST.GET.OBJECT photo.jpg "GET /photo.jpg HTTP/1.1" 200 - 1024 2048 50 10 "-" "curl/7.0" -`
	headLine     = `webmaster webmaster-logs [19/Apr/2022:10:05:00 +0000] 1.2.3.4 - REQID2 REST.HEAD.OBJECT photo.jpg "HEAD /photo.jpg HTTP/1.1" 200 - 0 2048 5 3 "-" "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/90.0.0.0 Safari/537.36" -`
	putLine      = `webmaster webmaster-logs [20/Apr/2022:09:00:00 +0000] 5.6.7.8 uploader REQID3 REST.PUT.OBJECT report.pdf "PUT /report.pdf HTTP/1.1" 200 - 4096 4096 120 80 "-" "aws-cli/2.0" -`
)

func TestProcess_RetainsOnlyDownloadsInOrder(t *testing.T) {
	t.Parallel()

	processor := NewBatchProcessor(parsers.NewRecordFilter(""))

	blob := strings.Join([]string{headLine, downloadLine, putLine, downloadLine}, "\n") + "\n"
	result := processor.Process(blob)

	require.Len(t, result.Downloads, 2)
	assert.Equal(t, "photo.jpg", result.Downloads[0].Key)
	assert.Equal(t, "photo.jpg", result.Downloads[1].Key)

	assert.Equal(t, map[string]int64{
		"REST.GET.OBJECT":  2,
		"REST.HEAD.OBJECT": 1,
		"REST.PUT.OBJECT":  1,
	}, result.OperationCounts)
}

func TestProcess_TalliesUserAgentFamilies(t *testing.T) {
	t.Parallel()

	processor := NewBatchProcessor(parsers.NewRecordFilter(""))

	blob := strings.Join([]string{downloadLine, headLine}, "\n")
	result := processor.Process(blob)

	assert.Equal(t, int64(1), result.UserAgentCounts["curl"])
	assert.Equal(t, int64(1), result.UserAgentCounts["Chrome"])
}

func TestProcess_MalformedLinesAreNoOps(t *testing.T) {
	t.Parallel()

	processor := NewBatchProcessor(parsers.NewRecordFilter(""))

	blob := strings.Join([]string{
		"garbage that is not a log line",
		downloadLine,
		"", // blank line inside blob
		"truncated partial wri",
	}, "\n")
	result := processor.Process(blob)

	require.Len(t, result.Downloads, 1)
	assert.Equal(t, map[string]int64{"REST.GET.OBJECT": 1}, result.OperationCounts)
}

func TestProcess_ExclusionGateRunsBeforeParsing(t *testing.T) {
	t.Parallel()

	processor := NewBatchProcessor(parsers.NewRecordFilter("curl/7.0"))

	result := processor.Process(downloadLine + "\n" + headLine)

	// the curl line is dropped entirely: no retained record, no tally
	assert.Empty(t, result.Downloads)
	assert.Equal(t, map[string]int64{"REST.HEAD.OBJECT": 1}, result.OperationCounts)
}

func TestProcess_EmptyBlob(t *testing.T) {
	t.Parallel()

	processor := NewBatchProcessor(parsers.NewRecordFilter(""))

	for _, blob := range []string{"", "\n"} {
		result := processor.Process(blob)
		assert.Empty(t, result.Downloads)
		assert.Empty(t, result.OperationCounts)
	}
}

func TestProcess_CRLFLineEndings(t *testing.T) {
	t.Parallel()

	processor := NewBatchProcessor(parsers.NewRecordFilter(""))

	result := processor.Process(downloadLine + "\r\n" + headLine + "\r\n")

	require.Len(t, result.Downloads, 1)
	assert.Equal(t, map[string]int64{
		"REST.GET.OBJECT":  1,
		"REST.HEAD.OBJECT": 1,
	}, result.OperationCounts)
}
