package models

// BatchResult is the outcome of processing one blob (one log file's or one
// fetched object's full text). Downloads keeps the retained records in input
// order; the tallies count every parsed record regardless of operation and
// exist for diagnostic logging only.
//
// A BatchResult is created per blob and consumed immediately by the
// aggregation pipeline; it is never retained.
type BatchResult struct {
	Downloads []*LogRecord

	// OperationCounts maps operation name to occurrences within the blob.
	OperationCounts map[string]int64

	// UserAgentCounts maps user-agent family to occurrences within the blob.
	UserAgentCounts map[string]int64
}

func NewBatchResult() *BatchResult {
	return &BatchResult{
		OperationCounts: make(map[string]int64),
		UserAgentCounts: make(map[string]int64),
	}
}
