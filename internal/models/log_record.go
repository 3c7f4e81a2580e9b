package models

// OperationDownload is the operation tag that marks a resource download.
// Only records carrying it contribute to usage statistics.
const OperationDownload = "REST.GET.OBJECT"

// LogRecord is one successfully parsed access-log line. All fields are kept
// as captured; numeric fields are converted lazily during aggregation so a
// dash or garbage value never aborts parsing.
type LogRecord struct {
	Owner            string
	Bucket           string
	Time             string // bracketed timestamp, e.g. [19/Apr/2022:10:00:00 +0000]
	RemoteIP         string
	Requester        string
	RequestID        string
	Operation        string
	Key              string
	RequestURI       string // quoted field, captured without quotes
	HTTPStatus       string
	ErrorCode        string
	BytesSent        string
	ObjectSize       string
	TotalTime        string // milliseconds
	TurnAroundTime   string
	Referrer         string // quoted field, captured without quotes
	UserAgent        string // quoted field, captured without quotes
	SignatureVersion string
}

// IsDownload reports whether the record is a resource download.
func (r *LogRecord) IsDownload() bool {
	return r.Operation == OperationDownload
}
