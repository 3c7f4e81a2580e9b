package sources

import (
	"context"
	"errors"
)

// ErrSourceUnavailable marks a source that cannot be enumerated at all
// (missing directory, failed listing). It is fatal for a report run and
// always surfaces before any aggregation begins.
var ErrSourceUnavailable = errors.New("log source unavailable")

// Blob is the complete raw text of one log file or one fetched object.
type Blob struct {
	Key  string
	Text string
}

//go:generate mockgen -source=source.go -destination=./mocks/source_mock.go -package=mocks
type Source interface {
	// EachBlob invokes fn for every log blob in enumeration order. There is
	// no chronological guarantee across blobs. A non-nil error from fn stops
	// the enumeration and is returned unchanged.
	EachBlob(ctx context.Context, fn func(ctx context.Context, blob *Blob) error) error
}
