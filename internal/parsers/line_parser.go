package parsers

import (
	"regexp"

	"access-stats/internal/models"
)

// linePattern is the full access-log field grammar: 18 whitespace-separated
// fields in fixed order. Unquoted fields are runs of non-whitespace, the
// timestamp is bracketed and may contain spaces, and the request line,
// referrer and user agent are double-quoted and may contain internal
// whitespace (but no quotes). The pattern is anchored: a line either matches
// the whole grammar once, left to right, or not at all.
var linePattern = regexp.MustCompile(
	`^(\S+) (\S+) (\[[^\]]*\]) (\S+) (\S+) (\S+) (\S+) (\S+) "([^"]*)" (\S+) (\S+) (\S+) (\S+) (\S+) (\S+) "([^"]*)" "([^"]*)" (\S)$`)

// ParseLine converts one raw log line into a LogRecord. Lines that do not
// satisfy the full field grammar return (nil, false); truncated writes and
// non-log content are routine in log streams and must not abort processing.
func ParseLine(line string) (*models.LogRecord, bool) {
	m := linePattern.FindStringSubmatch(line)
	if m == nil {
		return nil, false
	}

	return &models.LogRecord{
		Owner:            m[1],
		Bucket:           m[2],
		Time:             m[3],
		RemoteIP:         m[4],
		Requester:        m[5],
		RequestID:        m[6],
		Operation:        m[7],
		Key:              m[8],
		RequestURI:       m[9],
		HTTPStatus:       m[10],
		ErrorCode:        m[11],
		BytesSent:        m[12],
		ObjectSize:       m[13],
		TotalTime:        m[14],
		TurnAroundTime:   m[15],
		Referrer:         m[16],
		UserAgent:        m[17],
		SignatureVersion: m[18],
	}, true
}
