package types

import "time"

// LogEntry is the in-flight form of a request log before it is persisted.
type LogEntry struct {
	RequestID  string
	Method     string
	URL        string
	StatusCode int
	UserID     uint
	LatencyMS  int64
	CreatedAt  time.Time
}
