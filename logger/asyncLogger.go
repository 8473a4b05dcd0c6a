package logger

import (
	"log"

	log_model "club-portal/models/log"
	"club-portal/types"

	"gorm.io/gorm"
)

// AsyncLogger persists request logs off the hot path through a buffered
// channel so handlers never wait on the logs table.
type AsyncLogger struct {
	db      *gorm.DB
	channel chan types.LogEntry
}

func NewAsyncLogger(db *gorm.DB) *AsyncLogger {
	return &AsyncLogger{
		db:      db,
		channel: make(chan types.LogEntry, 100),
	}
}

// ProcessLog drains the channel; run it in its own goroutine.
func (logger *AsyncLogger) ProcessLog() {
	log.Println("Starting asynchronous request logger...")

	for logEntry := range logger.channel {
		dbLog := log_model.Log{
			RequestID:  logEntry.RequestID,
			Method:     logEntry.Method,
			URL:        logEntry.URL,
			StatusCode: logEntry.StatusCode,
			UserID:     logEntry.UserID,
			LatencyMS:  logEntry.LatencyMS,
			CreatedAt:  logEntry.CreatedAt,
		}

		if err := logger.db.Create(&dbLog).Error; err != nil {
			log.Printf("Failed to insert request log entry: %v", err)
		}
	}
}

// Log pushes a log entry into the channel. Drops the entry when the buffer
// is full rather than blocking the request.
func (logger *AsyncLogger) Log(entry types.LogEntry) {
	select {
	case logger.channel <- entry:
	default:
		log.Printf("Request log buffer full, dropping entry for %s %s", entry.Method, entry.URL)
	}
}
