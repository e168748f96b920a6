package logger

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/event"
)

// NewMongoMonitor returns a driver command monitor that logs database commands.
//
//   - commands slower than slowThreshold are logged at warn and reported to New Relic as SlowQuery
//   - failed commands are logged at error
//   - verbose logs every successful command at debug (local development)
//
// A zero slowThreshold disables slow command detection.
func NewMongoMonitor(logger zerolog.Logger, loggerService *LoggerService, slowThreshold time.Duration, verbose bool) *event.CommandMonitor {
	dbLogger := logger.With().Str("component", "mongo").Logger()

	return &event.CommandMonitor{
		Succeeded: func(_ context.Context, e *event.CommandSucceededEvent) {
			if slowThreshold > 0 && e.Duration >= slowThreshold {
				dbLogger.Warn().
					Str("command", e.CommandName).
					Str("database", e.DatabaseName).
					Int64("request_id", e.RequestID).
					Dur("duration", e.Duration).
					Msg("slow database command")

				loggerService.RecordCustomEvent("SlowQuery", map[string]interface{}{
					"command":     e.CommandName,
					"database":    e.DatabaseName,
					"duration_ms": e.Duration.Milliseconds(),
				})
				return
			}

			if verbose {
				dbLogger.Debug().
					Str("command", e.CommandName).
					Str("database", e.DatabaseName).
					Dur("duration", e.Duration).
					Msg("database command")
			}
		},
		Failed: func(_ context.Context, e *event.CommandFailedEvent) {
			dbLogger.Error().
				Str("command", e.CommandName).
				Str("database", e.DatabaseName).
				Int64("request_id", e.RequestID).
				Dur("duration", e.Duration).
				Str("failure", e.Failure).
				Msg("database command failed")
		},
	}
}
