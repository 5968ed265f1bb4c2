package helpers

import (
	"time"

	"github.com/rs/zerolog/log"
)

// ParseDuration parses a duration string, returns default duration on error.
func ParseDuration(durationStr string, defaultDuration time.Duration) time.Duration {
	duration, err := time.ParseDuration(durationStr)
	if err != nil || duration <= 0 {
		// Global logger: this can run before the configured logger is handed around
		log.Warn().Err(err).Str("durationStr", durationStr).Dur("defaultDuration", defaultDuration).Msg("Invalid duration string, using default")
		return defaultDuration
	}
	return duration
}

// ISOTimestamp formats t as an ISO-8601 timestamp with sub-second precision
func ISOTimestamp(t time.Time) string {
	return t.Format(time.RFC3339Nano)
}
