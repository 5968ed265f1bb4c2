package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDuration(t *testing.T) {
	assert.Equal(t, 90*time.Minute, ParseDuration("1h30m", time.Hour))
	assert.Equal(t, time.Hour, ParseDuration("soon", time.Hour))
	assert.Equal(t, time.Hour, ParseDuration("", time.Hour))
	assert.Equal(t, time.Hour, ParseDuration("-5m", time.Hour))
}

func TestISOTimestamp(t *testing.T) {
	ts := time.Date(2025, 4, 23, 12, 1, 5, 123456000, time.UTC)
	assert.Equal(t, "2025-04-23T12:01:05.123456Z", ISOTimestamp(ts))
}
