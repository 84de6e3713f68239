package model

import (
	"testing"
	"time"

	"github.com/go-playground/assert/v2"
)

func TestSanitize(t *testing.T) {
	assert.Equal(t, "clean headline", Sanitize("clean headline"))
	assert.Equal(t, "trimmed", Sanitize("  trimmed \n"))
	assert.Equal(t, "no control chars", Sanitize("no\x00 control\x1F chars\x7F"))
	assert.Equal(t, "", Sanitize("\x00\x01\n\t"))
}

func TestTomorrowDate(t *testing.T) {
	now := time.Date(2025, 3, 14, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, "2025-03-15", TomorrowDate(now))

	// Month rollover.
	eom := time.Date(2025, 1, 31, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, "2025-02-01", TomorrowDate(eom))
}
