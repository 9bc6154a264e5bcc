package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTruncateToDay(t *testing.T) {
	ist, err := time.LoadLocation("Asia/Kolkata")
	require.NoError(t, err)

	// 20:15 UTC on Dec 2 is already Dec 3 in IST
	utcEvening := time.Date(2024, 12, 2, 20, 15, 0, 0, time.UTC)
	day := TruncateToDay(utcEvening, ist)

	assert.Equal(t, 3, day.Day())
	assert.Equal(t, time.December, day.Month())
	assert.Equal(t, 0, day.Hour())
	assert.Equal(t, ist, day.Location())

	// truncating the truncation is a no-op
	assert.Equal(t, day, TruncateToDay(day, ist))
}

func TestSameDay(t *testing.T) {
	ist, err := time.LoadLocation("Asia/Kolkata")
	require.NoError(t, err)

	a := time.Date(2024, 12, 2, 20, 15, 0, 0, time.UTC)
	b := time.Date(2024, 12, 3, 10, 0, 0, 0, ist)
	assert.True(t, SameDay(a, b, ist))
	assert.False(t, SameDay(a, b, time.UTC))
}
