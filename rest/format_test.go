package rest

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatTime(t *testing.T) {
	ts := time.Date(2016, 2, 25, 9, 45, 53, 818000000, time.UTC)
	assert.Equal(t, "2016-02-25T09:45:53.818Z", formatTime(ts))

	// Non-UTC inputs are normalized.
	loc := time.FixedZone("CET", 3600)
	assert.Equal(t, "2016-02-25T09:45:53.818Z", formatTime(ts.In(loc)))

	// Sub-millisecond precision is truncated, whole seconds padded.
	assert.Equal(t, "2016-02-25T09:45:53.000Z", formatTime(time.Date(2016, 2, 25, 9, 45, 53, 999, time.UTC)))
}

func TestFormatFloat(t *testing.T) {
	assert.Equal(t, "8500", formatFloat(8500))
	assert.Equal(t, "8500.5", formatFloat(8500.5))
	assert.Equal(t, "0.0001", formatFloat(0.0001))
	assert.Equal(t, "0.1", formatFloat(0.1))
	assert.Equal(t, "-42.25", formatFloat(-42.25))
}

func TestQuantizeToStep(t *testing.T) {
	assert.Equal(t, 101.5, QuantizeToStep(101.7, 0.5))
	assert.Equal(t, 101.5, QuantizeToStep(101.5, 0.5))
	assert.Equal(t, 4232.0, QuantizeToStep(4232.9, 1))
	assert.Equal(t, 0.3, QuantizeToStep(0.35, 0.1))

	// Non-positive steps leave the value untouched.
	assert.Equal(t, 101.7, QuantizeToStep(101.7, 0))
	assert.Equal(t, 101.7, QuantizeToStep(101.7, -1))
}
