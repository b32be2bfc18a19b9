package rest

import (
	"time"

	"github.com/shopspring/decimal"
)

// timeFormat is the exchange's wire format for time parameters:
// millisecond precision, UTC, trailing Z.
const timeFormat = "2006-01-02T15:04:05.000Z"

func formatTime(t time.Time) string {
	return t.UTC().Format(timeFormat)
}

// formatFloat renders a price or size parameter without binary-float
// noise and without trailing zeros.
func formatFloat(v float64) string {
	return decimal.NewFromFloat(v).String()
}

// QuantizeToStep rounds value down to a multiple of step, e.g. a
// contract's tick size for prices. A step <= 0 leaves the value as is.
func QuantizeToStep(value, step float64) float64 {
	if step <= 0 {
		return value
	}

	v := decimal.NewFromFloat(value)
	s := decimal.NewFromFloat(step)
	quantized, _ := v.Div(s).Floor().Mul(s).Float64()
	return quantized
}
