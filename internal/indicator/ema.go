package indicator

// SMA computes the simple average of the trailing `period` values.
// The second return is false when fewer than `period` values are available.
func SMA(values []float64, period int) (float64, bool) {
	if period <= 0 || len(values) < period {
		return 0, false
	}
	sum := 0.0
	for i := len(values) - period; i < len(values); i++ {
		sum += values[i]
	}
	return sum / float64(period), true
}

// EMA computes the exponential moving average as of the last value, seeded
// with the simple average of the first `period` values. Requires at least
// `period` values; with exactly `period` the result equals the seed SMA.
func EMA(values []float64, period int) (float64, bool) {
	if period <= 0 || len(values) < period {
		return 0, false
	}
	seed := 0.0
	for i := 0; i < period; i++ {
		seed += values[i]
	}
	ema := seed / float64(period)

	alpha := 2.0 / float64(period+1)
	for i := period; i < len(values); i++ {
		ema = (values[i]-ema)*alpha + ema
	}
	return ema, true
}
