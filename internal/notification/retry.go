package notification

import "time"

const (
	defaultRetryDelay    = time.Second
	defaultMaxRetryDelay = time.Minute
)

// RetryPolicy controls redelivery of a failed message. Delays grow by
// BackoffFactor from InitialDelay and stop growing at MaxDelay.
type RetryPolicy struct {
	MaxRetries    int
	InitialDelay  time.Duration
	MaxDelay      time.Duration
	BackoffFactor float64
}

// CanRetry reports whether a message that failed attempt (1-based) gets another try.
func (r RetryPolicy) CanRetry(attempt int) bool {
	return attempt <= r.MaxRetries
}

// NextDelay is the wait after failed attempt (1-based).
func (r RetryPolicy) NextDelay(attempt int) time.Duration {
	base, ceiling, factor := r.InitialDelay, r.MaxDelay, r.BackoffFactor
	if base <= 0 {
		base = defaultRetryDelay
	}
	if ceiling <= 0 {
		ceiling = defaultMaxRetryDelay
	}
	if factor < 1 {
		factor = 2
	}

	d := base
	for i := 1; i < attempt && d < ceiling; i++ {
		d = time.Duration(float64(d) * factor)
	}
	if d > ceiling {
		d = ceiling
	}
	return d
}
