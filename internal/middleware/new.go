package middleware

import (
	"golang.org/x/time/rate"

	"smart-task-api/pkg/log"
)

type Middleware struct {
	l       log.Logger
	limiter *rate.Limiter
}

// New creates the shared middleware set. requestsPerSecond and burst bound
// the global rate limit applied by RateLimit.
func New(l log.Logger, requestsPerSecond float64, burst int) Middleware {
	if requestsPerSecond <= 0 {
		requestsPerSecond = 10
	}
	if burst <= 0 {
		burst = 20
	}
	return Middleware{
		l:       l,
		limiter: rate.NewLimiter(rate.Limit(requestsPerSecond), burst),
	}
}
