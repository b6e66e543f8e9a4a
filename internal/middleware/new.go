package middleware

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"maatricare/pkg/log"
)

type Middleware struct {
	l        log.Logger
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

// New builds the middleware set. ratePerMinute and burst bound how many chat
// turns a single user may submit; other routes share the same limiter keyed
// by client IP.
func New(l log.Logger, ratePerMinute, burst int) Middleware {
	if ratePerMinute <= 0 {
		ratePerMinute = 30
	}
	if burst <= 0 {
		burst = 5
	}
	return Middleware{
		l: l,
		limiters: expirable.NewLRU[string, *rate.Limiter](
			1000,
			nil,
			time.Minute*5,
		),
		rate:  rate.Limit(float64(ratePerMinute) / 60.0),
		burst: burst,
	}
}
