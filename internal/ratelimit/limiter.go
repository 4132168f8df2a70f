// Package ratelimit provides token-bucket limiters for outbound engine calls
// and per-tenant query budgets for the gateway.
package ratelimit

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/time/rate"
)

// Call classes of the engine transport.
const (
	CallList      = "list"
	CallCount     = "count"
	CallVariables = "variables"
)

// CallRates configures per-call-class request rates (requests per second).
// A rate of zero or less disables limiting for that class.
type CallRates struct {
	List      float64
	Count     float64
	Variables float64
}

// DefaultCallRates returns conservative limits for a shared engine.
func DefaultCallRates() CallRates {
	return CallRates{
		List:      20,
		Count:     20,
		Variables: 10,
	}
}

// UniformRates applies one rate to every call class.
func UniformRates(rps float64) CallRates {
	return CallRates{List: rps, Count: rps, Variables: rps}
}

// CallLimiter rate-limits engine calls per call class using token buckets.
type CallLimiter struct {
	mu       sync.RWMutex
	limiters map[string]*rate.Limiter
}

// NewCallLimiter creates a limiter with the given per-class rates.
func NewCallLimiter(rates CallRates) *CallLimiter {
	return &CallLimiter{limiters: map[string]*rate.Limiter{
		CallList:      newLimiter(rates.List),
		CallCount:     newLimiter(rates.Count),
		CallVariables: newLimiter(rates.Variables),
	}}
}

func newLimiter(rps float64) *rate.Limiter {
	if rps <= 0 {
		return rate.NewLimiter(rate.Inf, 0)
	}
	return rate.NewLimiter(rate.Limit(rps), max(1, int(rps)))
}

// Wait blocks until a token is available for the call class, or ctx is cancelled.
func (cl *CallLimiter) Wait(ctx context.Context, call string) error {
	cl.mu.RLock()
	limiter, ok := cl.limiters[call]
	cl.mu.RUnlock()
	if !ok {
		return nil // unknown class = no limit
	}
	if err := limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit %s: %w", call, err)
	}
	return nil
}
