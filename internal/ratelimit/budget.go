package ratelimit

import (
	"errors"
	"fmt"
	"sync"
	"time"
)

// ErrBudgetExceeded is returned by QueryBudget.Take when a scope ran out of queries.
var ErrBudgetExceeded = errors.New("query budget exceeded")

// sweepThreshold is the number of tracked windows above which expired ones
// are dropped on the next Take.
const sweepThreshold = 1024

// QueryBudget counts gateway queries per (scope, route) in fixed windows.
type QueryBudget struct {
	limit  int
	window time.Duration
	now    func() time.Time

	mu      sync.Mutex
	windows map[budgetKey]*window
}

type budgetKey struct{ scope, route string }

type window struct {
	used int
	ends time.Time
}

// NewQueryBudget allows limit queries per scope and route within each window.
// A limit of zero or less disables the budget.
func NewQueryBudget(limit int, d time.Duration) *QueryBudget {
	return &QueryBudget{
		limit:   limit,
		window:  d,
		now:     time.Now,
		windows: make(map[budgetKey]*window),
	}
}

// Enabled reports whether b limits anything.
func (b *QueryBudget) Enabled() bool { return b.limit > 0 }

// Take consumes one query for scope and route, or fails with
// ErrBudgetExceeded when the current window is used up.
func (b *QueryBudget) Take(scope, route string) error {
	if !b.Enabled() {
		return nil
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	now := b.now()
	if len(b.windows) > sweepThreshold {
		b.sweep(now)
	}
	k := budgetKey{scope, route}
	w := b.windows[k]
	if w == nil || now.After(w.ends) {
		b.windows[k] = &window{used: 1, ends: now.Add(b.window)}
		return nil
	}
	if w.used >= b.limit {
		return fmt.Errorf("%w: %d %s queries per %s for %q, resets in %s",
			ErrBudgetExceeded, b.limit, route, b.window, scope, w.ends.Sub(now).Round(time.Second))
	}
	w.used++
	return nil
}

// Remaining returns the queries left in the current window, or -1 when the
// budget is disabled.
func (b *QueryBudget) Remaining(scope, route string) int {
	if !b.Enabled() {
		return -1
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	w := b.windows[budgetKey{scope, route}]
	if w == nil || b.now().After(w.ends) {
		return b.limit
	}
	return b.limit - w.used
}

func (b *QueryBudget) sweep(now time.Time) {
	for k, w := range b.windows {
		if now.After(w.ends) {
			delete(b.windows, k)
		}
	}
}
