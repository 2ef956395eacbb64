package probe

import (
	"context"
	"fmt"
	"time"
)

// MultiChecker runs its checkers one after another in slice order. A failing
// or panicking checker never prevents the remaining ones from running.
type MultiChecker struct {
	Checkers []Checker
	Timeout  time.Duration // per check; zero means no deadline beyond ctx
}

// NewMultiChecker keeps checkers in the order given.
func NewMultiChecker(timeout time.Duration, checkers ...Checker) *MultiChecker {
	return &MultiChecker{Checkers: checkers, Timeout: timeout}
}

// Run returns one result per checker, in order.
func (m *MultiChecker) Run(ctx context.Context) []CheckResult {
	results := make([]CheckResult, 0, len(m.Checkers))
	m.RunFunc(ctx, func(r CheckResult) { results = append(results, r) })
	return results
}

// RunFunc is Run with a callback invoked as soon as each check finishes.
func (m *MultiChecker) RunFunc(ctx context.Context, fn func(CheckResult)) {
	for _, c := range m.Checkers {
		fn(m.check(ctx, c))
	}
}

func (m *MultiChecker) check(ctx context.Context, c Checker) (out CheckResult) {
	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			out = failed(c.Name(), start, fmt.Errorf("panic: %v", r))
		}
	}()

	if m.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.Timeout)
		defer cancel()
	}
	out = c.Check(ctx)
	if out.Name == "" {
		out.Name = c.Name()
	}
	return out
}
