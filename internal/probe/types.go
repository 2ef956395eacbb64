package probe

import (
	"context"
	"net"
	"time"
)

// CheckResult holds the outcome of a single probe
type CheckResult struct {
	Name      string  `json:"name"`
	Success   bool    `json:"success"`
	Message   string  `json:"message"`          // status on success, underlying error on failure
	Detail    string  `json:"detail,omitempty"` // optional extra context, e.g. model count
	LatencyMS float64 `json:"latency_ms,omitempty"`
}

// Checker is implemented by every connectivity check. Check never returns an
// error: failures are reported through CheckResult.
type Checker interface {
	Name() string
	Check(ctx context.Context) CheckResult
}

func passed(name string, start time.Time, msg string) CheckResult {
	return CheckResult{Name: name, Success: true, Message: msg, LatencyMS: sinceMS(start)}
}

func failed(name string, start time.Time, err error) CheckResult {
	return CheckResult{Name: name, Success: false, Message: err.Error(), LatencyMS: sinceMS(start)}
}

func sinceMS(start time.Time) float64 {
	return time.Since(start).Seconds() * 1000
}

// bindConn ties a raw connection to ctx for libraries that take no context:
// the deadline is applied to reads and writes and cancellation closes it.
// The returned func must be called once the connection is no longer in use.
func bindConn(ctx context.Context, conn net.Conn) (stop func() bool) {
	if dl, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(dl)
	}
	return context.AfterFunc(ctx, func() { _ = conn.Close() })
}
