package scheduler

import (
	"context"
	"time"

	"go.uber.org/zap"
)

const defaultHeartbeat = 60 * time.Second

// Heartbeat emits a liveness line for an external supervisor.
type Heartbeat struct {
	Logger   *zap.Logger
	Service  string
	Interval time.Duration
}

func NewHeartbeat(logger *zap.Logger, service string, interval time.Duration) *Heartbeat {
	if interval <= 0 {
		interval = defaultHeartbeat
	}
	return &Heartbeat{Logger: logger, Service: service, Interval: interval}
}

// Run logs every Interval until ctx is cancelled. The first line comes one
// interval after the call.
func (h *Heartbeat) Run(ctx context.Context) {
	t := time.NewTicker(h.Interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			h.Logger.Info("heartbeat_stopped", zap.String("service", h.Service))
			return
		case <-t.C:
			h.Logger.Info("service_running", zap.String("service", h.Service))
		}
	}
}

// Run does the one-shot probe pass, then blocks in the heartbeat loop until
// ctx is cancelled. Probe failures never keep the heartbeat from starting.
func Run(ctx context.Context, p *Prober, h *Heartbeat) {
	p.RunOnce(ctx)
	h.Run(ctx)
}
