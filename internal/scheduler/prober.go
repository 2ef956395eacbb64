package scheduler

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/hamed0406/ecommailer/internal/domain"
	"github.com/hamed0406/ecommailer/internal/probe"
	"github.com/hamed0406/ecommailer/internal/repo"
)

// Prober runs one pass over the configured checks and logs each outcome.
type Prober struct {
	Logger *zap.Logger
	Checks *probe.MultiChecker
	Runs   repo.RunStore // optional
}

// NewProber wires a prober; runs may be nil when nothing reads the results.
func NewProber(logger *zap.Logger, checks *probe.MultiChecker, runs repo.RunStore) *Prober {
	return &Prober{Logger: logger, Checks: checks, Runs: runs}
}

// RunOnce executes every check once, in order, logging one line per check as
// it finishes. Failures are logged and never returned.
func (p *Prober) RunOnce(ctx context.Context) *domain.ProbeRun {
	run := &domain.ProbeRun{
		ID:        domain.RunID(uuid.NewString()),
		StartedAt: time.Now().UTC(),
		Outcomes:  make([]domain.CheckOutcome, 0, len(p.Checks.Checkers)),
	}
	log := p.Logger.With(zap.String("run_id", string(run.ID)))
	log.Info("checking_connections", zap.Int("checks", len(p.Checks.Checkers)))

	p.Checks.RunFunc(ctx, func(out probe.CheckResult) {
		run.Outcomes = append(run.Outcomes, domain.CheckOutcome{
			Check:     out.Name,
			Up:        out.Success,
			Message:   out.Message,
			Detail:    out.Detail,
			LatencyMS: out.LatencyMS,
			CheckedAt: time.Now().UTC(),
		})

		if !out.Success {
			log.Error("check_failed",
				zap.String("check", out.Name),
				zap.String("error", out.Message),
				zap.Float64("latency_ms", out.LatencyMS),
			)
			return
		}
		fields := []zap.Field{
			zap.String("check", out.Name),
			zap.String("status", out.Message),
			zap.Float64("latency_ms", out.LatencyMS),
		}
		if out.Detail != "" {
			fields = append(fields, zap.String("detail", out.Detail))
		}
		log.Info("check_passed", fields...)
	})
	run.FinishedAt = time.Now().UTC()

	log.Info("checks_complete",
		zap.Int("passed", run.Passed()),
		zap.Int("failed", run.Failed()),
		zap.Duration("took", run.FinishedAt.Sub(run.StartedAt)),
	)

	if p.Runs != nil {
		if err := p.Runs.Record(ctx, run); err != nil {
			log.Warn("record_run_error", zap.Error(err))
		}
	}
	return run
}
