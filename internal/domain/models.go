package domain

import "time"

type RunID string

// CheckOutcome is the recorded result of one connectivity check.
type CheckOutcome struct {
	Check     string    `json:"check"`
	Up        bool      `json:"up"`
	Message   string    `json:"message,omitempty"`
	Detail    string    `json:"detail,omitempty"`
	LatencyMS float64   `json:"latency_ms"`
	CheckedAt time.Time `json:"checked_at"`
}

// ProbeRun is one pass over every configured check, in execution order.
type ProbeRun struct {
	ID         RunID          `json:"id"`
	StartedAt  time.Time      `json:"started_at"`
	FinishedAt time.Time      `json:"finished_at"`
	Outcomes   []CheckOutcome `json:"outcomes"`
}

func (r *ProbeRun) Passed() int {
	n := 0
	for _, o := range r.Outcomes {
		if o.Up {
			n++
		}
	}
	return n
}

func (r *ProbeRun) Failed() int { return len(r.Outcomes) - r.Passed() }
