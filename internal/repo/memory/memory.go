package memory

import (
	"context"
	"errors"
	"sync"

	"github.com/hamed0406/ecommailer/internal/domain"
	"github.com/hamed0406/ecommailer/internal/repo"
)

var _ repo.RunStore = (*Store)(nil)

const defaultKeep = 16

type Store struct {
	mu   sync.RWMutex
	runs []*domain.ProbeRun // oldest first
	keep int
}

func New() *Store {
	return &Store{
		runs: make([]*domain.ProbeRun, 0, defaultKeep),
		keep: defaultKeep,
	}
}

func (m *Store) Record(ctx context.Context, r *domain.ProbeRun) error {
	if r == nil {
		return errors.New("nil probe run")
	}
	cp := *r
	cp.Outcomes = append([]domain.CheckOutcome(nil), r.Outcomes...)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.runs = append(m.runs, &cp)
	if len(m.runs) > m.keep {
		m.runs = m.runs[len(m.runs)-m.keep:]
	}
	return nil
}

func (m *Store) Latest(ctx context.Context) (*domain.ProbeRun, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if len(m.runs) == 0 {
		return nil, nil
	}
	cp := *m.runs[len(m.runs)-1]
	cp.Outcomes = append([]domain.CheckOutcome(nil), cp.Outcomes...)
	return &cp, nil
}
