package transfer

import (
	"context"
	"sync"
)

// Ledger stores transfer outcomes for later status lookups. Outcomes are
// written once when the transfer finishes and never mutated.
type Ledger interface {
	Record(ctx context.Context, outcome *Outcome) error
	Find(ctx context.Context, transferID string) (*Outcome, error)
}

type memoryLedger struct {
	mu       sync.RWMutex
	outcomes map[string]*Outcome
}

// NewMemoryLedger keeps outcomes in process memory. Lookups survive for the
// lifetime of the process only; deployments wanting durable status use the
// redis ledger instead.
func NewMemoryLedger() Ledger {
	return &memoryLedger{outcomes: make(map[string]*Outcome)}
}

func (l *memoryLedger) Record(_ context.Context, outcome *Outcome) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.outcomes[outcome.TransferID] = outcome
	return nil
}

func (l *memoryLedger) Find(_ context.Context, transferID string) (*Outcome, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	outcome, ok := l.outcomes[transferID]
	if !ok {
		return nil, ErrUnknownTransfer
	}
	return outcome, nil
}
