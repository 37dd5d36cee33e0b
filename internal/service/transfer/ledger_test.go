package transfer

import (
	"context"
	"errors"
	"sync"
	"testing"
)

func TestMemoryLedgerRoundTrip(t *testing.T) {
	ledger := NewMemoryLedger()

	outcome := &Outcome{
		TransferID: "8a9b4a3e-0000-0000-0000-000000000001",
		Status:     StatusCompleted,
		Message:    "Transfer completed. 2 successful, 0 failed",
		Warnings:   []string{"target branch is near capacity"},
		Results:    []ItemResult{{Status: ItemSkipped, SessionTypeName: "Consultation"}},
	}
	if err := ledger.Record(context.Background(), outcome); err != nil {
		t.Fatalf("Record() error = %v", err)
	}

	got, err := ledger.Find(context.Background(), outcome.TransferID)
	if err != nil {
		t.Fatalf("Find() error = %v", err)
	}
	if got.Status != StatusCompleted || got.Message != outcome.Message {
		t.Errorf("Find() = %+v, want %+v", got, outcome)
	}
	if len(got.Warnings) != 1 || got.Warnings[0] != outcome.Warnings[0] {
		t.Errorf("Find().Warnings = %v, want %v", got.Warnings, outcome.Warnings)
	}
	if len(got.Results) != 1 || got.Results[0].Status != ItemSkipped {
		t.Errorf("Find().Results = %+v, want one SKIPPED entry", got.Results)
	}
}

func TestMemoryLedgerUnknownID(t *testing.T) {
	ledger := NewMemoryLedger()

	_, err := ledger.Find(context.Background(), "missing")
	if !errors.Is(err, ErrUnknownTransfer) {
		t.Errorf("Find() error = %v, want ErrUnknownTransfer", err)
	}
}

func TestMemoryLedgerConcurrentAccess(t *testing.T) {
	ledger := NewMemoryLedger()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			outcome := &Outcome{
				TransferID: string(rune('a'+n%26)) + "-transfer",
				Status:     StatusCompleted,
			}
			_ = ledger.Record(context.Background(), outcome)
			_, _ = ledger.Find(context.Background(), outcome.TransferID)
		}(i)
	}
	wg.Wait()
}
