package transfer

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/tinysteps/session-service/internal/repo"
)

// fakeStore is an in-memory OfferingStore with injectable per-operation
// failures.
type fakeStore struct {
	offerings map[uuid.UUID]*repo.SessionOffering

	failCloneFor      map[uuid.UUID]error
	failDeactivateFor map[uuid.UUID]error
	failDeleteFor     map[uuid.UUID]error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		offerings:         make(map[uuid.UUID]*repo.SessionOffering),
		failCloneFor:      make(map[uuid.UUID]error),
		failDeactivateFor: make(map[uuid.UUID]error),
		failDeleteFor:     make(map[uuid.UUID]error),
	}
}

func (f *fakeStore) add(o *repo.SessionOffering) *repo.SessionOffering {
	f.offerings[o.ID] = o
	return o
}

func (f *fakeStore) ordered(match func(*repo.SessionOffering) bool) []*repo.SessionOffering {
	var out []*repo.SessionOffering
	for _, o := range f.offerings {
		if match(o) {
			out = append(out, o)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID.String() < out[j].ID.String()
	})
	return out
}

func (f *fakeStore) ByBranch(_ context.Context, branchID uuid.UUID) ([]*repo.SessionOffering, error) {
	return f.ordered(func(o *repo.SessionOffering) bool {
		return o.BranchID == branchID
	}), nil
}

func (f *fakeStore) ActiveByBranch(_ context.Context, branchID uuid.UUID) ([]*repo.SessionOffering, error) {
	return f.ordered(func(o *repo.SessionOffering) bool {
		return o.BranchID == branchID && o.IsActive
	}), nil
}

func (f *fakeStore) ByIDs(_ context.Context, branchID uuid.UUID, ids []uuid.UUID) ([]*repo.SessionOffering, error) {
	wanted := make(map[uuid.UUID]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}
	return f.ordered(func(o *repo.SessionOffering) bool {
		return o.BranchID == branchID && wanted[o.ID]
	}), nil
}

func (f *fakeStore) ByBranchCreatedBetween(_ context.Context, branchID uuid.UUID, from, to time.Time) ([]*repo.SessionOffering, error) {
	return f.ordered(func(o *repo.SessionOffering) bool {
		return o.BranchID == branchID &&
			!o.CreatedAt.Before(from) && !o.CreatedAt.After(to)
	}), nil
}

func (f *fakeStore) Clone(_ context.Context, o *repo.SessionOffering, targetBranchID uuid.UUID) (*repo.SessionOffering, error) {
	if err := f.failCloneFor[o.ID]; err != nil {
		return nil, err
	}
	clone := &repo.SessionOffering{
		ID:              uuid.New(),
		DoctorID:        o.DoctorID,
		BranchID:        targetBranchID,
		SessionTypeID:   o.SessionTypeID,
		SessionTypeName: o.SessionTypeName,
		Price:           o.Price,
		IsActive:        o.IsActive,
		CreatedAt:       time.Now(),
	}
	f.offerings[clone.ID] = clone
	return clone, nil
}

func (f *fakeStore) Deactivate(_ context.Context, id uuid.UUID) error {
	if err := f.failDeactivateFor[id]; err != nil {
		return err
	}
	o, ok := f.offerings[id]
	if !ok {
		return errors.New("offering not found")
	}
	o.IsActive = false
	return nil
}

func (f *fakeStore) Delete(_ context.Context, id uuid.UUID) error {
	if err := f.failDeleteFor[id]; err != nil {
		return err
	}
	if _, ok := f.offerings[id]; !ok {
		return errors.New("offering not found")
	}
	delete(f.offerings, id)
	return nil
}

// fakePublisher records published outcomes.
type fakePublisher struct {
	published []*Outcome
	err       error
}

func (f *fakePublisher) PublishTransferCompleted(_ context.Context, outcome *Outcome) error {
	if f.err != nil {
		return f.err
	}
	f.published = append(f.published, outcome)
	return nil
}

func newTestService(store OfferingStore, pub Publisher) Service {
	return New(store, NewMemoryLedger(), pub, slog.New(slog.DiscardHandler))
}

func newOffering(t *testing.T, branchID uuid.UUID, price int64, active bool, createdAt time.Time) *repo.SessionOffering {
	t.Helper()
	return &repo.SessionOffering{
		ID:              uuid.New(),
		DoctorID:        uuid.New(),
		BranchID:        branchID,
		SessionTypeID:   uuid.New(),
		SessionTypeName: "Consultation",
		Price:           price,
		IsActive:        active,
		CreatedAt:       createdAt,
	}
}
