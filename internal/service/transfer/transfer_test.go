package transfer

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/tinysteps/session-service/internal/repo"
)

func TestTransferSessionsEmptyBranch(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store, &fakePublisher{})

	outcome := svc.TransferSessions(context.Background(), Request{
		SourceBranchID:           uuid.New(),
		TargetBranchID:           uuid.New(),
		Type:                     TypeBulk,
		PreserveOriginalSchedule: true,
	})

	if outcome.Status != StatusCompleted {
		t.Errorf("status = %s, want %s", outcome.Status, StatusCompleted)
	}
	if outcome.Summary == nil || outcome.Summary.TotalSessions != 0 {
		t.Errorf("summary = %+v, want zero totalSessions", outcome.Summary)
	}
	if len(outcome.Results) != 0 {
		t.Errorf("results = %d entries, want 0", len(outcome.Results))
	}
	if outcome.TransferID == "" {
		t.Error("transferId is empty")
	}
}

func TestTransferSessionsItemIsolation(t *testing.T) {
	source, target := uuid.New(), uuid.New()
	store := newFakeStore()
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	first := store.add(newOffering(t, source, 5000, true, base))
	second := store.add(newOffering(t, source, 7500, true, base.Add(time.Hour)))
	third := store.add(newOffering(t, source, 10000, true, base.Add(2*time.Hour)))

	store.failCloneFor[second.ID] = errors.New("unique constraint violation")

	svc := newTestService(store, &fakePublisher{})
	outcome := svc.TransferSessions(context.Background(), Request{
		SourceBranchID:           source,
		TargetBranchID:           target,
		Type:                     TypeBulk,
		PreserveOriginalSchedule: true,
	})

	if outcome.Status != StatusCompletedWithErrors {
		t.Fatalf("status = %s, want %s", outcome.Status, StatusCompletedWithErrors)
	}
	if outcome.Summary.SuccessfulTransfers != 2 || outcome.Summary.FailedTransfers != 1 {
		t.Errorf("summary = %+v, want 2 successful, 1 failed", outcome.Summary)
	}
	if len(outcome.Results) != 3 {
		t.Fatalf("results = %d entries, want 3", len(outcome.Results))
	}

	// Results follow selection order (created_at, id).
	wantOrder := []uuid.UUID{first.ID, second.ID, third.ID}
	for i, want := range wantOrder {
		if outcome.Results[i].SessionID != want {
			t.Errorf("results[%d].sessionId = %s, want %s", i, outcome.Results[i].SessionID, want)
		}
	}

	if outcome.Results[1].Status != ItemFailed {
		t.Errorf("results[1].status = %s, want %s", outcome.Results[1].Status, ItemFailed)
	}
	if want := "Transfer failed: unique constraint violation"; outcome.Results[1].Reason != want {
		t.Errorf("results[1].reason = %q, want %q", outcome.Results[1].Reason, want)
	}
	if outcome.Results[0].Reason != "Session transferred successfully" {
		t.Errorf("results[0].reason = %q", outcome.Results[0].Reason)
	}

	// Every entry names the session type, failed ones included.
	for i, r := range outcome.Results {
		if r.SessionTypeName != "Consultation" {
			t.Errorf("results[%d].sessionTypeName = %q, want Consultation", i, r.SessionTypeName)
		}
	}
	if outcome.Message != "Transfer completed. 2 successful, 1 failed" {
		t.Errorf("message = %q", outcome.Message)
	}
}

func TestTransferSessionsCopyByDefault(t *testing.T) {
	source, target := uuid.New(), uuid.New()
	store := newFakeStore()
	original := store.add(newOffering(t, source, 5000, true, time.Now()))

	svc := newTestService(store, &fakePublisher{})
	outcome := svc.TransferSessions(context.Background(), Request{
		SourceBranchID:           source,
		TargetBranchID:           target,
		Type:                     TypeBulk,
		PreserveOriginalSchedule: true,
	})

	if outcome.Status != StatusCompleted {
		t.Fatalf("status = %s, want %s", outcome.Status, StatusCompleted)
	}

	// The source record is untouched and a copy exists at the target.
	kept, ok := store.offerings[original.ID]
	if !ok || kept.BranchID != source || !kept.IsActive {
		t.Errorf("source offering changed: %+v", kept)
	}

	newID := outcome.Results[0].NewSessionID
	if newID == nil {
		t.Fatal("results[0].newSessionId is nil")
	}
	if *newID == original.ID {
		t.Error("copy reused the original id")
	}
	clone := store.offerings[*newID]
	if clone == nil || clone.BranchID != target {
		t.Fatalf("clone not at target branch: %+v", clone)
	}
	if clone.Price != original.Price || clone.DoctorID != original.DoctorID || clone.SessionTypeID != original.SessionTypeID {
		t.Errorf("clone fields differ from original: %+v", clone)
	}
}

func TestTransferSessionsMoveDeletesSource(t *testing.T) {
	source, target := uuid.New(), uuid.New()
	store := newFakeStore()
	original := store.add(newOffering(t, source, 5000, true, time.Now()))

	svc := newTestService(store, &fakePublisher{})
	outcome := svc.TransferSessions(context.Background(), Request{
		SourceBranchID: source,
		TargetBranchID: target,
		Type:           TypeBulk,
		// PreserveOriginalSchedule false, no emergency flag: hard delete.
	})

	if outcome.Status != StatusCompleted {
		t.Fatalf("status = %s, want %s", outcome.Status, StatusCompleted)
	}
	if _, ok := store.offerings[original.ID]; ok {
		t.Error("source offering still exists after move")
	}
}

func TestTransferSessionsEmergencyDeactivatesSource(t *testing.T) {
	source, target := uuid.New(), uuid.New()
	store := newFakeStore()
	original := store.add(newOffering(t, source, 5000, true, time.Now()))

	svc := newTestService(store, &fakePublisher{})
	outcome := svc.TransferSessions(context.Background(), Request{
		SourceBranchID: source,
		TargetBranchID: target,
		Type:           TypeEmergency,
		EmergencyFlag:  true,
	})

	if outcome.Status != StatusCompleted {
		t.Fatalf("status = %s, want %s", outcome.Status, StatusCompleted)
	}

	kept, ok := store.offerings[original.ID]
	if !ok {
		t.Fatal("source offering was deleted, want deactivated")
	}
	if kept.IsActive {
		t.Error("source offering still active after emergency transfer")
	}

	clone := store.offerings[*outcome.Results[0].NewSessionID]
	if clone == nil || clone.BranchID != target || !clone.IsActive {
		t.Errorf("target clone = %+v, want active at target", clone)
	}
}

func TestTransferSessionsSelectiveFiltersForeignIDs(t *testing.T) {
	source, target, other := uuid.New(), uuid.New(), uuid.New()
	store := newFakeStore()

	mine := store.add(newOffering(t, source, 5000, true, time.Now()))
	foreign := store.add(newOffering(t, other, 7500, true, time.Now()))

	svc := newTestService(store, &fakePublisher{})
	outcome := svc.TransferSessions(context.Background(), Request{
		SourceBranchID:           source,
		TargetBranchID:           target,
		Type:                     TypeSelective,
		SessionIDs:               []uuid.UUID{mine.ID, foreign.ID},
		PreserveOriginalSchedule: true,
	})

	if outcome.Status != StatusCompleted {
		t.Fatalf("status = %s, want %s", outcome.Status, StatusCompleted)
	}
	if outcome.Summary.TotalSessions != 1 {
		t.Errorf("totalSessions = %d, want 1 (foreign id silently excluded)", outcome.Summary.TotalSessions)
	}
	if len(outcome.Results) != 1 || outcome.Results[0].SessionID != mine.ID {
		t.Errorf("results = %+v, want only own offering", outcome.Results)
	}

	// The foreign offering is untouched.
	if got := store.offerings[foreign.ID]; got.BranchID != other {
		t.Errorf("foreign offering moved: %+v", got)
	}
}

func TestTransferSessionsDateRangeInclusive(t *testing.T) {
	source, target := uuid.New(), uuid.New()
	store := newFakeStore()

	start := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 4, 30, 0, 0, 0, 0, time.UTC)

	atStart := store.add(newOffering(t, source, 1000, true, start))
	atEnd := store.add(newOffering(t, source, 2000, true, end))
	store.add(newOffering(t, source, 3000, true, end.Add(time.Second)))

	svc := newTestService(store, &fakePublisher{})
	outcome := svc.TransferSessions(context.Background(), Request{
		SourceBranchID:           source,
		TargetBranchID:           target,
		Type:                     TypeDateRange,
		StartDate:                &start,
		EndDate:                  &end,
		PreserveOriginalSchedule: true,
	})

	if outcome.Summary.TotalSessions != 2 {
		t.Fatalf("totalSessions = %d, want 2 (bounds are inclusive)", outcome.Summary.TotalSessions)
	}
	if outcome.Results[0].SessionID != atStart.ID || outcome.Results[1].SessionID != atEnd.ID {
		t.Errorf("unexpected selection: %+v", outcome.Results)
	}
}

func TestTransferSessionsValidation(t *testing.T) {
	branch := uuid.New()
	start := time.Now()

	tests := []struct {
		name    string
		req     Request
		wantErr string
	}{
		{
			name:    "missing source branch",
			req:     Request{TargetBranchID: uuid.New(), Type: TypeBulk},
			wantErr: "source branch id is required",
		},
		{
			name:    "missing target branch",
			req:     Request{SourceBranchID: uuid.New(), Type: TypeBulk},
			wantErr: "target branch id is required",
		},
		{
			name:    "same source and target",
			req:     Request{SourceBranchID: branch, TargetBranchID: branch, Type: TypeBulk},
			wantErr: "source and target branches must differ",
		},
		{
			name:    "selective without ids",
			req:     Request{SourceBranchID: uuid.New(), TargetBranchID: uuid.New(), Type: TypeSelective},
			wantErr: "session ids are required for a selective transfer",
		},
		{
			name:    "date range without end",
			req:     Request{SourceBranchID: uuid.New(), TargetBranchID: uuid.New(), Type: TypeDateRange, StartDate: &start},
			wantErr: "start and end dates are required for a date range transfer",
		},
		{
			name:    "unknown type",
			req:     Request{SourceBranchID: uuid.New(), TargetBranchID: uuid.New(), Type: "SIDEWAYS"},
			wantErr: "unknown transfer type: SIDEWAYS",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newFakeStore()
			store.add(newOffering(t, tt.req.SourceBranchID, 5000, true, time.Now()))

			svc := newTestService(store, &fakePublisher{})
			outcome := svc.TransferSessions(context.Background(), tt.req)

			if outcome.Status != StatusFailed {
				t.Fatalf("status = %s, want %s", outcome.Status, StatusFailed)
			}
			if outcome.Summary != nil {
				t.Errorf("summary = %+v, want nil on failed validation", outcome.Summary)
			}
			if len(outcome.Results) != 0 {
				t.Errorf("results = %d entries, want 0", len(outcome.Results))
			}
			if len(outcome.Errors) != 1 || outcome.Errors[0] != tt.wantErr {
				t.Errorf("errors = %v, want [%q]", outcome.Errors, tt.wantErr)
			}
		})
	}
}

func TestTransferStatusLookup(t *testing.T) {
	source, target := uuid.New(), uuid.New()
	store := newFakeStore()
	store.add(newOffering(t, source, 5000, true, time.Now()))

	svc := newTestService(store, &fakePublisher{})
	outcome := svc.TransferSessions(context.Background(), Request{
		SourceBranchID:           source,
		TargetBranchID:           target,
		Type:                     TypeBulk,
		PreserveOriginalSchedule: true,
	})

	// Repeated lookups return the same outcome.
	for i := 0; i < 2; i++ {
		got, err := svc.TransferStatus(context.Background(), outcome.TransferID)
		if err != nil {
			t.Fatalf("TransferStatus() error = %v", err)
		}
		if got.TransferID != outcome.TransferID || got.Status != outcome.Status {
			t.Errorf("lookup %d = %+v, want %+v", i, got, outcome)
		}
	}

	if _, err := svc.TransferStatus(context.Background(), uuid.New().String()); !errors.Is(err, ErrUnknownTransfer) {
		t.Errorf("unknown id error = %v, want ErrUnknownTransfer", err)
	}
	if _, err := svc.TransferStatus(context.Background(), "not-a-uuid"); !errors.Is(err, ErrUnknownTransfer) {
		t.Errorf("malformed id error = %v, want ErrUnknownTransfer", err)
	}
}

func TestFailedOutcomeIsRecorded(t *testing.T) {
	branch := uuid.New()
	svc := newTestService(newFakeStore(), &fakePublisher{})

	outcome := svc.TransferSessions(context.Background(), Request{
		SourceBranchID: branch,
		TargetBranchID: branch,
		Type:           TypeBulk,
	})

	got, err := svc.TransferStatus(context.Background(), outcome.TransferID)
	if err != nil {
		t.Fatalf("TransferStatus() error = %v", err)
	}
	if got.Status != StatusFailed {
		t.Errorf("recorded status = %s, want %s", got.Status, StatusFailed)
	}
}

func TestEmergencyTransferScenario(t *testing.T) {
	b1, b2 := uuid.New(), uuid.New()
	store := newFakeStore()
	base := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)

	active1 := store.add(newOffering(t, b1, 5000, true, base))
	active2 := store.add(newOffering(t, b1, 7500, true, base.Add(time.Minute)))
	active3 := store.add(newOffering(t, b1, 10000, true, base.Add(2*time.Minute)))
	inactive := store.add(newOffering(t, b1, 3000, false, base.Add(3*time.Minute)))

	pub := &fakePublisher{}
	svc := newTestService(store, pub)

	outcome := svc.EmergencyTransfer(context.Background(), b1, b2, "relocation")

	if outcome.Status != StatusCompleted {
		t.Fatalf("status = %s, want %s", outcome.Status, StatusCompleted)
	}
	if outcome.Summary.TotalSessions != 3 {
		t.Errorf("totalSessions = %d, want 3 (inactive excluded)", outcome.Summary.TotalSessions)
	}

	// The inactive offering stays untouched at B1.
	if got := store.offerings[inactive.ID]; got.BranchID != b1 || got.IsActive {
		t.Errorf("inactive offering changed: %+v", got)
	}

	// Originals are deactivated, not deleted.
	for _, id := range []uuid.UUID{active1.ID, active2.ID, active3.ID} {
		got, ok := store.offerings[id]
		if !ok {
			t.Fatalf("original %s was deleted", id)
		}
		if got.IsActive {
			t.Errorf("original %s still active", id)
		}
	}

	// Three new active offerings at B2 with matching prices.
	var prices []int64
	for _, o := range store.ordered(func(o *repo.SessionOffering) bool { return o.BranchID == b2 }) {
		if !o.IsActive {
			t.Errorf("clone %s not active", o.ID)
		}
		prices = append(prices, o.Price)
	}
	if len(prices) != 3 {
		t.Fatalf("clones at target = %d, want 3", len(prices))
	}
	want := map[int64]bool{5000: true, 7500: true, 10000: true}
	for _, p := range prices {
		if !want[p] {
			t.Errorf("unexpected clone price %d", p)
		}
	}

	// Emergency transfers notify downstream consumers.
	if len(pub.published) != 1 || pub.published[0].TransferID != outcome.TransferID {
		t.Errorf("published events = %+v, want one for this transfer", pub.published)
	}
}

func TestNotifyParticipants(t *testing.T) {
	source, target := uuid.New(), uuid.New()

	t.Run("publishes on success when requested", func(t *testing.T) {
		store := newFakeStore()
		store.add(newOffering(t, source, 5000, true, time.Now()))
		pub := &fakePublisher{}

		svc := newTestService(store, pub)
		svc.TransferSessions(context.Background(), Request{
			SourceBranchID:           source,
			TargetBranchID:           target,
			Type:                     TypeBulk,
			PreserveOriginalSchedule: true,
			NotifyParticipants:       true,
		})

		if len(pub.published) != 1 {
			t.Errorf("published = %d events, want 1", len(pub.published))
		}
	})

	t.Run("does not publish a failed transfer", func(t *testing.T) {
		pub := &fakePublisher{}
		svc := newTestService(newFakeStore(), pub)

		svc.TransferSessions(context.Background(), Request{
			SourceBranchID:     source,
			TargetBranchID:     source,
			Type:               TypeBulk,
			NotifyParticipants: true,
		})

		if len(pub.published) != 0 {
			t.Errorf("published = %d events, want 0", len(pub.published))
		}
	})

	t.Run("publish failure does not change the outcome", func(t *testing.T) {
		store := newFakeStore()
		store.add(newOffering(t, source, 5000, true, time.Now()))
		pub := &fakePublisher{err: errors.New("nats down")}

		svc := newTestService(store, pub)
		outcome := svc.TransferSessions(context.Background(), Request{
			SourceBranchID:           source,
			TargetBranchID:           target,
			Type:                     TypeBulk,
			PreserveOriginalSchedule: true,
			NotifyParticipants:       true,
		})

		if outcome.Status != StatusCompleted {
			t.Errorf("status = %s, want %s", outcome.Status, StatusCompleted)
		}
	})
}

func TestCanTransfer(t *testing.T) {
	branch := uuid.New()
	svc := newTestService(newFakeStore(), &fakePublisher{})

	tests := []struct {
		name   string
		source uuid.UUID
		target uuid.UUID
		want   bool
	}{
		{"valid pair", uuid.New(), uuid.New(), true},
		{"missing source", uuid.Nil, uuid.New(), false},
		{"missing target", uuid.New(), uuid.Nil, false},
		{"same branch", branch, branch, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := svc.CanTransfer(tt.source, tt.target); got != tt.want {
				t.Errorf("CanTransfer() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDisposalFailureAfterCopy(t *testing.T) {
	source, target := uuid.New(), uuid.New()
	store := newFakeStore()
	original := store.add(newOffering(t, source, 5000, true, time.Now()))
	store.failDeleteFor[original.ID] = errors.New("row locked")

	svc := newTestService(store, &fakePublisher{})
	outcome := svc.TransferSessions(context.Background(), Request{
		SourceBranchID: source,
		TargetBranchID: target,
		Type:           TypeBulk,
	})

	// The copy succeeded but disposal failed: item is FAILED and both copies
	// stay live. That window is accepted and bounded to the one item.
	if outcome.Status != StatusCompletedWithErrors {
		t.Fatalf("status = %s, want %s", outcome.Status, StatusCompletedWithErrors)
	}
	item := outcome.Results[0]
	if item.Status != ItemFailed {
		t.Errorf("item status = %s, want %s", item.Status, ItemFailed)
	}
	if item.NewSessionID == nil {
		t.Error("newSessionId missing even though the copy was persisted")
	}
	if _, ok := store.offerings[original.ID]; !ok {
		t.Error("original disappeared despite failed disposal")
	}
}
