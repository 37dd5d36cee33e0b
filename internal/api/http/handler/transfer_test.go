package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/tinysteps/session-service/internal/service/transfer"
)

// stubTransferService returns canned outcomes and records the last request.
type stubTransferService struct {
	outcome   *transfer.Outcome
	statusErr error

	lastRequest *transfer.Request
}

func (s *stubTransferService) TransferSessions(_ context.Context, req transfer.Request) *transfer.Outcome {
	s.lastRequest = &req
	return s.outcome
}

func (s *stubTransferService) TransferByDateRange(ctx context.Context, source, target uuid.UUID, start, end time.Time, reason string) *transfer.Outcome {
	return s.TransferSessions(ctx, transfer.Request{
		SourceBranchID: source,
		TargetBranchID: target,
		Type:           transfer.TypeDateRange,
		StartDate:      &start,
		EndDate:        &end,
		Reason:         reason,
	})
}

func (s *stubTransferService) TransferByIDs(ctx context.Context, source, target uuid.UUID, ids []uuid.UUID, reason string) *transfer.Outcome {
	return s.TransferSessions(ctx, transfer.Request{
		SourceBranchID: source,
		TargetBranchID: target,
		Type:           transfer.TypeSelective,
		SessionIDs:     ids,
		Reason:         reason,
	})
}

func (s *stubTransferService) EmergencyTransfer(ctx context.Context, source, target uuid.UUID, reason string) *transfer.Outcome {
	return s.TransferSessions(ctx, transfer.Request{
		SourceBranchID: source,
		TargetBranchID: target,
		Type:           transfer.TypeEmergency,
		EmergencyFlag:  true,
		Reason:         reason,
	})
}

func (s *stubTransferService) TransferStatus(_ context.Context, _ string) (*transfer.Outcome, error) {
	if s.statusErr != nil {
		return nil, s.statusErr
	}
	return s.outcome, nil
}

func (s *stubTransferService) CanTransfer(source, target uuid.UUID) bool {
	return source != uuid.Nil && target != uuid.Nil && source != target
}

func newTransferApp(svc transfer.Service) *fiber.App {
	app := fiber.New()
	h := NewTransferHandler(svc)

	grp := app.Group("/api/v1/sessions/transfer")
	grp.Post("/", h.Transfer)
	grp.Post("/by-date-range", h.TransferByDateRange)
	grp.Post("/by-ids", h.TransferByIDs)
	grp.Post("/emergency", h.EmergencyTransfer)
	grp.Get("/status/:transferId", h.Status)
	grp.Get("/eligibility", h.Eligibility)

	return app
}

func TestTransferStatusMapping(t *testing.T) {
	tests := []struct {
		name     string
		status   transfer.Status
		wantCode int
	}{
		{"completed", transfer.StatusCompleted, http.StatusOK},
		{"completed with errors", transfer.StatusCompletedWithErrors, http.StatusPartialContent},
		{"failed", transfer.StatusFailed, http.StatusBadRequest},
		{"reserved status", transfer.StatusInProgress, http.StatusAccepted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &stubTransferService{outcome: &transfer.Outcome{
				TransferID: uuid.NewString(),
				Status:     tt.status,
			}}
			app := newTransferApp(svc)

			body := `{"sourceBranchId":"` + uuid.NewString() + `","targetBranchId":"` + uuid.NewString() + `","transferType":"BULK"}`
			req := httptest.NewRequest(http.MethodPost, "/api/v1/sessions/transfer", strings.NewReader(body))
			req.Header.Set("Content-Type", "application/json")

			resp, err := app.Test(req)
			if err != nil {
				t.Fatalf("app.Test() error = %v", err)
			}
			if resp.StatusCode != tt.wantCode {
				t.Errorf("status code = %d, want %d", resp.StatusCode, tt.wantCode)
			}

			var outcome transfer.Outcome
			if err := json.NewDecoder(resp.Body).Decode(&outcome); err != nil {
				t.Fatalf("decode body: %v", err)
			}
			if outcome.Status != tt.status {
				t.Errorf("body status = %s, want %s", outcome.Status, tt.status)
			}
		})
	}
}

func TestTransferDefaultsPreserveOriginalSchedule(t *testing.T) {
	svc := &stubTransferService{outcome: &transfer.Outcome{Status: transfer.StatusCompleted}}
	app := newTransferApp(svc)

	t.Run("defaults to true when omitted", func(t *testing.T) {
		body := `{"sourceBranchId":"` + uuid.NewString() + `","targetBranchId":"` + uuid.NewString() + `","transferType":"BULK"}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/sessions/transfer", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		if _, err := app.Test(req); err != nil {
			t.Fatalf("app.Test() error = %v", err)
		}
		if !svc.lastRequest.PreserveOriginalSchedule {
			t.Error("preserveOriginalSchedule defaulted to false, want true")
		}
	})

	t.Run("explicit false is honored", func(t *testing.T) {
		body := `{"sourceBranchId":"` + uuid.NewString() + `","targetBranchId":"` + uuid.NewString() + `","transferType":"BULK","preserveOriginalSchedule":false}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/sessions/transfer", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		if _, err := app.Test(req); err != nil {
			t.Fatalf("app.Test() error = %v", err)
		}
		if svc.lastRequest.PreserveOriginalSchedule {
			t.Error("preserveOriginalSchedule = true, want false")
		}
	})
}

func TestTransferDateBoundsParsing(t *testing.T) {
	svc := &stubTransferService{outcome: &transfer.Outcome{Status: transfer.StatusCompleted}}
	app := newTransferApp(svc)

	t.Run("date-only end bound covers the whole day", func(t *testing.T) {
		url := "/api/v1/sessions/transfer/by-date-range?sourceBranchId=" + uuid.NewString() +
			"&targetBranchId=" + uuid.NewString() +
			"&startDate=2026-04-01&endDate=2026-04-30"

		if _, err := app.Test(httptest.NewRequest(http.MethodPost, url, nil)); err != nil {
			t.Fatalf("app.Test() error = %v", err)
		}

		wantStart := time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC)
		if !svc.lastRequest.StartDate.Equal(wantStart) {
			t.Errorf("start = %v, want %v", svc.lastRequest.StartDate, wantStart)
		}
		wantEnd := time.Date(2026, time.April, 30, 23, 59, 59, 0, time.UTC)
		if !svc.lastRequest.EndDate.Equal(wantEnd) {
			t.Errorf("end = %v, want %v", svc.lastRequest.EndDate, wantEnd)
		}
	})

	t.Run("timestamped end bound passes through unchanged", func(t *testing.T) {
		url := "/api/v1/sessions/transfer/by-date-range?sourceBranchId=" + uuid.NewString() +
			"&targetBranchId=" + uuid.NewString() +
			"&startDate=2026-04-01&endDate=2026-04-30T10:30:00Z"

		if _, err := app.Test(httptest.NewRequest(http.MethodPost, url, nil)); err != nil {
			t.Fatalf("app.Test() error = %v", err)
		}

		wantEnd := time.Date(2026, time.April, 30, 10, 30, 0, 0, time.UTC)
		if !svc.lastRequest.EndDate.Equal(wantEnd) {
			t.Errorf("end = %v, want %v", svc.lastRequest.EndDate, wantEnd)
		}
	})

	t.Run("date-only end bound in the transfer body", func(t *testing.T) {
		body := `{"sourceBranchId":"` + uuid.NewString() + `","targetBranchId":"` + uuid.NewString() +
			`","transferType":"DATE_RANGE","startDate":"2026-04-01","endDate":"2026-04-30"}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/sessions/transfer", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		if _, err := app.Test(req); err != nil {
			t.Fatalf("app.Test() error = %v", err)
		}

		wantEnd := time.Date(2026, time.April, 30, 23, 59, 59, 0, time.UTC)
		if !svc.lastRequest.EndDate.Equal(wantEnd) {
			t.Errorf("end = %v, want %v", svc.lastRequest.EndDate, wantEnd)
		}
	})
}

func TestTransferStatusEndpoint(t *testing.T) {
	t.Run("known transfer", func(t *testing.T) {
		id := uuid.NewString()
		svc := &stubTransferService{outcome: &transfer.Outcome{
			TransferID: id,
			Status:     transfer.StatusCompleted,
		}}
		app := newTransferApp(svc)

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/sessions/transfer/status/"+id, nil))
		if err != nil {
			t.Fatalf("app.Test() error = %v", err)
		}
		if resp.StatusCode != http.StatusOK {
			t.Errorf("status code = %d, want 200", resp.StatusCode)
		}
	})

	t.Run("unknown transfer", func(t *testing.T) {
		svc := &stubTransferService{statusErr: transfer.ErrUnknownTransfer}
		app := newTransferApp(svc)

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/sessions/transfer/status/"+uuid.NewString(), nil))
		if err != nil {
			t.Fatalf("app.Test() error = %v", err)
		}
		if resp.StatusCode != http.StatusNotFound {
			t.Errorf("status code = %d, want 404", resp.StatusCode)
		}
	})
}

func TestEligibilityEndpoint(t *testing.T) {
	svc := &stubTransferService{}
	app := newTransferApp(svc)

	tests := []struct {
		name  string
		query string
		want  bool
	}{
		{"valid pair", "sourceBranchId=" + uuid.NewString() + "&targetBranchId=" + uuid.NewString(), true},
		{"missing target", "sourceBranchId=" + uuid.NewString(), false},
		{"malformed source", "sourceBranchId=nope&targetBranchId=" + uuid.NewString(), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/sessions/transfer/eligibility?"+tt.query, nil))
			if err != nil {
				t.Fatalf("app.Test() error = %v", err)
			}
			if resp.StatusCode != http.StatusOK {
				t.Fatalf("status code = %d, want 200", resp.StatusCode)
			}

			var body struct {
				Data struct {
					Eligible bool `json:"eligible"`
				} `json:"data"`
			}
			if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
				t.Fatalf("decode body: %v", err)
			}
			if body.Data.Eligible != tt.want {
				t.Errorf("eligible = %v, want %v", body.Data.Eligible, tt.want)
			}
		})
	}
}

func TestEmergencyTransferRequiresReason(t *testing.T) {
	svc := &stubTransferService{outcome: &transfer.Outcome{Status: transfer.StatusCompleted}}
	app := newTransferApp(svc)

	url := "/api/v1/sessions/transfer/emergency?sourceBranchId=" + uuid.NewString() + "&targetBranchId=" + uuid.NewString()
	resp, err := app.Test(httptest.NewRequest(http.MethodPost, url, nil))
	if err != nil {
		t.Fatalf("app.Test() error = %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status code = %d, want 400", resp.StatusCode)
	}
	if svc.lastRequest != nil {
		t.Error("service was invoked despite missing reason")
	}
}
