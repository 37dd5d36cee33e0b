package transfer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/tinysteps/session-service/internal/repo"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type Type string

const (
	TypeBulk      Type = "BULK"
	TypeSelective Type = "SELECTIVE"
	TypeDateRange Type = "DATE_RANGE"
	TypeEmergency Type = "EMERGENCY"
)

type Status string

const (
	StatusCompleted           Status = "COMPLETED"
	StatusCompletedWithErrors Status = "COMPLETED_WITH_ERRORS"
	StatusFailed              Status = "FAILED"

	// StatusInProgress is part of the status vocabulary but the synchronous
	// orchestrator never persists it. It exists for callers that wrap the
	// service in an async layer.
	StatusInProgress Status = "IN_PROGRESS"
)

type ItemStatus string

const (
	ItemSuccess ItemStatus = "SUCCESS"
	ItemFailed  ItemStatus = "FAILED"

	// ItemSkipped is part of the per-item vocabulary but the current selector
	// drops out-of-scope offerings before execution, so nothing produces it.
	ItemSkipped ItemStatus = "SKIPPED"
)

// Request describes one transfer invocation. It is built by the caller and
// discarded after use; only the Outcome is persisted.
type Request struct {
	SourceBranchID uuid.UUID `json:"sourceBranchId"`
	TargetBranchID uuid.UUID `json:"targetBranchId"`
	Type           Type      `json:"transferType"`

	// SELECTIVE only.
	SessionIDs []uuid.UUID `json:"sessionIds,omitempty"`

	// DATE_RANGE only, inclusive bounds.
	StartDate *time.Time `json:"startDate,omitempty"`
	EndDate   *time.Time `json:"endDate,omitempty"`

	// When false the source record is disposed of after a successful copy:
	// deactivated for emergency transfers, deleted otherwise. Defaults to
	// true, which deliberately leaves the offering live at both branches.
	PreserveOriginalSchedule bool `json:"preserveOriginalSchedule"`

	NotifyParticipants bool   `json:"notifyParticipants"`
	EmergencyFlag      bool   `json:"emergencyFlag"`
	Reason             string `json:"reason,omitempty"`
}

type Summary struct {
	TransferType        Type `json:"transferType"`
	TotalSessions       int  `json:"totalSessions"`
	SuccessfulTransfers int  `json:"successfulTransfers"`
	FailedTransfers     int  `json:"failedTransfers"`
	SkippedTransfers    int  `json:"skippedTransfers"`
}

type ItemResult struct {
	SessionID       uuid.UUID  `json:"sessionId"`
	NewSessionID    *uuid.UUID `json:"newSessionId,omitempty"`
	SessionTypeName string     `json:"sessionTypeName"`
	SourceBranchID  uuid.UUID  `json:"sourceBranchId"`
	TargetBranchID  uuid.UUID  `json:"targetBranchId"`
	Status          ItemStatus `json:"status"`
	Reason          string     `json:"reason"`
}

// RollbackInfo is reserved for a future rollback capability. The current
// workflow never populates it.
type RollbackInfo struct {
	Available bool   `json:"available"`
	Reason    string `json:"reason,omitempty"`
}

// Outcome is written to the Ledger exactly once per transfer and is immutable
// afterwards.
type Outcome struct {
	TransferID string   `json:"transferId"`
	Status     Status   `json:"status"`
	Message    string   `json:"message"`
	Summary    *Summary `json:"summary,omitempty"`

	Results  []ItemResult `json:"results"`
	Errors   []string     `json:"errors,omitempty"`
	Warnings []string     `json:"warnings,omitempty"`

	RollbackInfo *RollbackInfo `json:"rollbackInfo,omitempty"`

	TransferredAt time.Time `json:"transferredAt"`
	CompletedAt   time.Time `json:"completedAt"`
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

type Service interface {
	// TransferSessions runs a transfer to completion and always returns a
	// structured outcome; validation and selection failures surface as a
	// FAILED outcome, not an error.
	TransferSessions(ctx context.Context, req Request) *Outcome

	// Convenience entry points.
	TransferByDateRange(ctx context.Context, source, target uuid.UUID, start, end time.Time, reason string) *Outcome
	TransferByIDs(ctx context.Context, source, target uuid.UUID, ids []uuid.UUID, reason string) *Outcome
	EmergencyTransfer(ctx context.Context, source, target uuid.UUID, reason string) *Outcome

	// TransferStatus looks up a finished transfer. Unknown and malformed ids
	// both return ErrUnknownTransfer.
	TransferStatus(ctx context.Context, transferID string) (*Outcome, error)

	// CanTransfer reports whether the branch pair would pass validation.
	CanTransfer(source, target uuid.UUID) bool
}

type transferService struct {
	store     OfferingStore
	ledger    Ledger
	publisher Publisher
	logger    *slog.Logger
}

func New(store OfferingStore, ledger Ledger, publisher Publisher, logger *slog.Logger) Service {
	return &transferService{
		store:     store,
		ledger:    ledger,
		publisher: publisher,
		logger:    logger.With(slog.String("service", "transfer")),
	}
}

// ---------------------------------------------------------------------------
// Orchestrator
// ---------------------------------------------------------------------------

func (s *transferService) TransferSessions(ctx context.Context, req Request) *Outcome {
	transferID := uuid.New().String()
	startedAt := time.Now()

	s.logger.InfoContext(ctx, "transfer started",
		slog.String("transfer_id", transferID),
		slog.String("type", string(req.Type)),
		slog.String("source_branch", req.SourceBranchID.String()),
		slog.String("target_branch", req.TargetBranchID.String()))

	if err := validateBranches(req.SourceBranchID, req.TargetBranchID); err != nil {
		return s.finish(ctx, req, s.failedOutcome(transferID, startedAt, err))
	}

	selected, err := s.selectSessions(ctx, req)
	if err != nil {
		return s.finish(ctx, req, s.failedOutcome(transferID, startedAt, err))
	}

	results := make([]ItemResult, 0, len(selected))
	successCount, failureCount := 0, 0
	for _, o := range selected {
		item := s.transferOne(ctx, o, req)
		if item.Status == ItemSuccess {
			successCount++
		} else {
			failureCount++
		}
		results = append(results, item)
	}

	status := StatusCompleted
	if failureCount > 0 {
		status = StatusCompletedWithErrors
	}

	outcome := &Outcome{
		TransferID: transferID,
		Status:     status,
		Message:    fmt.Sprintf("Transfer completed. %d successful, %d failed", successCount, failureCount),
		Summary: &Summary{
			TransferType:        req.Type,
			TotalSessions:       len(selected),
			SuccessfulTransfers: successCount,
			FailedTransfers:     failureCount,
		},
		Results:       results,
		TransferredAt: startedAt,
		CompletedAt:   time.Now(),
	}

	return s.finish(ctx, req, outcome)
}

func (s *transferService) TransferByDateRange(ctx context.Context, source, target uuid.UUID, start, end time.Time, reason string) *Outcome {
	return s.TransferSessions(ctx, Request{
		SourceBranchID:           source,
		TargetBranchID:           target,
		Type:                     TypeDateRange,
		StartDate:                &start,
		EndDate:                  &end,
		PreserveOriginalSchedule: true,
		Reason:                   reason,
	})
}

func (s *transferService) TransferByIDs(ctx context.Context, source, target uuid.UUID, ids []uuid.UUID, reason string) *Outcome {
	return s.TransferSessions(ctx, Request{
		SourceBranchID:           source,
		TargetBranchID:           target,
		Type:                     TypeSelective,
		SessionIDs:               ids,
		PreserveOriginalSchedule: true,
		Reason:                   reason,
	})
}

func (s *transferService) EmergencyTransfer(ctx context.Context, source, target uuid.UUID, reason string) *Outcome {
	return s.TransferSessions(ctx, Request{
		SourceBranchID:           source,
		TargetBranchID:           target,
		Type:                     TypeEmergency,
		PreserveOriginalSchedule: false,
		EmergencyFlag:            true,
		NotifyParticipants:       true,
		Reason:                   reason,
	})
}

func (s *transferService) TransferStatus(ctx context.Context, transferID string) (*Outcome, error) {
	if _, err := uuid.Parse(transferID); err != nil {
		return nil, ErrUnknownTransfer
	}
	return s.ledger.Find(ctx, transferID)
}

func (s *transferService) CanTransfer(source, target uuid.UUID) bool {
	return validateBranches(source, target) == nil
}

// ---------------------------------------------------------------------------
// Validation and selection
// ---------------------------------------------------------------------------

func validateBranches(source, target uuid.UUID) error {
	if source == uuid.Nil {
		return invalidRequest("source branch id is required")
	}
	if target == uuid.Nil {
		return invalidRequest("target branch id is required")
	}
	if source == target {
		return invalidRequest("source and target branches must differ")
	}
	return nil
}

func (s *transferService) selectSessions(ctx context.Context, req Request) ([]*repo.SessionOffering, error) {
	switch req.Type {
	case TypeBulk:
		return s.store.ByBranch(ctx, req.SourceBranchID)

	case TypeSelective:
		if len(req.SessionIDs) == 0 {
			return nil, invalidRequest("session ids are required for a selective transfer")
		}
		// Ids belonging to other branches are dropped by the store query.
		return s.store.ByIDs(ctx, req.SourceBranchID, req.SessionIDs)

	case TypeDateRange:
		if req.StartDate == nil || req.EndDate == nil {
			return nil, invalidRequest("start and end dates are required for a date range transfer")
		}
		return s.store.ByBranchCreatedBetween(ctx, req.SourceBranchID, *req.StartDate, *req.EndDate)

	case TypeEmergency:
		return s.store.ActiveByBranch(ctx, req.SourceBranchID)

	default:
		return nil, invalidRequest(fmt.Sprintf("unknown transfer type: %s", req.Type))
	}
}

// ---------------------------------------------------------------------------
// Per-item execution
// ---------------------------------------------------------------------------

// transferOne copies the offering to the target branch and optionally disposes
// of the source. It never returns an error; any failure becomes a FAILED item
// result so one bad item cannot abort the batch.
func (s *transferService) transferOne(ctx context.Context, o *repo.SessionOffering, req Request) ItemResult {
	result := ItemResult{
		SessionID:       o.ID,
		SessionTypeName: o.SessionTypeName,
		SourceBranchID:  req.SourceBranchID,
		TargetBranchID:  req.TargetBranchID,
	}

	clone, err := s.store.Clone(ctx, o, req.TargetBranchID)
	if err != nil {
		return s.failItem(ctx, result, err)
	}
	result.NewSessionID = &clone.ID

	if !req.PreserveOriginalSchedule {
		if req.EmergencyFlag {
			err = s.store.Deactivate(ctx, o.ID)
		} else {
			err = s.store.Delete(ctx, o.ID)
		}
		if err != nil {
			return s.failItem(ctx, result, err)
		}
	}

	result.Status = ItemSuccess
	result.Reason = "Session transferred successfully"
	return result
}

func (s *transferService) failItem(ctx context.Context, result ItemResult, err error) ItemResult {
	s.logger.WarnContext(ctx, "session transfer item failed",
		slog.String("session_id", result.SessionID.String()),
		slog.String("error", err.Error()))

	result.Status = ItemFailed
	result.Reason = "Transfer failed: " + err.Error()
	return result
}

// ---------------------------------------------------------------------------
// Outcome assembly
// ---------------------------------------------------------------------------

func (s *transferService) failedOutcome(transferID string, startedAt time.Time, err error) *Outcome {
	var invalid *InvalidRequestError
	msg := err.Error()
	if !errors.As(err, &invalid) {
		msg = "unexpected failure: " + msg
	}

	return &Outcome{
		TransferID:    transferID,
		Status:        StatusFailed,
		Message:       "Transfer failed",
		Results:       []ItemResult{},
		Errors:        []string{msg},
		TransferredAt: startedAt,
		CompletedAt:   time.Now(),
	}
}

// finish records the outcome and emits the completion event. Ledger and
// publish errors are logged, not surfaced; the caller still gets the outcome.
func (s *transferService) finish(ctx context.Context, req Request, outcome *Outcome) *Outcome {
	if err := s.ledger.Record(ctx, outcome); err != nil {
		s.logger.ErrorContext(ctx, "failed to record transfer outcome",
			slog.String("transfer_id", outcome.TransferID),
			slog.String("error", err.Error()))
	}

	if req.NotifyParticipants && outcome.Status != StatusFailed {
		if err := s.publisher.PublishTransferCompleted(ctx, outcome); err != nil {
			s.logger.ErrorContext(ctx, "failed to publish transfer event",
				slog.String("transfer_id", outcome.TransferID),
				slog.String("error", err.Error()))
		}
	}

	s.logger.InfoContext(ctx, "transfer finished",
		slog.String("transfer_id", outcome.TransferID),
		slog.String("status", string(outcome.Status)),
		slog.String("message", outcome.Message))

	return outcome
}
