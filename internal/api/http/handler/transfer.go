package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/tinysteps/session-service/internal/service/transfer"
)

type TransferHandler struct {
	svc transfer.Service
}

func NewTransferHandler(svc transfer.Service) *TransferHandler {
	return &TransferHandler{svc: svc}
}

// POST /api/v1/sessions/transfer
func (h *TransferHandler) Transfer(c fiber.Ctx) error {
	var body struct {
		SourceBranchID           string   `json:"sourceBranchId"`
		TargetBranchID           string   `json:"targetBranchId"`
		TransferType             string   `json:"transferType"`
		SessionIDs               []string `json:"sessionIds"`
		StartDate                *string  `json:"startDate"`
		EndDate                  *string  `json:"endDate"`
		PreserveOriginalSchedule *bool    `json:"preserveOriginalSchedule"`
		NotifyParticipants       bool     `json:"notifyParticipants"`
		EmergencyFlag            bool     `json:"emergencyFlag"`
		Reason                   string   `json:"reason"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	req := transfer.Request{
		Type:               transfer.Type(body.TransferType),
		NotifyParticipants: body.NotifyParticipants,
		EmergencyFlag:      body.EmergencyFlag,
		Reason:             body.Reason,

		// Copy semantics unless the caller explicitly opts out.
		PreserveOriginalSchedule: body.PreserveOriginalSchedule == nil || *body.PreserveOriginalSchedule,
	}

	// Branch ids flow through unparsed-as-zero so the orchestrator reports
	// them in its structured FAILED outcome instead of a bare 400.
	req.SourceBranchID, _ = uuid.Parse(body.SourceBranchID)
	req.TargetBranchID, _ = uuid.Parse(body.TargetBranchID)

	for _, raw := range body.SessionIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			return badRequest(c, "invalid session id: "+raw)
		}
		req.SessionIDs = append(req.SessionIDs, id)
	}

	if body.StartDate != nil {
		ts, err := parseDate(*body.StartDate)
		if err != nil {
			return badRequest(c, "invalid startDate")
		}
		req.StartDate = &ts
	}
	if body.EndDate != nil {
		ts, err := parseEndDate(*body.EndDate)
		if err != nil {
			return badRequest(c, "invalid endDate")
		}
		req.EndDate = &ts
	}

	outcome := h.svc.TransferSessions(c.Context(), req)
	return respondOutcome(c, outcome)
}

// POST /api/v1/sessions/transfer/by-date-range
func (h *TransferHandler) TransferByDateRange(c fiber.Ctx) error {
	source, target, err := branchPairFromQuery(c)
	if err != nil {
		return badRequest(c, err.Error())
	}

	start, err := parseDate(c.Query("startDate"))
	if err != nil {
		return badRequest(c, "invalid startDate")
	}
	end, err := parseEndDate(c.Query("endDate"))
	if err != nil {
		return badRequest(c, "invalid endDate")
	}

	outcome := h.svc.TransferByDateRange(c.Context(), source, target, start, end, c.Query("reason"))
	return respondOutcome(c, outcome)
}

// POST /api/v1/sessions/transfer/by-ids
func (h *TransferHandler) TransferByIDs(c fiber.Ctx) error {
	source, target, err := branchPairFromQuery(c)
	if err != nil {
		return badRequest(c, err.Error())
	}

	var rawIDs []string
	if err := c.Bind().JSON(&rawIDs); err != nil {
		return badRequest(c, "invalid request body")
	}

	ids := make([]uuid.UUID, 0, len(rawIDs))
	for _, raw := range rawIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			return badRequest(c, "invalid session id: "+raw)
		}
		ids = append(ids, id)
	}

	outcome := h.svc.TransferByIDs(c.Context(), source, target, ids, c.Query("reason"))
	return respondOutcome(c, outcome)
}

// POST /api/v1/sessions/transfer/emergency
func (h *TransferHandler) EmergencyTransfer(c fiber.Ctx) error {
	source, target, err := branchPairFromQuery(c)
	if err != nil {
		return badRequest(c, err.Error())
	}

	reason := c.Query("reason")
	if reason == "" {
		return badRequest(c, "reason is required for an emergency transfer")
	}

	outcome := h.svc.EmergencyTransfer(c.Context(), source, target, reason)
	return respondOutcome(c, outcome)
}

// GET /api/v1/sessions/transfer/status/:transferId
func (h *TransferHandler) Status(c fiber.Ctx) error {
	outcome, err := h.svc.TransferStatus(c.Context(), c.Params("transferId"))
	if err != nil {
		if errors.Is(err, transfer.ErrUnknownTransfer) {
			return notFound(c, "transfer not found")
		}
		return internalError(c)
	}
	return c.JSON(outcome)
}

// GET /api/v1/sessions/transfer/eligibility
func (h *TransferHandler) Eligibility(c fiber.Ctx) error {
	// Unparseable ids are simply ineligible, same as missing ones.
	source, _ := uuid.Parse(c.Query("sourceBranchId"))
	target, _ := uuid.Parse(c.Query("targetBranchId"))

	return ok(c, fiber.Map{"eligible": h.svc.CanTransfer(source, target)})
}

// respondOutcome maps the transfer status onto the HTTP status line while the
// body always carries the full outcome.
func respondOutcome(c fiber.Ctx, outcome *transfer.Outcome) error {
	var code int
	switch outcome.Status {
	case transfer.StatusCompleted:
		code = fiber.StatusOK
	case transfer.StatusCompletedWithErrors:
		code = fiber.StatusPartialContent
	case transfer.StatusFailed:
		code = fiber.StatusBadRequest
	default:
		code = fiber.StatusAccepted
	}
	return c.Status(code).JSON(outcome)
}

func branchPairFromQuery(c fiber.Ctx) (uuid.UUID, uuid.UUID, error) {
	source, err := uuid.Parse(c.Query("sourceBranchId"))
	if err != nil {
		return uuid.Nil, uuid.Nil, errors.New("invalid sourceBranchId")
	}
	target, err := uuid.Parse(c.Query("targetBranchId"))
	if err != nil {
		return uuid.Nil, uuid.Nil, errors.New("invalid targetBranchId")
	}
	return source, target, nil
}

func parseDate(raw string) (time.Time, error) {
	if ts, err := time.Parse(time.RFC3339, raw); err == nil {
		return ts, nil
	}
	return time.Parse("2006-01-02", raw)
}

// parseEndDate treats a date-only end bound as inclusive of the whole day.
func parseEndDate(raw string) (time.Time, error) {
	if ts, err := time.Parse(time.RFC3339, raw); err == nil {
		return ts, nil
	}
	ts, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, err
	}
	return ts.Add(23*time.Hour + 59*time.Minute + 59*time.Second), nil
}
