package handler

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/tinysteps/session-service/internal/repo"
	"github.com/tinysteps/session-service/internal/service/sessiontype"
)

type SessionTypeHandler struct {
	svc sessiontype.Service
}

func NewSessionTypeHandler(svc sessiontype.Service) *SessionTypeHandler {
	return &SessionTypeHandler{svc: svc}
}

// POST /api/v1/session-types
func (h *SessionTypeHandler) Create(c fiber.Ctx) error {
	var body struct {
		Name                    string  `json:"name"`
		Description             *string `json:"description"`
		DefaultDurationMinutes  int     `json:"defaultDurationMinutes"`
		IsTelemedicineAvailable bool    `json:"isTelemedicineAvailable"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.Name == "" {
		return badRequest(c, "name is required")
	}

	st, err := h.svc.Create(c.Context(), sessiontype.CreateRequest{
		Name:                    body.Name,
		Description:             body.Description,
		DefaultDurationMinutes:  body.DefaultDurationMinutes,
		IsTelemedicineAvailable: body.IsTelemedicineAvailable,
	})
	if err != nil {
		return mapSessionTypeError(c, err)
	}

	return created(c, st)
}

// GET /api/v1/session-types/:id
func (h *SessionTypeHandler) GetByID(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid session type id")
	}

	st, err := h.svc.GetByID(c.Context(), id)
	if err != nil {
		return mapSessionTypeError(c, err)
	}
	return ok(c, st)
}

// GET /api/v1/session-types
func (h *SessionTypeHandler) Search(c fiber.Ctx) error {
	var q struct {
		Page         int     `query:"page"`
		PerPage      int     `query:"perPage"`
		Name         *string `query:"name"`
		Status       *string `query:"status"`
		Telemedicine *bool   `query:"telemedicine"`
		MinDuration  *int    `query:"minDurationMinutes"`
		MaxDuration  *int    `query:"maxDurationMinutes"`
	}
	if err := c.Bind().Query(&q); err != nil {
		return badRequest(c, "invalid query parameters")
	}

	result, err := h.svc.Search(c.Context(), sessiontype.SearchRequest{
		Page:           q.Page,
		PerPage:        q.PerPage,
		Name:           q.Name,
		Status:         q.Status,
		Telemedicine:   q.Telemedicine,
		MinDurationMin: q.MinDuration,
		MaxDurationMin: q.MaxDuration,
	})
	if err != nil {
		return internalError(c)
	}

	return ok(c, fiber.Map{
		"sessionTypes": result.Data,
		"total":        result.Total,
		"page":         result.Page,
		"perPage":      result.PerPage,
		"totalPages":   result.TotalPages,
	})
}

// PATCH /api/v1/session-types/:id
func (h *SessionTypeHandler) Update(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid session type id")
	}

	var body struct {
		Name                    *string `json:"name"`
		Description             *string `json:"description"`
		DefaultDurationMinutes  *int    `json:"defaultDurationMinutes"`
		IsTelemedicineAvailable *bool   `json:"isTelemedicineAvailable"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	st, err := h.svc.Update(c.Context(), id, sessiontype.UpdateRequest{
		Name:                    body.Name,
		Description:             body.Description,
		DefaultDurationMinutes:  body.DefaultDurationMinutes,
		IsTelemedicineAvailable: body.IsTelemedicineAvailable,
	})
	if err != nil {
		return mapSessionTypeError(c, err)
	}
	return ok(c, st)
}

// POST /api/v1/session-types/:id/activate
func (h *SessionTypeHandler) Activate(c fiber.Ctx) error {
	return h.setStatus(c, h.svc.Activate)
}

// POST /api/v1/session-types/:id/deactivate
func (h *SessionTypeHandler) Deactivate(c fiber.Ctx) error {
	return h.setStatus(c, h.svc.Deactivate)
}

// POST /api/v1/session-types/:id/reactivate
func (h *SessionTypeHandler) Reactivate(c fiber.Ctx) error {
	return h.setStatus(c, h.svc.Reactivate)
}

// DELETE /api/v1/session-types/:id
func (h *SessionTypeHandler) Delete(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid session type id")
	}

	if err := h.svc.SoftDelete(c.Context(), id); err != nil {
		return mapSessionTypeError(c, err)
	}
	return noContent(c)
}

// GET /api/v1/session-types/exists?name=
func (h *SessionTypeHandler) ExistsByName(c fiber.Ctx) error {
	name := c.Query("name")
	if name == "" {
		return badRequest(c, "name is required")
	}

	exists, err := h.svc.ExistsByName(c.Context(), name)
	if err != nil {
		return internalError(c)
	}
	return ok(c, fiber.Map{"exists": exists})
}

// GET /api/v1/session-types/status/:status
func (h *SessionTypeHandler) ListByStatus(c fiber.Ctx) error {
	status := c.Params("status")
	switch status {
	case "active", "inactive", "deleted":
	default:
		return badRequest(c, "invalid status")
	}

	types, err := h.svc.ListByStatus(c.Context(), status)
	if err != nil {
		return internalError(c)
	}
	return ok(c, types)
}

// GET /api/v1/session-types/statistics
func (h *SessionTypeHandler) Statistics(c fiber.Ctx) error {
	stats, err := h.svc.Statistics(c.Context())
	if err != nil {
		return internalError(c)
	}
	return ok(c, stats)
}

func (h *SessionTypeHandler) setStatus(c fiber.Ctx, fn func(ctx context.Context, id uuid.UUID) (*repo.SessionType, error)) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid session type id")
	}

	st, err := fn(c.Context(), id)
	if err != nil {
		return mapSessionTypeError(c, err)
	}
	return ok(c, st)
}

func mapSessionTypeError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, sessiontype.ErrNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, sessiontype.ErrNameTaken):
		return conflict(c, err.Error())
	case errors.Is(err, sessiontype.ErrInvalidRequest):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}
