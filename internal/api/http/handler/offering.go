package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/tinysteps/session-service/internal/service/offering"
	pasetotoken "github.com/tinysteps/session-service/pkg/paseto"
)

type OfferingHandler struct {
	svc offering.Service
}

func NewOfferingHandler(svc offering.Service) *OfferingHandler {
	return &OfferingHandler{svc: svc}
}

type offeringBody struct {
	DoctorID      string `json:"doctorId"`
	BranchID      string `json:"branchId"`
	SessionTypeID string `json:"sessionTypeId"`
	Price         int64  `json:"price"`
}

func (b offeringBody) toRequest() (offering.CreateRequest, error) {
	doctorID, err := uuid.Parse(b.DoctorID)
	if err != nil {
		return offering.CreateRequest{}, errors.New("invalid doctor id")
	}
	branchID, err := uuid.Parse(b.BranchID)
	if err != nil {
		return offering.CreateRequest{}, errors.New("invalid branch id")
	}
	typeID, err := uuid.Parse(b.SessionTypeID)
	if err != nil {
		return offering.CreateRequest{}, errors.New("invalid session type id")
	}
	return offering.CreateRequest{
		DoctorID:      doctorID,
		BranchID:      branchID,
		SessionTypeID: typeID,
		Price:         b.Price,
	}, nil
}

// POST /api/v1/session-offerings
func (h *OfferingHandler) Create(c fiber.Ctx) error {
	var body offeringBody
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	req, err := body.toRequest()
	if err != nil {
		return badRequest(c, err.Error())
	}

	o, err := h.svc.Create(c.Context(), req)
	if err != nil {
		return mapOfferingError(c, err)
	}
	return created(c, o)
}

// POST /api/v1/session-offerings/bulk
func (h *OfferingHandler) BulkCreate(c fiber.Ctx) error {
	var bodies []offeringBody
	if err := c.Bind().JSON(&bodies); err != nil {
		return badRequest(c, "invalid request body")
	}
	if len(bodies) == 0 {
		return badRequest(c, "at least one offering is required")
	}

	reqs := make([]offering.CreateRequest, 0, len(bodies))
	for _, b := range bodies {
		req, err := b.toRequest()
		if err != nil {
			return badRequest(c, err.Error())
		}
		reqs = append(reqs, req)
	}

	offerings, err := h.svc.BulkCreate(c.Context(), reqs)
	if err != nil {
		return mapOfferingError(c, err)
	}
	return created(c, offerings)
}

// GET /api/v1/session-offerings/:id
func (h *OfferingHandler) GetByID(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid offering id")
	}

	o, err := h.svc.GetByID(c.Context(), id)
	if err != nil {
		return mapOfferingError(c, err)
	}
	return ok(c, o)
}

// GET /api/v1/session-offerings
func (h *OfferingHandler) Search(c fiber.Ctx) error {
	var q struct {
		Page          int     `query:"page"`
		PerPage       int     `query:"perPage"`
		BranchID      *string `query:"branchId"`
		DoctorID      *string `query:"doctorId"`
		SessionTypeID *string `query:"sessionTypeId"`
		IsActive      *bool   `query:"isActive"`
		MinPrice      *int64  `query:"minPrice"`
		MaxPrice      *int64  `query:"maxPrice"`
	}
	if err := c.Bind().Query(&q); err != nil {
		return badRequest(c, "invalid query parameters")
	}

	req := offering.SearchRequest{
		Page:     q.Page,
		PerPage:  q.PerPage,
		IsActive: q.IsActive,
		MinPrice: q.MinPrice,
		MaxPrice: q.MaxPrice,
	}

	for _, p := range []struct {
		raw string
		dst **uuid.UUID
	}{
		{deref(q.BranchID), &req.BranchID},
		{deref(q.DoctorID), &req.DoctorID},
		{deref(q.SessionTypeID), &req.SessionTypeID},
	} {
		if p.raw == "" {
			continue
		}
		id, err := uuid.Parse(p.raw)
		if err != nil {
			return badRequest(c, "invalid id filter")
		}
		*p.dst = &id
	}

	result, err := h.svc.Search(c.Context(), req)
	if err != nil {
		return internalError(c)
	}

	return ok(c, fiber.Map{
		"offerings":  result.Data,
		"total":      result.Total,
		"page":       result.Page,
		"perPage":    result.PerPage,
		"totalPages": result.TotalPages,
	})
}

// GET /api/v1/session-offerings/my-branch
//
// Offerings of the caller's primary branch, with the same filters as Search.
func (h *OfferingHandler) MyBranchOfferings(c fiber.Ctx) error {
	claims, okClaims := pasetotoken.ClaimsFromFiber(c)
	if !okClaims {
		return unauthorized(c)
	}
	if claims.PrimaryBranchID == nil {
		return badRequest(c, "no primary branch on this account")
	}

	var q struct {
		Page     int   `query:"page"`
		PerPage  int   `query:"perPage"`
		IsActive *bool `query:"isActive"`
	}
	if err := c.Bind().Query(&q); err != nil {
		return badRequest(c, "invalid query parameters")
	}

	result, err := h.svc.Search(c.Context(), offering.SearchRequest{
		Page:     q.Page,
		PerPage:  q.PerPage,
		BranchID: claims.PrimaryBranchID,
		IsActive: q.IsActive,
	})
	if err != nil {
		return internalError(c)
	}

	return ok(c, fiber.Map{
		"offerings":  result.Data,
		"total":      result.Total,
		"page":       result.Page,
		"perPage":    result.PerPage,
		"totalPages": result.TotalPages,
	})
}

// GET /api/v1/session-offerings/doctor/:doctorId
func (h *OfferingHandler) ByDoctor(c fiber.Ctx) error {
	doctorID, err := uuid.Parse(c.Params("doctorId"))
	if err != nil {
		return badRequest(c, "invalid doctor id")
	}

	offerings, err := h.svc.ByDoctor(c.Context(), doctorID)
	if err != nil {
		return internalError(c)
	}
	return ok(c, offerings)
}

// PATCH /api/v1/session-offerings/:id
func (h *OfferingHandler) Update(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid offering id")
	}

	var body struct {
		Price    *int64 `json:"price"`
		IsActive *bool  `json:"isActive"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	o, err := h.svc.Update(c.Context(), id, offering.UpdateRequest{
		Price:    body.Price,
		IsActive: body.IsActive,
	})
	if err != nil {
		return mapOfferingError(c, err)
	}
	return ok(c, o)
}

// POST /api/v1/session-offerings/:id/activate
func (h *OfferingHandler) Activate(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid offering id")
	}

	o, err := h.svc.Activate(c.Context(), id)
	if err != nil {
		return mapOfferingError(c, err)
	}
	return ok(c, o)
}

// POST /api/v1/session-offerings/:id/deactivate
func (h *OfferingHandler) Deactivate(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid offering id")
	}

	o, err := h.svc.Deactivate(c.Context(), id)
	if err != nil {
		return mapOfferingError(c, err)
	}
	return ok(c, o)
}

// DELETE /api/v1/session-offerings/:id
func (h *OfferingHandler) Delete(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid offering id")
	}

	if err := h.svc.Delete(c.Context(), id); err != nil {
		return mapOfferingError(c, err)
	}
	return noContent(c)
}

// GET /api/v1/session-offerings/statistics/branch/:branchId
func (h *OfferingHandler) BranchStatistics(c fiber.Ctx) error {
	branchID, err := uuid.Parse(c.Params("branchId"))
	if err != nil {
		return badRequest(c, "invalid branch id")
	}

	stats, err := h.svc.Branch(c.Context(), branchID)
	if err != nil {
		return internalError(c)
	}
	return ok(c, stats)
}

// GET /api/v1/session-offerings/statistics/my-branch
//
// Convenience for branch managers: statistics of the caller's primary branch.
func (h *OfferingHandler) MyBranchStatistics(c fiber.Ctx) error {
	claims, okClaims := pasetotoken.ClaimsFromFiber(c)
	if !okClaims {
		return unauthorized(c)
	}
	if claims.PrimaryBranchID == nil {
		return badRequest(c, "no primary branch on this account")
	}

	stats, err := h.svc.Branch(c.Context(), *claims.PrimaryBranchID)
	if err != nil {
		return internalError(c)
	}
	return ok(c, stats)
}

// GET /api/v1/session-offerings/statistics
func (h *OfferingHandler) AllBranchStatistics(c fiber.Ctx) error {
	stats, err := h.svc.AllBranches(c.Context())
	if err != nil {
		return internalError(c)
	}
	return ok(c, stats)
}

func mapOfferingError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, offering.ErrNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, offering.ErrSessionTypeNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, offering.ErrDuplicateOffering):
		return conflict(c, err.Error())
	case errors.Is(err, offering.ErrSessionTypeInactive),
		errors.Is(err, offering.ErrInvalidRequest):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
