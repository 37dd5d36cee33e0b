package offering

import (
	"context"
	"fmt"
	"log/slog"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/tinysteps/session-service/internal/integration"
	"github.com/tinysteps/session-service/internal/repo"
	entoffering "github.com/tinysteps/session-service/internal/repo/sessionoffering"
	enttype "github.com/tinysteps/session-service/internal/repo/sessiontype"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type PaginatedResult[T any] struct {
	Data       []T
	Total      int
	Page       int
	PerPage    int
	TotalPages int
}

type CreateRequest struct {
	DoctorID      uuid.UUID
	BranchID      uuid.UUID
	SessionTypeID uuid.UUID
	Price         int64 // smallest currency unit
}

type UpdateRequest struct {
	Price    *int64
	IsActive *bool
}

type SearchRequest struct {
	Page    int
	PerPage int

	BranchID      *uuid.UUID
	DoctorID      *uuid.UUID
	SessionTypeID *uuid.UUID
	IsActive      *bool
	MinPrice      *int64
	MaxPrice      *int64
}

// BranchStatistics summarizes a branch's offering inventory. AveragePrice
// covers active offerings only and is zero when the branch has none.
type BranchStatistics struct {
	BranchID     uuid.UUID `json:"branchId"`
	Total        int       `json:"totalOfferings"`
	Active       int       `json:"activeOfferings"`
	Inactive     int       `json:"inactiveOfferings"`
	AveragePrice float64   `json:"averagePrice"`
}

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*repo.SessionOffering, error)
	BulkCreate(ctx context.Context, reqs []CreateRequest) ([]*repo.SessionOffering, error)
	GetByID(ctx context.Context, id uuid.UUID) (*repo.SessionOffering, error)
	Search(ctx context.Context, req SearchRequest) (*PaginatedResult[*repo.SessionOffering], error)
	ByDoctor(ctx context.Context, doctorID uuid.UUID) ([]*repo.SessionOffering, error)
	Update(ctx context.Context, id uuid.UUID, req UpdateRequest) (*repo.SessionOffering, error)
	Activate(ctx context.Context, id uuid.UUID) (*repo.SessionOffering, error)
	Deactivate(ctx context.Context, id uuid.UUID) (*repo.SessionOffering, error)
	Delete(ctx context.Context, id uuid.UUID) error

	Branch(ctx context.Context, branchID uuid.UUID) (*BranchStatistics, error)
	AllBranches(ctx context.Context) ([]*BranchStatistics, error)
}

type offeringService struct {
	db      *repo.Client
	doctors integration.DoctorValidator
	logger  *slog.Logger
}

func New(db *repo.Client, doctors integration.DoctorValidator, logger *slog.Logger) Service {
	return &offeringService{
		db:      db,
		doctors: doctors,
		logger:  logger.With(slog.String("service", "offering")),
	}
}

// ---------------------------------------------------------------------------
// CRUD
// ---------------------------------------------------------------------------

func (s *offeringService) Create(ctx context.Context, req CreateRequest) (*repo.SessionOffering, error) {
	if req.Price < 0 {
		return nil, ErrInvalidRequest
	}

	st, err := s.db.SessionType.Query().
		Where(enttype.ID(req.SessionTypeID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrSessionTypeNotFound
		}
		return nil, fmt.Errorf("get session type: %w", err)
	}
	if st.Status != enttype.StatusActive {
		return nil, ErrSessionTypeInactive
	}

	// The doctor-service is a soft dependency. An unreachable registry must
	// not block branches from publishing inventory.
	if err := s.doctors.ValidateDoctorExists(ctx, req.DoctorID); err != nil {
		s.logger.WarnContext(ctx, "doctor validation did not pass, creating offering anyway",
			slog.String("doctor_id", req.DoctorID.String()),
			slog.String("error", err.Error()))
	}

	o, err := s.db.SessionOffering.Create().
		SetDoctorID(req.DoctorID).
		SetBranchID(req.BranchID).
		SetSessionTypeID(st.ID).
		SetSessionTypeName(st.Name).
		SetPrice(req.Price).
		SetIsActive(true).
		Save(ctx)
	if err != nil {
		if repo.IsConstraintError(err) {
			return nil, ErrDuplicateOffering
		}
		return nil, fmt.Errorf("create offering: %w", err)
	}

	s.logger.InfoContext(ctx, "offering created",
		slog.String("offering_id", o.ID.String()),
		slog.String("branch_id", o.BranchID.String()),
		slog.String("session_type", o.SessionTypeName))

	return o, nil
}

func (s *offeringService) BulkCreate(ctx context.Context, reqs []CreateRequest) ([]*repo.SessionOffering, error) {
	out := make([]*repo.SessionOffering, 0, len(reqs))
	for _, req := range reqs {
		o, err := s.Create(ctx, req)
		if err != nil {
			return nil, fmt.Errorf("bulk create offering %d of %d: %w", len(out)+1, len(reqs), err)
		}
		out = append(out, o)
	}
	return out, nil
}

func (s *offeringService) GetByID(ctx context.Context, id uuid.UUID) (*repo.SessionOffering, error) {
	o, err := s.db.SessionOffering.Query().
		Where(entoffering.ID(id)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get offering: %w", err)
	}
	return o, nil
}

func (s *offeringService) Search(ctx context.Context, req SearchRequest) (*PaginatedResult[*repo.SessionOffering], error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PerPage < 1 || req.PerPage > 100 {
		req.PerPage = 20
	}
	offset := (req.Page - 1) * req.PerPage

	q := s.db.SessionOffering.Query()

	if req.BranchID != nil {
		q = q.Where(entoffering.BranchID(*req.BranchID))
	}
	if req.DoctorID != nil {
		q = q.Where(entoffering.DoctorID(*req.DoctorID))
	}
	if req.SessionTypeID != nil {
		q = q.Where(entoffering.SessionTypeID(*req.SessionTypeID))
	}
	if req.IsActive != nil {
		q = q.Where(entoffering.IsActive(*req.IsActive))
	}
	if req.MinPrice != nil {
		q = q.Where(entoffering.PriceGTE(*req.MinPrice))
	}
	if req.MaxPrice != nil {
		q = q.Where(entoffering.PriceLTE(*req.MaxPrice))
	}

	total, err := q.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count offerings: %w", err)
	}

	offerings, err := q.
		Order(entoffering.ByCreatedAt(sql.OrderDesc()), entoffering.ByID()).
		Offset(offset).
		Limit(req.PerPage).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("search offerings: %w", err)
	}

	totalPages := (total + req.PerPage - 1) / req.PerPage
	return &PaginatedResult[*repo.SessionOffering]{
		Data:       offerings,
		Total:      total,
		Page:       req.Page,
		PerPage:    req.PerPage,
		TotalPages: totalPages,
	}, nil
}

func (s *offeringService) ByDoctor(ctx context.Context, doctorID uuid.UUID) ([]*repo.SessionOffering, error) {
	offerings, err := s.db.SessionOffering.Query().
		Where(entoffering.DoctorID(doctorID)).
		Order(entoffering.ByCreatedAt(sql.OrderDesc()), entoffering.ByID()).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list offerings by doctor: %w", err)
	}
	return offerings, nil
}

func (s *offeringService) Update(ctx context.Context, id uuid.UUID, req UpdateRequest) (*repo.SessionOffering, error) {
	o, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	u := s.db.SessionOffering.UpdateOne(o)

	if req.Price != nil {
		if *req.Price < 0 {
			return nil, ErrInvalidRequest
		}
		u = u.SetPrice(*req.Price)
	}
	if req.IsActive != nil {
		u = u.SetIsActive(*req.IsActive)
	}

	updated, err := u.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update offering: %w", err)
	}
	return updated, nil
}

func (s *offeringService) Activate(ctx context.Context, id uuid.UUID) (*repo.SessionOffering, error) {
	active := true
	return s.Update(ctx, id, UpdateRequest{IsActive: &active})
}

func (s *offeringService) Deactivate(ctx context.Context, id uuid.UUID) (*repo.SessionOffering, error) {
	active := false
	return s.Update(ctx, id, UpdateRequest{IsActive: &active})
}

func (s *offeringService) Delete(ctx context.Context, id uuid.UUID) error {
	err := s.db.SessionOffering.DeleteOneID(id).Exec(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("delete offering: %w", err)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Statistics
// ---------------------------------------------------------------------------

func (s *offeringService) Branch(ctx context.Context, branchID uuid.UUID) (*BranchStatistics, error) {
	total, err := s.db.SessionOffering.Query().
		Where(entoffering.BranchID(branchID)).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count branch offerings: %w", err)
	}

	active, err := s.db.SessionOffering.Query().
		Where(entoffering.BranchID(branchID), entoffering.IsActive(true)).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count active branch offerings: %w", err)
	}

	stats := &BranchStatistics{
		BranchID: branchID,
		Total:    total,
		Active:   active,
		Inactive: total - active,
	}

	// AVG over zero rows is NULL, so only aggregate when something is there.
	if active > 0 {
		avg, err := s.db.SessionOffering.Query().
			Where(entoffering.BranchID(branchID), entoffering.IsActive(true)).
			Aggregate(repo.Mean(entoffering.FieldPrice)).
			Float64(ctx)
		if err != nil {
			return nil, fmt.Errorf("average branch price: %w", err)
		}
		stats.AveragePrice = avg
	}

	return stats, nil
}

func (s *offeringService) AllBranches(ctx context.Context) ([]*BranchStatistics, error) {
	var rows []struct {
		BranchID uuid.UUID `json:"branch_id"`
	}
	err := s.db.SessionOffering.Query().
		GroupBy(entoffering.FieldBranchID).
		Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("list branches with offerings: %w", err)
	}

	out := make([]*BranchStatistics, 0, len(rows))
	for _, row := range rows {
		stats, err := s.Branch(ctx, row.BranchID)
		if err != nil {
			return nil, err
		}
		out = append(out, stats)
	}
	return out, nil
}
