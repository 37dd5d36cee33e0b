package sessiontype

import (
	"context"
	"fmt"
	"log/slog"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

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
	Name                    string
	Description             *string
	DefaultDurationMinutes  int
	IsTelemedicineAvailable bool
}

type UpdateRequest struct {
	Name                    *string
	Description             *string
	DefaultDurationMinutes  *int
	IsTelemedicineAvailable *bool
}

type SearchRequest struct {
	Page    int
	PerPage int

	Name           *string // substring, case-insensitive
	Status         *string
	Telemedicine   *bool
	MinDurationMin *int
	MaxDurationMin *int
}

type Statistics struct {
	Total    int `json:"total"`
	Active   int `json:"active"`
	Inactive int `json:"inactive"`
	Deleted  int `json:"deleted"`
}

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*repo.SessionType, error)
	GetByID(ctx context.Context, id uuid.UUID) (*repo.SessionType, error)
	Search(ctx context.Context, req SearchRequest) (*PaginatedResult[*repo.SessionType], error)
	ListByStatus(ctx context.Context, status string) ([]*repo.SessionType, error)
	Update(ctx context.Context, id uuid.UUID, req UpdateRequest) (*repo.SessionType, error)

	// Lifecycle. Deactivate also deactivates every offering of this type.
	Activate(ctx context.Context, id uuid.UUID) (*repo.SessionType, error)
	Deactivate(ctx context.Context, id uuid.UUID) (*repo.SessionType, error)
	SoftDelete(ctx context.Context, id uuid.UUID) error
	Reactivate(ctx context.Context, id uuid.UUID) (*repo.SessionType, error)

	ExistsByName(ctx context.Context, name string) (bool, error)
	Statistics(ctx context.Context) (*Statistics, error)
}

type sessionTypeService struct {
	db     *repo.Client
	logger *slog.Logger
}

func New(db *repo.Client, logger *slog.Logger) Service {
	return &sessionTypeService{
		db:     db,
		logger: logger.With(slog.String("service", "session_type")),
	}
}

// ---------------------------------------------------------------------------
// CRUD
// ---------------------------------------------------------------------------

func (s *sessionTypeService) Create(ctx context.Context, req CreateRequest) (*repo.SessionType, error) {
	if req.Name == "" || req.DefaultDurationMinutes <= 0 {
		return nil, ErrInvalidRequest
	}

	taken, err := s.ExistsByName(ctx, req.Name)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrNameTaken
	}

	c := s.db.SessionType.Create().
		SetName(req.Name).
		SetDefaultDurationMinutes(req.DefaultDurationMinutes).
		SetIsTelemedicineAvailable(req.IsTelemedicineAvailable).
		SetStatus(enttype.StatusActive)

	if req.Description != nil {
		c = c.SetNillableDescription(req.Description)
	}

	st, err := c.Save(ctx)
	if err != nil {
		if repo.IsConstraintError(err) {
			return nil, ErrNameTaken
		}
		return nil, fmt.Errorf("create session type: %w", err)
	}

	s.logger.InfoContext(ctx, "session type created",
		slog.String("session_type_id", st.ID.String()),
		slog.String("name", st.Name))

	return st, nil
}

func (s *sessionTypeService) GetByID(ctx context.Context, id uuid.UUID) (*repo.SessionType, error) {
	st, err := s.db.SessionType.Query().
		Where(enttype.ID(id)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get session type: %w", err)
	}
	if st.Status == enttype.StatusDeleted {
		return nil, ErrNotFound
	}
	return st, nil
}

func (s *sessionTypeService) Search(ctx context.Context, req SearchRequest) (*PaginatedResult[*repo.SessionType], error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PerPage < 1 || req.PerPage > 100 {
		req.PerPage = 20
	}
	offset := (req.Page - 1) * req.PerPage

	q := s.db.SessionType.Query().
		Where(enttype.StatusNEQ(enttype.StatusDeleted))

	if req.Name != nil {
		q = q.Where(enttype.NameContainsFold(*req.Name))
	}
	if req.Status != nil {
		q = q.Where(enttype.StatusEQ(enttype.Status(*req.Status)))
	}
	if req.Telemedicine != nil {
		q = q.Where(enttype.IsTelemedicineAvailable(*req.Telemedicine))
	}
	if req.MinDurationMin != nil {
		q = q.Where(enttype.DefaultDurationMinutesGTE(*req.MinDurationMin))
	}
	if req.MaxDurationMin != nil {
		q = q.Where(enttype.DefaultDurationMinutesLTE(*req.MaxDurationMin))
	}

	total, err := q.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count session types: %w", err)
	}

	types, err := q.
		Order(enttype.ByName(sql.OrderAsc())).
		Offset(offset).
		Limit(req.PerPage).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("search session types: %w", err)
	}

	totalPages := (total + req.PerPage - 1) / req.PerPage
	return &PaginatedResult[*repo.SessionType]{
		Data:       types,
		Total:      total,
		Page:       req.Page,
		PerPage:    req.PerPage,
		TotalPages: totalPages,
	}, nil
}

func (s *sessionTypeService) ListByStatus(ctx context.Context, status string) ([]*repo.SessionType, error) {
	types, err := s.db.SessionType.Query().
		Where(enttype.StatusEQ(enttype.Status(status))).
		Order(enttype.ByName(sql.OrderAsc())).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list session types: %w", err)
	}
	return types, nil
}

func (s *sessionTypeService) Update(ctx context.Context, id uuid.UUID, req UpdateRequest) (*repo.SessionType, error) {
	st, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil && *req.Name != st.Name {
		taken, err := s.ExistsByName(ctx, *req.Name)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, ErrNameTaken
		}
	}

	u := s.db.SessionType.UpdateOne(st)

	if req.Name != nil {
		u = u.SetName(*req.Name)
	}
	if req.Description != nil {
		u = u.SetNillableDescription(req.Description)
	}
	if req.DefaultDurationMinutes != nil {
		if *req.DefaultDurationMinutes <= 0 {
			return nil, ErrInvalidRequest
		}
		u = u.SetDefaultDurationMinutes(*req.DefaultDurationMinutes)
	}
	if req.IsTelemedicineAvailable != nil {
		u = u.SetIsTelemedicineAvailable(*req.IsTelemedicineAvailable)
	}

	updated, err := u.Save(ctx)
	if err != nil {
		if repo.IsConstraintError(err) {
			return nil, ErrNameTaken
		}
		return nil, fmt.Errorf("update session type: %w", err)
	}
	return updated, nil
}

// ---------------------------------------------------------------------------
// Lifecycle
// ---------------------------------------------------------------------------

func (s *sessionTypeService) Activate(ctx context.Context, id uuid.UUID) (*repo.SessionType, error) {
	return s.setStatus(ctx, id, enttype.StatusActive)
}

// Deactivate marks the type inactive and cascades to its offerings so that
// bookable inventory never references a type patients cannot pick.
func (s *sessionTypeService) Deactivate(ctx context.Context, id uuid.UUID) (*repo.SessionType, error) {
	st, err := s.setStatus(ctx, id, enttype.StatusInactive)
	if err != nil {
		return nil, err
	}

	n, err := s.db.SessionOffering.Update().
		Where(entoffering.SessionTypeID(id), entoffering.IsActive(true)).
		SetIsActive(false).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("deactivate offerings of type: %w", err)
	}
	if n > 0 {
		s.logger.InfoContext(ctx, "deactivated offerings of inactive session type",
			slog.String("session_type_id", id.String()),
			slog.Int("offerings", n))
	}

	return st, nil
}

// SoftDelete keeps the row so existing offerings retain their denormalized
// type name, but the type disappears from every read path.
func (s *sessionTypeService) SoftDelete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.Deactivate(ctx, id); err != nil {
		return err
	}
	if _, err := s.setStatus(ctx, id, enttype.StatusDeleted); err != nil {
		return err
	}
	return nil
}

func (s *sessionTypeService) Reactivate(ctx context.Context, id uuid.UUID) (*repo.SessionType, error) {
	st, err := s.db.SessionType.Query().
		Where(enttype.ID(id)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get session type: %w", err)
	}
	if st.Status != enttype.StatusDeleted {
		return st, nil
	}

	updated, err := s.db.SessionType.UpdateOne(st).
		SetStatus(enttype.StatusActive).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("reactivate session type: %w", err)
	}
	return updated, nil
}

func (s *sessionTypeService) setStatus(ctx context.Context, id uuid.UUID, status enttype.Status) (*repo.SessionType, error) {
	st, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if st.Status == status {
		return st, nil
	}

	updated, err := s.db.SessionType.UpdateOne(st).
		SetStatus(status).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("set session type status: %w", err)
	}
	return updated, nil
}

// ---------------------------------------------------------------------------
// Queries
// ---------------------------------------------------------------------------

func (s *sessionTypeService) ExistsByName(ctx context.Context, name string) (bool, error) {
	exists, err := s.db.SessionType.Query().
		Where(enttype.NameEqualFold(name), enttype.StatusNEQ(enttype.StatusDeleted)).
		Exist(ctx)
	if err != nil {
		return false, fmt.Errorf("check session type name: %w", err)
	}
	return exists, nil
}

func (s *sessionTypeService) Statistics(ctx context.Context) (*Statistics, error) {
	var stats Statistics

	counts := []struct {
		status enttype.Status
		dst    *int
	}{
		{enttype.StatusActive, &stats.Active},
		{enttype.StatusInactive, &stats.Inactive},
		{enttype.StatusDeleted, &stats.Deleted},
	}
	for _, c := range counts {
		n, err := s.db.SessionType.Query().
			Where(enttype.StatusEQ(c.status)).
			Count(ctx)
		if err != nil {
			return nil, fmt.Errorf("count session types: %w", err)
		}
		*c.dst = n
	}

	stats.Total = stats.Active + stats.Inactive + stats.Deleted
	return &stats, nil
}
