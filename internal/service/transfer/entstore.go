package transfer

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/tinysteps/session-service/internal/repo"
	entoffering "github.com/tinysteps/session-service/internal/repo/sessionoffering"
)

type entStore struct {
	db *repo.Client
}

// NewEntStore wraps the ent client as an OfferingStore.
func NewEntStore(db *repo.Client) OfferingStore {
	return &entStore{db: db}
}

// Selection order is (created_at, id) so repeated runs walk sessions the same
// way and partial-failure reports stay comparable.
func orderedQuery(db *repo.Client, branchID uuid.UUID) *repo.SessionOfferingQuery {
	return db.SessionOffering.Query().
		Where(entoffering.BranchID(branchID)).
		Order(entoffering.ByCreatedAt(sql.OrderAsc()), entoffering.ByID())
}

func (s *entStore) ByBranch(ctx context.Context, branchID uuid.UUID) ([]*repo.SessionOffering, error) {
	offerings, err := orderedQuery(s.db, branchID).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load branch offerings: %w", err)
	}
	return offerings, nil
}

func (s *entStore) ActiveByBranch(ctx context.Context, branchID uuid.UUID) ([]*repo.SessionOffering, error) {
	offerings, err := orderedQuery(s.db, branchID).
		Where(entoffering.IsActive(true)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load active branch offerings: %w", err)
	}
	return offerings, nil
}

func (s *entStore) ByIDs(ctx context.Context, branchID uuid.UUID, ids []uuid.UUID) ([]*repo.SessionOffering, error) {
	offerings, err := orderedQuery(s.db, branchID).
		Where(entoffering.IDIn(ids...)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load offerings by ids: %w", err)
	}
	return offerings, nil
}

func (s *entStore) ByBranchCreatedBetween(ctx context.Context, branchID uuid.UUID, from, to time.Time) ([]*repo.SessionOffering, error) {
	offerings, err := orderedQuery(s.db, branchID).
		Where(entoffering.CreatedAtGTE(from), entoffering.CreatedAtLTE(to)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load offerings by date range: %w", err)
	}
	return offerings, nil
}

func (s *entStore) Clone(ctx context.Context, o *repo.SessionOffering, targetBranchID uuid.UUID) (*repo.SessionOffering, error) {
	clone, err := s.db.SessionOffering.Create().
		SetDoctorID(o.DoctorID).
		SetBranchID(targetBranchID).
		SetSessionTypeID(o.SessionTypeID).
		SetSessionTypeName(o.SessionTypeName).
		SetPrice(o.Price).
		SetIsActive(o.IsActive).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("clone offering: %w", err)
	}
	return clone, nil
}

func (s *entStore) Deactivate(ctx context.Context, id uuid.UUID) error {
	err := s.db.SessionOffering.UpdateOneID(id).
		SetIsActive(false).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("deactivate offering: %w", err)
	}
	return nil
}

func (s *entStore) Delete(ctx context.Context, id uuid.UUID) error {
	err := s.db.SessionOffering.DeleteOneID(id).Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete offering: %w", err)
	}
	return nil
}
