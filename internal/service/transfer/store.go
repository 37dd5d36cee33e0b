package transfer

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/tinysteps/session-service/internal/repo"
)

// OfferingStore is the persistence surface the transfer workflow needs. The
// production implementation sits on ent; tests swap in an in-memory fake.
type OfferingStore interface {
	// ByBranch returns every offering of the branch, oldest first.
	ByBranch(ctx context.Context, branchID uuid.UUID) ([]*repo.SessionOffering, error)

	// ActiveByBranch returns only the branch's active offerings, oldest first.
	ActiveByBranch(ctx context.Context, branchID uuid.UUID) ([]*repo.SessionOffering, error)

	// ByIDs returns the offerings with the given ids that belong to the
	// branch, oldest first. Ids from other branches are silently dropped.
	ByIDs(ctx context.Context, branchID uuid.UUID, ids []uuid.UUID) ([]*repo.SessionOffering, error)

	// ByBranchCreatedBetween returns the branch's offerings created inside
	// the inclusive [from, to] window, oldest first.
	ByBranchCreatedBetween(ctx context.Context, branchID uuid.UUID, from, to time.Time) ([]*repo.SessionOffering, error)

	// Clone persists a copy of the offering under the target branch and
	// returns the new row. The copy keeps the source's active flag.
	Clone(ctx context.Context, o *repo.SessionOffering, targetBranchID uuid.UUID) (*repo.SessionOffering, error)

	Deactivate(ctx context.Context, id uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
}
