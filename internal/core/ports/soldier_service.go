package ports

import (
	"context"
	"time"

	"github.com/armydb/soldiers-api/internal/core/domain"
)

// RankInput is a client-supplied rank: exactly one of Name / Value is expected
// to be set. The transport layer enforces the exactly-one constraint; the
// service derives the missing half.
type RankInput struct {
	Name  string
	Value *int
}

// CreateSoldierInput carries all data needed to create a new soldier.
// Zero-value timestamps are coerced to "now" by the service.
type CreateSoldierInput struct {
	ID          string
	Name        string
	Rank        RankInput
	Limitations []string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// UpdateSoldierInput carries a partial update. Nil pointers and a nil
// Limitations slice mean "field not supplied".
type UpdateSoldierInput struct {
	Name        *string
	Rank        *RankInput
	Limitations []string
	CreatedAt   *time.Time
}

// SoldierService defines use-case operations for soldiers.
type SoldierService interface {
	Create(ctx context.Context, input CreateSoldierInput) (*domain.Soldier, error)
	Get(ctx context.Context, id string) (*domain.Soldier, error)
	List(ctx context.Context, filter SoldierFilter) ([]*domain.Soldier, error)
	// Delete returns domain.ErrSoldierNotFound when no record matched.
	Delete(ctx context.Context, id string) error
	// Update merges the supplied fields and returns the updated record.
	Update(ctx context.Context, id string, input UpdateSoldierInput) (*domain.Soldier, error)
	// AppendLimitations appends the (lowercased) values to the record's
	// limitations and returns the updated record.
	AppendLimitations(ctx context.Context, id string, limitations []string) (*domain.Soldier, error)
}
