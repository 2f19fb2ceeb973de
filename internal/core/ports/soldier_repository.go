package ports

import (
	"context"
	"time"

	"github.com/armydb/soldiers-api/internal/core/domain"
)

// SoldierFilter carries all query parameters for listing soldiers. Zero-value
// fields are omitted from the resulting query, so an empty filter matches
// every record.
type SoldierFilter struct {
	ID          string   // equality on the 7-digit id
	Name        string   // equality on name
	RankName    string   // equality on the nested rank.name field
	RankValue   *int     // equality on the nested rank.value field; nil = absent
	Limitations []string // stored limitations must contain all of these (order-independent)
}

// SoldierUpdate carries the fields of a partial update. Nil pointers and a nil
// Limitations slice mean "not supplied"; supplied fields replace the stored
// ones (merge semantics).
type SoldierUpdate struct {
	Name        *string
	Rank        *domain.Rank
	Limitations []string
	CreatedAt   *time.Time
}

// SoldierRepository defines persistence operations for soldiers. All
// operations are single round trips against one collection keyed by id.
type SoldierRepository interface {
	// Create inserts a new soldier. Returns domain.ErrDuplicateSoldier when a
	// record with the same id already exists.
	Create(ctx context.Context, s *domain.Soldier) error
	// FindByID returns domain.ErrSoldierNotFound when no record matches.
	FindByID(ctx context.Context, id string) (*domain.Soldier, error)
	// List returns all records matching filter, in no guaranteed order.
	List(ctx context.Context, filter SoldierFilter) ([]*domain.Soldier, error)
	// DeleteByID reports how many records were removed (0 or 1).
	DeleteByID(ctx context.Context, id string) (int64, error)
	// Update merges the supplied fields into the record and refreshes
	// updatedAt. It does not create the record if absent; the matched count
	// (0 or 1) is returned.
	Update(ctx context.Context, id string, update SoldierUpdate) (int64, error)
	// AppendLimitations appends values to the stored limitations sequence and
	// refreshes updatedAt. Duplicates are preserved. Returns the matched count.
	AppendLimitations(ctx context.Context, id string, limitations []string) (int64, error)
}
