package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/armydb/soldiers-api/internal/core/domain"
	"github.com/armydb/soldiers-api/internal/core/ports"
)

type SoldierService struct {
	repo   ports.SoldierRepository
	logger zerolog.Logger
}

func NewSoldierService(repo ports.SoldierRepository, logger zerolog.Logger) *SoldierService {
	return &SoldierService{repo: repo, logger: logger}
}

// Create inserts a new soldier. The rank is normalized so both name and value
// are populated, limitations are lowercased, and missing timestamps default
// to now.
func (s *SoldierService) Create(ctx context.Context, input ports.CreateSoldierInput) (*domain.Soldier, error) {
	rank, err := resolveRank(input.Rank)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	soldier := &domain.Soldier{
		ID:          input.ID,
		Name:        input.Name,
		Rank:        rank,
		Limitations: normalizeLimitations(input.Limitations),
		CreatedAt:   orNow(input.CreatedAt, now),
		UpdatedAt:   orNow(input.UpdatedAt, now),
	}

	if err := s.repo.Create(ctx, soldier); err != nil {
		return nil, err
	}

	s.logger.Info().Str("soldier_id", soldier.ID).Str("rank", soldier.Rank.Name).Msg("soldier created")
	return soldier, nil
}

func (s *SoldierService) Get(ctx context.Context, id string) (*domain.Soldier, error) {
	return s.repo.FindByID(ctx, id)
}

// List returns all soldiers matching filter; an empty filter matches every
// record. No ordering is guaranteed.
func (s *SoldierService) List(ctx context.Context, filter ports.SoldierFilter) ([]*domain.Soldier, error) {
	soldiers, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	if soldiers == nil {
		soldiers = []*domain.Soldier{}
	}
	return soldiers, nil
}

func (s *SoldierService) Delete(ctx context.Context, id string) error {
	deleted, err := s.repo.DeleteByID(ctx, id)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return domain.ErrSoldierNotFound
	}
	s.logger.Info().Str("soldier_id", id).Msg("soldier deleted")
	return nil
}

// Update merges the supplied fields into the stored record. A supplied rank
// is normalized the same way as on create; updatedAt is refreshed by the
// repository on every update.
func (s *SoldierService) Update(ctx context.Context, id string, input ports.UpdateSoldierInput) (*domain.Soldier, error) {
	update := ports.SoldierUpdate{
		Name:      input.Name,
		CreatedAt: input.CreatedAt,
	}
	if input.Rank != nil {
		rank, err := resolveRank(*input.Rank)
		if err != nil {
			return nil, err
		}
		update.Rank = &rank
	}
	if input.Limitations != nil {
		update.Limitations = normalizeLimitations(input.Limitations)
	}

	matched, err := s.repo.Update(ctx, id, update)
	if err != nil {
		return nil, err
	}
	if matched == 0 {
		return nil, domain.ErrSoldierNotFound
	}

	s.logger.Info().Str("soldier_id", id).Msg("soldier updated")
	return s.repo.FindByID(ctx, id)
}

// AppendLimitations appends the lowercased values to the record's
// limitations. Duplicates are intentionally preserved.
func (s *SoldierService) AppendLimitations(ctx context.Context, id string, limitations []string) (*domain.Soldier, error) {
	matched, err := s.repo.AppendLimitations(ctx, id, normalizeLimitations(limitations))
	if err != nil {
		return nil, err
	}
	if matched == 0 {
		return nil, domain.ErrSoldierNotFound
	}

	s.logger.Info().Str("soldier_id", id).Int("count", len(limitations)).Msg("limitations appended")
	return s.repo.FindByID(ctx, id)
}

// resolveRank derives the missing half of a client-supplied rank. An explicit
// value wins when both are present, but the schema layer rejects that case
// before it reaches here.
func resolveRank(input ports.RankInput) (domain.Rank, error) {
	if input.Value != nil {
		return domain.RankByValue(*input.Value)
	}
	return domain.RankByName(input.Name)
}

// normalizeLimitations trims and lowercases every entry. A nil input yields
// an empty, non-nil slice so stored documents always carry an array.
func normalizeLimitations(limitations []string) []string {
	normalized := make([]string, 0, len(limitations))
	for _, l := range limitations {
		normalized = append(normalized, strings.ToLower(strings.TrimSpace(l)))
	}
	return normalized
}

func orNow(t time.Time, now time.Time) time.Time {
	if t.IsZero() {
		return now
	}
	return t.UTC()
}
