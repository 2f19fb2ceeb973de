package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/armydb/soldiers-api/internal/core/domain"
	"github.com/armydb/soldiers-api/internal/core/ports"
)

const collectionSoldiers = "soldiers"

type SoldierRepository struct {
	col *mongo.Collection
}

func NewSoldierRepository(db *mongo.Database) *SoldierRepository {
	return &SoldierRepository{col: db.Collection(collectionSoldiers)}
}

// Create inserts a new soldier document. The soldier id is the document _id,
// so a collision surfaces as a duplicate-key error and is mapped to
// domain.ErrDuplicateSoldier.
func (r *SoldierRepository) Create(ctx context.Context, s *domain.Soldier) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.InsertOne(ctx, s)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrDuplicateSoldier
		}
		return err
	}
	return nil
}

// FindByID retrieves a soldier by its 7-digit id.
func (r *SoldierRepository) FindByID(ctx context.Context, id string) (*domain.Soldier, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var s domain.Soldier
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&s)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrSoldierNotFound
		}
		return nil, err
	}
	return &s, nil
}

// List returns all soldiers matching filter. No sort is applied.
func (r *SoldierRepository) List(ctx context.Context, filter ports.SoldierFilter) ([]*domain.Soldier, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.col.Find(ctx, buildFilter(filter))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	soldiers := []*domain.Soldier{}
	if err := cursor.All(ctx, &soldiers); err != nil {
		return nil, err
	}
	return soldiers, nil
}

// DeleteByID removes the soldier and reports how many documents were deleted.
func (r *SoldierRepository) DeleteByID(ctx context.Context, id string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// Update merges the supplied fields into the document and refreshes updatedAt
// server-side. Upsert is never used; an absent id yields a zero matched count.
func (r *SoldierRepository) Update(ctx context.Context, id string, update ports.SoldierUpdate) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, buildUpdate(update))
	if err != nil {
		return 0, err
	}
	return res.MatchedCount, nil
}

// AppendLimitations pushes values onto the stored limitations array,
// preserving order and duplicates, and refreshes updatedAt.
func (r *SoldierRepository) AppendLimitations(ctx context.Context, id string, limitations []string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$push":        bson.M{"limitations": bson.M{"$each": limitations}},
		"$currentDate": bson.M{"updatedAt": true},
	})
	if err != nil {
		return 0, err
	}
	return res.MatchedCount, nil
}

// buildFilter translates the typed filter into a Mongo query document. Absent
// fields are omitted entirely; limitations use containment ($all), not exact
// array equality.
func buildFilter(f ports.SoldierFilter) bson.M {
	filter := bson.M{}
	if f.ID != "" {
		filter["_id"] = f.ID
	}
	if f.Name != "" {
		filter["name"] = f.Name
	}
	if f.RankName != "" {
		filter["rank.name"] = f.RankName
	}
	if f.RankValue != nil {
		filter["rank.value"] = *f.RankValue
	}
	if len(f.Limitations) > 0 {
		filter["limitations"] = bson.M{"$all": f.Limitations}
	}
	return filter
}

// buildUpdate translates the typed partial update into a Mongo update
// document. updatedAt is always refreshed, even when no field is supplied.
func buildUpdate(u ports.SoldierUpdate) bson.M {
	set := bson.M{}
	if u.Name != nil {
		set["name"] = *u.Name
	}
	if u.Rank != nil {
		set["rank"] = *u.Rank
	}
	if u.Limitations != nil {
		set["limitations"] = u.Limitations
	}
	if u.CreatedAt != nil {
		set["createdAt"] = *u.CreatedAt
	}

	update := bson.M{"$currentDate": bson.M{"updatedAt": true}}
	if len(set) > 0 {
		update["$set"] = set
	}
	return update
}
