// File: database/repository/blocked/blocked.go
package blockedRepo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"divinedetail/database"
	"divinedetail/models"
)

// BlockedRepository defines methods to interact with operator-blocked dates.
type BlockedRepository interface {
	ListDates(ctx context.Context, from, to string) ([]string, error)
	Add(ctx context.Context, block models.BlockedDate) error
	EnsureIndexes() error
}

type mongoBlockedRepo struct {
	coll *mongo.Collection
}

// NewMongoBlockedRepo constructs a new MongoDB BlockedRepository.
func NewMongoBlockedRepo() BlockedRepository {
	return &mongoBlockedRepo{
		coll: database.Collection("blocked_dates"),
	}
}

func (r *mongoBlockedRepo) ListDates(ctx context.Context, from, to string) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"date": bson.M{"$gte": from, "$lte": to}}
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var dates []string
	for cursor.Next(ctx) {
		var row models.BlockedDate
		if err := cursor.Decode(&row); err != nil {
			return nil, err
		}
		dates = append(dates, row.Date)
	}
	return dates, cursor.Err()
}

func (r *mongoBlockedRepo) Add(ctx context.Context, block models.BlockedDate) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if block.CreatedAt.IsZero() {
		block.CreatedAt = time.Now()
	}
	// Upsert keeps re-seeding idempotent.
	filter := bson.M{"date": block.Date}
	update := bson.M{"$set": block}
	_, err := r.coll.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	return err
}

func (r *mongoBlockedRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "date", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("unique_date"),
	})
	return err
}
