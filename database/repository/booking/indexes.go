// FILE: database/repository/booking/indexes.go
package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"divinedetail/models"
)

// EnsureIndexes creates the necessary indexes on the bookings collection.
func (r *mongoBookingRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		// Unique index on booking ID
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		// At most one active booking per date+time slot. The partial filter
		// keeps cancelled bookings from blocking a slot forever, and makes two
		// concurrent checkouts for the same slot a duplicate-key error instead
		// of a double booking.
		{
			Keys: bson.D{{Key: "preferred_date", Value: 1}, {Key: "preferred_time", Value: 1}},
			Options: options.Index().
				SetUnique(true).
				SetName("unique_date_time_active").
				SetPartialFilterExpression(bson.M{
					"booking_status": bson.M{"$in": []string{models.BookingStatusNew, models.BookingStatusConfirmed}},
				}),
		},
		// Primary calendar query pattern
		{
			Keys:    bson.D{{Key: "preferred_date", Value: 1}, {Key: "booking_status", Value: 1}},
			Options: options.Index().SetName("date_status_idx"),
		},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create booking indexes: %w", err)
	}
	return nil
}
