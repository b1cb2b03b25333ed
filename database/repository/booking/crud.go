// File: database/repository/booking/crud.go
package bookingRepo

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"divinedetail/models"
)

func (r *mongoBookingRepo) Insert(ctx context.Context, b *models.Booking) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if b.ID == "" {
		b.ID = uuid.New().String()
	}
	if b.CreatedAt.IsZero() {
		b.CreatedAt = time.Now()
	}

	_, err := r.coll.InsertOne(ctx, b)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrSlotConflict
		}
		return err
	}
	return nil
}

func (r *mongoBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var b models.Booking
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&b)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &b, nil
}

func (r *mongoBookingRepo) MarkPaid(ctx context.Context, id, paymentRef string) (*models.Booking, bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	// Only a still-pending booking transitions; replays match nothing.
	filter := bson.M{"id": id, "payment_status": models.PaymentStatusPending}
	update := bson.M{"$set": bson.M{
		"payment_status":    models.PaymentStatusPaid,
		"booking_status":    models.BookingStatusConfirmed,
		"stripe_payment_id": paymentRef,
	}}

	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return nil, false, err
	}
	if res.MatchedCount == 0 {
		// Distinguish an already-confirmed booking from an unknown id.
		b, err := r.GetByID(ctx, id)
		if err != nil {
			return nil, false, err
		}
		return b, false, nil
	}

	b, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, false, err
	}
	return b, true, nil
}
