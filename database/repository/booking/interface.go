// File: database/repository/booking/interface.go
package bookingRepo

import (
	"context"
	"errors"

	"divinedetail/database"
	"divinedetail/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrSlotConflict is returned when an insert collides with an active booking
// already holding the same date and time slot.
var ErrSlotConflict = errors.New("time slot already booked")

// ErrNotFound is returned when no booking matches the given id.
var ErrNotFound = errors.New("booking not found")

type BookingRepository interface {
	EnsureIndexes() error
	Insert(ctx context.Context, b *models.Booking) error
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	// MarkPaid transitions a pending booking to paid/confirmed and records the
	// payment reference. The returned bool reports whether this call performed
	// the transition; false with a nil error means the booking was already
	// confirmed, so the caller must not re-send notifications.
	MarkPaid(ctx context.Context, id, paymentRef string) (*models.Booking, bool, error)
	CountByDateRange(ctx context.Context, from, to string) (map[string]int, error)
	TimesByDate(ctx context.Context, date string) ([]string, error)
}

type mongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo constructs a new MongoDB BookingRepository.
func NewMongoBookingRepo() BookingRepository {
	return &mongoBookingRepo{
		coll: database.Collection("bookings"),
	}
}
