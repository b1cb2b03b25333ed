package models

import "time"

// Payment status values for a persisted booking.
const (
	PaymentStatusPending = "pending"
	PaymentStatusPaid    = "paid"
)

// Booking status values for a persisted booking.
const (
	BookingStatusNew       = "new"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
)

// AddOnSelection pairs an add-on id with a quantity. Quantity is normalized
// to at least 1 at construction (see catalog.NormalizeSelections); a zero
// value here only occurs on raw inbound payloads.
type AddOnSelection struct {
	ID       string `bson:"id" json:"id"`
	Quantity int    `bson:"quantity,omitempty" json:"quantity,omitempty"`
}

// Booking represents a booking record. On the checkout path it is created
// pending/new and transitioned to paid/confirmed by the payment webhook; on
// the demo wizard path it is written directly as confirmed.
type Booking struct {
	ID                  string           `bson:"id" json:"id"`
	CustomerName        string           `bson:"customer_name" json:"customer_name"`
	CustomerEmail       string           `bson:"customer_email" json:"customer_email"`
	CustomerPhone       string           `bson:"customer_phone" json:"customer_phone"`
	VehicleType         VehicleType      `bson:"vehicle_type" json:"vehicle_type"`
	VehicleDetails      string           `bson:"vehicle_details" json:"vehicle_details"`
	ServiceID           string           `bson:"service_id" json:"service_id"`
	AddOns              []AddOnSelection `bson:"add_ons" json:"add_ons"`
	ServiceAddress      string           `bson:"service_address" json:"service_address"`
	PreferredDate       string           `bson:"preferred_date" json:"preferred_date"` // "YYYY-MM-DD"
	PreferredTime       string           `bson:"preferred_time" json:"preferred_time"` // e.g. "9:00 AM"
	SpecialInstructions string           `bson:"special_instructions" json:"special_instructions"`
	TotalPriceCents     int64            `bson:"total_price" json:"total_price"`
	PaymentStatus       string           `bson:"payment_status" json:"payment_status"`
	BookingStatus       string           `bson:"booking_status" json:"booking_status"`
	StripePaymentID     string           `bson:"stripe_payment_id,omitempty" json:"stripe_payment_id,omitempty"`
	CreatedAt           time.Time        `bson:"created_at" json:"created_at"`
}

// BlockedDate is a calendar date the operator has closed for new bookings.
type BlockedDate struct {
	Date      string    `bson:"date" json:"date"` // "YYYY-MM-DD"
	Reason    string    `bson:"reason,omitempty" json:"reason,omitempty"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
