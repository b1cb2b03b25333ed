package booking

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"divinedetail/catalog"
	bookingRepo "divinedetail/database/repository/booking"
	"divinedetail/models"
)

// PaymentGateway creates an external payment session for a pending booking
// and returns the redirect target.
type PaymentGateway interface {
	CreateCheckoutSession(ctx context.Context, b models.Booking, origin string) (string, error)
}

// CheckoutService is the server boundary for paid bookings: it validates the
// payload, recomputes the price, persists the pending booking, and only then
// creates the payment session. Persist-then-charge, never the reverse.
type CheckoutService struct {
	Repo    bookingRepo.BookingRepository
	Gateway PaymentGateway
	Logger  *zap.Logger
}

// Checkout processes a booking submission and returns the payment redirect
// URL. Exactly one pending booking row and one payment session per
// successful call; a failed insert creates no payment session.
func (s *CheckoutService) Checkout(ctx context.Context, payload models.CheckoutPayload, origin string) (string, error) {
	total, err := Quote(payload.ServiceID, payload.VehicleType, payload.AddOns)
	if err != nil {
		return "", err
	}

	booking := models.Booking{
		ID:                  uuid.New().String(),
		CustomerName:        payload.CustomerName,
		CustomerEmail:       payload.CustomerEmail,
		CustomerPhone:       payload.CustomerPhone,
		VehicleType:         payload.VehicleType,
		VehicleDetails:      payload.VehicleDetails,
		ServiceID:           payload.ServiceID,
		AddOns:              catalog.NormalizeSelections(payload.AddOns),
		ServiceAddress:      payload.ServiceAddress,
		PreferredDate:       payload.PreferredDate,
		PreferredTime:       payload.PreferredTime,
		SpecialInstructions: joinInstructions(payload.GateCode, payload.SpecialInstructions),
		TotalPriceCents:     total,
		PaymentStatus:       models.PaymentStatusPending,
		BookingStatus:       models.BookingStatusNew,
		CreatedAt:           time.Now(),
	}

	if err := s.Repo.Insert(ctx, &booking); err != nil {
		if err == ErrSlotTaken {
			s.Logger.Warn("checkout lost slot race",
				zap.String("date", booking.PreferredDate),
				zap.String("time", booking.PreferredTime))
			return "", err
		}
		return "", fmt.Errorf("unable to create booking: %w", err)
	}

	url, err := s.Gateway.CreateCheckoutSession(ctx, booking, origin)
	if err != nil {
		return "", fmt.Errorf("failed to create payment session: %w", err)
	}

	s.Logger.Info("checkout session created",
		zap.String("bookingID", booking.ID),
		zap.Int64("totalCents", total))
	return url, nil
}

// CheckoutDescription summarizes the vehicle class and add-ons for the
// payment line item, e.g. "Vehicle: Full-Size | Add-ons: Shampoo Seats x3".
func CheckoutDescription(b models.Booking) string {
	parts := []string{"Vehicle: " + b.VehicleType.DisplayName()}
	if summary := AddOnSummary(b.AddOns); summary != "" {
		parts = append(parts, "Add-ons: "+summary)
	}
	return strings.Join(parts, " | ")
}
