package booking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"divinedetail/models"
)

func validCheckoutPayload() models.CheckoutPayload {
	return models.CheckoutPayload{
		ServiceID:      "supreme",
		VehicleType:    models.VehicleFullSize,
		VehicleDetails: "2022 Chevy Tahoe, White",
		ServiceAddress: "88 Flagler Dr, West Palm Beach",
		GateCode:       "2290",
		PreferredDate:  "2026-09-04",
		PreferredTime:  "11:00 AM",
		CustomerName:   "Alex Rivera",
		CustomerEmail:  "alex@example.com",
		CustomerPhone:  "561-555-0197",
		AddOns:         []models.AddOnSelection{{ID: "shampoo-seat", Quantity: 3}},
	}
}

func TestCheckoutHappyPath(t *testing.T) {
	repo := &mockBookingRepo{Bookings: map[string]models.Booking{}}
	gateway := &mockGateway{URL: "https://checkout.stripe.com/pay/cs_test_123"}
	svc := &CheckoutService{Repo: repo, Gateway: gateway, Logger: zap.NewNop()}

	url, err := svc.Checkout(context.Background(), validCheckoutPayload(), "https://divinedetail.com")
	require.NoError(t, err)
	assert.Equal(t, "https://checkout.stripe.com/pay/cs_test_123", url)

	// Exactly one pending booking and one payment session.
	require.Len(t, repo.Inserted, 1)
	assert.Equal(t, 1, gateway.Calls)

	inserted := repo.Inserted[0]
	assert.NotEmpty(t, inserted.ID)
	assert.Equal(t, int64(32000), inserted.TotalPriceCents)
	assert.Equal(t, models.PaymentStatusPending, inserted.PaymentStatus)
	assert.Equal(t, models.BookingStatusNew, inserted.BookingStatus)
	assert.Equal(t, "Gate Code: 2290", inserted.SpecialInstructions)
	assert.Equal(t, inserted.ID, gateway.Last.ID)
}

func TestCheckoutUnknownService(t *testing.T) {
	repo := &mockBookingRepo{}
	gateway := &mockGateway{}
	svc := &CheckoutService{Repo: repo, Gateway: gateway, Logger: zap.NewNop()}

	payload := validCheckoutPayload()
	payload.ServiceID = "imaginary"
	_, err := svc.Checkout(context.Background(), payload, "")
	assert.ErrorIs(t, err, ErrServiceNotFound)
	assert.Empty(t, repo.Inserted)
	assert.Zero(t, gateway.Calls)
}

func TestCheckoutQuoteOnlyService(t *testing.T) {
	repo := &mockBookingRepo{}
	gateway := &mockGateway{}
	svc := &CheckoutService{Repo: repo, Gateway: gateway, Logger: zap.NewNop()}

	payload := validCheckoutPayload()
	payload.ServiceID = "ceramic-coating"
	_, err := svc.Checkout(context.Background(), payload, "")
	assert.ErrorIs(t, err, ErrQuoteRequired)
	assert.Empty(t, repo.Inserted)
	assert.Zero(t, gateway.Calls)
}

func TestCheckoutInsertFailureSkipsGateway(t *testing.T) {
	repo := &mockBookingRepo{InsertErr: errStoreDown}
	gateway := &mockGateway{}
	svc := &CheckoutService{Repo: repo, Gateway: gateway, Logger: zap.NewNop()}

	_, err := svc.Checkout(context.Background(), validCheckoutPayload(), "")
	require.Error(t, err)
	assert.Zero(t, gateway.Calls, "no payment session after a failed insert")
}

func TestCheckoutSlotConflict(t *testing.T) {
	repo := &mockBookingRepo{InsertErr: ErrSlotTaken}
	gateway := &mockGateway{}
	svc := &CheckoutService{Repo: repo, Gateway: gateway, Logger: zap.NewNop()}

	_, err := svc.Checkout(context.Background(), validCheckoutPayload(), "")
	assert.ErrorIs(t, err, ErrSlotTaken)
	assert.Zero(t, gateway.Calls)
}

func TestCheckoutDescription(t *testing.T) {
	b := models.Booking{
		VehicleType: models.VehicleFullSize,
		AddOns:      []models.AddOnSelection{{ID: "shampoo-seat", Quantity: 3}},
	}
	assert.Equal(t, "Vehicle: Full-Size | Add-ons: Shampoo Seats x3", CheckoutDescription(b))

	plain := models.Booking{VehicleType: models.VehicleMidSize}
	assert.Equal(t, "Vehicle: Mid-Size", CheckoutDescription(plain))
}
