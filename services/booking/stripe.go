package booking

import (
	"context"
	"fmt"

	"github.com/stripe/stripe-go/v76"
	checkoutSession "github.com/stripe/stripe-go/v76/checkout/session"

	"divinedetail/catalog"
	"divinedetail/models"
)

// StripeGateway creates Stripe Checkout sessions for pending bookings. The
// booking id rides along as session metadata so the webhook can correlate
// the completion event back to the persisted record.
type StripeGateway struct {
	// FallbackOrigin is used when the request carries no Origin header.
	FallbackOrigin string
}

func (g *StripeGateway) CreateCheckoutSession(ctx context.Context, b models.Booking, origin string) (string, error) {
	svc, ok := catalog.FindService(b.ServiceID)
	if !ok {
		return "", ErrServiceNotFound
	}
	if origin == "" {
		origin = g.FallbackOrigin
	}

	params := &stripe.CheckoutSessionParams{
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		CustomerEmail:      stripe.String(b.CustomerEmail),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				Quantity: stripe.Int64(1),
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripe.String(string(stripe.CurrencyUSD)),
					UnitAmount: stripe.Int64(b.TotalPriceCents),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name:        stripe.String(svc.Name + " Detail"),
						Description: stripe.String(CheckoutDescription(b)),
					},
				},
			},
		},
		SuccessURL: stripe.String(origin + "/booking/confirmation?session_id={CHECKOUT_SESSION_ID}"),
		CancelURL:  stripe.String(origin + "/book?cancelled=true"),
	}
	params.Context = ctx
	params.AddMetadata("booking_id", b.ID)

	sess, err := checkoutSession.New(params)
	if err != nil {
		return "", fmt.Errorf("stripe checkout session: %w", err)
	}
	return sess.URL, nil
}
