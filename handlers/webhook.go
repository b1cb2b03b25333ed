package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	stripe "github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/webhook"
	"go.uber.org/zap"

	"divinedetail/config"
	"divinedetail/services/booking"
	"divinedetail/utils"
)

const eventDedupKeyPrefix = "divinedetail:stripe:event:"
const eventDedupTTL = 24 * time.Hour

// WebhookHandler receives Stripe events. Signature verification runs against
// the raw body before anything is parsed; an invalid signature changes no
// state.
type WebhookHandler struct {
	Confirmation *booking.ConfirmationService
	// EventCache short-circuits redelivered events by id. Best effort; the
	// paid transition itself is idempotent at the database.
	EventCache *redis.Client
	Logger     *zap.Logger
}

func NewWebhookHandler(svc *booking.ConfirmationService, eventCache *redis.Client, logger *zap.Logger) *WebhookHandler {
	return &WebhookHandler{Confirmation: svc, EventCache: eventCache, Logger: logger}
}

// HandleStripeEvent verifies and dispatches a Stripe webhook delivery.
// checkout.session.completed confirms the referenced booking; other event
// types are acknowledged and ignored so Stripe does not retry them.
func (h *WebhookHandler) HandleStripeEvent(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "unable to read request body", nil)
		return
	}

	event, err := webhook.ConstructEvent(body, c.GetHeader("Stripe-Signature"), config.AppConfig.StripeWebhookSecret)
	if err != nil {
		h.Logger.Warn("webhook signature verification failed", zap.Error(err))
		utils.JSONError(c, http.StatusBadRequest, "invalid webhook signature", nil)
		return
	}

	if h.alreadyProcessed(c, event.ID) {
		c.JSON(http.StatusOK, gin.H{"received": true})
		return
	}

	if event.Type == "checkout.session.completed" {
		var session stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "malformed event payload", nil)
			return
		}

		bookingID := session.Metadata["booking_id"]
		if bookingID == "" {
			h.Logger.Warn("checkout session without booking_id metadata", zap.String("sessionID", session.ID))
			c.JSON(http.StatusOK, gin.H{"received": true})
			return
		}

		paymentRef := session.ID
		if session.PaymentIntent != nil {
			paymentRef = session.PaymentIntent.ID
		}

		if err := h.Confirmation.HandleCheckoutCompleted(c.Request.Context(), bookingID, paymentRef); err != nil {
			h.Logger.Error("failed to confirm booking from webhook",
				zap.String("bookingID", bookingID), zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, "failed to process webhook", nil)
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"received": true})
}

// alreadyProcessed records the event id and reports whether it was seen
// before. A cache failure never blocks the event.
func (h *WebhookHandler) alreadyProcessed(c *gin.Context, eventID string) bool {
	if h.EventCache == nil || eventID == "" {
		return false
	}
	fresh, err := h.EventCache.SetNX(c.Request.Context(), eventDedupKeyPrefix+eventID, 1, eventDedupTTL).Result()
	if err != nil {
		h.Logger.Warn("webhook event dedup cache unavailable", zap.Error(err))
		return false
	}
	return !fresh
}
