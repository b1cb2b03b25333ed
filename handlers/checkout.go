package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"divinedetail/models"
	"divinedetail/services/booking"
	"divinedetail/utils"
)

// CheckoutHandler accepts a completed booking form and returns the payment
// redirect URL.
type CheckoutHandler struct {
	Checkout *booking.CheckoutService
}

func NewCheckoutHandler(svc *booking.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{Checkout: svc}
}

// CreateCheckoutSession validates the payload, persists the pending booking,
// and creates the payment session. The redirect origin comes from the Origin
// request header so local and deployed frontends both land back on themselves.
func (h *CheckoutHandler) CreateCheckoutSession(c *gin.Context) {
	var payload models.CheckoutPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid checkout payload", err.Error())
		return
	}

	url, err := h.Checkout.Checkout(c.Request.Context(), payload, c.GetHeader("Origin"))
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrServiceNotFound),
			errors.Is(err, booking.ErrQuoteRequired),
			errors.Is(err, booking.ErrInvalidVehicleType):
			utils.JSONError(c, http.StatusBadRequest, err.Error(), nil)
		case errors.Is(err, booking.ErrSlotTaken):
			utils.JSONError(c, http.StatusConflict, "that time slot was just booked, please pick another", nil)
		default:
			utils.JSONError(c, http.StatusInternalServerError, "failed to create checkout session", err.Error())
		}
		return
	}

	c.JSON(http.StatusOK, models.CheckoutResponse{URL: url})
}
