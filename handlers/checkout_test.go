package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"divinedetail/models"
	"divinedetail/services/booking"
)

type stubGateway struct {
	URL string
	Err error
}

func (s *stubGateway) CreateCheckoutSession(_ context.Context, _ models.Booking, _ string) (string, error) {
	return s.URL, s.Err
}

func checkoutTestRouter(repo *stubBookingRepo, gateway *stubGateway) *gin.Engine {
	gin.SetMode(gin.TestMode)
	svc := &booking.CheckoutService{Repo: repo, Gateway: gateway, Logger: zap.NewNop()}
	r := gin.New()
	r.POST("/api/checkout", NewCheckoutHandler(svc).CreateCheckoutSession)
	return r
}

const checkoutBody = `{
	"serviceId": "supreme",
	"vehicleType": "fullsize",
	"vehicleDetails": "2022 Chevy Tahoe",
	"serviceAddress": "88 Flagler Dr",
	"preferredDate": "2026-09-04",
	"preferredTime": "11:00 AM",
	"customerName": "Alex Rivera",
	"customerEmail": "alex@example.com",
	"customerPhone": "561-555-0197",
	"addOns": [{"id": "shampoo-seat", "quantity": 3}]
}`

func TestCheckoutEndpoint(t *testing.T) {
	repo := &stubBookingRepo{Bookings: map[string]models.Booking{}}
	router := checkoutTestRouter(repo, &stubGateway{URL: "https://checkout.stripe.com/pay/cs_test_1"})

	req := httptest.NewRequest(http.MethodPost, "/api/checkout", strings.NewReader(checkoutBody))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Origin", "https://divinedetail.com")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"url": "https://checkout.stripe.com/pay/cs_test_1"}`, w.Body.String())
}

func TestCheckoutEndpointQuoteOnlyService(t *testing.T) {
	router := checkoutTestRouter(&stubBookingRepo{}, &stubGateway{})

	body := strings.Replace(checkoutBody, "supreme", "ceramic-coating", 1)
	req := httptest.NewRequest(http.MethodPost, "/api/checkout", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCheckoutEndpointSlotConflict(t *testing.T) {
	repo := &stubBookingRepo{InsertErr: booking.ErrSlotTaken}
	router := checkoutTestRouter(repo, &stubGateway{})

	req := httptest.NewRequest(http.MethodPost, "/api/checkout", strings.NewReader(checkoutBody))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestCheckoutEndpointMissingServiceID(t *testing.T) {
	router := checkoutTestRouter(&stubBookingRepo{}, &stubGateway{})

	req := httptest.NewRequest(http.MethodPost, "/api/checkout", strings.NewReader(`{"vehicleType": "midsize"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
