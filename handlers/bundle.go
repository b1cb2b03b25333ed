package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct for route
// registration.
type HandlerBundle struct {
	// Catalog endpoints
	GetServicesHandler  gin.HandlerFunc
	GetAddOnsHandler    gin.HandlerFunc
	GetTimeSlotsHandler gin.HandlerFunc

	// Availability endpoints
	MonthAvailabilityHandler gin.HandlerFunc
	DayTimesHandler          gin.HandlerFunc

	// Wizard session endpoints
	StartSessionHandler   gin.HandlerFunc
	GetSessionHandler     gin.HandlerFunc
	UpdateSessionHandler  gin.HandlerFunc
	AdvanceSessionHandler gin.HandlerFunc
	BackSessionHandler    gin.HandlerFunc
	SubmitSessionHandler  gin.HandlerFunc
	LatestBookingHandler  gin.HandlerFunc

	// Payment endpoints
	CheckoutHandler      gin.HandlerFunc
	StripeWebhookHandler gin.HandlerFunc

	// Confirmation endpoints
	GetBookingHandler       gin.HandlerFunc
	DownloadCalendarHandler gin.HandlerFunc
}
