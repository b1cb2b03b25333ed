package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"divinedetail/config"
	"divinedetail/handlers"
	"divinedetail/middleware"
	"divinedetail/utils"
)

// RegisterCatalogRoutes registers the service and add-on catalog endpoints.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.GET("/services", hb.GetServicesHandler)
		api.GET("/addons", hb.GetAddOnsHandler)
		api.GET("/timeslots", hb.GetTimeSlotsHandler)
	}
}

// RegisterAvailabilityRoutes registers the calendar availability endpoints.
func RegisterAvailabilityRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/availability")
	{
		api.GET("", hb.MonthAvailabilityHandler)
		api.GET("/times", hb.DayTimesHandler)
	}
}

// RegisterSessionRoutes sets up the endpoints for the booking wizard.
func RegisterSessionRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	sessionGroup := r.Group("/api/booking")
	{
		sessionGroup.POST("/session", hb.StartSessionHandler)
		sessionGroup.GET("/session/:id", hb.GetSessionHandler)
		sessionGroup.PUT("/session/:id", hb.UpdateSessionHandler)
		sessionGroup.POST("/session/:id/advance", hb.AdvanceSessionHandler)
		sessionGroup.POST("/session/:id/back", hb.BackSessionHandler)
		sessionGroup.POST("/session/:id/submit", hb.SubmitSessionHandler)
		sessionGroup.GET("/latest", hb.LatestBookingHandler)
	}
}

// RegisterPaymentRoutes registers the checkout and Stripe webhook endpoints.
func RegisterPaymentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.POST("/checkout", hb.CheckoutHandler)
		api.POST("/webhook", hb.StripeWebhookHandler)
	}
}

// RegisterConfirmationRoutes registers the confirmation page reads.
func RegisterConfirmationRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.GET("/:id", hb.GetBookingHandler)
		api.GET("/:id/calendar", hb.DownloadCalendarHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Hi, I'm Divine Detail",
			"stores":  utils.GetHealthStatus(),
		})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	origins := []string{"*"}
	if config.AppConfig.FrontendOrigin != "" {
		origins = []string{config.AppConfig.FrontendOrigin}
	}
	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Stripe-Signature"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RateLimitMiddleware())

	RegisterCatalogRoutes(r, hb)
	RegisterAvailabilityRoutes(r, hb)
	RegisterSessionRoutes(r, hb)
	RegisterPaymentRoutes(r, hb)
	RegisterConfirmationRoutes(r, hb)
	RegisterHealthRoute(r)
}
