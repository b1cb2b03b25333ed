package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"divinedetail/catalog"
	"divinedetail/services/booking"
)

// GetServicesHandler returns the full service catalog plus the package-tier
// metadata the services page renders.
func GetServicesHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"services":           catalog.Services(),
		"packageTiers":       catalog.PackageTiers,
		"comparisonFeatures": catalog.ComparisonFeatures,
		"trustBadges":        catalog.TrustBadges,
		"company":            catalog.Company,
	})
}

// GetAddOnsHandler returns the add-on catalog.
func GetAddOnsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"addOns": catalog.AddOns()})
}

// GetTimeSlotsHandler returns the 13 fixed hourly appointment windows.
func GetTimeSlotsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"timeSlots": booking.TimeSlots()})
}
