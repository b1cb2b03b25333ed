package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	bookingRepo "divinedetail/database/repository/booking"
	"divinedetail/services/booking"
	"divinedetail/utils"
)

// ConfirmationHandler serves finalized bookings and their calendar export.
type ConfirmationHandler struct {
	Repo bookingRepo.BookingRepository
}

func NewConfirmationHandler(repo bookingRepo.BookingRepository) *ConfirmationHandler {
	return &ConfirmationHandler{Repo: repo}
}

// GetBooking returns a booking by id for the confirmation page.
func (h *ConfirmationHandler) GetBooking(c *gin.Context) {
	b, err := h.Repo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, bookingRepo.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "booking not found", nil)
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "unable to load booking", err.Error())
		return
	}
	c.JSON(http.StatusOK, b)
}

// DownloadCalendar renders the booking as a downloadable .ics event.
func (h *ConfirmationHandler) DownloadCalendar(c *gin.Context) {
	b, err := h.Repo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, bookingRepo.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "booking not found", nil)
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "unable to load booking", err.Error())
		return
	}

	event, err := booking.BuildCalendarEvent(*b, time.Now())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "unable to build calendar event", err.Error())
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+booking.CalendarFilename+`"`)
	c.Data(http.StatusOK, "text/calendar", []byte(event))
}
