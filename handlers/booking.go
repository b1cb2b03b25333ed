package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"divinedetail/models"
	"divinedetail/services/booking"
	"divinedetail/utils"
)

// BookingHandler exposes the booking wizard session endpoints and the
// availability calendar.
type BookingHandler struct {
	Sessions *booking.SessionService
	Engine   *booking.AvailabilityEngine
}

func NewBookingHandler(sessions *booking.SessionService, engine *booking.AvailabilityEngine) *BookingHandler {
	return &BookingHandler{Sessions: sessions, Engine: engine}
}

// StartSession creates a fresh wizard session. An optional ?service= query
// pre-selects a package by its id or display name.
func (h *BookingHandler) StartSession(c *gin.Context) {
	session, err := h.Sessions.Start(c.Request.Context(), c.Query("service"))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "unable to start booking session", err.Error())
		return
	}
	c.JSON(http.StatusCreated, session)
}

func (h *BookingHandler) GetSession(c *gin.Context) {
	session, err := h.Sessions.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.sessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// UpdateSession merges a partial draft patch into the session without moving
// the step pointer.
func (h *BookingHandler) UpdateSession(c *gin.Context) {
	var patch models.DraftPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload", err.Error())
		return
	}
	session, err := h.Sessions.Update(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		h.sessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// AdvanceSession moves the wizard forward one step if the current step is
// complete.
func (h *BookingHandler) AdvanceSession(c *gin.Context) {
	session, err := h.Sessions.Advance(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.sessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// BackSession moves the wizard back one step. Entered data is kept.
func (h *BookingHandler) BackSession(c *gin.Context) {
	session, err := h.Sessions.Back(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.sessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// SubmitSession finalizes the wizard and records the booking.
func (h *BookingHandler) SubmitSession(c *gin.Context) {
	b, err := h.Sessions.Submit(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.sessionError(c, err)
		return
	}
	c.JSON(http.StatusCreated, b)
}

// LatestBooking returns the most recently submitted booking for the
// confirmation view.
func (h *BookingHandler) LatestBooking(c *gin.Context) {
	b, err := h.Sessions.Latest(c.Request.Context())
	if err != nil {
		if errors.Is(err, booking.ErrBookingNotFound) {
			utils.JSONError(c, http.StatusNotFound, "no booking found", nil)
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "unable to load booking", err.Error())
		return
	}
	c.JSON(http.StatusOK, b)
}

// MonthAvailability returns per-day availability for the month given as
// ?month=YYYY-MM plus the following month.
func (h *BookingHandler) MonthAvailability(c *gin.Context) {
	month := c.Query("month")
	if month == "" {
		utils.JSONError(c, http.StatusBadRequest, "month query parameter is required", nil)
		return
	}
	result, err := h.Engine.MonthAvailability(c.Request.Context(), month)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid month", err.Error())
		return
	}
	c.JSON(http.StatusOK, result)
}

// DayTimes returns the slot-by-slot status for ?date=YYYY-MM-DD.
func (h *BookingHandler) DayTimes(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		utils.JSONError(c, http.StatusBadRequest, "date query parameter is required", nil)
		return
	}
	slots, err := h.Engine.DayTimes(c.Request.Context(), date)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid date", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"date": date, "slots": slots})
}

func (h *BookingHandler) sessionError(c *gin.Context, err error) {
	var stepErr *booking.StepError
	switch {
	case errors.Is(err, booking.ErrSessionNotFound):
		utils.JSONError(c, http.StatusNotFound, "booking session not found", nil)
	case errors.Is(err, booking.ErrSlotTaken):
		utils.JSONError(c, http.StatusConflict, "that time slot was just booked, please pick another", nil)
	case errors.As(err, &stepErr):
		utils.JSONError(c, http.StatusBadRequest, "step incomplete", gin.H{
			"step":    stepErr.Step,
			"label":   stepErr.Step.Label(),
			"missing": stepErr.Missing,
		})
	case errors.Is(err, booking.ErrServiceNotFound),
		errors.Is(err, booking.ErrQuoteRequired),
		errors.Is(err, booking.ErrInvalidVehicleType):
		utils.JSONError(c, http.StatusBadRequest, err.Error(), nil)
	default:
		utils.JSONError(c, http.StatusInternalServerError, "booking session error", err.Error())
	}
}
