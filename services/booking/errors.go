package booking

import (
	"errors"
	"fmt"
	"strings"

	bookingRepo "divinedetail/database/repository/booking"
	"divinedetail/models"
)

var (
	// ErrServiceNotFound is returned when a payload references an unknown service id.
	ErrServiceNotFound = errors.New("service not found")
	// ErrQuoteRequired is returned when a quote-only service reaches a payable path.
	ErrQuoteRequired = errors.New("this service requires a custom quote")
	// ErrSessionNotFound is returned when a wizard session id is unknown or expired.
	ErrSessionNotFound = errors.New("booking session not found or expired")
	// ErrBookingNotFound is returned when no finalized booking exists.
	ErrBookingNotFound = errors.New("booking not found")
	// ErrInvalidVehicleType is returned for a vehicle type outside the two classes.
	ErrInvalidVehicleType = errors.New("invalid vehicle type")
)

// ErrSlotTaken surfaces a lost race for a date/time slot.
var ErrSlotTaken = bookingRepo.ErrSlotConflict

// StepError reports which fields keep the wizard from advancing past a step.
type StepError struct {
	Step    models.BookingStep
	Missing []string
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step %d (%s) incomplete: missing %s", e.Step, e.Step.Label(), strings.Join(e.Missing, ", "))
}

// NewStepError builds a StepError for the given step.
func NewStepError(step models.BookingStep, missing ...string) error {
	return &StepError{Step: step, Missing: missing}
}
