package models

import "time"

// BookingStep indexes the wizard's five linear steps.
type BookingStep int

const (
	StepService BookingStep = iota
	StepVehicle
	StepDateTime
	StepDetails
	StepPayment
)

// StepLabels are the customer-facing names of the five wizard steps.
var StepLabels = [...]string{"Service", "Vehicle", "Date/Time", "Details", "Payment"}

// Label returns the display name of the step.
func (s BookingStep) Label() string {
	if s < 0 || int(s) >= len(StepLabels) {
		return "Unknown"
	}
	return StepLabels[s]
}

// BookingDraft accumulates the wizard's selections. Fields are filled in
// incrementally; nothing here is persisted durably until submission.
type BookingDraft struct {
	ServiceID           string           `json:"serviceId"`
	AddOns              []AddOnSelection `json:"addOns"`
	VehicleType         VehicleType      `json:"vehicleType"`
	VehicleDetails      string           `json:"vehicleDetails"`
	ServiceAddress      string           `json:"serviceAddress"`
	GateCode            string           `json:"gateCode,omitempty"`
	PreferredDate       string           `json:"preferredDate"`
	PreferredTime       string           `json:"preferredTime"`
	CustomerName        string           `json:"customerName"`
	CustomerEmail       string           `json:"customerEmail"`
	CustomerPhone       string           `json:"customerPhone"`
	SpecialInstructions string           `json:"specialInstructions,omitempty"`
}

// BookingSession is a wizard session held in the draft store for the
// duration of the flow.
type BookingSession struct {
	ID        string       `json:"id"`
	Step      BookingStep  `json:"step"`
	Draft     BookingDraft `json:"draft"`
	CreatedAt time.Time    `json:"createdAt"`
}

// DraftPatch carries a partial draft update. Nil fields leave the existing
// draft values untouched, so going back through the wizard never clears
// already-entered data.
type DraftPatch struct {
	ServiceID           *string           `json:"serviceId"`
	AddOns              *[]AddOnSelection `json:"addOns"`
	VehicleType         *VehicleType      `json:"vehicleType"`
	VehicleDetails      *string           `json:"vehicleDetails"`
	ServiceAddress      *string           `json:"serviceAddress"`
	GateCode            *string           `json:"gateCode"`
	PreferredDate       *string           `json:"preferredDate"`
	PreferredTime       *string           `json:"preferredTime"`
	CustomerName        *string           `json:"customerName"`
	CustomerEmail       *string           `json:"customerEmail"`
	CustomerPhone       *string           `json:"customerPhone"`
	SpecialInstructions *string           `json:"specialInstructions"`
}
