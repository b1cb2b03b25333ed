package models

// CheckoutPayload is the body of POST /api/checkout. The client-side total is
// deliberately absent: the charge amount is always recomputed server-side.
type CheckoutPayload struct {
	ServiceID           string           `json:"serviceId" binding:"required"`
	VehicleType         VehicleType      `json:"vehicleType"`
	VehicleDetails      string           `json:"vehicleDetails"`
	ServiceAddress      string           `json:"serviceAddress"`
	GateCode            string           `json:"gateCode,omitempty"`
	PreferredDate       string           `json:"preferredDate"`
	PreferredTime       string           `json:"preferredTime"`
	SpecialInstructions string           `json:"specialInstructions,omitempty"`
	CustomerName        string           `json:"customerName"`
	CustomerEmail       string           `json:"customerEmail"`
	CustomerPhone       string           `json:"customerPhone"`
	AddOns              []AddOnSelection `json:"addOns"`
}

// CheckoutResponse carries the payment redirect target back to the client.
type CheckoutResponse struct {
	URL string `json:"url"`
}
