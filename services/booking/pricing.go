package booking

import (
	"fmt"
	"strings"

	"divinedetail/catalog"
	"divinedetail/models"
)

// Quote computes the authoritative charge amount in cents for a service,
// vehicle class, and add-on selections. The client-computed total is never
// trusted; every payable path goes through here.
//
// Unknown add-on ids contribute zero. Quantities are normalized to at least 1
// and clamped to the add-on's maximum before multiplying.
func Quote(serviceID string, vehicle models.VehicleType, selections []models.AddOnSelection) (int64, error) {
	svc, ok := catalog.FindService(serviceID)
	if !ok {
		return 0, ErrServiceNotFound
	}
	if svc.CallForQuote {
		return 0, ErrQuoteRequired
	}
	if vehicle != "" && !vehicle.Valid() {
		return 0, ErrInvalidVehicleType
	}

	total := svc.PriceFor(vehicle)
	for _, sel := range catalog.NormalizeSelections(selections) {
		addOn, ok := catalog.FindAddOn(sel.ID)
		if !ok {
			continue
		}
		total += addOn.PriceCents * int64(sel.Quantity)
	}
	return total, nil
}

// AddOnSummary renders selections as "Shampoo Seats x3, Engine Bay Detail".
// Unknown ids are omitted. Used in payment descriptions and emails.
func AddOnSummary(selections []models.AddOnSelection) string {
	var parts []string
	for _, sel := range catalog.NormalizeSelections(selections) {
		addOn, ok := catalog.FindAddOn(sel.ID)
		if !ok {
			continue
		}
		if sel.Quantity > 1 {
			parts = append(parts, fmt.Sprintf("%s x%d", addOn.Name, sel.Quantity))
		} else {
			parts = append(parts, addOn.Name)
		}
	}
	return strings.Join(parts, ", ")
}

// FormatCents renders a cent amount as "$180.00".
func FormatCents(cents int64) string {
	return fmt.Sprintf("$%.2f", float64(cents)/100)
}
