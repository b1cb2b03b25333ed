package models

// VehicleType distinguishes the two vehicle pricing classes.
type VehicleType string

const (
	VehicleMidSize  VehicleType = "midsize"  // sedans, coupes, small SUVs
	VehicleFullSize VehicleType = "fullsize" // full-size SUVs, trucks, vans
)

// Valid reports whether the vehicle type is one of the two supported classes.
func (v VehicleType) Valid() bool {
	return v == VehicleMidSize || v == VehicleFullSize
}

// DisplayName returns the customer-facing label for the vehicle class.
func (v VehicleType) DisplayName() string {
	if v == VehicleFullSize {
		return "Full-Size"
	}
	return "Mid-Size"
}

// ServiceTier ranks packages for the comparison table.
type ServiceTier string

const (
	TierSilver   ServiceTier = "silver"
	TierGold     ServiceTier = "gold"
	TierPlatinum ServiceTier = "platinum"
	TierDiamond  ServiceTier = "diamond"
)

// ServicePrice holds per-vehicle-size prices in cents. Quote-only services
// carry no numeric price; both amounts are zero and CallForQuote is set on
// the service.
type ServicePrice struct {
	MidSizeCents  int64 `json:"midSizeCents"`
	FullSizeCents int64 `json:"fullSizeCents"`
}

// Service is a detailing package from the static catalog.
type Service struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Tagline      string       `json:"tagline,omitempty"`
	Badge        string       `json:"badge,omitempty"`
	Tier         ServiceTier  `json:"tier,omitempty"`
	TierOrder    int          `json:"tierOrder"`
	Price        ServicePrice `json:"price"`
	Duration     string       `json:"duration"`
	Description  string       `json:"description"`
	Inclusions   []string     `json:"inclusions"`
	CallForQuote bool         `json:"isCallForQuote,omitempty"`
}

// PriceFor returns the base price in cents for the given vehicle class.
func (s Service) PriceFor(vt VehicleType) int64 {
	if vt == VehicleFullSize {
		return s.Price.FullSizeCents
	}
	return s.Price.MidSizeCents
}

// AddOn is an optional extra attachable to any service. PriceCents is the
// authoritative unit amount; PriceDisplay keeps open-ended labels such as
// "$70+" for presentation.
type AddOn struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	PriceCents   int64  `json:"priceCents"`
	PriceDisplay string `json:"price"`
	Description  string `json:"description,omitempty"`
	// MaxQuantity bounds add-ons with a quantity dimension (seat and mat
	// counts). Zero means the add-on has no quantity dimension.
	MaxQuantity int `json:"maxQuantity,omitempty"`
}
