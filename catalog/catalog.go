// Package catalog holds the static service and add-on catalog. Prices live
// here as integer cents; display strings are kept alongside for open-ended
// labels like "$70+". The catalog is immutable after process start.
package catalog

import (
	"regexp"
	"strings"

	"divinedetail/models"
)

var services = []models.Service{
	{
		ID:        "maintenance",
		Name:      "Maintenance Detail",
		Tagline:   "Monthly customers only",
		Badge:     "Monthly Customers Only",
		Tier:      models.TierSilver,
		TierOrder: 0,
		Price: models.ServicePrice{
			MidSizeCents:  7500,
			FullSizeCents: 9500,
		},
		Duration:    "1–2 hours",
		Description: "Perfect for our regular customers who want to keep their vehicle looking pristine all year round.",
		Inclusions: []string{
			"Hand Wash",
			"Vacuum floorboards, mats, seats & trunk",
			"Clean rim face & tires",
			"Tire dressing",
			"Ceramic spray wax",
			"Glass cleaned",
			"Wipe down doors, dash & door panels",
		},
	},
	{
		ID:        "supreme",
		Name:      "Supreme",
		Tagline:   "Hand Wash & Interior Detail",
		Tier:      models.TierGold,
		TierOrder: 1,
		Price: models.ServicePrice{
			MidSizeCents:  18000,
			FullSizeCents: 20000,
		},
		Duration:    "2.5–3 hours",
		Description: "Comprehensive hand wash and interior detailing service that brings out the best in your vehicle.",
		Inclusions: []string{
			"Hand Wash with foam cannon",
			"2-bucket method",
			"Gyeon Q2 Wax",
			"Vacuum entire interior including trunk",
			"Clean rim face & tires",
			"Carpro Darkside tire dressing",
			"Wipe down dash, doors, door panels & console",
			"Glass cleaned inside & out",
			"Dress vinyl & plastic",
		},
	},
	{
		ID:        "premium",
		Name:      "Premium",
		Tagline:   "Everything in Supreme plus",
		Tier:      models.TierPlatinum,
		TierOrder: 2,
		Price: models.ServicePrice{
			MidSizeCents:  26000,
			FullSizeCents: 28000,
		},
		Duration:    "4–5 hours",
		Description: "Our premium service combines everything from Supreme with additional deep cleaning treatments.",
		Inclusions: []string{
			"All Supreme inclusions",
			"Clay bar treatment",
			"Steam clean air vents",
			"Steam clean seats",
			"Steam clean headliner",
			"Deep clean all surfaces",
		},
	},
	{
		ID:        "platinum",
		Name:      "Platinum",
		Tagline:   "Everything in Supreme & Premium plus",
		Tier:      models.TierDiamond,
		TierOrder: 3,
		Price: models.ServicePrice{
			MidSizeCents:  30000,
			FullSizeCents: 35000,
		},
		Duration:    "5–6 hours",
		Description: "The ultimate detailing experience with our most comprehensive service package.",
		Inclusions: []string{
			"All Supreme & Premium inclusions",
			"Pet hair removal",
			"Stain removal",
			"Heated 210° carpet extractor",
			"Full carpet & upholstery shampoo",
			"Complete interior restoration",
		},
	},
	{
		ID:      "exterior-only",
		Name:    "Exterior Only",
		Tagline: "Hand Wash",
		Price: models.ServicePrice{
			MidSizeCents:  9000,
			FullSizeCents: 10000,
		},
		Duration:    "1.5–2 hours",
		Description: "Focused exterior detailing service for a showroom shine.",
		Inclusions: []string{
			"Foam cannon pre-wash",
			"2-bucket hand wash method",
			"Gyeon Q2 ceramic spray wax",
			"Clean & dress tires with Carpro Darkside",
			"Clean rim faces",
			"Glass cleaned (exterior)",
			"Door jambs cleaned",
			"Spot-free deionized water rinse",
		},
	},
	{
		ID:           "ceramic-coating",
		Name:         "Ceramic Coating",
		Tagline:      "Ultimate paint protection",
		Duration:     "10+ hours",
		Description:  "Professional-grade ceramic coating application for long-lasting paint protection and shine.",
		CallForQuote: true,
		Inclusions: []string{
			"Complete vehicle wash",
			"Iron fallout removal",
			"Clay bar treatment",
			"Two-stage compound & polish",
			"Professional ceramic coating application",
			"Base coating longevity: 6 years",
			"2-5 year coating options available",
			"Hydrophobic properties",
			"UV protection",
		},
	},
}

var addOns = []models.AddOn{
	{
		ID:           "shampoo-seat",
		Name:         "Shampoo Seats",
		PriceCents:   4000,
		PriceDisplay: "$40",
		Description:  "Per seat deep shampoo treatment",
		MaxQuantity:  6,
	},
	{
		ID:           "engine-bay",
		Name:         "Engine Bay Detail",
		PriceCents:   6000,
		PriceDisplay: "$60",
		Description:  "Complete engine bay cleaning and dressing",
	},
	{
		ID:           "shampoo-mat",
		Name:         "Shampoo Floor Mat",
		PriceCents:   1500,
		PriceDisplay: "$15",
		Description:  "Per mat deep cleaning",
		MaxQuantity:  4,
	},
	{
		ID:           "sanitation",
		Name:         "Interior Sanitation/Decontamination",
		PriceCents:   7000,
		PriceDisplay: "$70+",
		Description:  "Professional-grade interior sanitization",
	},
	{
		ID:           "water-spot",
		Name:         "Water Spot Removal",
		PriceCents:   9000,
		PriceDisplay: "$90+",
		Description:  "Remove stubborn water spots from paint and glass",
	},
	{
		ID:           "headlight",
		Name:         "Headlight Restoration",
		PriceCents:   9500,
		PriceDisplay: "$95/pair",
		Description:  "Restore clarity to cloudy or yellowed headlights",
	},
}

// Services returns the full service catalog.
func Services() []models.Service {
	return services
}

// AddOns returns the full add-on catalog.
func AddOns() []models.AddOn {
	return addOns
}

// FindService looks up a service by id.
func FindService(id string) (models.Service, bool) {
	for _, s := range services {
		if s.ID == id {
			return s, true
		}
	}
	return models.Service{}, false
}

// FindAddOn looks up an add-on by id.
func FindAddOn(id string) (models.AddOn, bool) {
	for _, a := range addOns {
		if a.ID == id {
			return a, true
		}
	}
	return models.AddOn{}, false
}

var normalizePattern = regexp.MustCompile(`[\s_-]+`)

// Normalize canonicalizes a service identifier or name for loose matching:
// lowercase, trimmed, runs of whitespace/underscores/hyphens collapsed to a
// single hyphen.
func Normalize(value string) string {
	return normalizePattern.ReplaceAllString(strings.TrimSpace(strings.ToLower(value)), "-")
}

// MatchService resolves a query parameter against the catalog by normalized
// id or name. Used to pre-select a service when the wizard is entered from a
// service page link.
func MatchService(param string) (models.Service, bool) {
	normalized := Normalize(param)
	for _, s := range services {
		if Normalize(s.ID) == normalized || Normalize(s.Name) == normalized {
			return s, true
		}
	}
	return models.Service{}, false
}

// NormalizeSelections returns a copy of the selections with quantities
// defaulted to 1 and clamped to each add-on's maximum where one exists.
// Unknown add-on ids pass through untouched; pricing ignores them.
func NormalizeSelections(selections []models.AddOnSelection) []models.AddOnSelection {
	out := make([]models.AddOnSelection, 0, len(selections))
	for _, sel := range selections {
		if sel.Quantity < 1 {
			sel.Quantity = 1
		}
		if a, ok := FindAddOn(sel.ID); ok && a.MaxQuantity > 0 && sel.Quantity > a.MaxQuantity {
			sel.Quantity = a.MaxQuantity
		}
		out = append(out, sel)
	}
	return out
}
