package catalog

import "divinedetail/models"

// PackageTier describes one entry in the package comparison ladder.
type PackageTier struct {
	ID                    string             `json:"id"`
	Label                 string             `json:"label"`
	Tier                  models.ServiceTier `json:"tier"`
	IncludesEverythingFrom string            `json:"includesEverythingFrom,omitempty"`
}

var PackageTiers = []PackageTier{
	{ID: "maintenance", Label: "Maintenance", Tier: models.TierSilver},
	{ID: "supreme", Label: "Supreme", Tier: models.TierGold, IncludesEverythingFrom: "maintenance"},
	{ID: "premium", Label: "Premium", Tier: models.TierPlatinum, IncludesEverythingFrom: "supreme"},
	{ID: "platinum", Label: "Platinum", Tier: models.TierDiamond, IncludesEverythingFrom: "premium"},
}

// ComparisonFeature marks which package tiers include a given feature.
type ComparisonFeature struct {
	Label      string          `json:"label"`
	IncludedIn map[string]bool `json:"includedIn"`
}

var ComparisonFeatures = []ComparisonFeature{
	{Label: "Hand Wash", IncludedIn: map[string]bool{"maintenance": true, "supreme": true, "premium": true, "platinum": true}},
	{Label: "Interior Vacuum", IncludedIn: map[string]bool{"maintenance": true, "supreme": true, "premium": true, "platinum": true}},
	{Label: "Tire Dressing", IncludedIn: map[string]bool{"maintenance": true, "supreme": true, "premium": true, "platinum": true}},
	{Label: "Ceramic Spray Wax", IncludedIn: map[string]bool{"maintenance": true, "supreme": true, "premium": true, "platinum": true}},
	{Label: "Steam Clean Seats", IncludedIn: map[string]bool{"maintenance": false, "supreme": false, "premium": true, "platinum": true}},
	{Label: "Clay Bar Treatment", IncludedIn: map[string]bool{"maintenance": false, "supreme": false, "premium": true, "platinum": true}},
	{Label: "Pet Hair Removal", IncludedIn: map[string]bool{"maintenance": false, "supreme": false, "premium": false, "platinum": true}},
	{Label: "Carpet & Upholstery Shampoo", IncludedIn: map[string]bool{"maintenance": false, "supreme": false, "premium": false, "platinum": true}},
}
