package catalog

// CompanyInfo holds the business contact constants used in notifications and
// the services endpoint.
type CompanyInfo struct {
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	PhoneDisplay string `json:"phoneDisplay"`
	Email        string `json:"email"`
	HoursLabel   string `json:"hoursLabel"`
	HoursDetail  string `json:"hoursDetail"`
	ServiceArea  string `json:"serviceArea"`
	Location     string `json:"location"`
	Instagram    string `json:"instagram"`
	Facebook     string `json:"facebook"`
}

var Company = CompanyInfo{
	Name:         "Divine Detail",
	Phone:        "5614674866",
	PhoneDisplay: "561-467-4866",
	Email:        "info@divinedetail.com",
	HoursLabel:   "7 Days a Week",
	HoursDetail:  "7am – 7pm",
	ServiceArea:  "Palm Beach & Surrounding Areas",
	Location:     "Palm Beach, FL",
	Instagram:    "https://www.instagram.com/divinedetailpalmbeach/",
	Facebook:     "https://divinedetail.com/contact/",
}

// TrustBadge is a marketing badge shown alongside the catalog.
type TrustBadge struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

var TrustBadges = []TrustBadge{
	{ID: "mobile", Title: "7 Days a Week", Description: "Available every day"},
	{ID: "service", Title: "Mobile Service", Description: "We come to you"},
	{ID: "water", Title: "Spot-Free Water System", Description: "Deionized filtration"},
	{ID: "premium", Title: "Premium Products Only", Description: "Top-quality results"},
}
