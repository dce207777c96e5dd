package domain

import "github.com/go-playground/validator/v10"

// validatorInstance caches struct metadata for the catalog records.
var validatorInstance = validator.New()

// Feature describes one card of the landing page feature grid.
type Feature struct {
	Icon        string `validate:"required"`
	Tone        string
	Title       string `validate:"required"`
	Description string `validate:"required"`
}

// Validate checks that every displayed field of the feature is populated.
func (f Feature) Validate() error {
	return validatorInstance.Struct(f)
}

// Organization is a receiving organization shown in the featured list.
type Organization struct {
	Name        string `json:"name" validate:"required"`
	Address     string `json:"address" validate:"required"`
	Preferences string `json:"prefs" validate:"required"`
}

// Validate checks that every field of the organization is populated.
func (o Organization) Validate() error {
	return validatorInstance.Struct(o)
}

// DashboardCard is a role-labelled navigation card.
type DashboardCard struct {
	Role        string `validate:"required"`
	Description string `validate:"required"`
	Href        string `validate:"required"`
	Theme       string
}

// Validate checks that the card has a role, a description and a link.
func (d DashboardCard) Validate() error {
	return validatorInstance.Struct(d)
}

var features = []Feature{
	{Icon: "leaf", Tone: "text-green-600", Title: "Farmer surplus", Description: "Upload crop type, quantity, harvest date, and location."},
	{Icon: "map-pin", Tone: "text-blue-600", Title: "50 km radius", Description: "Auto-filter to Bengaluru and nearby 50 km."},
	{Icon: "lock", Tone: "text-amber-600", Title: "First-come lock", Description: "Mediator locks a match to prevent duplicate claims."},
	{Icon: "truck", Tone: "text-gray-700", Title: "Delivery workflow", Description: "Assign delivery agents and upload proof-of-delivery."},
	{Icon: "zap", Tone: "text-purple-600", Title: "AI-powered", Description: "Recommendations, NLP parsing, grading, and forecasts."},
}

var featuredOrganizations = []Organization{
	{Name: "St. John's Medical College Hospital", Address: "Sarjapur Road", Preferences: "High-vitamin C produce"},
	{Name: "Vriddha Ashram Bengaluru", Address: "Indiranagar", Preferences: "Soft, easy-to-digest greens"},
	{Name: "SOS Children's Village Bengaluru", Address: "Bengaluru", Preferences: "Bulk staples and fruits"},
}

var dashboardCards = []DashboardCard{
	{Role: "Farmer", Description: "Add Surplus", Href: "#", Theme: "from-green-500 to-green-600"},
	{Role: "Organization", Description: "Post Demand", Href: "#", Theme: "from-blue-500 to-blue-600"},
	{Role: "Mediator", Description: "Match & Lock", Href: "#", Theme: "from-amber-500 to-amber-600"},
	{Role: "Delivery", Description: "Assigned Deliveries", Href: "#", Theme: "from-gray-700 to-gray-800"},
	{Role: "Admin", Description: "Oversight & Users", Href: "#", Theme: "from-purple-600 to-purple-700"},
}

// Features returns the feature grid entries in display order.
func Features() []Feature {
	return append([]Feature(nil), features...)
}

// FeaturedOrganizations returns the fixed Bengaluru organization list.
func FeaturedOrganizations() []Organization {
	return append([]Organization(nil), featuredOrganizations...)
}

// DashboardCards returns the role dashboards in display order.
func DashboardCards() []DashboardCard {
	return append([]DashboardCard(nil), dashboardCards...)
}
