package services

import "time"

// ServiceDocument is a standalone marketplace listing owned by a provider.
// One document is created per service type selected during onboarding.
type ServiceDocument struct {
	ID          string    `json:"id"`
	ProviderID  string    `json:"providerId"`
	ServiceType string    `json:"serviceType"`
	Country     string    `json:"country"`
	Governorate string    `json:"governorate"`
	City        string    `json:"city"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Catalog is the fixed set of service types a provider can offer.
var Catalog = []string{
	"horse_stable",
	"veterinary",
	"horse_training",
	"horse_transport",
	"trip_coordinator",
	"horse_feed",
	"farrier",
	"grooming",
	"breeding",
	"racing_events",
	"competitions",
	"horse_photography",
	"tack_shop",
	"horse_housing",
	"contractors",
	"riding_school",
}

// InCatalog reports whether serviceType is one of the fixed offerings.
func InCatalog(serviceType string) bool {
	for _, s := range Catalog {
		if s == serviceType {
			return true
		}
	}
	return false
}
