package service

import "sort"

// predefinedDestinations are the territories the agency sells; they match
// the destination values used on employees, leads and packages.
var predefinedDestinations = []string{
	"Kashmir",
	"Ladakh",
	"Kerala",
	"Gokarna",
	"Meghalaya",
	"Mysore",
	"Singapore",
	"Hyderabad",
	"Bengaluru",
	"Manali",
}

// DestinationService serves the static destination catalog
type DestinationService struct{}

// NewDestinationService creates a new destination service
func NewDestinationService() *DestinationService {
	return &DestinationService{}
}

// ListDestinations returns the sorted destination catalog
func (s *DestinationService) ListDestinations() []string {
	out := make([]string, len(predefinedDestinations))
	copy(out, predefinedDestinations)
	sort.Strings(out)
	return out
}
