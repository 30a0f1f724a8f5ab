// Package region maps commercetools regions to their API and authorization hosts.
package region

import (
	"fmt"
	"sort"
	"strings"
)

// Region is a named commercetools deployment location.
type Region string

const (
	// Europe is the legacy European host pair.
	Europe Region = "europe"
	// NorthAmerica is the legacy North American host pair.
	NorthAmerica Region = "north-america"

	EuropeWest1GCP         Region = "europe-west1.gcp"
	USCentral1GCP          Region = "us-central1.gcp"
	AustraliaSoutheast1GCP Region = "australia-southeast1.gcp"
	EUCentral1AWS          Region = "eu-central-1.aws"
	USEast2AWS             Region = "us-east-2.aws"
)

type endpoints struct {
	apiURL  string
	authURL string
}

var regions = map[Region]endpoints{
	Europe:                 {apiURL: "https://api.sphere.io", authURL: "https://auth.sphere.io"},
	NorthAmerica:           {apiURL: "https://api.commercetools.co", authURL: "https://auth.commercetools.co"},
	EuropeWest1GCP:         hosted(EuropeWest1GCP),
	USCentral1GCP:          hosted(USCentral1GCP),
	AustraliaSoutheast1GCP: hosted(AustraliaSoutheast1GCP),
	EUCentral1AWS:          hosted(EUCentral1AWS),
	USEast2AWS:             hosted(USEast2AWS),
}

func hosted(r Region) endpoints {
	return endpoints{
		apiURL:  fmt.Sprintf("https://api.%s.commercetools.com", r),
		authURL: fmt.Sprintf("https://auth.%s.commercetools.com", r),
	}
}

// APIURL returns the base URL of the HTTP API, without trailing slash, or "" for an unknown region.
func (r Region) APIURL() string {
	return regions[r].apiURL
}

// AuthURL returns the base URL of the authorization service, without trailing slash, or "" for an unknown region.
func (r Region) AuthURL() string {
	return regions[r].authURL
}

// IsKnown reports whether r has a host pair.
func (r Region) IsKnown() bool {
	_, ok := regions[r]
	return ok
}

func (r Region) String() string {
	return string(r)
}

// ParseRegion resolves a region name, ignoring case and surrounding space.
func ParseRegion(name string) (Region, error) {
	r := Region(strings.ToLower(strings.TrimSpace(name)))
	if !r.IsKnown() {
		return "", fmt.Errorf("unknown region %q", name)
	}
	return r, nil
}

// Regions returns every known region sorted by name.
func Regions() []Region {
	all := make([]Region, 0, len(regions))
	for r := range regions {
		all = append(all, r)
	}
	sort.Slice(all, func(i, j int) bool { return all[i] < all[j] })
	return all
}
