package geo

import (
	"context"
	"strings"
)

const defaultFallbackKm = 45.0

// regionDistances maps lowercase locality substrings to measured driving
// distances from the workshop. Order matters for overlapping names
// ("montréal-nord" before "montréal"), so the table is a slice.
var regionDistances = []struct {
	match string
	km    float64
}{
	{"montréal-nord", 0.5},
	{"granby", 96.2},
	{"ville-marie", 22.3},
	{"plateau", 20.1},
	{"rosemont", 8.2},
	{"verdun", 28.7},
	{"lachine", 32.4},
	{"lasalle", 35.8},
	{"ahuntsic", 4.2},
	{"villeray", 12.8},
	{"mercier", 14.6},
	{"anjou", 9.7},
	{"saint-léonard", 7.3},
	{"rivière-des-prairies", 12.4},
	{"chomedey", 19.2},
	{"sainte-rose", 24.7},
	{"vimont", 21.3},
	{"laval", 16.8},
	{"longueuil", 32.6},
	{"brossard", 35.1},
	{"saint-lambert", 30.8},
	{"boucherville", 38.4},
	{"saint-bruno", 42.7},
	{"saint-hubert", 37.9},
	{"greenfield park", 33.2},
	{"terrebonne", 23.8},
	{"mascouche", 28.4},
	{"repentigny", 19.6},
	{"charlemagne", 21.2},
	{"saint-eustache", 43.2},
	{"boisbriand", 38.7},
	{"sainte-thérèse", 40.9},
	{"dollard-des-ormeaux", 42.3},
	{"pointe-claire", 39.8},
	{"kirkland", 37.5},
	{"sherbrooke", 178.5},
	{"trois-rivières", 168.2},
	{"quebec", 295.7},
	{"montréal", 18.5},
	{"montreal", 18.5},
}

// FallbackResolver matches the address against the regional table. It never
// errors on a non-empty address: unknown localities get the default 45 km so
// a network outage still produces an estimate.
type FallbackResolver struct{}

func NewFallbackResolver() *FallbackResolver {
	return &FallbackResolver{}
}

func (r *FallbackResolver) Resolve(_ context.Context, address string) (Distance, error) {
	if strings.TrimSpace(address) == "" {
		return Distance{}, errEmptyAddress
	}

	lower := strings.ToLower(address)
	for _, entry := range regionDistances {
		if strings.Contains(lower, entry.match) {
			return Distance{Km: entry.km, Source: "fallback"}, nil
		}
	}
	return Distance{Km: defaultFallbackKm, Source: "fallback"}, nil
}
