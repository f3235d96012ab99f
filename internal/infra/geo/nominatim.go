package geo

import (
	"context"
	"encoding/json"
	"math"
	"net/http"
	"net/url"
	"strings"

	"mechmobile/internal/pkg/config"
	"mechmobile/internal/pkg/errs"
	"mechmobile/internal/pkg/numeric"
)

const (
	earthRadiusKm = 6371.0088
	// Great-circle distances understate driving routes; +20% approximates
	// the Montréal road network.
	roadFactor = 1.20
)

// GeocodeResolver geocodes the address via Nominatim and estimates the
// driving distance with the haversine formula and a road correction factor.
// Second in the chain, used when the matrix API is unavailable.
type GeocodeResolver struct {
	baseURL   string
	country   string
	userAgent string
	origin    Coordinates
	client    *http.Client
}

type Coordinates struct {
	Lat float64
	Lng float64
}

func NewGeocodeResolver(cfg config.GeoConfig, workshop config.WorkshopConfig) *GeocodeResolver {
	return &GeocodeResolver{
		baseURL:   cfg.GeocodeBaseURL,
		country:   cfg.GeocodeCountry,
		userAgent: cfg.GeocodeUserAgent,
		origin:    Coordinates{Lat: workshop.Lat, Lng: workshop.Lng},
		client:    &http.Client{Timeout: cfg.Timeout},
	}
}

type nominatimResult struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

func (r *GeocodeResolver) Resolve(ctx context.Context, address string) (Distance, error) {
	if strings.TrimSpace(address) == "" {
		return Distance{}, errEmptyAddress
	}

	coords, err := r.geocode(ctx, address)
	if err != nil {
		return Distance{}, err
	}

	km := Haversine(r.origin, coords) * roadFactor
	return Distance{Km: roundKm(km), Source: "geocode"}, nil
}

func (r *GeocodeResolver) geocode(ctx context.Context, address string) (Coordinates, error) {
	params := url.Values{}
	params.Set("format", "json")
	params.Set("q", address)
	params.Set("limit", "1")
	params.Set("countrycodes", r.country)
	params.Set("addressdetails", "1")
	params.Set("dedupe", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return Coordinates{}, errs.Wrap(err, "failed to build geocode request")
	}
	req.Header.Set("User-Agent", r.userAgent)

	resp, err := r.client.Do(req)
	if err != nil {
		return Coordinates{}, errs.Wrap(err, "geocode request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Coordinates{}, errs.New("geocode returned status " + resp.Status)
	}

	var results []nominatimResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return Coordinates{}, errs.Wrap(err, "failed to decode geocode response")
	}
	if len(results) == 0 {
		return Coordinates{}, errs.New("address not found")
	}

	coords := Coordinates{
		Lat: numeric.SafeFloat(results[0].Lat),
		Lng: numeric.SafeFloat(results[0].Lon),
	}
	if coords.Lat == 0 && coords.Lng == 0 {
		return Coordinates{}, errs.New("geocode returned unusable coordinates")
	}
	return coords, nil
}

// Haversine computes the great-circle distance in km between two points,
// using the mean Earth radius.
func Haversine(a, b Coordinates) float64 {
	lat1 := a.Lat * math.Pi / 180
	lat2 := b.Lat * math.Pi / 180
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLng := (b.Lng - a.Lng) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusKm * c
}
