package geo

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"

	"mechmobile/internal/pkg/config"
	"mechmobile/internal/pkg/errs"
)

// MatrixResolver queries the Google Distance Matrix API for a driving-route
// distance. It is the most accurate resolver in the chain and the first one
// tried.
type MatrixResolver struct {
	baseURL string
	apiKey  string
	origin  string
	client  *http.Client
}

func NewMatrixResolver(cfg config.GeoConfig, workshop config.WorkshopConfig) *MatrixResolver {
	return &MatrixResolver{
		baseURL: cfg.MatrixBaseURL,
		apiKey:  cfg.MatrixAPIKey,
		origin:  workshop.Address,
		client:  &http.Client{Timeout: cfg.Timeout},
	}
}

type matrixResponse struct {
	Status string `json:"status"`
	Rows   []struct {
		Elements []struct {
			Status   string `json:"status"`
			Distance struct {
				Value int `json:"value"` // meters
			} `json:"distance"`
		} `json:"elements"`
	} `json:"rows"`
}

func (r *MatrixResolver) Resolve(ctx context.Context, address string) (Distance, error) {
	if strings.TrimSpace(address) == "" {
		return Distance{}, errEmptyAddress
	}
	if r.apiKey == "" {
		return Distance{}, errs.New("distance matrix api key not configured")
	}

	params := url.Values{}
	params.Set("origins", r.origin)
	params.Set("destinations", address)
	params.Set("units", "metric")
	params.Set("mode", "driving")
	params.Set("key", r.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return Distance{}, errs.Wrap(err, "failed to build distance matrix request")
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return Distance{}, errs.Wrap(err, "distance matrix request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Distance{}, errs.New("distance matrix returned status " + resp.Status)
	}

	var body matrixResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return Distance{}, errs.Wrap(err, "failed to decode distance matrix response")
	}

	if body.Status != "OK" || len(body.Rows) == 0 || len(body.Rows[0].Elements) == 0 {
		return Distance{}, errs.New("distance matrix returned no route")
	}
	elem := body.Rows[0].Elements[0]
	if elem.Status != "OK" {
		return Distance{}, errs.New("distance matrix element status " + elem.Status)
	}

	return Distance{
		Km:     roundKm(float64(elem.Distance.Value) / 1000),
		Source: "matrix",
	}, nil
}
