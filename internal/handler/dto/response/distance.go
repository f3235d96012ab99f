package response

import "mechmobile/internal/usecase/readmodel"

type DistanceResponse struct {
	DistanceKm float64 `json:"distanceKm"`
	Source     string  `json:"source"`
}

func FromDistanceRM(rm *readmodel.DistanceRM) *DistanceResponse {
	return &DistanceResponse{
		DistanceKm: rm.DistanceKm,
		Source:     rm.Source,
	}
}
