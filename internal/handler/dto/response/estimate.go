package response

import (
	"time"

	"mechmobile/internal/usecase"
	"mechmobile/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type QuoteLineResponse struct {
	ServiceID   string  `json:"serviceId"`
	ServiceName string  `json:"serviceName"`
	BasePrice   float64 `json:"basePrice"`
}

type QuoteResponse struct {
	ID           uuid.UUID           `json:"id"`
	Number       string              `json:"number"`
	Status       string              `json:"status"`
	Subtotal     float64             `json:"subtotal"`
	TravelCost   float64             `json:"travelCost"`
	Taxes        float64             `json:"taxes"`
	Total        float64             `json:"total"`
	DistanceKm   float64             `json:"distanceKm"`
	SlotLabel    string              `json:"slotLabel,omitempty"`
	RequestedFor time.Time           `json:"requestedFor"`
	CreatedAt    time.Time           `json:"createdAt"`
	Lines        []QuoteLineResponse `json:"lines"`
}

type EstimateResponse struct {
	Quote      *QuoteResponse `json:"quote"`
	DistanceKm float64        `json:"distanceKm"`
	Warnings   []string       `json:"warnings,omitempty"`
}

func FromQuoteRM(rm *readmodel.QuoteRM) *QuoteResponse {
	resp := &QuoteResponse{
		ID:           rm.ID,
		Number:       rm.Number,
		Status:       rm.Status,
		Subtotal:     rm.Subtotal,
		TravelCost:   rm.TravelCost,
		Taxes:        rm.Taxes,
		Total:        rm.Total,
		DistanceKm:   rm.DistanceKm,
		SlotLabel:    rm.SlotLabel,
		RequestedFor: rm.RequestedFor,
		CreatedAt:    rm.CreatedAt,
	}
	for _, l := range rm.Lines {
		resp.Lines = append(resp.Lines, QuoteLineResponse{
			ServiceID:   l.ServiceID,
			ServiceName: l.ServiceName,
			BasePrice:   l.BasePrice,
		})
	}
	return resp
}

func FromEstimateResult(result *usecase.EstimateResult) *EstimateResponse {
	return &EstimateResponse{
		Quote:      FromQuoteRM(result.Quote),
		DistanceKm: result.DistanceKm,
		Warnings:   result.Warnings,
	}
}
