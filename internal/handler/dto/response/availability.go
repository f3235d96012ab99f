package response

import (
	"time"

	"mechmobile/internal/usecase/readmodel"
)

type SlotResponse struct {
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
	Label     string    `json:"label"`
	Available bool      `json:"available"`
}

func FromSlotRM(rm *readmodel.SlotRM) *SlotResponse {
	return &SlotResponse{
		Start:     rm.Start,
		End:       rm.End,
		Label:     rm.Label,
		Available: rm.Available,
	}
}
