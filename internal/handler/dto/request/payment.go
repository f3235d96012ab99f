package request

import "mechmobile/internal/usecase"

type ChargeRequest struct {
	SourceID string  `json:"sourceId" binding:"required"`
	Amount   float64 `json:"amount" binding:"required,gt=0"`
	Note     string  `json:"note,omitempty"`
}

func (r ChargeRequest) ToInput() usecase.ChargeInput {
	return usecase.ChargeInput{
		SourceID: r.SourceID,
		Amount:   r.Amount,
		Note:     r.Note,
	}
}
