package response

import "mechmobile/internal/usecase/readmodel"

type ServiceOptionResponse struct {
	NameFR string  `json:"nameFr"`
	NameEN string  `json:"nameEn"`
	Price  float64 `json:"price"`
}

type ServiceResponse struct {
	ServiceID         string                  `json:"serviceId"`
	NameFR            string                  `json:"nameFr"`
	NameEN            string                  `json:"nameEn"`
	DescriptionFR     string                  `json:"descriptionFr"`
	DescriptionEN     string                  `json:"descriptionEn"`
	BasePrice         float64                 `json:"basePrice"`
	EstimatedDuration int                     `json:"estimatedDuration"`
	Options           []ServiceOptionResponse `json:"options,omitempty"`
}

func FromServiceRM(rm *readmodel.ServiceRM) *ServiceResponse {
	resp := &ServiceResponse{
		ServiceID:         rm.ServiceID,
		NameFR:            rm.NameFR,
		NameEN:            rm.NameEN,
		DescriptionFR:     rm.DescriptionFR,
		DescriptionEN:     rm.DescriptionEN,
		BasePrice:         rm.BasePrice,
		EstimatedDuration: rm.EstimatedDuration,
	}
	for _, opt := range rm.Options {
		resp.Options = append(resp.Options, ServiceOptionResponse{
			NameFR: opt.NameFR,
			NameEN: opt.NameEN,
			Price:  opt.Price,
		})
	}
	return resp
}
