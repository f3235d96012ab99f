package request

import (
	"time"

	"mechmobile/internal/domain/booking"
	"mechmobile/internal/usecase"
)

// CustomerInfoRequest carries contact and vehicle fields. Field-level
// validation lives in the domain so the response can name the failing rule
// instead of a generic binding error.
type CustomerInfoRequest struct {
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	City          string `json:"city"`
	PostalCode    string `json:"postalCode"`
	VehicleBrand  string `json:"vehicleBrand"`
	VehicleModel  string `json:"vehicleModel"`
	VehicleYear   string `json:"vehicleYear"`
	VIN           string `json:"vin,omitempty"`
	TermsAccepted bool   `json:"termsAccepted"`
}

func (r CustomerInfoRequest) toDomain() booking.CustomerInfo {
	return booking.CustomerInfo{
		FirstName:     r.FirstName,
		LastName:      r.LastName,
		Email:         r.Email,
		Phone:         r.Phone,
		Address:       r.Address,
		City:          r.City,
		PostalCode:    r.PostalCode,
		VehicleBrand:  r.VehicleBrand,
		VehicleModel:  r.VehicleModel,
		VehicleYear:   r.VehicleYear,
		VIN:           r.VIN,
		TermsAccepted: r.TermsAccepted,
	}
}

type OptionPickRequest struct {
	OptionIndex int `json:"optionIndex"`
	Quantity    int `json:"quantity"`
}

type SelectedServiceRequest struct {
	ServiceID    string              `json:"serviceId" binding:"required"`
	BaseSelected bool                `json:"baseSelected"`
	Options      []OptionPickRequest `json:"options,omitempty"`
}

type CreateEstimateRequest struct {
	Customer CustomerInfoRequest      `json:"customer" binding:"required"`
	Services []SelectedServiceRequest `json:"services" binding:"required"`
	Date     string                   `json:"date" binding:"required"`
	TimeSlot string                   `json:"timeSlot"`
}

// ToInput converts the submission, anchoring the requested date in the
// workshop's time zone so lead-time math lines up with slot times.
func (r CreateEstimateRequest) ToInput(loc *time.Location) (usecase.CreateEstimateInput, error) {
	requestedFor, err := time.ParseInLocation("2006-01-02", r.Date, loc)
	if err != nil {
		return usecase.CreateEstimateInput{}, err
	}

	selection := make([]booking.SelectedService, 0, len(r.Services))
	for _, svc := range r.Services {
		sel := booking.SelectedService{
			ServiceID:    svc.ServiceID,
			BaseSelected: svc.BaseSelected,
		}
		for _, opt := range svc.Options {
			qty := opt.Quantity
			if qty <= 0 {
				qty = 1
			}
			sel.Options = append(sel.Options, booking.OptionPick{
				OptionIndex: opt.OptionIndex,
				Quantity:    qty,
			})
		}
		selection = append(selection, sel)
	}

	return usecase.CreateEstimateInput{
		Customer:     r.Customer.toDomain(),
		Selection:    selection,
		RequestedFor: requestedFor,
		SlotLabel:    r.TimeSlot,
	}, nil
}
