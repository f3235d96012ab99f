package booking

import (
	"strings"

	"mechmobile/internal/pkg/errs"
)

const maxVINLength = 17

// CustomerInfo is the contact and vehicle data collected before an estimate
// or booking is accepted.
type CustomerInfo struct {
	FirstName     string
	LastName      string
	Email         string
	Phone         string
	Address       string
	City          string
	PostalCode    string
	VehicleBrand  string
	VehicleModel  string
	VehicleYear   string
	VIN           string
	TermsAccepted bool
}

// Validate enforces the submission gate: all required fields present, terms
// accepted, VIN no longer than 17 characters. VIN itself is optional.
func (c CustomerInfo) Validate() error {
	required := []string{
		c.FirstName, c.LastName, c.Email, c.Phone,
		c.Address, c.City, c.PostalCode,
		c.VehicleBrand, c.VehicleModel, c.VehicleYear,
	}
	for _, field := range required {
		if strings.TrimSpace(field) == "" {
			return errs.ErrMissingRequired
		}
	}
	if !c.TermsAccepted {
		return errs.ErrTermsNotAccepted
	}
	if len(c.VIN) > maxVINLength {
		return errs.ErrInvalidVIN
	}
	return nil
}

func (c CustomerInfo) FullName() string {
	return strings.TrimSpace(c.FirstName + " " + c.LastName)
}

// FullAddress is the customer's street address used for distance resolution.
func (c CustomerInfo) FullAddress() string {
	parts := make([]string, 0, 3)
	for _, p := range []string{c.Address, c.City, c.PostalCode} {
		if strings.TrimSpace(p) != "" {
			parts = append(parts, strings.TrimSpace(p))
		}
	}
	return strings.Join(parts, ", ")
}
