// Package pricing is the pure price-estimation engine: service cost, capped
// distance-based travel fee, stacked consumption taxes. No I/O; every step
// runs through the numeric sanitizer so corrupt catalog data degrades to 0
// rather than NaN in a displayed total.
package pricing

import (
	"mechmobile/internal/domain/booking"
	"mechmobile/internal/domain/catalog"
	"mechmobile/internal/pkg/config"
	"mechmobile/internal/pkg/numeric"
)

// FeeSchedule is one named travel-fee configuration. Two schedules coexist:
// the estimate flow bills 0.61$/km capped at 55$, the booking flow
// 0.76$/km capped at 76$.
type FeeSchedule struct {
	RatePerKm float64
	TravelCap float64
	TaxRate   float64
	PartsFee  float64
}

func EstimateSchedule(cfg config.PricingConfig) FeeSchedule {
	return FeeSchedule{
		RatePerKm: cfg.EstimateRatePerKm,
		TravelCap: cfg.EstimateTravelCap,
		TaxRate:   cfg.TaxRate,
	}
}

func BookingSchedule(cfg config.PricingConfig) FeeSchedule {
	return FeeSchedule{
		RatePerKm: cfg.BookingRatePerKm,
		TravelCap: cfg.BookingTravelCap,
		TaxRate:   cfg.TaxRate,
		PartsFee:  cfg.PartsSearchFlatFee,
	}
}

// ServicesCost prices an estimate-flow selection: base price only when the
// base is selected, plus option price × quantity. Unknown service or option
// references contribute 0.
func ServicesCost(selected []booking.SelectedService, cat *catalog.Catalog) float64 {
	total := 0.0
	for _, sel := range selected {
		svc, ok := cat.Find(sel.ServiceID)
		if !ok {
			continue
		}
		if sel.BaseSelected {
			total += numeric.SafeFloat(svc.BasePrice)
		}
		for _, pick := range sel.Options {
			opt, ok := svc.Option(pick.OptionIndex)
			if !ok {
				continue
			}
			total += numeric.SafeFloat(opt.Price) * float64(pick.Quantity)
		}
	}
	return numeric.SafeFloat(total)
}

// CartCost prices a booking-flow cart: base price × service quantity plus
// option price × option quantity.
func CartCost(lines []booking.CartLine, cat *catalog.Catalog) float64 {
	total := 0.0
	for _, line := range lines {
		svc, ok := cat.Find(line.ServiceID)
		if !ok {
			continue
		}
		total += numeric.SafeFloat(svc.BasePrice) * float64(line.Quantity)
		for optionIndex, qty := range line.Options {
			if qty <= 0 {
				continue
			}
			opt, ok := svc.Option(optionIndex)
			if !ok {
				continue
			}
			total += numeric.SafeFloat(opt.Price) * float64(qty)
		}
	}
	return numeric.SafeFloat(total)
}

// TravelCost is the capped distance surcharge: min(km × rate, cap).
func (f FeeSchedule) TravelCost(distanceKm float64) float64 {
	cost := numeric.SafeFloat(distanceKm) * f.RatePerKm
	if cost > f.TravelCap {
		cost = f.TravelCap
	}
	return numeric.SafeFloat(cost)
}

// Taxes applies the combined consumption-tax rate to a taxable amount.
func (f FeeSchedule) Taxes(taxableAmount float64) float64 {
	return numeric.SafeFloat(taxableAmount) * f.TaxRate
}

// Breakdown is a fully computed price, each component sanitized.
type Breakdown struct {
	ServicesCost float64
	TravelCost   float64
	PartsFee     float64
	Subtotal     float64
	Taxes        float64
	Total        float64
}

// EstimateBreakdown prices the estimate flow: taxes apply to services +
// travel; no parts fee.
func EstimateBreakdown(selected []booking.SelectedService, cat *catalog.Catalog, distanceKm float64, schedule FeeSchedule) Breakdown {
	services := ServicesCost(selected, cat)
	travel := schedule.TravelCost(distanceKm)
	taxes := schedule.Taxes(services + travel)
	return Breakdown{
		ServicesCost: services,
		TravelCost:   travel,
		Subtotal:     numeric.SafeFloat(services),
		Taxes:        taxes,
		Total:        numeric.SafeFloat(services + travel + taxes),
	}
}

// BookingBreakdown prices the booking flow: the parts-search flat fee joins
// the subtotal before tax when the shop sources parts.
func BookingBreakdown(lines []booking.CartLine, cat *catalog.Catalog, distanceKm float64, shopSourcesParts bool, schedule FeeSchedule) Breakdown {
	services := CartCost(lines, cat)
	travel := schedule.TravelCost(distanceKm)
	parts := 0.0
	if shopSourcesParts {
		parts = schedule.PartsFee
	}
	subtotal := numeric.SafeFloat(services + travel + parts)
	taxes := schedule.Taxes(subtotal)
	return Breakdown{
		ServicesCost: services,
		TravelCost:   travel,
		PartsFee:     parts,
		Subtotal:     subtotal,
		Taxes:        taxes,
		Total:        numeric.SafeFloat(subtotal + taxes),
	}
}
