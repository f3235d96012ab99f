//go:build unit

package pricing_test

import (
	"math"
	"testing"

	"mechmobile/internal/domain/booking"
	"mechmobile/internal/domain/catalog"
	"mechmobile/internal/domain/pricing"
	"mechmobile/internal/pkg/config"

	"github.com/stretchr/testify/assert"
)

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	return catalog.NewCatalog([]catalog.Service{
		{
			ServiceID: "oil-change",
			Name:      catalog.LocalizedText{FR: "Changement d'huile", EN: "Oil change"},
			BasePrice: 80,
			Options: []catalog.ServiceOption{
				{Name: catalog.LocalizedText{FR: "Filtre premium"}, Price: 20},
			},
		},
		{
			ServiceID: "brake-inspection",
			Name:      catalog.LocalizedText{FR: "Inspection des freins"},
			BasePrice: 60,
		},
		{
			ServiceID: "corrupt",
			Name:      catalog.LocalizedText{FR: "Corrompu"},
			BasePrice: math.NaN(),
		},
	})
}

func pricingConfig() config.PricingConfig {
	return config.PricingConfig{
		TaxRate:            0.14975,
		EstimateRatePerKm:  0.61,
		EstimateTravelCap:  55,
		BookingRatePerKm:   0.76,
		BookingTravelCap:   76,
		PartsSearchFlatFee: 20,
	}
}

func TestServicesCost(t *testing.T) {
	cat := testCatalog(t)

	t.Run("base plus option quantities", func(t *testing.T) {
		selected := []booking.SelectedService{
			{ServiceID: "oil-change", BaseSelected: true, Options: []booking.OptionPick{{OptionIndex: 0, Quantity: 3}}},
		}
		assert.Equal(t, 140.0, pricing.ServicesCost(selected, cat))
	})

	t.Run("options without base", func(t *testing.T) {
		selected := []booking.SelectedService{
			{ServiceID: "oil-change", BaseSelected: false, Options: []booking.OptionPick{{OptionIndex: 0, Quantity: 2}}},
		}
		assert.Equal(t, 40.0, pricing.ServicesCost(selected, cat))
	})

	t.Run("unknown references contribute nothing", func(t *testing.T) {
		selected := []booking.SelectedService{
			{ServiceID: "no-such-service", BaseSelected: true},
			{ServiceID: "oil-change", BaseSelected: true, Options: []booking.OptionPick{{OptionIndex: 99, Quantity: 5}}},
		}
		assert.Equal(t, 80.0, pricing.ServicesCost(selected, cat))
	})

	t.Run("corrupt price sanitized to zero", func(t *testing.T) {
		selected := []booking.SelectedService{{ServiceID: "corrupt", BaseSelected: true}}
		assert.Equal(t, 0.0, pricing.ServicesCost(selected, cat))
	})
}

func TestCartCost(t *testing.T) {
	cat := testCatalog(t)
	lines := []booking.CartLine{
		{ServiceID: "oil-change", Quantity: 2, Options: map[int]int{0: 1}},
		{ServiceID: "brake-inspection", Quantity: 1},
	}
	assert.Equal(t, 240.0, pricing.CartCost(lines, cat))
}

func TestTravelCost(t *testing.T) {
	sched := pricing.EstimateSchedule(pricingConfig())

	tests := []struct {
		name string
		km   float64
		want float64
	}{
		{name: "under the cap", km: 20, want: 12.20},
		{name: "exactly fifty km", km: 50, want: 30.5},
		{name: "capped", km: 100, want: 55},
		{name: "NaN distance sanitized", km: math.NaN(), want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, sched.TravelCost(tt.km), 1e-9)
		})
	}

	t.Run("booking schedule has its own rate and cap", func(t *testing.T) {
		b := pricing.BookingSchedule(pricingConfig())
		assert.InDelta(t, 15.2, b.TravelCost(20), 1e-9)
		assert.InDelta(t, 76.0, b.TravelCost(200), 1e-9)
	})
}

func TestTaxes(t *testing.T) {
	sched := pricing.EstimateSchedule(pricingConfig())
	assert.InDelta(t, 149.75, sched.Taxes(1000), 1e-9)
}

func TestEstimateBreakdown(t *testing.T) {
	cat := testCatalog(t)
	selected := []booking.SelectedService{
		{ServiceID: "oil-change", BaseSelected: true, Options: []booking.OptionPick{{OptionIndex: 0, Quantity: 3}}},
	}
	bd := pricing.EstimateBreakdown(selected, cat, 20, pricing.EstimateSchedule(pricingConfig()))

	assert.InDelta(t, 140.0, bd.ServicesCost, 1e-9)
	assert.InDelta(t, 12.20, bd.TravelCost, 1e-9)
	assert.InDelta(t, 140.0, bd.Subtotal, 1e-9)
	assert.InDelta(t, 22.79195, bd.Taxes, 1e-6)
	assert.InDelta(t, 174.99195, bd.Total, 1e-6)
	// total stays the sum of its parts
	assert.InDelta(t, bd.ServicesCost+bd.TravelCost+bd.Taxes, bd.Total, 1e-9)
}

func TestBookingBreakdown(t *testing.T) {
	cat := testCatalog(t)
	lines := []booking.CartLine{{ServiceID: "brake-inspection", Quantity: 1}}

	t.Run("parts fee joins the taxable subtotal", func(t *testing.T) {
		bd := pricing.BookingBreakdown(lines, cat, 10, true, pricing.BookingSchedule(pricingConfig()))
		assert.InDelta(t, 60.0, bd.ServicesCost, 1e-9)
		assert.InDelta(t, 7.6, bd.TravelCost, 1e-9)
		assert.InDelta(t, 20.0, bd.PartsFee, 1e-9)
		assert.InDelta(t, 87.6, bd.Subtotal, 1e-9)
		assert.InDelta(t, 87.6*0.14975, bd.Taxes, 1e-9)
		assert.InDelta(t, bd.Subtotal+bd.Taxes, bd.Total, 1e-9)
	})

	t.Run("no parts fee when the customer supplies parts", func(t *testing.T) {
		bd := pricing.BookingBreakdown(lines, cat, 10, false, pricing.BookingSchedule(pricingConfig()))
		assert.Equal(t, 0.0, bd.PartsFee)
		assert.InDelta(t, 67.6, bd.Subtotal, 1e-9)
	})
}
