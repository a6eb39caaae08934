package pricing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"devis-backend/pricing"
)

func TestCompute(t *testing.T) {
	twoItems := []pricing.LineItem{
		{Title: "Site vitrine", Quantity: 2, UnitPriceMinor: 10000},
		{Title: "Maintenance", Quantity: 1, UnitPriceMinor: 5000},
	}

	tests := []struct {
		name          string
		items         []pricing.LineItem
		discountMinor int64
		vatRate       float64
		want          pricing.Result
	}{
		{
			name:    "two items, 20% VAT, no discount",
			items:   twoItems,
			vatRate: 20,
			want: pricing.Result{
				SubtotalMinor:  25000,
				TaxableMinor:   25000,
				VatAmountMinor: 5000,
				TotalMinor:     30000,
			},
		},
		{
			name:          "discount exceeding subtotal clamps taxable to zero",
			items:         twoItems,
			discountMinor: 30000,
			vatRate:       20,
			want: pricing.Result{
				SubtotalMinor:  25000,
				TaxableMinor:   0,
				VatAmountMinor: 0,
				TotalMinor:     0,
			},
		},
		{
			name:    "empty item list yields all-zero result",
			items:   nil,
			vatRate: 20,
			want:    pricing.Result{},
		},
		{
			name:    "zero VAT rate leaves total equal to taxable",
			items:   twoItems,
			vatRate: 0,
			want: pricing.Result{
				SubtotalMinor:  25000,
				TaxableMinor:   25000,
				VatAmountMinor: 0,
				TotalMinor:     25000,
			},
		},
		{
			name:          "partial discount reduces taxable base",
			items:         twoItems,
			discountMinor: 5000,
			vatRate:       20,
			want: pricing.Result{
				SubtotalMinor:  25000,
				TaxableMinor:   20000,
				VatAmountMinor: 4000,
				TotalMinor:     24000,
			},
		},
		{
			name: "fractional quantity rounds the line half-up",
			items: []pricing.LineItem{
				{Title: "Conseil", Quantity: 1.5, UnitPriceMinor: 3333},
			},
			vatRate: 0,
			want: pricing.Result{
				SubtotalMinor:  5000, // 1.5 * 3333 = 4999.5
				TaxableMinor:   5000,
				VatAmountMinor: 0,
				TotalMinor:     5000,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := pricing.Compute(tt.items, tt.discountMinor, tt.vatRate)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestComputeSingleRoundingStep(t *testing.T) {
	// Three lines of 33.33 at 20% VAT. Per-line rounding would charge
	// 667x3=2001; the aggregate rule taxes 9999 once and 1999.8 rounds
	// to 2000 in a single step.
	items := []pricing.LineItem{
		{Quantity: 1, UnitPriceMinor: 3333},
		{Quantity: 1, UnitPriceMinor: 3333},
		{Quantity: 1, UnitPriceMinor: 3333},
	}
	got := pricing.Compute(items, 0, 20)
	assert.Equal(t, int64(9999), got.SubtotalMinor)
	assert.Equal(t, int64(2000), got.VatAmountMinor)

	// A case where the two rules actually diverge: 2 lines of 13 minor
	// units at 20% VAT round to 3+3 per line but 5 on the aggregate.
	items = []pricing.LineItem{
		{Quantity: 1, UnitPriceMinor: 13},
		{Quantity: 1, UnitPriceMinor: 13},
	}
	got = pricing.Compute(items, 0, 20)
	assert.Equal(t, int64(26), got.SubtotalMinor)
	assert.Equal(t, int64(5), got.VatAmountMinor) // 5.2 on aggregate, not 2x round(2.6)
}

func TestComputeOrderIndependence(t *testing.T) {
	items := []pricing.LineItem{
		{Quantity: 3, UnitPriceMinor: 1999},
		{Quantity: 1, UnitPriceMinor: 45000},
		{Quantity: 0.5, UnitPriceMinor: 8000},
	}
	reversed := []pricing.LineItem{items[2], items[1], items[0]}

	assert.Equal(t,
		pricing.Compute(items, 1000, 20),
		pricing.Compute(reversed, 1000, 20))
}

func TestComputeIdempotence(t *testing.T) {
	items := []pricing.LineItem{
		{Quantity: 2, UnitPriceMinor: 10000},
		{Quantity: 1, UnitPriceMinor: 5000},
	}
	first := pricing.Compute(items, 2500, 5.5)
	second := pricing.Compute(items, 2500, 5.5)
	assert.Equal(t, first, second)
}

func TestLineTotalMinor(t *testing.T) {
	assert.Equal(t, int64(20000), pricing.LineTotalMinor(pricing.LineItem{Quantity: 2, UnitPriceMinor: 10000}))
	assert.Equal(t, int64(5000), pricing.LineTotalMinor(pricing.LineItem{Quantity: 1.5, UnitPriceMinor: 3333}))
	assert.Equal(t, int64(0), pricing.LineTotalMinor(pricing.LineItem{Quantity: 0, UnitPriceMinor: 9999}))
}
