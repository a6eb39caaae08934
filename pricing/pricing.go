package pricing

import "math"

// LineItem is one row of a quote. Quantity may be fractional (hours, sqm).
// Prices are integer minor units (cents); no float money leaves this package.
type LineItem struct {
	Title          string  `json:"title"`
	Subtitle       string  `json:"subtitle"`
	Quantity       float64 `json:"quantity"`
	UnitPriceMinor int64   `json:"unit_price_minor"`
}

// Result holds the derived totals of a quote. It is always recomputed from
// the document and never stored on its own.
type Result struct {
	SubtotalMinor  int64 `json:"subtotal_minor"`
	TaxableMinor   int64 `json:"taxable_minor"`
	VatAmountMinor int64 `json:"vat_amount_minor"`
	TotalMinor     int64 `json:"total_minor"`
}

// LineTotalMinor returns quantity x unit price, rounded half-up to a minor unit.
func LineTotalMinor(item LineItem) int64 {
	return int64(math.Round(item.Quantity * float64(item.UnitPriceMinor)))
}

// Compute derives the totals for a set of line items.
//
// The discount is an absolute minor-unit amount and the taxable base is
// clamped at zero when it exceeds the subtotal. VAT is applied to the
// aggregate taxable amount with a single half-up rounding step; rounding
// per line would change totals by minor-unit amounts and is deliberately
// not done here.
//
// Compute is pure and does not validate its inputs: negative quantities or
// prices are a caller problem, not an error condition.
func Compute(items []LineItem, discountMinor int64, vatRatePercent float64) Result {
	var subtotal int64
	for _, item := range items {
		subtotal += LineTotalMinor(item)
	}

	taxable := subtotal - discountMinor
	if taxable < 0 {
		taxable = 0
	}

	vat := int64(math.Round(float64(taxable) * vatRatePercent / 100))

	return Result{
		SubtotalMinor:  subtotal,
		TaxableMinor:   taxable,
		VatAmountMinor: vat,
		TotalMinor:     taxable + vat,
	}
}
