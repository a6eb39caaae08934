package render

import (
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// FormatMinor turns an integer minor-unit amount into a locale-formatted
// currency string. Formatting lives here, at render time only; the pricing
// engine never sees a locale. Unknown locales fall back to French, unknown
// currency codes to EUR, so a bad settings record cannot break a render.
func FormatMinor(minor int64, code, locale string) string {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.French
	}
	unit, err := currency.ParseISO(code)
	if err != nil {
		unit = currency.EUR
	}

	p := message.NewPrinter(tag)
	return p.Sprintf("%v", currency.Symbol(unit.Amount(float64(minor)/100)))
}
