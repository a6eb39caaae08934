package render_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"devis-backend/pricing"
	"devis-backend/render"
	"devis-backend/theme"
)

func sampleInput(items []pricing.LineItem) render.Input {
	expiry := time.Date(2025, 7, 31, 0, 0, 0, 0, time.UTC)
	return render.Input{
		Company: render.CompanyView{
			Name:    "Atelier Dupont",
			Email:   "contact@atelier-dupont.fr",
			Address: "12 rue des Lilas, 75011 Paris",
			TaxID:   "FR12345678901",
		},
		Client: render.ClientView{
			Name:    "SARL Martin",
			Email:   "compta@martin.fr",
			Address: "4 avenue de la République, 69003 Lyon",
		},
		Meta: render.MetaView{
			Number:     "DEV-0042",
			IssueDate:  time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC),
			ExpiryDate: &expiry,
			Terms:      "Paiement à 30 jours",
			Status:     "draft",
		},
		Items:    items,
		Currency: "EUR",
		Locale:   "fr",
	}
}

func sampleItems() []pricing.LineItem {
	return []pricing.LineItem{
		{Title: "Site vitrine", Subtitle: "5 pages", Quantity: 1, UnitPriceMinor: 250000},
		{Title: "Maintenance", Quantity: 12, UnitPriceMinor: 9900},
	}
}

func regionIndex(doc render.Document, region render.Region) int {
	for i, b := range doc.Blocks {
		if b.Region == region {
			return i
		}
	}
	return -1
}

func TestComposeIsDeterministic(t *testing.T) {
	in := sampleInput(sampleItems())
	totals := pricing.Compute(in.Items, 0, 20)
	sel := theme.Selection{LayoutKey: "swiss"}

	first, _ := json.Marshal(render.Compose(in, totals, sel))
	second, _ := json.Marshal(render.Compose(in, totals, sel))
	assert.Equal(t, string(first), string(second))
}

func TestComposeTotalPosition(t *testing.T) {
	in := sampleInput(sampleItems())
	totals := pricing.Compute(in.Items, 0, 20)

	// swiss is bottom-right: items precede totals
	doc := render.Compose(in, totals, theme.Selection{LayoutKey: "swiss"})
	require.Equal(t, theme.TotalBottomRight, doc.Layout.TotalPosition)
	assert.Less(t, regionIndex(doc, render.RegionItems), regionIndex(doc, render.RegionTotals))

	// modern is hero-top: totals precede items
	doc = render.Compose(in, totals, theme.Selection{LayoutKey: "modern"})
	require.Equal(t, theme.TotalHeroTop, doc.Layout.TotalPosition)
	assert.Less(t, regionIndex(doc, render.RegionTotals), regionIndex(doc, render.RegionItems))
}

func TestComposeUnknownLayoutSelfHeals(t *testing.T) {
	in := sampleInput(sampleItems())
	totals := pricing.Compute(in.Items, 0, 20)

	doc := render.Compose(in, totals, theme.Selection{LayoutKey: "retired-pro-layout"})
	assert.Equal(t, theme.DefaultLayoutKey, doc.Layout.Key)
	assert.NotEmpty(t, doc.Blocks)
}

func TestComposeEmptyItems(t *testing.T) {
	in := sampleInput(nil)
	totals := pricing.Compute(nil, 0, 20)

	doc := render.Compose(in, totals, theme.Selection{LayoutKey: "swiss"})

	idx := regionIndex(doc, render.RegionItems)
	require.GreaterOrEqual(t, idx, 0, "items table must still be emitted")
	items := doc.Blocks[idx]
	assert.Equal(t, render.KindTable, items.Kind)
	assert.NotEmpty(t, items.Columns)
	assert.Empty(t, items.Rows)
	assert.Equal(t, pricing.Result{}, doc.Totals)
}

func TestComposeCorruptVariablesDegradeToDefaults(t *testing.T) {
	in := sampleInput(sampleItems())
	totals := pricing.Compute(in.Items, 0, 20)

	doc := render.Compose(in, totals, theme.Selection{
		LayoutKey: "swiss",
		Variables: []byte(`{"colors":{`),
	})
	assert.Equal(t, theme.Defaults(), doc.Vars)
}

func TestComposeLineRows(t *testing.T) {
	in := sampleInput(sampleItems())
	totals := pricing.Compute(in.Items, 0, 20)

	doc := render.Compose(in, totals, theme.Selection{LayoutKey: "swiss"})
	items := doc.Blocks[regionIndex(doc, render.RegionItems)]

	require.Len(t, items.Rows, 2)
	// Rows print in insertion order
	assert.Contains(t, items.Rows[0][0], "Site vitrine")
	assert.Contains(t, items.Rows[1][0], "Maintenance")
	// Quantities are formatted without trailing decimals when whole
	assert.Equal(t, "1", items.Rows[0][1])
	assert.Equal(t, "12", items.Rows[1][1])

	totalsBlock := doc.Blocks[regionIndex(doc, render.RegionTotals)]
	require.NotEmpty(t, totalsBlock.Rows)
	assert.Equal(t, "Sous-total", totalsBlock.Rows[0][0])
	assert.Equal(t, "Total", totalsBlock.Rows[len(totalsBlock.Rows)-1][0])
}

func TestComposeDiscountRowOnlyWhenDiscounted(t *testing.T) {
	in := sampleInput(sampleItems())

	withDiscount := pricing.Compute(in.Items, 10000, 20)
	doc := render.Compose(in, withDiscount, theme.Selection{LayoutKey: "swiss"})
	totalsBlock := doc.Blocks[regionIndex(doc, render.RegionTotals)]
	labels := make([]string, 0, len(totalsBlock.Rows))
	for _, row := range totalsBlock.Rows {
		labels = append(labels, row[0])
	}
	assert.Contains(t, labels, "Remise")

	noDiscount := pricing.Compute(in.Items, 0, 20)
	doc = render.Compose(in, noDiscount, theme.Selection{LayoutKey: "swiss"})
	totalsBlock = doc.Blocks[regionIndex(doc, render.RegionTotals)]
	for _, row := range totalsBlock.Rows {
		assert.NotEqual(t, "Remise", row[0])
	}
}
