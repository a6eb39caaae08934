package gofpdf_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"devis-backend/pricing"
	"devis-backend/render"
	gofpdfgen "devis-backend/render/pdf/gofpdf"
	"devis-backend/theme"
)

func testDocument(t *testing.T, layoutKey string) render.Document {
	t.Helper()
	items := []pricing.LineItem{
		{Title: "Développement", Subtitle: "Phase 1", Quantity: 3, UnitPriceMinor: 45000},
		{Title: "Hébergement", Quantity: 12, UnitPriceMinor: 1500},
	}
	in := render.Input{
		Company:  render.CompanyView{Name: "Agence Démo", Address: "8 rue du Château, Nantes", TaxID: "FR98765432109"},
		Client:   render.ClientView{Name: "Société Épicéa", Email: "contact@epicea.fr"},
		Meta:     render.MetaView{Number: "DEV-0007", IssueDate: time.Date(2025, 5, 2, 0, 0, 0, 0, time.UTC)},
		Items:    items,
		Currency: "EUR",
		Locale:   "fr",
	}
	totals := pricing.Compute(items, 5000, 20)
	return render.Compose(in, totals, theme.Selection{LayoutKey: layoutKey})
}

func TestGenerateProducesPDF(t *testing.T) {
	for _, key := range []string{"swiss", "modern", "editorial"} {
		t.Run(key, func(t *testing.T) {
			out, err := gofpdfgen.New().Generate(testDocument(t, key))
			require.NoError(t, err)
			require.NotEmpty(t, out)
			assert.Equal(t, "%PDF", string(out[:4]))
		})
	}
}

func TestGenerateHandlesEmptyDocument(t *testing.T) {
	in := render.Input{Company: render.CompanyView{Name: "Solo"}, Currency: "EUR", Locale: "fr"}
	doc := render.Compose(in, pricing.Result{}, theme.Selection{})

	out, err := gofpdfgen.New().Generate(doc)
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(out[:4]))
}
