package render

import (
	"fmt"
	"time"

	"devis-backend/pricing"
	"devis-backend/theme"
)

// CompanyView is the issuer identity as printed on the document.
type CompanyView struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Website string `json:"website"`
	TaxID   string `json:"tax_id"`
}

// ClientView is the recipient snapshot carried by the quote.
type ClientView struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address"`
	TaxID   string `json:"tax_id"`
}

// MetaView carries the document identity and lifecycle fields.
type MetaView struct {
	Number     string     `json:"number"`
	IssueDate  time.Time  `json:"issue_date"`
	ExpiryDate *time.Time `json:"expiry_date"`
	Terms      string     `json:"terms"`
	Status     string     `json:"status"`
}

// Input is the deterministic input used for quote rendering.
type Input struct {
	Company  CompanyView        `json:"company"`
	Client   ClientView         `json:"client"`
	Meta     MetaView           `json:"meta"`
	Items    []pricing.LineItem `json:"items"`
	Currency string             `json:"currency"`
	Locale   string             `json:"locale"`
}

// Region names the slot of the page a block belongs to.
type Region string

const (
	RegionHeader Region = "header"
	RegionClient Region = "client"
	RegionItems  Region = "items"
	RegionTotals Region = "totals"
	RegionFooter Region = "footer"
)

// BlockKind selects how a block's content is laid out.
type BlockKind string

const (
	KindHeading BlockKind = "heading"
	KindText    BlockKind = "text"
	KindTable   BlockKind = "table"
	KindTotals  BlockKind = "totals"
)

// Block is one styled element of the visual tree. Spec carries the layout's
// structural hints so a capture backend needs no layout knowledge of its own.
type Block struct {
	Region  Region           `json:"region"`
	Kind    BlockKind        `json:"kind"`
	Spec    theme.RegionSpec `json:"spec"`
	Table   theme.TableSpec  `json:"table,omitempty"`
	Lines   []string         `json:"lines,omitempty"`
	Columns []string         `json:"columns,omitempty"`
	Rows    [][]string       `json:"rows,omitempty"`
}

// Document is the renderable visual tree: blocks in print order plus the
// resolved theme. Handing it to a capture backend is the caller's job.
type Document struct {
	Layout theme.Layout    `json:"layout"`
	Vars   theme.Variables `json:"vars"`
	Totals pricing.Result  `json:"totals"`
	Blocks []Block         `json:"blocks"`
}

// Compose builds the visual tree for a priced quote under the given theme
// selection. It is deterministic: same input, same selection, same tree.
func Compose(in Input, totals pricing.Result, sel theme.Selection) Document {
	layout := theme.GetLayout(sel.LayoutKey)
	vars := theme.ResolveJSON(sel.Variables)

	blocks := []Block{headerBlock(in, layout), metaBlock(in, layout), clientBlock(in, layout)}

	if layout.TotalPosition == theme.TotalHeroTop {
		blocks = append(blocks, totalsBlock(in, totals, layout), itemsBlock(in, layout))
	} else {
		blocks = append(blocks, itemsBlock(in, layout), totalsBlock(in, totals, layout))
	}

	blocks = append(blocks, footerBlock(in, layout))

	return Document{
		Layout: layout,
		Vars:   vars,
		Totals: totals,
		Blocks: blocks,
	}
}

func headerBlock(in Input, layout theme.Layout) Block {
	lines := []string{in.Company.Name}
	if layout.HeaderStyle != theme.HeaderMinimal {
		lines = appendNonEmpty(lines, in.Company.Address, in.Company.Email, in.Company.Phone, in.Company.Website)
		if in.Company.TaxID != "" {
			lines = append(lines, "TVA "+in.Company.TaxID)
		}
	}
	return Block{Region: RegionHeader, Kind: KindHeading, Spec: layout.Header, Lines: lines}
}

func metaBlock(in Input, layout theme.Layout) Block {
	lines := []string{
		"Devis " + in.Meta.Number,
		in.Meta.IssueDate.Format("02/01/2006"),
	}
	if in.Meta.ExpiryDate != nil {
		lines = append(lines, "Valable jusqu'au "+in.Meta.ExpiryDate.Format("02/01/2006"))
	}
	return Block{Region: RegionHeader, Kind: KindText, Spec: layout.Header, Lines: lines}
}

func clientBlock(in Input, layout theme.Layout) Block {
	lines := appendNonEmpty([]string{in.Client.Name}, in.Client.Address, in.Client.Email)
	if in.Client.TaxID != "" {
		lines = append(lines, "TVA "+in.Client.TaxID)
	}
	return Block{Region: RegionClient, Kind: KindText, Spec: layout.Client, Lines: lines}
}

func itemsBlock(in Input, layout theme.Layout) Block {
	rows := make([][]string, 0, len(in.Items))
	for _, item := range in.Items {
		title := item.Title
		if layout.Items.ShowSubtitle && item.Subtitle != "" {
			title = title + " — " + item.Subtitle
		}
		rows = append(rows, []string{
			title,
			formatQuantity(item.Quantity),
			FormatMinor(item.UnitPriceMinor, in.Currency, in.Locale),
			FormatMinor(pricing.LineTotalMinor(item), in.Currency, in.Locale),
		})
	}
	return Block{
		Region:  RegionItems,
		Kind:    KindTable,
		Spec:    theme.RegionSpec{},
		Table:   layout.Items,
		Columns: []string{"Prestation", "Qté", "Prix unitaire", "Montant"},
		Rows:    rows,
	}
}

func totalsBlock(in Input, totals pricing.Result, layout theme.Layout) Block {
	rows := [][]string{
		{"Sous-total", FormatMinor(totals.SubtotalMinor, in.Currency, in.Locale)},
	}
	if discount := totals.SubtotalMinor - totals.TaxableMinor; discount > 0 {
		rows = append(rows, []string{"Remise", "-" + FormatMinor(discount, in.Currency, in.Locale)})
	}
	rows = append(rows,
		[]string{"TVA", FormatMinor(totals.VatAmountMinor, in.Currency, in.Locale)},
		[]string{"Total", FormatMinor(totals.TotalMinor, in.Currency, in.Locale)},
	)
	return Block{Region: RegionTotals, Kind: KindTotals, Spec: layout.Totals, Rows: rows}
}

func footerBlock(in Input, layout theme.Layout) Block {
	lines := appendNonEmpty(nil, in.Meta.Terms)
	return Block{Region: RegionFooter, Kind: KindText, Spec: layout.Footer, Lines: lines}
}

func formatQuantity(q float64) string {
	if q == float64(int64(q)) {
		return fmt.Sprintf("%d", int64(q))
	}
	return fmt.Sprintf("%.2f", q)
}

func appendNonEmpty(lines []string, values ...string) []string {
	for _, v := range values {
		if v != "" {
			lines = append(lines, v)
		}
	}
	return lines
}
