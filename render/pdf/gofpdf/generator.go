package gofpdf

import (
	"bytes"
	"strconv"

	"github.com/jung-kurt/gofpdf"

	"devis-backend/render"
	"devis-backend/render/pdf"
	"devis-backend/theme"
)

var _ pdf.Generator = (*Generator)(nil)

const (
	pageWidth  = 210.0 // A4 portrait, mm
	marginLeft = 15.0
	marginTop  = 15.0
	contentW   = pageWidth - 2*marginLeft
)

// Generator captures a visual tree onto an A4 page with gofpdf. It walks the
// blocks in document order; region placement decisions already happened in
// the renderer, so this stays a dumb painter.
type Generator struct{}

func New() *Generator { return &Generator{} }

func (g *Generator) Generate(doc render.Document) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Devis", true)
	pdf.SetMargins(marginLeft, marginTop, marginLeft)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	text := hexRGB(doc.Vars.Colors.Text)
	primary := hexRGB(doc.Vars.Colors.Primary)
	secondary := hexRGB(doc.Vars.Colors.Secondary)
	border := hexRGB(doc.Vars.Colors.Border)

	for _, block := range doc.Blocks {
		switch block.Kind {
		case render.KindHeading:
			g.heading(pdf, tr, block, primary)
		case render.KindText:
			g.text(pdf, tr, block, text)
		case render.KindTable:
			g.table(pdf, tr, block, doc, text, secondary, border)
		case render.KindTotals:
			g.totals(pdf, tr, block, doc, text, primary)
		}
		pdf.Ln(6)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (g *Generator) heading(pdf *gofpdf.Fpdf, tr func(string) string, block render.Block, primary rgb) {
	pdf.SetTextColor(primary.r, primary.g, primary.b)
	pdf.SetFont("Helvetica", "B", 18)
	for i, line := range block.Lines {
		if i == 1 {
			pdf.SetFont("Helvetica", "", 10)
		}
		pdf.CellFormat(contentW, 8, tr(line), "", 1, align(block.Spec), false, 0, "")
	}
}

func (g *Generator) text(pdf *gofpdf.Fpdf, tr func(string) string, block render.Block, text rgb) {
	pdf.SetTextColor(text.r, text.g, text.b)
	size := 10.0
	if block.Spec.Condensed {
		size = 9
	}
	pdf.SetFont("Helvetica", "", size)
	for _, line := range block.Lines {
		pdf.CellFormat(contentW, 5, tr(line), "", 1, align(block.Spec), false, 0, "")
	}
}

func (g *Generator) table(pdf *gofpdf.Fpdf, tr func(string) string, block render.Block, doc render.Document, text, secondary, border rgb) {
	widths := []float64{contentW - 75, 20, 27.5, 27.5}

	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetTextColor(text.r, text.g, text.b)
	if block.Table.HeaderFill != "" {
		fill := hexRGB(colorSlot(doc.Vars, block.Table.HeaderFill))
		pdf.SetFillColor(fill.r, fill.g, fill.b)
		pdf.SetTextColor(255, 255, 255)
	}
	for i, col := range block.Columns {
		pdf.CellFormat(widths[i], 7, tr(col), "", 0, cellAlign(i), block.Table.HeaderFill != "", 0, "")
	}
	pdf.Ln(7)

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(text.r, text.g, text.b)
	pdf.SetDrawColor(border.r, border.g, border.b)
	for n, row := range block.Rows {
		if block.Table.ZebraRows && n%2 == 1 {
			pdf.SetFillColor(245, 245, 247)
		}
		fill := block.Table.ZebraRows && n%2 == 1
		borderStr := ""
		if block.Table.RuledRows {
			borderStr = "B"
		}
		for i, cell := range row {
			pdf.CellFormat(widths[i], 6, tr(cell), borderStr, 0, cellAlign(i), fill, 0, "")
		}
		pdf.Ln(6)
	}
}

func (g *Generator) totals(pdf *gofpdf.Fpdf, tr func(string) string, block render.Block, doc render.Document, text, primary rgb) {
	labelW, valueW := 40.0, 35.0
	indent := contentW - labelW - valueW
	if block.Spec.Align == "left" {
		indent = 0
	}

	for n, row := range block.Rows {
		last := n == len(block.Rows)-1
		if last {
			pdf.SetFont("Helvetica", "B", 12)
			pdf.SetTextColor(primary.r, primary.g, primary.b)
		} else {
			pdf.SetFont("Helvetica", "", 10)
			pdf.SetTextColor(text.r, text.g, text.b)
		}
		pdf.CellFormat(indent, 6, "", "", 0, "L", false, 0, "")
		pdf.CellFormat(labelW, 6, tr(row[0]), "", 0, "L", false, 0, "")
		pdf.CellFormat(valueW, 6, tr(row[1]), "", 1, "R", false, 0, "")
	}
}

type rgb struct{ r, g, b int }

// hexRGB parses "#rrggbb"; anything else paints black rather than failing.
func hexRGB(s string) rgb {
	if len(s) != 7 || s[0] != '#' {
		return rgb{}
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return rgb{}
	}
	return rgb{int(v >> 16 & 0xff), int(v >> 8 & 0xff), int(v & 0xff)}
}

func colorSlot(vars theme.Variables, slot string) string {
	switch slot {
	case "primary":
		return vars.Colors.Primary
	case "secondary":
		return vars.Colors.Secondary
	case "border":
		return vars.Colors.Border
	default:
		return vars.Colors.Background
	}
}

func align(spec theme.RegionSpec) string {
	switch spec.Align {
	case "right":
		return "R"
	case "center":
		return "C"
	default:
		return "L"
	}
}

func cellAlign(col int) string {
	if col == 0 {
		return "L"
	}
	return "R"
}
