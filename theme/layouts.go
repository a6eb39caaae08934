package theme

// HeaderStyle governs how company and quote metadata sit in the header region.
type HeaderStyle string

// TotalPosition governs where the grand total appears relative to the item table.
type TotalPosition string

const (
	HeaderMinimal  HeaderStyle = "minimal"
	HeaderSplit    HeaderStyle = "split"
	HeaderCentered HeaderStyle = "centered"

	TotalHeroTop     TotalPosition = "hero-top"
	TotalBottomRight TotalPosition = "bottom-right"
)

// RegionSpec describes how a document region is composed, independent of any
// concrete color or font. Fill slots name entries of the resolved Colors set.
type RegionSpec struct {
	Align     string `json:"align"` // left, right, center
	Fill      string `json:"fill"`  // color slot painted behind the region, "" for none
	Bordered  bool   `json:"bordered"`
	Condensed bool   `json:"condensed"`
}

// TableSpec describes the line-item table structure.
type TableSpec struct {
	HeaderFill   string `json:"header_fill"`
	ZebraRows    bool   `json:"zebra_rows"`
	RuledRows    bool   `json:"ruled_rows"`
	ShowSubtitle bool   `json:"show_subtitle"`
}

// Layout is a named structural template. Layouts are append-only data: adding
// one here must never require touching the renderer.
type Layout struct {
	Key           string        `json:"key"`
	Name          string        `json:"name"`
	Pro           bool          `json:"pro"`
	HeaderStyle   HeaderStyle   `json:"header_style"`
	TotalPosition TotalPosition `json:"total_position"`
	Header        RegionSpec    `json:"header"`
	Client        RegionSpec    `json:"client"`
	Items         TableSpec     `json:"items"`
	Totals        RegionSpec    `json:"totals"`
	Footer        RegionSpec    `json:"footer"`
}

// DefaultLayoutKey is the layout every unknown or stale key falls back to.
const DefaultLayoutKey = "swiss"

var layouts = []Layout{
	{
		Key:           "swiss",
		Name:          "Swiss",
		HeaderStyle:   HeaderSplit,
		TotalPosition: TotalBottomRight,
		Header:        RegionSpec{Align: "left"},
		Client:        RegionSpec{Align: "left", Condensed: true},
		Items:         TableSpec{RuledRows: true, ShowSubtitle: true},
		Totals:        RegionSpec{Align: "right", Bordered: true},
		Footer:        RegionSpec{Align: "left", Condensed: true},
	},
	{
		Key:           "modern",
		Name:          "Modern",
		Pro:           true,
		HeaderStyle:   HeaderMinimal,
		TotalPosition: TotalHeroTop,
		Header:        RegionSpec{Align: "left", Fill: "primary"},
		Client:        RegionSpec{Align: "right", Condensed: true},
		Items:         TableSpec{HeaderFill: "secondary", ZebraRows: true},
		Totals:        RegionSpec{Align: "left", Fill: "primary"},
		Footer:        RegionSpec{Align: "center", Condensed: true},
	},
	{
		Key:           "editorial",
		Name:          "Editorial",
		Pro:           true,
		HeaderStyle:   HeaderCentered,
		TotalPosition: TotalBottomRight,
		Header:        RegionSpec{Align: "center", Bordered: true},
		Client:        RegionSpec{Align: "center", Condensed: true},
		Items:         TableSpec{RuledRows: true, ShowSubtitle: true},
		Totals:        RegionSpec{Align: "right"},
		Footer:        RegionSpec{Align: "center", Bordered: true},
	},
}

// GetLayout returns the layout registered under key, or the default layout
// when the key is unknown. A stale theme record or an expired pro layout must
// degrade to the default, never to a blank page.
func GetLayout(key string) Layout {
	for _, l := range layouts {
		if l.Key == key {
			return l
		}
	}
	return GetLayout(DefaultLayoutKey)
}

// Layouts lists all registered layouts in registration order.
func Layouts() []Layout {
	out := make([]Layout, len(layouts))
	copy(out, layouts)
	return out
}
