package theme

import "encoding/json"

// Colors are the named style slots every layout draws from.
type Colors struct {
	Primary    string `json:"primary"`
	Secondary  string `json:"secondary"`
	Text       string `json:"text"`
	Background string `json:"background"`
	Border     string `json:"border"`
}

// Typography covers the font choices applied on top of a layout.
type Typography struct {
	FontFamily    string `json:"font_family"`
	FontURL       string `json:"font_url"`
	HeadingWeight int    `json:"heading_weight"`
}

// Variables is a fully-populated style variable set, ready to render with.
type Variables struct {
	Colors       Colors     `json:"colors"`
	Typography   Typography `json:"typography"`
	CornerRadius int        `json:"corner_radius"`
}

// ColorsPatch overrides individual color slots; nil fields keep the default.
type ColorsPatch struct {
	Primary    *string `json:"primary"`
	Secondary  *string `json:"secondary"`
	Text       *string `json:"text"`
	Background *string `json:"background"`
	Border     *string `json:"border"`
}

// TypographyPatch overrides individual typography slots; nil fields keep the default.
type TypographyPatch struct {
	FontFamily    *string `json:"font_family"`
	FontURL       *string `json:"font_url"`
	HeadingWeight *int    `json:"heading_weight"`
}

// VariablesPatch is a partial variable set as stored per user. Groups merge
// key-by-key against the defaults; CornerRadius is overridden wholesale.
type VariablesPatch struct {
	Colors       *ColorsPatch     `json:"colors"`
	Typography   *TypographyPatch `json:"typography"`
	CornerRadius *int             `json:"corner_radius"`
}

var defaultVariables = Variables{
	Colors: Colors{
		Primary:    "#1a1a2e",
		Secondary:  "#4a4e69",
		Text:       "#22223b",
		Background: "#ffffff",
		Border:     "#e0e0e6",
	},
	Typography: Typography{
		FontFamily:    "Inter",
		FontURL:       "",
		HeadingWeight: 600,
	},
	CornerRadius: 8,
}

// Defaults returns the process-wide default variable table.
func Defaults() Variables {
	return defaultVariables
}

// Resolve fills every slot of the variable set from the patch or, where the
// patch is silent, from the defaults. It has no failure mode: a quote render
// must never hard-fail because of a corrupt theme record.
func Resolve(patch VariablesPatch) Variables {
	out := defaultVariables

	if patch.Colors != nil {
		c := patch.Colors
		if c.Primary != nil {
			out.Colors.Primary = *c.Primary
		}
		if c.Secondary != nil {
			out.Colors.Secondary = *c.Secondary
		}
		if c.Text != nil {
			out.Colors.Text = *c.Text
		}
		if c.Background != nil {
			out.Colors.Background = *c.Background
		}
		if c.Border != nil {
			out.Colors.Border = *c.Border
		}
	}

	if patch.Typography != nil {
		t := patch.Typography
		if t.FontFamily != nil {
			out.Typography.FontFamily = *t.FontFamily
		}
		if t.FontURL != nil {
			out.Typography.FontURL = *t.FontURL
		}
		if t.HeadingWeight != nil {
			out.Typography.HeadingWeight = *t.HeadingWeight
		}
	}

	if patch.CornerRadius != nil {
		out.CornerRadius = *patch.CornerRadius
	}

	return out
}

// ResolveJSON resolves a stored variables record as-is. Empty or malformed
// JSON silently resolves to the full defaults.
func ResolveJSON(raw []byte) Variables {
	if len(raw) == 0 {
		return defaultVariables
	}
	var patch VariablesPatch
	if err := json.Unmarshal(raw, &patch); err != nil {
		return defaultVariables
	}
	return Resolve(patch)
}
