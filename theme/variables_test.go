package theme_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"devis-backend/theme"
)

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

func TestResolveEmptyPatchYieldsDefaults(t *testing.T) {
	got := theme.Resolve(theme.VariablesPatch{})
	assert.Equal(t, theme.Defaults(), got)
}

func TestResolveMergesColorsKeyByKey(t *testing.T) {
	got := theme.Resolve(theme.VariablesPatch{
		Colors: &theme.ColorsPatch{Primary: strPtr("#ff0000")},
	})

	assert.Equal(t, "#ff0000", got.Colors.Primary)
	// Untouched keys of the same group keep their defaults
	assert.Equal(t, theme.Defaults().Colors.Secondary, got.Colors.Secondary)
	assert.Equal(t, theme.Defaults().Colors.Text, got.Colors.Text)
	assert.Equal(t, theme.Defaults().Typography, got.Typography)
}

func TestResolveMergesTypographyKeyByKey(t *testing.T) {
	got := theme.Resolve(theme.VariablesPatch{
		Typography: &theme.TypographyPatch{
			FontFamily:    strPtr("Spectral"),
			HeadingWeight: intPtr(700),
		},
	})

	assert.Equal(t, "Spectral", got.Typography.FontFamily)
	assert.Equal(t, 700, got.Typography.HeadingWeight)
	assert.Equal(t, theme.Defaults().Typography.FontURL, got.Typography.FontURL)
	assert.Equal(t, theme.Defaults().Colors, got.Colors)
}

func TestResolveCornerRadiusOverriddenWholesale(t *testing.T) {
	got := theme.Resolve(theme.VariablesPatch{CornerRadius: intPtr(0)})
	assert.Equal(t, 0, got.CornerRadius)
}

func TestResolveCompleteness(t *testing.T) {
	// Whatever subset the patch provides, every slot must end up populated.
	patches := []theme.VariablesPatch{
		{},
		{Colors: &theme.ColorsPatch{}},
		{Typography: &theme.TypographyPatch{}},
		{Colors: &theme.ColorsPatch{Border: strPtr("#123456")}},
	}
	for _, patch := range patches {
		got := theme.Resolve(patch)
		assert.NotEmpty(t, got.Colors.Primary)
		assert.NotEmpty(t, got.Colors.Secondary)
		assert.NotEmpty(t, got.Colors.Text)
		assert.NotEmpty(t, got.Colors.Background)
		assert.NotEmpty(t, got.Colors.Border)
		assert.NotEmpty(t, got.Typography.FontFamily)
		assert.NotZero(t, got.Typography.HeadingWeight)
	}
}

func TestResolveJSON(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want func(t *testing.T, got theme.Variables)
	}{
		{
			name: "valid partial record",
			raw:  `{"colors":{"primary":"#ff0000"}}`,
			want: func(t *testing.T, got theme.Variables) {
				assert.Equal(t, "#ff0000", got.Colors.Primary)
				assert.Equal(t, theme.Defaults().Colors.Secondary, got.Colors.Secondary)
			},
		},
		{
			name: "empty record falls back to defaults",
			raw:  "",
			want: func(t *testing.T, got theme.Variables) {
				assert.Equal(t, theme.Defaults(), got)
			},
		},
		{
			name: "malformed record falls back to defaults",
			raw:  `{"colors":{`,
			want: func(t *testing.T, got theme.Variables) {
				assert.Equal(t, theme.Defaults(), got)
			},
		},
		{
			name: "wrong shape falls back to defaults",
			raw:  `[1,2,3]`,
			want: func(t *testing.T, got theme.Variables) {
				assert.Equal(t, theme.Defaults(), got)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.want(t, theme.ResolveJSON([]byte(tt.raw)))
		})
	}
}
