package theme_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"devis-backend/theme"
)

func TestGetLayoutKnownKeys(t *testing.T) {
	for _, key := range []string{"swiss", "modern", "editorial"} {
		got := theme.GetLayout(key)
		assert.Equal(t, key, got.Key)
	}
}

func TestGetLayoutFallsBackToDefault(t *testing.T) {
	tests := []string{"nonexistent-key", "", "SWISS", "premium-2019"}
	for _, key := range tests {
		got := theme.GetLayout(key)
		assert.Equal(t, theme.DefaultLayoutKey, got.Key, "key %q must fall back", key)
	}
}

func TestDefaultLayoutIsNotPro(t *testing.T) {
	// The fallback target must stay reachable after a subscription lapses.
	assert.False(t, theme.GetLayout(theme.DefaultLayoutKey).Pro)
}

func TestLayoutsAreWellFormed(t *testing.T) {
	all := theme.Layouts()
	require.NotEmpty(t, all)

	seen := map[string]bool{}
	for _, l := range all {
		assert.NotEmpty(t, l.Key)
		assert.NotEmpty(t, l.Name)
		assert.False(t, seen[l.Key], "duplicate layout key %q", l.Key)
		seen[l.Key] = true

		assert.Contains(t,
			[]theme.HeaderStyle{theme.HeaderMinimal, theme.HeaderSplit, theme.HeaderCentered},
			l.HeaderStyle)
		assert.Contains(t,
			[]theme.TotalPosition{theme.TotalHeroTop, theme.TotalBottomRight},
			l.TotalPosition)
	}
	assert.True(t, seen[theme.DefaultLayoutKey])
}

func TestLayoutsReturnsACopy(t *testing.T) {
	all := theme.Layouts()
	all[0].Key = "mutated"
	assert.NotEqual(t, "mutated", theme.Layouts()[0].Key)
}
