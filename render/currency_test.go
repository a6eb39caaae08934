package render_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"devis-backend/render"
)

func TestFormatMinor(t *testing.T) {
	got := render.FormatMinor(123456, "EUR", "fr")
	assert.Contains(t, got, "234")
	assert.Contains(t, got, "€")

	assert.Equal(t, got, render.FormatMinor(123456, "EUR", "fr"))
}

func TestFormatMinorFallsBack(t *testing.T) {
	// Garbage locale and currency degrade to fr/EUR instead of failing.
	assert.Equal(t,
		render.FormatMinor(9900, "EUR", "fr"),
		render.FormatMinor(9900, "???", "!!"))
}
