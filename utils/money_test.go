package utils_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"devis-backend/utils"
)

func TestToMinor(t *testing.T) {
	assert.Equal(t, int64(12345), utils.ToMinor(123.45))
	assert.Equal(t, int64(13), utils.ToMinor(0.125)) // half-up
	assert.Equal(t, int64(0), utils.ToMinor(0))
	assert.Equal(t, int64(-250), utils.ToMinor(-2.5))
}

func TestFromMinor(t *testing.T) {
	assert.Equal(t, 123.45, utils.FromMinor(12345))
	assert.Equal(t, 0.0, utils.FromMinor(0))
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 19.6, utils.Round2(19.600001))
	assert.Equal(t, 0.13, utils.Round2(0.125))
}
