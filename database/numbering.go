package database

import (
	"fmt"

	"gorm.io/gorm"
)

// ClaimQuoteNumber increments the user's quote counter and returns the
// formatted number it claimed. The increment and the read happen in one
// statement so two concurrent quote creations can never share a number.
func ClaimQuoteNumber(tx *gorm.DB, userID string) (string, error) {
	var row struct {
		QuotePrefix string
		Claimed     int
	}

	err := tx.Raw(
		`UPDATE companies
		 SET next_quote_number = next_quote_number + 1
		 WHERE user_id = ?
		 RETURNING quote_prefix, next_quote_number - 1 AS claimed`,
		userID,
	).Scan(&row).Error
	if err != nil {
		return "", fmt.Errorf("claim quote number: %w", err)
	}
	if row.Claimed == 0 {
		return "", fmt.Errorf("no company profile for user %s", userID)
	}

	return fmt.Sprintf("%s%04d", row.QuotePrefix, row.Claimed), nil
}
