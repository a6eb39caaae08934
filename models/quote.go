package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Quote statuses. Pure data: the app stores and displays them, nothing more.
const (
	QuoteStatusDraft    = "draft"
	QuoteStatusSent     = "sent"
	QuoteStatusAccepted = "accepted"
	QuoteStatusRejected = "rejected"
	QuoteStatusArchived = "archived"
)

// IsValidQuoteStatus reports whether s is one of the known statuses.
func IsValidQuoteStatus(s string) bool {
	switch s {
	case QuoteStatusDraft, QuoteStatusSent, QuoteStatusAccepted, QuoteStatusRejected, QuoteStatusArchived:
		return true
	default:
		return false
	}
}

// Quote is the persisted document snapshot. Totals are never stored: they
// are recomputed from the items on every read. The client block is a copy,
// not a live reference.
type Quote struct {
	Id          string `json:"id" gorm:"primaryKey"`
	UserID      string `json:"-" gorm:"index:idx_quotes_user_number,unique,priority:1;not null"`
	QuoteNumber string `json:"quote_number" gorm:"index:idx_quotes_user_number,unique,priority:2;not null"`

	Status     string     `json:"status" gorm:"type:VARCHAR(20);default:draft"`
	IssueDate  time.Time  `json:"issue_date"`
	ExpiryDate *time.Time `json:"expiry_date"`
	Terms      string     `json:"terms"`

	// Client snapshot, copied at creation time
	ClientName    string `json:"client_name"`
	ClientEmail   string `json:"client_email"`
	ClientAddress string `json:"client_address"`
	ClientTaxId   string `json:"client_tax_id"`

	Items []QuoteItem `json:"items" gorm:"foreignKey:QuoteID;constraint:OnDelete:CASCADE"`

	VatRatePercent float64 `json:"vat_rate_percent"`
	DiscountMinor  int64   `json:"discount_minor"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (quote *Quote) BeforeCreate(tx *gorm.DB) (err error) {
	// UUID version 4
	quote.Id = uuid.NewString()
	return
}

// QuoteItem is one printed row. Position preserves insertion order.
type QuoteItem struct {
	ID             uint    `json:"id" gorm:"primaryKey"`
	QuoteID        string  `json:"-" gorm:"index"`
	Position       int     `json:"position" gorm:"not null"`
	Title          string  `json:"title" gorm:"not null"`
	Subtitle       string  `json:"subtitle"`
	Quantity       float64 `json:"quantity"`
	UnitPriceMinor int64   `json:"unit_price_minor"`
}
