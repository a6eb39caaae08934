package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Company is the issuer profile printed on every quote, owned by one user.
// It also carries the quote numbering settings: the next number is claimed
// with an atomic increment-and-read so concurrent creations never collide.
type Company struct {
	Id          string `json:"id" gorm:"primaryKey"`
	UserId      string `json:"-" gorm:"uniqueIndex;not null"`
	User        User   `json:"-" gorm:"foreignKey:UserId;references:Id"`
	CompanyName string `json:"company_name" gorm:"not null"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
	Address     string `json:"address"`
	Website     string `json:"website"`
	TaxId       string `json:"tax_id"`

	// Numbering settings
	QuotePrefix     string `json:"quote_prefix" gorm:"default:DEV-"`
	NextQuoteNumber int    `json:"next_quote_number" gorm:"default:1"`

	// Rendering defaults
	Currency string `json:"currency" gorm:"default:EUR"`
	Locale   string `json:"locale" gorm:"default:fr"`
}

func (company *Company) BeforeCreate(tx *gorm.DB) (err error) {
	// UUID version 4
	company.Id = uuid.NewString()
	return
}
