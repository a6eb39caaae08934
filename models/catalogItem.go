package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CatalogItem is a reusable service the user drags into a quote. Prices are
// integer minor units.
type CatalogItem struct {
	Id             string `json:"id" gorm:"primaryKey"`
	UserID         string `json:"-" gorm:"index;not null"`
	Title          string `json:"title" gorm:"not null"`
	Subtitle       string `json:"subtitle"`
	UnitPriceMinor int64  `json:"unit_price_minor" gorm:"not null"`
	Active         bool   `json:"-"`
}

func (item *CatalogItem) BeforeCreate(tx *gorm.DB) (err error) {
	// UUID version 4
	item.Id = uuid.NewString()
	return
}
