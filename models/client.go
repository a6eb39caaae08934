package models

import "time"

// Client is a roster entry. Quotes copy the fields they print at creation
// time, so deleting a client never breaks an existing quote.
type Client struct {
	Id          uint      `json:"id" gorm:"primaryKey"`
	UserID      string    `json:"-" gorm:"index;not null"`
	Name        string    `json:"name" gorm:"not null"`
	Email       string    `json:"email"`
	Address     string    `json:"address"`
	TaxId       string    `json:"tax_id"`
	PhoneNumber string    `json:"phone_number"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
