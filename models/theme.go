package models

import (
	"time"

	"gorm.io/datatypes"
)

// ThemeSetting stores one user's appearance choice verbatim. It only affects
// rendering, never pricing: a corrupt record degrades to defaults at render
// time instead of failing.
type ThemeSetting struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	UserID    string         `json:"-" gorm:"uniqueIndex;not null"`
	LayoutKey string         `json:"layout_key" gorm:"size:50;default:swiss"`
	Variables datatypes.JSON `json:"variables" gorm:"type:jsonb"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}
