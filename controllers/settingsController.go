package controllers

import (
	"encoding/json"

	"devis-backend/database"
	"devis-backend/middlewares"
	"devis-backend/models"
	"devis-backend/theme"
	"devis-backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GET /api/settings/profile
func GetProfile(c *fiber.Ctx) error {
	db, err := database.GetRequestDB(c)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "database unavailable")
	}

	var company models.Company
	if err := db.Where("user_id = ?", c.Locals("userID")).First(&company).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "company profile not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "could not load profile")
	}
	return c.JSON(company)
}

type ProfileUpdateDTO struct {
	CompanyName *string `json:"company_name" validate:"omitempty,min=1"`
	Email       *string `json:"email" validate:"omitempty,email"`
	PhoneNumber *string `json:"phone_number" validate:"omitempty"`
	Address     *string `json:"address" validate:"omitempty"`
	Website     *string `json:"website" validate:"omitempty,url"`
	TaxId       *string `json:"tax_id" validate:"omitempty"`
	Currency    *string `json:"currency" validate:"omitempty,len=3"`
	Locale      *string `json:"locale" validate:"omitempty"`
}

// PUT /api/settings/profile
func UpdateProfile(c *fiber.Ctx) error {
	var in ProfileUpdateDTO
	if err := middlewares.BindAndValidate(c, &in); err != nil {
		return err
	}
	utils.NormalizePtrDTO(&in)

	db, err := database.GetRequestDB(c)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "database unavailable")
	}

	updates := utils.UpdatesFromPtrDTO(&in, nil)
	if len(updates) == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "no fields to update")
	}

	res := db.Model(&models.Company{}).
		Where("user_id = ?", c.Locals("userID")).
		Updates(updates)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusBadRequest, "could not update profile")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "company profile not found")
	}

	var company models.Company
	db.Where("user_id = ?", c.Locals("userID")).First(&company)
	return c.JSON(company)
}

type NumberingUpdateDTO struct {
	QuotePrefix     *string `json:"quote_prefix" validate:"omitempty,max=16"`
	NextQuoteNumber *int    `json:"next_quote_number" validate:"omitempty,gte=1"`
}

// PUT /api/settings/numbering
func UpdateNumbering(c *fiber.Ctx) error {
	var in NumberingUpdateDTO
	if err := middlewares.BindAndValidate(c, &in); err != nil {
		return err
	}
	utils.NormalizePtrDTO(&in)

	db, err := database.GetRequestDB(c)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "database unavailable")
	}

	updates := utils.UpdatesFromPtrDTO(&in, nil)
	if len(updates) == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "no fields to update")
	}

	res := db.Model(&models.Company{}).
		Where("user_id = ?", c.Locals("userID")).
		Updates(updates)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusBadRequest, "could not update numbering")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "company profile not found")
	}
	return c.JSON(fiber.Map{"message": "success"})
}

// GET /api/settings/theme
// Always answers: a missing record resolves to the default layout and the
// full default variable table.
func GetTheme(c *fiber.Ctx) error {
	db, err := database.GetRequestDB(c)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "database unavailable")
	}

	var setting models.ThemeSetting
	db.Where("user_id = ?", c.Locals("userID")).First(&setting)

	layout := theme.GetLayout(setting.LayoutKey)
	return c.JSON(fiber.Map{
		"layout_key": layout.Key,
		"variables":  theme.ResolveJSON(setting.Variables),
		"layouts":    theme.Layouts(),
	})
}

type ThemeUpdateDTO struct {
	LayoutKey string          `json:"layout_key" validate:"required,min=1,max=50"`
	Variables json.RawMessage `json:"variables"`
}

// PUT /api/settings/theme
// Variables are stored verbatim; the resolver self-heals at render time.
// Pro layouts need an active subscription at save time; stale pro picks
// degrade to the default layout on render rather than failing.
func UpdateTheme(c *fiber.Ctx) error {
	var in ThemeUpdateDTO
	if err := middlewares.BindAndValidate(c, &in); err != nil {
		return err
	}

	layout := theme.GetLayout(in.LayoutKey)
	if layout.Pro {
		subscribed, err := isSubscriber(c)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "could not check subscription")
		}
		if !subscribed {
			return fiber.NewError(fiber.StatusPaymentRequired, "layout requires an active subscription")
		}
	}

	db, err := database.GetRequestDB(c)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "database unavailable")
	}

	setting := models.ThemeSetting{
		UserID:    c.Locals("userID").(string),
		LayoutKey: layout.Key,
		Variables: datatypes.JSON(in.Variables),
	}
	err = db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"layout_key", "variables", "updated_at"}),
	}).Create(&setting).Error
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "could not save theme")
	}

	return c.JSON(fiber.Map{
		"layout_key": setting.LayoutKey,
		"variables":  theme.ResolveJSON(setting.Variables),
	})
}
