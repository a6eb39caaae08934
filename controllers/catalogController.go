package controllers

import (
	"strings"

	"devis-backend/database"
	"devis-backend/middlewares"
	"devis-backend/models"
	"devis-backend/utils"

	"github.com/gofiber/fiber/v2"
)

type CatalogItemDTO struct {
	Title     string  `json:"title" validate:"required,min=1"`
	Subtitle  string  `json:"subtitle" validate:"omitempty"`
	UnitPrice float64 `json:"unit_price" validate:"gte=0"`
	Active    bool    `json:"active"`
}

// POST /api/catalog (batch create)
func CreateCatalogItems(c *fiber.Ctx) error {
	var inputs []CatalogItemDTO
	if err := middlewares.BindAndValidateSlice(c, &inputs); err != nil {
		return err
	}
	if len(inputs) == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "empty catalog batch")
	}

	db, err := database.GetRequestDB(c)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "database unavailable")
	}

	userID := c.Locals("userID").(string)
	created := make([]models.CatalogItem, 0, len(inputs))
	for _, input := range inputs {
		item := models.CatalogItem{
			UserID:         userID,
			Title:          strings.TrimSpace(input.Title),
			Subtitle:       strings.TrimSpace(input.Subtitle),
			UnitPriceMinor: utils.ToMinor(input.UnitPrice),
			Active:         input.Active,
		}
		if err := db.Create(&item).Error; err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "could not create catalog item")
		}
		created = append(created, item)
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

// GET /api/catalog
func GetCatalogItems(c *fiber.Ctx) error {
	db, err := database.GetRequestDB(c)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "database unavailable")
	}

	var items []models.CatalogItem
	db.Where("user_id = ? AND active = ?", c.Locals("userID"), true).
		Order("title").Find(&items)

	return c.JSON(fiber.Map{
		"items":   items,
		"message": "success",
	})
}

type CatalogItemUpdateDTO struct {
	Title     *string  `json:"title" validate:"omitempty,min=1"`
	Subtitle  *string  `json:"subtitle" validate:"omitempty"`
	UnitPrice *float64 `json:"unit_price" validate:"omitempty,gte=0"`
	Active    *bool    `json:"active" validate:"omitempty"`
}

// PUT /api/catalog/:id
func UpdateCatalogItem(c *fiber.Ctx) error {
	var in CatalogItemUpdateDTO
	if err := middlewares.BindAndValidate(c, &in); err != nil {
		return err
	}
	utils.NormalizePtrDTO(&in)

	db, err := database.GetRequestDB(c)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "database unavailable")
	}

	updates := utils.UpdatesFromPtrDTO(&in, nil)
	if price, ok := updates["unit_price"]; ok {
		delete(updates, "unit_price")
		updates["unit_price_minor"] = utils.ToMinor(price.(float64))
	}
	if len(updates) == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "no fields to update")
	}

	res := db.Model(&models.CatalogItem{}).
		Where("id = ? AND user_id = ?", c.Params("id"), c.Locals("userID")).
		Updates(updates)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusBadRequest, "could not update catalog item")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "catalog item not found")
	}

	var item models.CatalogItem
	db.Where("id = ? AND user_id = ?", c.Params("id"), c.Locals("userID")).First(&item)
	return c.JSON(item)
}

// DELETE /api/catalog/:id (soft: quotes keep their own line copies)
func DeleteCatalogItem(c *fiber.Ctx) error {
	db, err := database.GetRequestDB(c)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "database unavailable")
	}

	res := db.Model(&models.CatalogItem{}).
		Where("id = ? AND user_id = ?", c.Params("id"), c.Locals("userID")).
		Update("active", false)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusBadRequest, "could not delete catalog item")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "catalog item not found")
	}
	return c.JSON(fiber.Map{"message": "success"})
}
