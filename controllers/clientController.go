package controllers

import (
	"strings"

	"devis-backend/database"
	"devis-backend/middlewares"
	"devis-backend/models"
	"devis-backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type ClientCreateDTO struct {
	Name        string `json:"name" validate:"required,min=1"`
	Email       string `json:"email" validate:"omitempty,email"`
	Address     string `json:"address" validate:"omitempty"`
	TaxId       string `json:"tax_id" validate:"omitempty"`
	PhoneNumber string `json:"phone_number" validate:"omitempty"`
}

type ClientUpdateDTO struct {
	Name        *string `json:"name" validate:"omitempty,min=1"`
	Email       *string `json:"email" validate:"omitempty,email"`
	Address     *string `json:"address" validate:"omitempty"`
	TaxId       *string `json:"tax_id" validate:"omitempty"`
	PhoneNumber *string `json:"phone_number" validate:"omitempty"`
}

// POST /api/client
func CreateClient(c *fiber.Ctx) error {
	var in ClientCreateDTO
	if err := middlewares.BindAndValidate(c, &in); err != nil {
		return err
	}

	db, err := database.GetRequestDB(c)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "database unavailable")
	}

	client := models.Client{
		UserID:      c.Locals("userID").(string),
		Name:        strings.TrimSpace(in.Name),
		Email:       strings.TrimSpace(in.Email),
		Address:     strings.TrimSpace(in.Address),
		TaxId:       strings.TrimSpace(in.TaxId),
		PhoneNumber: strings.TrimSpace(in.PhoneNumber),
	}

	if err := db.Create(&client).Error; err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "could not create client")
	}
	return c.Status(fiber.StatusCreated).JSON(client)
}

// GET /api/clients
func GetClients(c *fiber.Ctx) error {
	db, err := database.GetRequestDB(c)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "database unavailable")
	}

	var clients []models.Client
	db.Where("user_id = ?", c.Locals("userID")).Order("name").Find(&clients)

	return c.JSON(fiber.Map{
		"clients": clients,
		"message": "success",
	})
}

// GET /api/client/:id
func GetClient(c *fiber.Ctx) error {
	db, err := database.GetRequestDB(c)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "database unavailable")
	}

	var client models.Client
	if err := db.Where("id = ? AND user_id = ?", c.Params("id"), c.Locals("userID")).
		First(&client).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "client not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "could not load client")
	}
	return c.JSON(client)
}

// PUT /api/client/:id
func UpdateClient(c *fiber.Ctx) error {
	var in ClientUpdateDTO
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

	res := db.Model(&models.Client{}).
		Where("id = ? AND user_id = ?", c.Params("id"), c.Locals("userID")).
		Updates(updates)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusBadRequest, "could not update client")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "client not found")
	}

	var client models.Client
	db.Where("id = ? AND user_id = ?", c.Params("id"), c.Locals("userID")).First(&client)
	return c.JSON(client)
}

// DELETE /api/client/:id
// Existing quotes keep their client snapshot; deletion only removes the
// roster entry.
func DeleteClient(c *fiber.Ctx) error {
	db, err := database.GetRequestDB(c)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "database unavailable")
	}

	res := db.Where("id = ? AND user_id = ?", c.Params("id"), c.Locals("userID")).
		Delete(&models.Client{})
	if res.Error != nil {
		return fiber.NewError(fiber.StatusBadRequest, "could not delete client")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "client not found")
	}
	return c.JSON(fiber.Map{"message": "success"})
}
