package controllers

import (
	"net/mail"
	"strings"
	"time"

	"devis-backend/database"
	"devis-backend/logger"
	"devis-backend/middlewares"
	"devis-backend/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type RegisterDTO struct {
	FirstName       string `json:"first_name" validate:"required,min=1"`
	LastName        string `json:"last_name" validate:"required,min=1"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=8"`
	PasswordConfirm string `json:"password_confirm" validate:"required"`
	CompanyName     string `json:"company_name" validate:"required,min=1"`
}

func Register(c *fiber.Ctx) error {
	var in RegisterDTO
	if err := middlewares.BindAndValidate(c, &in); err != nil {
		return err
	}

	if in.Password != in.PasswordConfirm {
		return fiber.NewError(fiber.StatusBadRequest, "passwords do not match")
	}

	var mailExist models.User
	database.DB.Where("email = ?", in.Email).First(&mailExist)
	if mailExist.Email != "" {
		return fiber.NewError(fiber.StatusBadRequest, "email already exists")
	}

	tx := database.DB.Begin()

	user := models.User{
		FirstName: strings.TrimSpace(in.FirstName),
		LastName:  strings.TrimSpace(in.LastName),
		Email:     strings.TrimSpace(in.Email),
	}
	user.SetPassword(in.Password)
	if err := tx.Create(&user).Error; err != nil {
		tx.Rollback()
		return fiber.NewError(fiber.StatusBadRequest, "could not create user")
	}

	company := models.Company{
		UserId:      user.Id,
		CompanyName: strings.TrimSpace(in.CompanyName),
		Email:       user.Email,
	}
	if err := tx.Create(&company).Error; err != nil {
		tx.Rollback()
		return fiber.NewError(fiber.StatusBadRequest, "could not create company profile")
	}

	tx.Commit()

	logger.Info("user registered", zap.String("user_id", user.Id))

	return c.JSON(fiber.Map{
		"user":    user,
		"company": company,
	})
}

func Login(c *fiber.Ctx) error {
	var data map[string]string
	if err := c.BodyParser(&data); err != nil {
		return err
	}

	if _, err := mail.ParseAddress(data["email"]); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid email format")
	}

	var user models.User
	database.DB.Where("email = ?", data["email"]).First(&user)

	if _, err := uuid.Parse(user.Id); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid credentials")
	}

	if err := user.ComparePassword(data["password"]); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid credentials")
	}

	token, err := middlewares.GenerateJWT(user.Id)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "could not issue token")
	}

	return c.JSON(fiber.Map{
		"token": token,
		"user": fiber.Map{
			"id":    user.Id,
			"name":  user.FirstName + " " + user.LastName,
			"email": user.Email,
		},
	})
}

func Logout(c *fiber.Ctx) error {
	cookie := fiber.Cookie{
		Name:     "jwt",
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
	}
	c.Cookie(&cookie)
	return c.JSON(fiber.Map{
		"message": "success",
	})
}
