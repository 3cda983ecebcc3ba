package controllers

import (
	"errors"
	"time"

	"invoicing-backend/database"
	"invoicing-backend/middlewares"
	"invoicing-backend/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type registerRequest struct {
	Name            string `json:"name" validate:"required"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=8"`
	PasswordConfirm string `json:"password_confirm" validate:"required"`

	CompanyName   string `json:"company_name" validate:"required"`
	Address       string `json:"address"`
	City          string `json:"city"`
	State         string `json:"state"`
	StateCode     string `json:"state_code"`
	GstinNo       string `json:"gstin_no"`
	PanNumber     string `json:"pan_number"`
	InvoicePrefix string `json:"invoice_prefix" validate:"required,max=20,alphanum"`
}

// Register creates the user and their company in one transaction.
func Register(c *fiber.Ctx) error {
	var req registerRequest
	if err := middlewares.BindAndValidate(c, &req); err != nil {
		return err
	}

	if req.Password != req.PasswordConfirm {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "passwords do not match",
		})
	}

	var mailExist models.User
	if err := database.DB.Where("email = ?", req.Email).First(&mailExist).Error; err == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "email already exists",
		})
	}

	tx := database.DB.Begin()

	user := models.User{
		Name:  req.Name,
		Email: req.Email,
	}
	user.SetPassword(req.Password)
	if err := tx.Create(&user).Error; err != nil {
		tx.Rollback()
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Could not create user",
			"error":   err.Error(),
		})
	}

	company := models.Company{
		UserId:        user.Id,
		CompanyName:   req.CompanyName,
		Address:       req.Address,
		City:          req.City,
		State:         req.State,
		StateCode:     req.StateCode,
		GstinNo:       req.GstinNo,
		PanNumber:     req.PanNumber,
		InvoicePrefix: req.InvoicePrefix,
	}
	if err := tx.Create(&company).Error; err != nil {
		tx.Rollback()
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Could not create company",
			"error":   err.Error(),
		})
	}

	tx.Commit()

	return c.JSON(fiber.Map{
		"user":    user,
		"company": company,
	})
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := middlewares.BindAndValidate(c, &req); err != nil {
		return err
	}

	var user models.User
	if err := database.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid credentials"})
		}
		return err
	}

	if err := user.ComparePassword(req.Password); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid credentials"})
	}

	var company models.Company
	if err := database.DB.Where("user_id = ?", user.Id).First(&company).Error; err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "no company registered for user"})
	}

	token, err := middlewares.GenerateJWT(user.Id, company.Id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "could not issue token"})
	}

	return c.JSON(fiber.Map{
		"token": token,
		"user": fiber.Map{
			"id":    user.Id,
			"name":  user.Name,
			"email": user.Email,
		},
		"company_id": company.Id,
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
