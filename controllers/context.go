package controllers

import (
	"errors"

	"invoicing-backend/database"
	"invoicing-backend/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// currentCompany loads the authenticated tenant for this request using the
// companyID stashed by the auth middleware.
func currentCompany(c *fiber.Ctx, db *gorm.DB) (*models.Company, error) {
	companyID, _ := c.Locals("companyID").(uint)
	if companyID == 0 {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "company context missing")
	}

	var company models.Company
	if err := db.First(&company, companyID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusUnauthorized, "company no longer exists")
		}
		return nil, err
	}
	return &company, nil
}

// requestDB resolves the request-scoped DB handle (per-request transaction
// when present).
func requestDB(c *fiber.Ctx) (*gorm.DB, error) {
	db, err := database.FromContext(c)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "database unavailable")
	}
	return db, nil
}
