package controllers

import (
	"errors"

	"invoicing-backend/middlewares"
	"invoicing-backend/models"
	"invoicing-backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type productCreateRequest struct {
	Name    string `json:"name" validate:"required"`
	HsnCode string `json:"hsn_code"`
	Uom     string `json:"uom"`
}

type productUpdateRequest struct {
	Name    *string `json:"name"`
	HsnCode *string `json:"hsn_code"`
	Uom     *string `json:"uom"`
}

func CreateProduct(c *fiber.Ctx) error {
	var req productCreateRequest
	if err := middlewares.BindAndValidate(c, &req); err != nil {
		return err
	}
	utils.NormalizeDTO(&req)

	db, err := requestDB(c)
	if err != nil {
		return err
	}
	company, err := currentCompany(c, db)
	if err != nil {
		return err
	}

	product := models.Product{
		CompanyID: company.Id,
		Name:      req.Name,
		HsnCode:   req.HsnCode,
		Uom:       req.Uom,
	}
	if err := db.Create(&product).Error; err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Could not create product",
			"error":   err.Error(),
		})
	}
	return c.JSON(product)
}

func GetProducts(c *fiber.Ctx) error {
	db, err := requestDB(c)
	if err != nil {
		return err
	}
	company, err := currentCompany(c, db)
	if err != nil {
		return err
	}

	var products []models.Product
	if err := db.Where("company_id = ?", company.Id).Order("id").Find(&products).Error; err != nil {
		return err
	}
	return c.JSON(products)
}

func UpdateProduct(c *fiber.Ctx) error {
	var req productUpdateRequest
	if err := middlewares.BindAndValidate(c, &req); err != nil {
		return err
	}
	utils.NormalizePtrDTO(&req)

	db, err := requestDB(c)
	if err != nil {
		return err
	}
	company, err := currentCompany(c, db)
	if err != nil {
		return err
	}

	var product models.Product
	if err := db.Where("id = ? AND company_id = ?", c.Params("id"), company.Id).First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "product not found")
		}
		return err
	}

	updates := utils.UpdatesFromPtrDTO(&req, nil)
	if len(updates) > 0 {
		if err := db.Model(&product).Updates(updates).Error; err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Could not update product",
				"error":   err.Error(),
			})
		}
	}
	return c.JSON(product)
}

func DeleteProduct(c *fiber.Ctx) error {
	db, err := requestDB(c)
	if err != nil {
		return err
	}
	company, err := currentCompany(c, db)
	if err != nil {
		return err
	}

	res := db.Where("id = ? AND company_id = ?", c.Params("id"), company.Id).Delete(&models.Product{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "product not found")
	}
	return c.JSON(fiber.Map{"message": "deleted"})
}
