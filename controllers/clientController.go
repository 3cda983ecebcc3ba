package controllers

import (
	"errors"

	"invoicing-backend/middlewares"
	"invoicing-backend/models"
	"invoicing-backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type clientCreateRequest struct {
	Name      string `json:"name" validate:"required"`
	Address   string `json:"address"`
	GstinNo   string `json:"gstin_no"`
	State     string `json:"state"`
	StateCode string `json:"state_code"`
}

type clientUpdateRequest struct {
	Name      *string `json:"name"`
	Address   *string `json:"address"`
	GstinNo   *string `json:"gstin_no"`
	State     *string `json:"state"`
	StateCode *string `json:"state_code"`
}

func CreateClient(c *fiber.Ctx) error {
	var req clientCreateRequest
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

	client := models.Client{
		CompanyID: company.Id,
		Name:      req.Name,
		Address:   req.Address,
		GstinNo:   req.GstinNo,
		State:     req.State,
		StateCode: req.StateCode,
	}
	if err := db.Create(&client).Error; err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Could not create client",
			"error":   err.Error(),
		})
	}
	return c.JSON(client)
}

func GetClients(c *fiber.Ctx) error {
	db, err := requestDB(c)
	if err != nil {
		return err
	}
	company, err := currentCompany(c, db)
	if err != nil {
		return err
	}

	var clients []models.Client
	if err := db.Where("company_id = ?", company.Id).Order("id").Find(&clients).Error; err != nil {
		return err
	}
	return c.JSON(clients)
}

func GetClient(c *fiber.Ctx) error {
	db, err := requestDB(c)
	if err != nil {
		return err
	}
	company, err := currentCompany(c, db)
	if err != nil {
		return err
	}

	var client models.Client
	if err := db.Where("id = ? AND company_id = ?", c.Params("id"), company.Id).First(&client).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "client not found")
		}
		return err
	}
	return c.JSON(client)
}

func UpdateClient(c *fiber.Ctx) error {
	var req clientUpdateRequest
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

	var client models.Client
	if err := db.Where("id = ? AND company_id = ?", c.Params("id"), company.Id).First(&client).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "client not found")
		}
		return err
	}

	updates := utils.UpdatesFromPtrDTO(&req, nil)
	if len(updates) > 0 {
		if err := db.Model(&client).Updates(updates).Error; err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Could not update client",
				"error":   err.Error(),
			})
		}
	}
	return c.JSON(client)
}

func DeleteClient(c *fiber.Ctx) error {
	db, err := requestDB(c)
	if err != nil {
		return err
	}
	company, err := currentCompany(c, db)
	if err != nil {
		return err
	}

	res := db.Where("id = ? AND company_id = ?", c.Params("id"), company.Id).Delete(&models.Client{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "client not found")
	}
	return c.JSON(fiber.Map{"message": "deleted"})
}
