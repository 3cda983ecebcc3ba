package controllers

import (
	"errors"

	"invoicing-backend/middlewares"
	"invoicing-backend/models"
	"invoicing-backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type bankCreateRequest struct {
	BankName      string `json:"bank_name" validate:"required"`
	AccountName   string `json:"account_name" validate:"required"`
	AccountNumber string `json:"account_number" validate:"required"`
	BankBranch    string `json:"bank_branch"`
	IfscCode      string `json:"ifsc_code" validate:"required"`
}

type bankUpdateRequest struct {
	BankName      *string `json:"bank_name"`
	AccountName   *string `json:"account_name"`
	AccountNumber *string `json:"account_number"`
	BankBranch    *string `json:"bank_branch"`
	IfscCode      *string `json:"ifsc_code"`
}

func CreateBankDetail(c *fiber.Ctx) error {
	var req bankCreateRequest
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

	bank := models.BankDetail{
		CompanyID:     company.Id,
		BankName:      req.BankName,
		AccountName:   req.AccountName,
		AccountNumber: req.AccountNumber,
		BankBranch:    req.BankBranch,
		IfscCode:      req.IfscCode,
	}
	if err := db.Create(&bank).Error; err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Could not create bank detail",
			"error":   err.Error(),
		})
	}
	return c.JSON(bank)
}

func GetBankDetails(c *fiber.Ctx) error {
	db, err := requestDB(c)
	if err != nil {
		return err
	}
	company, err := currentCompany(c, db)
	if err != nil {
		return err
	}

	var banks []models.BankDetail
	if err := db.Where("company_id = ?", company.Id).Order("id").Find(&banks).Error; err != nil {
		return err
	}
	return c.JSON(banks)
}

func UpdateBankDetail(c *fiber.Ctx) error {
	var req bankUpdateRequest
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

	var bank models.BankDetail
	if err := db.Where("id = ? AND company_id = ?", c.Params("id"), company.Id).First(&bank).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "bank detail not found")
		}
		return err
	}

	updates := utils.UpdatesFromPtrDTO(&req, nil)
	if len(updates) > 0 {
		if err := db.Model(&bank).Updates(updates).Error; err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Could not update bank detail",
				"error":   err.Error(),
			})
		}
	}
	return c.JSON(bank)
}

// ActivateBankDetail marks one account as the default offered on the invoice
// form; the others are deactivated in the same transaction.
func ActivateBankDetail(c *fiber.Ctx) error {
	db, err := requestDB(c)
	if err != nil {
		return err
	}
	company, err := currentCompany(c, db)
	if err != nil {
		return err
	}

	var bank models.BankDetail
	if err := db.Where("id = ? AND company_id = ?", c.Params("id"), company.Id).First(&bank).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "bank detail not found")
		}
		return err
	}

	if err := db.Model(&models.BankDetail{}).
		Where("company_id = ?", company.Id).
		Update("active", false).Error; err != nil {
		return err
	}
	if err := db.Model(&bank).Update("active", true).Error; err != nil {
		return err
	}
	return c.JSON(bank)
}

func DeleteBankDetail(c *fiber.Ctx) error {
	db, err := requestDB(c)
	if err != nil {
		return err
	}
	company, err := currentCompany(c, db)
	if err != nil {
		return err
	}

	res := db.Where("id = ? AND company_id = ?", c.Params("id"), company.Id).Delete(&models.BankDetail{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "bank detail not found")
	}
	return c.JSON(fiber.Map{"message": "deleted"})
}
