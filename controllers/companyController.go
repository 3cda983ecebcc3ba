package controllers

import (
	"invoicing-backend/middlewares"
	"invoicing-backend/utils"

	"github.com/gofiber/fiber/v2"
)

type companyUpdateRequest struct {
	CompanyName   *string `json:"company_name"`
	Address       *string `json:"address"`
	City          *string `json:"city"`
	State         *string `json:"state"`
	StateCode     *string `json:"state_code"`
	GstinNo       *string `json:"gstin_no"`
	PanNumber     *string `json:"pan_number"`
	LogoUrl       *string `json:"logo_url"`
	StampUrl      *string `json:"stamp_url"`
	SignatureUrl  *string `json:"signature_url"`
	InvoicePrefix *string `json:"invoice_prefix" validate:"omitempty,max=20,alphanum"`
}

func GetCompany(c *fiber.Ctx) error {
	db, err := requestDB(c)
	if err != nil {
		return err
	}
	company, err := currentCompany(c, db)
	if err != nil {
		return err
	}
	return c.JSON(company)
}

// UpdateCompany patches the tenant profile. Issued invoices are snapshots and
// do not change when the profile does.
func UpdateCompany(c *fiber.Ctx) error {
	var req companyUpdateRequest
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

	updates := utils.UpdatesFromPtrDTO(&req, nil)
	if len(updates) == 0 {
		return c.JSON(company)
	}
	if err := db.Model(company).Updates(updates).Error; err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Could not update company",
			"error":   err.Error(),
		})
	}
	return c.JSON(company)
}
