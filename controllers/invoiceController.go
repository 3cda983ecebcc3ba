package controllers

import (
	"errors"
	"strconv"

	"invoicing-backend/middlewares"
	"invoicing-backend/models"
	"invoicing-backend/services"
	"invoicing-backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// CreateInvoice finalizes a new invoice: number allocation, tax computation
// and the snapshot write all happen inside the per-request transaction, so a
// failed request leaves neither a burned number nor a partial invoice.
func CreateInvoice(c *fiber.Ctx) error {
	var req services.InvoiceRequest
	if err := middlewares.BindAndValidate(c, &req); err != nil {
		return err
	}

	db, err := requestDB(c)
	if err != nil {
		return err
	}
	company, err := currentCompany(c, db)
	if err != nil {
		return err
	}

	invoice, err := services.CreateInvoice(db, company, &req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(invoice)
}

// UpdateInvoice recomputes an existing invoice from a fresh request. The
// invoice number survives unchanged.
func UpdateInvoice(c *fiber.Ctx) error {
	invoiceID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid invoice id")
	}

	var req services.InvoiceRequest
	if err := middlewares.BindAndValidate(c, &req); err != nil {
		return err
	}

	db, err := requestDB(c)
	if err != nil {
		return err
	}
	company, err := currentCompany(c, db)
	if err != nil {
		return err
	}

	invoice, err := services.UpdateInvoice(db, company, uint(invoiceID), &req)
	if err != nil {
		return err
	}
	return c.JSON(invoice)
}

func GetInvoices(c *fiber.Ctx) error {
	db, err := requestDB(c)
	if err != nil {
		return err
	}
	company, err := currentCompany(c, db)
	if err != nil {
		return err
	}

	limit := utils.ParseIntDefault(c.Query("limit"), 50)
	offset := utils.ParseIntDefault(c.Query("offset"), 0)

	var invoices []models.Invoice
	if err := db.Where("company_id = ?", company.Id).
		Order("id DESC").
		Limit(limit).Offset(offset).
		Find(&invoices).Error; err != nil {
		return err
	}
	return c.JSON(invoices)
}

func GetInvoice(c *fiber.Ctx) error {
	db, err := requestDB(c)
	if err != nil {
		return err
	}
	company, err := currentCompany(c, db)
	if err != nil {
		return err
	}

	var invoice models.Invoice
	if err := db.Preload("Items").
		Where("id = ? AND company_id = ?", c.Params("id"), company.Id).
		First(&invoice).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "invoice not found")
		}
		return err
	}
	return c.JSON(invoice)
}

// GetInvoiceRevisions lists the archived pre-update snapshots of an invoice.
func GetInvoiceRevisions(c *fiber.Ctx) error {
	db, err := requestDB(c)
	if err != nil {
		return err
	}
	company, err := currentCompany(c, db)
	if err != nil {
		return err
	}

	var invoice models.Invoice
	if err := db.Select("id").
		Where("id = ? AND company_id = ?", c.Params("id"), company.Id).
		First(&invoice).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "invoice not found")
		}
		return err
	}

	var revisions []models.InvoiceRevision
	if err := db.Where("invoice_id = ?", invoice.ID).Order("revision_no").Find(&revisions).Error; err != nil {
		return err
	}
	return c.JSON(revisions)
}
