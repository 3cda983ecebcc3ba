package services_test

import (
	"testing"

	"invoicing-backend/models"
	"invoicing-backend/services"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func openInvoiceTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db := openTestDB(t)
	require.NoError(t, db.AutoMigrate(
		&models.Invoice{},
		&models.InvoiceItem{},
		&models.InvoiceRevision{},
	))
	for _, table := range []string{"invoice_revisions", "invoice_items", "invoices"} {
		require.NoError(t, db.Exec(`DELETE FROM `+table).Error)
	}
	return db
}

func testCompany() *models.Company {
	return &models.Company{
		Id:            1,
		CompanyName:   "Prime Metals",
		City:          "Mumbai",
		StateCode:     "27",
		InvoicePrefix: "PRM",
	}
}

func testInvoiceRequest(rate string) *services.InvoiceRequest {
	return &services.InvoiceRequest{
		InvoiceDate:  "2025-06-15",
		BilledToName: "Acme Traders",
		BilledToCode: "19",
		IgstRate:     decimal.RequireFromString("18"),
		Items: []services.InvoiceItemRequest{{
			Description: "Steel rods",
			HsnCode:     "7214",
			Uom:         "KG",
			Quantity:    decimal.RequireFromString("10"),
			Rate:        decimal.RequireFromString(rate),
		}},
	}
}

func TestCreateThenUpdateKeepsInvoiceNumber(t *testing.T) {
	db := openInvoiceTestDB(t)

	tx := db.Begin()
	require.NoError(t, tx.Error)
	created, err := services.CreateInvoice(tx, testCompany(), testInvoiceRequest("100"))
	require.NoError(t, err)
	require.NoError(t, tx.Commit().Error)

	assert.Equal(t, "PRM/2025-2026/001", created.InvoiceNumber)
	assert.Equal(t, "1180.00", created.TotalAfterTax.StringFixed(2))

	tx = db.Begin()
	require.NoError(t, tx.Error)
	updated, err := services.UpdateInvoice(tx, testCompany(), created.ID, testInvoiceRequest("200"))
	require.NoError(t, err)
	require.NoError(t, tx.Commit().Error)

	// The document number is assigned once; updates only replace content.
	assert.Equal(t, created.InvoiceNumber, updated.InvoiceNumber)
	assert.Equal(t, "2360.00", updated.TotalAfterTax.StringFixed(2))

	var revisions []models.InvoiceRevision
	require.NoError(t, db.Where("invoice_id = ?", created.ID).Find(&revisions).Error)
	require.Len(t, revisions, 1, "update must archive the previous state")

	var items []models.InvoiceItem
	require.NoError(t, db.Where("invoice_id = ?", created.ID).Find(&items).Error)
	require.Len(t, items, 1, "old line items must be replaced, not accumulated")
	assert.Equal(t, "2000.00", items[0].Amount.StringFixed(2))
}

func TestCreateInvoiceValidationWritesNothing(t *testing.T) {
	db := openInvoiceTestDB(t)

	tx := db.Begin()
	require.NoError(t, tx.Error)
	req := testInvoiceRequest("100")
	req.Items = nil
	_, err := services.CreateInvoice(tx, testCompany(), req)
	require.ErrorIs(t, err, services.ErrValidation)
	require.NoError(t, tx.Rollback().Error)

	var count int64
	require.NoError(t, db.Model(&models.Invoice{}).Count(&count).Error)
	assert.Zero(t, count)

	// The next successful create still gets ordinal 1.
	tx = db.Begin()
	require.NoError(t, tx.Error)
	created, err := services.CreateInvoice(tx, testCompany(), testInvoiceRequest("100"))
	require.NoError(t, err)
	require.NoError(t, tx.Commit().Error)
	assert.Equal(t, "PRM/2025-2026/001", created.InvoiceNumber)
}

func TestUpdateInvoiceReplacesPdfUrl(t *testing.T) {
	db := openInvoiceTestDB(t)

	tx := db.Begin()
	require.NoError(t, tx.Error)
	req := testInvoiceRequest("100")
	req.PdfUrl = "https://cdn.example.com/invoices/PRM-001.pdf"
	created, err := services.CreateInvoice(tx, testCompany(), req)
	require.NoError(t, err)
	require.NoError(t, tx.Commit().Error)
	require.Equal(t, req.PdfUrl, created.PdfUrl)

	// pdf_url is a snapshot field like the rest: an update without one
	// clears the stored URL instead of silently keeping it.
	tx = db.Begin()
	require.NoError(t, tx.Error)
	updated, err := services.UpdateInvoice(tx, testCompany(), created.ID, testInvoiceRequest("100"))
	require.NoError(t, err)
	require.NoError(t, tx.Commit().Error)
	assert.Empty(t, updated.PdfUrl)

	var stored models.Invoice
	require.NoError(t, db.First(&stored, created.ID).Error)
	assert.Empty(t, stored.PdfUrl)
}

func TestUpdateMissingInvoice(t *testing.T) {
	db := openInvoiceTestDB(t)

	tx := db.Begin()
	require.NoError(t, tx.Error)
	_, err := services.UpdateInvoice(tx, testCompany(), 9999, testInvoiceRequest("100"))
	require.ErrorIs(t, err, services.ErrNotFound)
	require.NoError(t, tx.Rollback().Error)
}
