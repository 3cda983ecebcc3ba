package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"invoicing-backend/models"
	"invoicing-backend/utils"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

// invoiceTotals is the pure result of the computation step: snapshot line
// items, tax split, grand total and its words rendering. Nothing here has
// touched the database yet.
type invoiceTotals struct {
	Items          []models.InvoiceItem
	TotalBeforeTax decimal.Decimal
	CgstRate       decimal.Decimal
	CgstAmount     decimal.Decimal
	SgstRate       decimal.Decimal
	SgstAmount     decimal.Decimal
	IgstRate       decimal.Decimal
	IgstAmount     decimal.Decimal
	TotalTax       decimal.Decimal
	TotalAfterTax  decimal.Decimal
	TotalInWords   string
}

// computeInvoice validates the request and derives all monetary fields.
// Line amounts are rounded per line before summing; the penny-level subtotal
// depends on that ordering. Regime selection: the company and counterparty
// sharing a non-empty state code means intra-state (CGST+SGST), anything
// else means inter-state (IGST). The non-selected regime stays zero.
func computeInvoice(companyStateCode string, req *InvoiceRequest) (*invoiceTotals, error) {
	if strings.TrimSpace(req.BilledToName) == "" {
		return nil, invalidf("billed_to_name is required")
	}
	if len(req.Items) == 0 {
		return nil, invalidf("at least one line item is required")
	}

	t := &invoiceTotals{}
	for i, item := range req.Items {
		if item.Quantity.IsNegative() {
			return nil, invalidf("item %d: quantity must not be negative", i)
		}
		if item.Rate.IsNegative() {
			return nil, invalidf("item %d: rate must not be negative", i)
		}
		amount := utils.Round2(item.Quantity.Mul(item.Rate))
		t.TotalBeforeTax = t.TotalBeforeTax.Add(amount)
		t.Items = append(t.Items, models.InvoiceItem{
			Description: item.Description,
			HsnCode:     item.HsnCode,
			Uom:         item.Uom,
			Quantity:    item.Quantity,
			Rate:        item.Rate,
			Amount:      amount,
		})
	}

	if companyStateCode != "" && companyStateCode == req.BilledToCode {
		t.CgstRate = req.CgstRate
		t.SgstRate = req.SgstRate
		t.CgstAmount = utils.PercentOf(t.TotalBeforeTax, t.CgstRate)
		t.SgstAmount = utils.PercentOf(t.TotalBeforeTax, t.SgstRate)
	} else {
		t.IgstRate = req.IgstRate
		t.IgstAmount = utils.PercentOf(t.TotalBeforeTax, t.IgstRate)
	}

	t.TotalTax = t.CgstAmount.Add(t.SgstAmount).Add(t.IgstAmount)
	t.TotalAfterTax = t.TotalBeforeTax.Add(t.TotalTax)
	t.TotalInWords = utils.AmountInWords(t.TotalAfterTax)
	return t, nil
}

// CreateInvoice runs the full finalization pipeline inside the caller's
// transaction: validate and compute, resolve the financial year from the
// invoice date, allocate the next document ordinal, and persist the snapshot.
// Any failure rolls the allocation back with the rest of the transaction, so
// no ordinal is burned on an aborted create.
func CreateInvoice(tx *gorm.DB, company *models.Company, req *InvoiceRequest) (*models.Invoice, error) {
	invoiceDate, err := time.Parse(dateLayout, req.InvoiceDate)
	if err != nil {
		return nil, invalidf("invoice_date: %v", err)
	}
	totals, err := computeInvoice(company.StateCode, req)
	if err != nil {
		return nil, err
	}

	financialYear := utils.FiscalYear(invoiceDate)
	ordinal, err := AllocateSequence(tx, company.Id, financialYear)
	if err != nil {
		return nil, err
	}

	inv := &models.Invoice{
		CompanyID:     company.Id,
		InvoiceNumber: FormatInvoiceNumber(company.InvoicePrefix, financialYear, ordinal),
		InvoiceDate:   invoiceDate,
		Items:         totals.Items,
		PdfUrl:        req.PdfUrl,
	}
	if err := applySnapshotFields(inv, req); err != nil {
		return nil, err
	}
	applyTotals(inv, totals)
	inv.JurisdictionCity = company.City

	if err := tx.Create(inv).Error; err != nil {
		return nil, fmt.Errorf("create invoice: %w", err)
	}
	return inv, nil
}

// UpdateInvoice recomputes items and totals for an existing invoice. The
// document number is never regenerated; only content fields change. The
// previous state is archived as a revision before anything is replaced.
func UpdateInvoice(tx *gorm.DB, company *models.Company, invoiceID uint, req *InvoiceRequest) (*models.Invoice, error) {
	var inv models.Invoice
	if err := tx.Preload("Items").
		Where("id = ? AND company_id = ?", invoiceID, company.Id).
		First(&inv).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("invoice %d: %w", invoiceID, ErrNotFound)
		}
		return nil, fmt.Errorf("load invoice: %w", err)
	}

	invoiceDate, err := time.Parse(dateLayout, req.InvoiceDate)
	if err != nil {
		return nil, invalidf("invoice_date: %v", err)
	}
	totals, err := computeInvoice(company.StateCode, req)
	if err != nil {
		return nil, err
	}

	if err := archiveRevision(tx, &inv); err != nil {
		return nil, err
	}
	if err := tx.Where("invoice_id = ?", inv.ID).Delete(&models.InvoiceItem{}).Error; err != nil {
		return nil, fmt.Errorf("replace line items: %w", err)
	}

	inv.InvoiceDate = invoiceDate
	if err := applySnapshotFields(&inv, req); err != nil {
		return nil, err
	}
	applyTotals(&inv, totals)
	inv.JurisdictionCity = company.City
	inv.PdfUrl = req.PdfUrl

	inv.Items = nil
	if err := tx.Save(&inv).Error; err != nil {
		return nil, fmt.Errorf("update invoice: %w", err)
	}

	items := totals.Items
	for i := range items {
		items[i].InvoiceID = inv.ID
	}
	if err := tx.Create(&items).Error; err != nil {
		return nil, fmt.Errorf("create line items: %w", err)
	}
	inv.Items = items
	return &inv, nil
}

// applySnapshotFields copies the request's header, counterparty and bank
// fields onto the invoice. These are snapshots: later edits to the client or
// company profiles must not change issued invoices.
func applySnapshotFields(inv *models.Invoice, req *InvoiceRequest) error {
	inv.TransportMode = req.TransportMode
	inv.VehicleNo = req.VehicleNo
	inv.PlaceOfSupply = req.PlaceOfSupply
	inv.OrderNumber = req.OrderNumber
	inv.TaxOnReverseCharge = req.TaxOnReverseCharge
	inv.GrLrNo = req.GrLrNo
	inv.EWayBillNo = req.EWayBillNo

	inv.DateOfSupply = nil
	if req.DateOfSupply != "" {
		d, err := time.Parse(dateLayout, req.DateOfSupply)
		if err != nil {
			return invalidf("date_of_supply: %v", err)
		}
		inv.DateOfSupply = &d
	}

	inv.BilledToName = req.BilledToName
	inv.BilledToAddress = req.BilledToAddress
	inv.BilledToGstin = req.BilledToGstin
	inv.BilledToState = req.BilledToState
	inv.BilledToCode = req.BilledToCode

	inv.ShippedToName = req.ShippedToName
	inv.ShippedToAddress = req.ShippedToAddress
	inv.ShippedToGstin = req.ShippedToGstin
	inv.ShippedToState = req.ShippedToState
	inv.ShippedToCode = req.ShippedToCode

	inv.BankName = req.BankName
	inv.AccountName = req.AccountName
	inv.AccountNumber = req.AccountNumber
	inv.IfscCode = req.IfscCode

	inv.TermsAndConditions = req.TermsAndConditions
	return nil
}

func applyTotals(inv *models.Invoice, t *invoiceTotals) {
	inv.TotalBeforeTax = t.TotalBeforeTax
	inv.CgstRate = t.CgstRate
	inv.CgstAmount = t.CgstAmount
	inv.SgstRate = t.SgstRate
	inv.SgstAmount = t.SgstAmount
	inv.IgstRate = t.IgstRate
	inv.IgstAmount = t.IgstAmount
	inv.TotalTax = t.TotalTax
	inv.TotalAfterTax = t.TotalAfterTax
	inv.TotalInWords = t.TotalInWords
}

// archiveRevision stores the invoice's current state (header + items) as the
// next numbered JSONB revision.
func archiveRevision(tx *gorm.DB, inv *models.Invoice) error {
	blob, err := json.Marshal(inv)
	if err != nil {
		return fmt.Errorf("marshal revision: %w", err)
	}
	var last int
	if err := tx.Model(&models.InvoiceRevision{}).
		Where("invoice_id = ?", inv.ID).
		Select("COALESCE(MAX(revision_no), 0)").
		Scan(&last).Error; err != nil {
		return fmt.Errorf("max revision_no: %w", err)
	}
	rev := models.InvoiceRevision{
		InvoiceID:  inv.ID,
		RevisionNo: last + 1,
		Snapshot:   datatypes.JSON(blob),
	}
	if err := tx.Create(&rev).Error; err != nil {
		return fmt.Errorf("archive revision: %w", err)
	}
	return nil
}
