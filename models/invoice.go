package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// Invoice is an immutable snapshot: counterparty, bank and tax fields are
// copied in at creation/update time and never re-derived from the live
// client/company/bank rows. The invoice number is assigned exactly once.
type Invoice struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	CompanyID     uint      `json:"-" gorm:"index;not null"`
	InvoiceNumber string    `json:"invoice_number" gorm:"unique;not null"` // e.g. "PRM/2025-2026/001"
	InvoiceDate   time.Time `json:"invoice_date" gorm:"type:date;not null"`

	// Transport / supply header
	TransportMode      string     `json:"transport_mode"`
	VehicleNo          string     `json:"vehicle_no"`
	DateOfSupply       *time.Time `json:"date_of_supply" gorm:"type:date"`
	PlaceOfSupply      string     `json:"place_of_supply"`
	OrderNumber        string     `json:"order_number"`
	TaxOnReverseCharge bool       `json:"tax_on_reverse_charge"`
	GrLrNo             string     `json:"gr_lr_no"`
	EWayBillNo         string     `json:"e_way_bill_no"`

	// Billed-to snapshot
	BilledToName    string `json:"billed_to_name" gorm:"not null"`
	BilledToAddress string `json:"billed_to_address" gorm:"size:500"`
	BilledToGstin   string `json:"billed_to_gstin"`
	BilledToState   string `json:"billed_to_state"`
	BilledToCode    string `json:"billed_to_code"`

	// Shipped-to snapshot
	ShippedToName    string `json:"shipped_to_name"`
	ShippedToAddress string `json:"shipped_to_address" gorm:"size:500"`
	ShippedToGstin   string `json:"shipped_to_gstin"`
	ShippedToState   string `json:"shipped_to_state"`
	ShippedToCode    string `json:"shipped_to_code"`

	Items []InvoiceItem `json:"items" gorm:"foreignKey:InvoiceID;constraint:OnDelete:CASCADE"`

	// Totals. The non-selected regime's rate and amount are zero, never null.
	TotalBeforeTax decimal.Decimal `json:"total_before_tax" gorm:"type:numeric(12,2)"`
	CgstRate       decimal.Decimal `json:"cgst_rate" gorm:"type:numeric(5,2)"`
	CgstAmount     decimal.Decimal `json:"cgst_amount" gorm:"type:numeric(12,2)"`
	SgstRate       decimal.Decimal `json:"sgst_rate" gorm:"type:numeric(5,2)"`
	SgstAmount     decimal.Decimal `json:"sgst_amount" gorm:"type:numeric(12,2)"`
	IgstRate       decimal.Decimal `json:"igst_rate" gorm:"type:numeric(5,2)"`
	IgstAmount     decimal.Decimal `json:"igst_amount" gorm:"type:numeric(12,2)"`
	TotalTax       decimal.Decimal `json:"total_tax" gorm:"type:numeric(12,2)"`
	TotalAfterTax  decimal.Decimal `json:"total_after_tax" gorm:"type:numeric(12,2);not null"`
	TotalInWords   string          `json:"total_in_words" gorm:"size:1000"`

	// Bank snapshot
	BankName      string `json:"bank_name"`
	AccountName   string `json:"account_name"`
	AccountNumber string `json:"account_number"`
	IfscCode      string `json:"ifsc_code"`

	// Footer
	JurisdictionCity   string `json:"jurisdiction_city"`
	TermsAndConditions string `json:"terms_and_conditions" gorm:"size:2000"`
	PdfUrl             string `json:"pdf_url"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type InvoiceItem struct {
	ID        uint `json:"id" gorm:"primaryKey"`
	InvoiceID uint `json:"-" gorm:"index"` // fast join

	// Product snapshot (not a live catalog reference)
	Description string `json:"description" gorm:"not null"`
	HsnCode     string `json:"hsn_code"`
	Uom         string `json:"uom"`

	Quantity decimal.Decimal `json:"quantity" gorm:"type:numeric(12,3);not null"`
	Rate     decimal.Decimal `json:"rate" gorm:"type:numeric(12,3);not null"`
	Amount   decimal.Decimal `json:"amount" gorm:"type:numeric(12,2);not null"` // quantity * rate, rounded per line
}

// InvoiceRevision archives the pre-update state of an invoice as raw JSON,
// so content replacement on update never erases the audit trail.
type InvoiceRevision struct {
	ID         uint           `json:"id" gorm:"primaryKey"`
	InvoiceID  uint           `json:"invoice_id" gorm:"index:idx_invoice_revisions_invoice_id_revision_no,unique,priority:1"`
	RevisionNo int            `json:"revision_no" gorm:"not null;index:idx_invoice_revisions_invoice_id_revision_no,unique,priority:2"`
	Snapshot   datatypes.JSON `json:"snapshot" gorm:"type:jsonb"`
	CreatedAt  time.Time      `json:"created_at"`
}
