package services

import "github.com/shopspring/decimal"

// InvoiceItemRequest is one requested line. The amount is always recomputed
// server-side from quantity x rate; clients cannot supply it.
type InvoiceItemRequest struct {
	Description string          `json:"description" validate:"required"`
	HsnCode     string          `json:"hsn_code"`
	Uom         string          `json:"uom"`
	Quantity    decimal.Decimal `json:"quantity"`
	Rate        decimal.Decimal `json:"rate"`
}

// InvoiceRequest is the engine input for both create and update. Dates travel
// as "2006-01-02" strings; tax rates default to zero when absent.
type InvoiceRequest struct {
	InvoiceDate  string `json:"invoice_date" validate:"required,datetime=2006-01-02"`
	DateOfSupply string `json:"date_of_supply" validate:"omitempty,datetime=2006-01-02"`

	TransportMode      string `json:"transport_mode"`
	VehicleNo          string `json:"vehicle_no"`
	PlaceOfSupply      string `json:"place_of_supply"`
	OrderNumber        string `json:"order_number"`
	TaxOnReverseCharge bool   `json:"tax_on_reverse_charge"`
	GrLrNo             string `json:"gr_lr_no"`
	EWayBillNo         string `json:"e_way_bill_no"`

	BilledToName    string `json:"billed_to_name" validate:"required"`
	BilledToAddress string `json:"billed_to_address"`
	BilledToGstin   string `json:"billed_to_gstin"`
	BilledToState   string `json:"billed_to_state"`
	BilledToCode    string `json:"billed_to_code"` // counterparty state code driving regime selection

	ShippedToName    string `json:"shipped_to_name"`
	ShippedToAddress string `json:"shipped_to_address"`
	ShippedToGstin   string `json:"shipped_to_gstin"`
	ShippedToState   string `json:"shipped_to_state"`
	ShippedToCode    string `json:"shipped_to_code"`

	Items []InvoiceItemRequest `json:"items" validate:"required,min=1,dive"`

	CgstRate decimal.Decimal `json:"cgst_rate"`
	SgstRate decimal.Decimal `json:"sgst_rate"`
	IgstRate decimal.Decimal `json:"igst_rate"`

	// Bank snapshot chosen on the invoice form
	BankName      string `json:"bank_name"`
	AccountName   string `json:"account_name"`
	AccountNumber string `json:"account_number"`
	IfscCode      string `json:"ifsc_code"`

	TermsAndConditions string `json:"terms_and_conditions"`
	PdfUrl             string `json:"pdf_url"`
}
