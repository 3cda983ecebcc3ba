package models

// Company is the tenant. Every client, product, bank account, invoice and
// document sequence hangs off a company id; its StateCode drives the GST
// regime selection and InvoicePrefix the document numbering.
type Company struct {
	Id           uint   `json:"id" gorm:"primaryKey"`
	UserId       string `json:"-" gorm:"uniqueIndex;not null"`
	User         User   `json:"-" gorm:"foreignKey:UserId;references:Id"`
	CompanyName  string `json:"company_name" gorm:"not null"`
	Address      string `json:"address" gorm:"size:500"`
	City         string `json:"city"`
	State        string `json:"state"`
	StateCode    string `json:"state_code"` // GST jurisdiction code, e.g. "27"
	GstinNo      string `json:"gstin_no"`
	PanNumber    string `json:"pan_number"`
	LogoUrl      string `json:"logo_url"`
	StampUrl     string `json:"stamp_url"`
	SignatureUrl string `json:"signature_url"`

	InvoicePrefix string `json:"invoice_prefix" gorm:"size:20"`
}
