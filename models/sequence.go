package models

// DocumentSequence holds the last-issued invoice ordinal for one
// (company, financial year) pair. The unique index guarantees a single row
// per pair; the allocator increments CurrentNumber through an atomic upsert
// so concurrent issuers for the same pair serialize on the row lock while
// other companies (or years) proceed untouched.
type DocumentSequence struct {
	ID            uint   `json:"id" gorm:"primaryKey"`
	CompanyID     uint   `json:"company_id" gorm:"index:idx_document_sequences_company_year,unique,priority:1;not null"`
	FinancialYear string `json:"financial_year" gorm:"size:9;index:idx_document_sequences_company_year,unique,priority:2;not null"`
	CurrentNumber int64  `json:"current_number" gorm:"not null;default:0"`
}
