package models

type BankDetail struct {
	Id            uint   `json:"id" gorm:"primaryKey"`
	CompanyID     uint   `json:"-" gorm:"index;not null"`
	BankName      string `json:"bank_name" gorm:"not null"`
	AccountName   string `json:"account_name" gorm:"not null"`
	AccountNumber string `json:"account_number" gorm:"not null"`
	BankBranch    string `json:"bank_branch"`
	IfscCode      string `json:"ifsc_code" gorm:"not null"`
	Active        bool   `json:"active"`
}
