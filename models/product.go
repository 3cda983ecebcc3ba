package models

type Product struct {
	Id        uint   `json:"id" gorm:"primaryKey"`
	CompanyID uint   `json:"-" gorm:"index;not null"`
	Name      string `json:"name" gorm:"not null"`
	HsnCode   string `json:"hsn_code"`
	Uom       string `json:"uom"` // unit of measure, e.g. "PCS", "KG"
}
