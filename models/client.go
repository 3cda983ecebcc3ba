package models

type Client struct {
	Id        uint   `json:"id" gorm:"primaryKey"`
	CompanyID uint   `json:"-" gorm:"index;not null"`
	Name      string `json:"name" gorm:"not null"`
	Address   string `json:"address" gorm:"size:500"`
	GstinNo   string `json:"gstin_no"`
	State     string `json:"state"`
	StateCode string `json:"state_code"`
}
