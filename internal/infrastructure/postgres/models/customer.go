package models

import "time"

type AddressColumns struct {
	Street      string
	SubDistrict string `gorm:"size:128"`
	District    string `gorm:"size:128"`
	Province    string `gorm:"size:128"`
	Postcode    string `gorm:"size:16"`
}

type CustomerModel struct {
	ID          string         `gorm:"primaryKey;type:uuid"`
	StoreID     string         `gorm:"type:uuid;not null;index:idx_customers_store_phone,priority:1;index:idx_customers_store_id_number,priority:1"`
	FullName    string         `gorm:"size:256;not null"`
	PhoneNumber string         `gorm:"size:32;index:idx_customers_store_phone,priority:2"`
	IDNumber    string         `gorm:"size:32;index:idx_customers_store_id_number,priority:2"`
	Address     AddressColumns `gorm:"embedded;embeddedPrefix:address_"`
	CreatedAt   time.Time      `gorm:"not null"`
	UpdatedAt   time.Time      `gorm:"not null"`
}

func (CustomerModel) TableName() string {
	return "customers"
}
