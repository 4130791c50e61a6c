package domain

import "time"

type Address struct {
	Street      string
	SubDistrict string
	District    string
	Province    string
	Postcode    string
}

type Customer struct {
	ID          string
	StoreID     string
	FullName    string
	PhoneNumber string
	IDNumber    string
	Address     Address
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CustomerContact carries the only customer fields editable after creation.
type CustomerContact struct {
	PhoneNumber *string
	Address     *Address
}
