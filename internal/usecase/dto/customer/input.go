package customerdto

import "github.com/LavaJover/shvark-pawn-service/internal/domain"

type CreateCustomerInput struct {
	FullName    string
	PhoneNumber string
	IDNumber    string
	Address     domain.Address
}

// UpdateContactInput changes only the fields that are set.
type UpdateContactInput struct {
	CustomerID  string
	PhoneNumber *string
	Address     *domain.Address
}
