package storedto

import "github.com/LavaJover/shvark-pawn-service/internal/domain"

type StoreInput struct {
	Name            string
	Phone           string
	TaxID           string
	Address         domain.Address
	InterestPresets []domain.InterestPreset
}
