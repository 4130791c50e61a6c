package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type InterestPreset struct {
	Days        int             `json:"days"`
	RatePercent decimal.Decimal `json:"rate"`
}

type Store struct {
	ID              string
	Name            string
	Phone           string
	TaxID           string
	Address         Address
	InterestPresets []InterestPreset
	OwnerUserID     string
	Active          bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// PresetRate returns the preset rate configured for the given loan period.
func (s *Store) PresetRate(periodDays int) (decimal.Decimal, bool) {
	for _, preset := range s.InterestPresets {
		if preset.Days == periodDays {
			return preset.RatePercent, true
		}
	}
	return decimal.Zero, false
}
