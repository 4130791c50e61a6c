package repository

import (
	"errors"
	"fmt"

	"github.com/LavaJover/shvark-pawn-service/internal/domain"
	"gorm.io/gorm"
)

// wrapErr maps gorm errors onto the domain error kinds.
func wrapErr(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%s: %w", op, domain.ErrNotFound)
	}
	return fmt.Errorf("%s: %w: %w", op, domain.ErrStorageFailure, err)
}
