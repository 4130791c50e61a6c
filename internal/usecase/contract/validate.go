package contract

import (
	"fmt"

	"github.com/LavaJover/shvark-pawn-service/internal/domain"
	"github.com/google/uuid"
)

func validateID(entity, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("%w: invalid %s id %q", domain.ErrInvalidArgument, entity, id)
	}
	return nil
}
