// Package scope carries the caller's trusted store context and enforces
// that entities are only visible inside their own store.
package scope

import (
	"context"
	"fmt"

	"github.com/LavaJover/shvark-pawn-service/internal/domain"
)

// Scope is the verified identity of a caller, resolved upstream.
type Scope struct {
	UserID  string
	StoreID string
}

type ctxKey struct{}

func WithScope(ctx context.Context, s Scope) context.Context {
	return context.WithValue(ctx, ctxKey{}, s)
}

func FromContext(ctx context.Context) (Scope, bool) {
	s, ok := ctx.Value(ctxKey{}).(Scope)
	return s, ok && s.StoreID != ""
}

// Require returns the scope stored in ctx or an invalid-argument error when
// the caller did not supply a store context.
func Require(ctx context.Context) (Scope, error) {
	s, ok := FromContext(ctx)
	if !ok {
		return Scope{}, fmt.Errorf("%w: missing store scope", domain.ErrInvalidArgument)
	}
	return s, nil
}

// Guard hides entities owned by another store. The error is the same as for
// an entity that does not exist.
func Guard(s Scope, ownerStoreID, entity, id string) error {
	if ownerStoreID != s.StoreID {
		return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
	}
	return nil
}
