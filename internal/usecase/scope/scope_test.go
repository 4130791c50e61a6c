package scope

import (
	"context"
	"testing"

	"github.com/LavaJover/shvark-pawn-service/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContextRoundTrip(t *testing.T) {
	_, ok := FromContext(context.Background())
	assert.False(t, ok)

	ctx := WithScope(context.Background(), Scope{UserID: "u-1", StoreID: "s-1"})
	s, err := Require(ctx)
	require.NoError(t, err)
	assert.Equal(t, "u-1", s.UserID)
	assert.Equal(t, "s-1", s.StoreID)
}

func TestRequire_MissingStore(t *testing.T) {
	_, err := Require(context.Background())
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)

	_, err = Require(WithScope(context.Background(), Scope{UserID: "u-1"}))
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestGuard(t *testing.T) {
	s := Scope{UserID: "u-1", StoreID: "store-a"}

	assert.NoError(t, Guard(s, "store-a", "contract", "c-1"))

	err := Guard(s, "store-b", "contract", "c-1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.NotContains(t, err.Error(), "store-b")
}
