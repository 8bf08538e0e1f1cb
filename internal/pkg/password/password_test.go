//go:build unit

package password_test

import (
	"testing"

	"store-reservation/internal/pkg/password"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHasher(t *testing.T) {
	h := password.NewHasherWithCost(bcrypt.MinCost)

	hash, err := h.Hash("pass1234")
	require.NoError(t, err)
	assert.NotEqual(t, "pass1234", hash)

	assert.NoError(t, h.Compare(hash, "pass1234"))
	assert.ErrorIs(t, h.Compare(hash, "wrong"), password.ErrComparisonFailed)
	assert.ErrorIs(t, h.Compare("", "pass1234"), password.ErrInvalidPassword)

	_, err = h.Hash("abc")
	assert.ErrorIs(t, err, password.ErrInvalidPassword)
}
