package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/spec-kit/campaign-service/internal/auth"
)

func TestPasswordHashAndCompare(t *testing.T) {
	hash, err := auth.HashPassword("correct horse", bcrypt.MinCost)
	require.NoError(t, err)

	assert.NoError(t, auth.ComparePassword(hash, "correct horse"))
	assert.Error(t, auth.ComparePassword(hash, "battery staple"))
}

func TestPasswordCostOutOfRangeFallsBack(t *testing.T) {
	for _, cost := range []int{-1, 0, bcrypt.MaxCost + 1} {
		hash, err := auth.HashPassword("correct horse", cost)
		require.NoError(t, err, "cost %d", cost)
		assert.NoError(t, auth.ComparePassword(hash, "correct horse"), "cost %d", cost)
	}
}

func TestPasswordEmptyRejected(t *testing.T) {
	_, err := auth.HashPassword("", bcrypt.MinCost)
	assert.Error(t, err)
}
