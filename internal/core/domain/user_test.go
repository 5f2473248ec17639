package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskboard/internal/core/domain"
)

func TestNewUser_NormalizesFields(t *testing.T) {
	user, err := domain.NewUser("u-1", "  Alice ", " Alice@EXAMPLE.com ")

	require.NoError(t, err)
	assert.Equal(t, "u-1", user.ID)
	assert.Equal(t, "Alice", user.Name)
	assert.Equal(t, "alice@example.com", user.Email)
}

func TestNewUser_EmptyNameAfterTrim(t *testing.T) {
	_, err := domain.NewUser("u-1", "   ", "alice@example.com")

	require.Error(t, err)
	assert.Equal(t, "Name cannot be empty", err.Error())
}

func TestNewUser_EmailWithoutAtSign(t *testing.T) {
	_, err := domain.NewUser("u-1", "Alice", "alice.example.com")

	require.Error(t, err)
	assert.Equal(t, "Email appears invalid", err.Error())
}

func TestCreateUser_UsesInjectedIDFactory(t *testing.T) {
	user, err := domain.CreateUser("Alice", "alice@example.com", func() string {
		return "fixed-id-1"
	})

	require.NoError(t, err)
	assert.Equal(t, "fixed-id-1", user.ID)
}

func TestCreateUser_InvalidInputNeverConstructs(t *testing.T) {
	called := 0

	_, err := domain.CreateUser(" ", "alice@example.com", func() string {
		called++
		return "fixed-id-1"
	})

	require.Error(t, err)
	assert.Equal(t, 1, called)
}
