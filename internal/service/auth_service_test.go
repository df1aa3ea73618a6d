package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndLogin(t *testing.T) {
	users := newFakeUserRepo()
	svc := NewAuthService(users, "test-secret")
	ctx := context.Background()

	reg, err := svc.Register(ctx, "Asha Raman", "Asha@Example.com ")
	require.NoError(t, err)
	require.NotNil(t, reg.User)
	assert.Equal(t, "asha@example.com", reg.User.Email)
	assert.NotEmpty(t, reg.Token)

	// Duplicate registration is rejected.
	_, err = svc.Register(ctx, "Asha Again", "asha@example.com")
	assert.ErrorIs(t, err, ErrEmailTaken)

	login, err := svc.Login(ctx, "asha@example.com")
	require.NoError(t, err)
	assert.Equal(t, reg.User.ID, login.User.ID)

	_, err = svc.Login(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestValidateToken(t *testing.T) {
	users := newFakeUserRepo()
	svc := NewAuthService(users, "test-secret")

	reg, err := svc.Register(context.Background(), "Vikram", "vikram@example.com")
	require.NoError(t, err)

	claims, err := svc.ValidateToken(reg.Token)
	require.NoError(t, err)
	assert.Equal(t, reg.User.ID, claims.UserID)

	_, err = svc.ValidateToken("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)

	// A token signed with a different secret is rejected.
	other := NewAuthService(users, "other-secret")
	foreign, err := other.Register(context.Background(), "X", "x@example.com")
	require.NoError(t, err)
	_, err = svc.ValidateToken(foreign.Token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
