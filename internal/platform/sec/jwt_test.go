// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sec_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kalamanch/directory/internal/platform/sec"
)

/*
TestTokenService_RoundTrip signs a token and verifies it back.
*/
func TestTokenService_RoundTrip(t *testing.T) {
	service, err := sec.NewTokenService("test-secret", "kalamanch.in")
	require.NoError(t, err)

	token, err := service.GenerateToken("ops@kalamanch.in", sec.RoleAdmin, time.Minute)
	require.NoError(t, err)

	claims, err := service.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, "ops@kalamanch.in", claims.Operator())
	assert.Equal(t, string(sec.RoleAdmin), claims.Role)
}

/*
TestTokenService_Rejects covers expired, foreign and malformed tokens.
*/
func TestTokenService_Rejects(t *testing.T) {
	service, err := sec.NewTokenService("test-secret", "kalamanch.in")
	require.NoError(t, err)

	t.Run("expired", func(t *testing.T) {
		token, err := service.GenerateToken("ops", sec.RoleAdmin, -time.Minute)
		require.NoError(t, err)

		_, err = service.VerifyToken(token)
		assert.Error(t, err)
	})

	t.Run("other_secret", func(t *testing.T) {
		other, err := sec.NewTokenService("another-secret", "kalamanch.in")
		require.NoError(t, err)

		token, err := other.GenerateToken("ops", sec.RoleAdmin, time.Minute)
		require.NoError(t, err)

		_, err = service.VerifyToken(token)
		assert.Error(t, err)
	})

	t.Run("other_issuer", func(t *testing.T) {
		other, err := sec.NewTokenService("test-secret", "elsewhere")
		require.NoError(t, err)

		token, err := other.GenerateToken("ops", sec.RoleAdmin, time.Minute)
		require.NoError(t, err)

		_, err = service.VerifyToken(token)
		assert.Error(t, err)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := service.VerifyToken("not-a-token")
		assert.Error(t, err)
	})
}

/*
TestNewTokenService_EmptySecret refuses to build without a key.
*/
func TestNewTokenService_EmptySecret(t *testing.T) {
	_, err := sec.NewTokenService("", "kalamanch.in")
	assert.ErrorIs(t, err, sec.ErrNoSecret)
}

/*
TestUserRole_AtLeast checks the role hierarchy.
*/
func TestUserRole_AtLeast(t *testing.T) {
	assert.True(t, sec.RoleAdmin.AtLeast(sec.RoleOperator))
	assert.True(t, sec.RoleOperator.AtLeast(sec.RoleOperator))
	assert.False(t, sec.RoleOperator.AtLeast(sec.RoleAdmin))
	assert.False(t, sec.UserRole("guest").AtLeast(sec.RoleOperator))
}
