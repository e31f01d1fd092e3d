// Package utility - Test hash mật khẩu và xác thực JWT.
package utility

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_BcryptRoundTrip(t *testing.T) {
	hashed, err := HashPassword("mat-khau-123")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(hashed, "$2"), "hash phải ở định dạng bcrypt")
	assert.True(t, ComparePasswords(hashed, "mat-khau-123"))
	assert.False(t, ComparePasswords(hashed, "mat-khau-sai"))
}

func TestHashPassword_SamePasswordDifferentHashes(t *testing.T) {
	first, err := HashPassword("mat-khau-123")
	require.NoError(t, err)
	second, err := HashPassword("mat-khau-123")
	require.NoError(t, err)

	assert.NotEqual(t, first, second, "bcrypt tự sinh salt, hai lần hash phải khác nhau")
}

func TestComparePasswords_InvalidHash(t *testing.T) {
	assert.False(t, ComparePasswords("khong-phai-bcrypt", "mat-khau-123"))
}

func TestVerifyToken_RoundTrip(t *testing.T) {
	tokenMap, err := CreateToken("secret", "abc123", "1a2b", "42")
	require.NoError(t, err)

	claims, err := VerifyToken("secret", tokenMap["token"])
	require.NoError(t, err)
	assert.Equal(t, "abc123", claims["userId"])
}

func TestVerifyToken_WrongSecret(t *testing.T) {
	tokenMap, err := CreateToken("secret", "abc123", "1a2b", "42")
	require.NoError(t, err)

	_, err = VerifyToken("khac", tokenMap["token"])
	assert.Error(t, err)
}
