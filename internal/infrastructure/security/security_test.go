package security

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenManager_GenerateAndValidate(t *testing.T) {
	m := NewTokenManager("access-secret", "refresh-secret", DefaultAccessTTL, DefaultRefreshTTL)

	access, refresh, err := m.Generate("user-123")
	require.NoError(t, err)
	require.NotEmpty(t, access)
	require.NotEmpty(t, refresh)

	userID, err := m.ValidateAccessToken(access)
	require.NoError(t, err)
	assert.Equal(t, "user-123", userID)

	userID, err = m.ValidateRefreshToken(refresh)
	require.NoError(t, err)
	assert.Equal(t, "user-123", userID)

	// Токены подписаны разными секретами и не взаимозаменяемы
	_, err = m.ValidateAccessToken(refresh)
	assert.Error(t, err)
	_, err = m.ValidateRefreshToken(access)
	assert.Error(t, err)
}

func TestTokenManager_DefaultTTLs(t *testing.T) {
	m := NewTokenManager("a", "r", 0, 0)
	assert.Equal(t, DefaultRefreshTTL, m.RefreshTTL())
	assert.Equal(t, DefaultAccessTTL, m.accessTTL)
}

func TestTokenManager_ExpiredToken(t *testing.T) {
	m := NewTokenManager("access-secret", "refresh-secret", -time.Minute, DefaultRefreshTTL)

	access, _, err := m.Generate("user-123")
	require.NoError(t, err)

	_, err = m.ValidateAccessToken(access)
	assert.Error(t, err)
}

func TestTokenManager_RejectsForeignToken(t *testing.T) {
	m1 := NewTokenManager("secret-a", "secret-a-r", DefaultAccessTTL, DefaultRefreshTTL)
	m2 := NewTokenManager("secret-b", "secret-b-r", DefaultAccessTTL, DefaultRefreshTTL)

	access, _, err := m1.Generate("user-123")
	require.NoError(t, err)

	_, err = m2.ValidateAccessToken(access)
	assert.Error(t, err)

	_, err = m1.ValidateAccessToken("not-a-token")
	assert.Error(t, err)
}

func TestTokenManager_RejectsTokenWithoutSubject(t *testing.T) {
	m := NewTokenManager("access-secret", "refresh-secret", DefaultAccessTTL, DefaultRefreshTTL)

	// Валидно подписанный токен без sub не должен ронять сервис
	raw := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"type": "access",
		"exp":  time.Now().Add(time.Hour).Unix(),
	})
	signed, err := raw.SignedString([]byte("access-secret"))
	require.NoError(t, err)

	_, err = m.ValidateAccessToken(signed)
	assert.ErrorIs(t, err, errInvalidToken)
}

func TestPasswordHasher(t *testing.T) {
	h := NewPasswordHasher()

	hash, err := h.Hash("secret123")
	require.NoError(t, err)
	assert.NotEqual(t, "secret123", hash)

	assert.NoError(t, h.Compare(hash, "secret123"))
	assert.Error(t, h.Compare(hash, "wrong"))

	_, err = h.Hash("")
	assert.Error(t, err)
}
