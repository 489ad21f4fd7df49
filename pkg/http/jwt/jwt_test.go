package jwt

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secretKey = "bf284d03-ba65-42d4-a9fe-0d2fbfe61060"

func TestGenAndParseToken(t *testing.T) {
	token, err := GenToken("user-1", "owner@jjauto.com", []byte(secretKey), "authenticated", time.Hour)
	require.NoError(t, err)

	claims, err := ParseToken(token, secretKey, "authenticated")
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserId())
	assert.Equal(t, "owner@jjauto.com", claims.Email)
}

func TestParseToken_Rejects(t *testing.T) {
	good, err := GenToken("user-1", "", []byte(secretKey), "authenticated", time.Hour)
	require.NoError(t, err)
	expired, err := GenToken("user-1", "", []byte(secretKey), "authenticated", -time.Minute)
	require.NoError(t, err)
	noSubject, err := GenToken("", "", []byte(secretKey), "authenticated", time.Hour)
	require.NoError(t, err)

	_, err = ParseToken(good, "another-secret", "authenticated")
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = ParseToken(good, secretKey, "service_role")
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = ParseToken(expired, secretKey, "authenticated")
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)

	_, err = ParseToken(noSubject, secretKey, "authenticated")
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = ParseToken("not.a.token", secretKey, "")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
