package auth

import (
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/vehicle-registry/internal/domain"
)

func TestGenerateAndParseRoundTrip(t *testing.T) {
	tm := NewTokenManager("secret", 24*time.Hour)

	token, expiresAt, err := tm.Generate(domain.Identity{Email: "adm@teste.com", Role: domain.RoleAdmin})
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), expiresAt, time.Minute)

	claims, err := tm.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "adm@teste.com", claims.Email)
	assert.Equal(t, "Adm", claims.Role)
	assert.Equal(t, "Adm", claims.Profile)
	assert.Equal(t, "adm@teste.com", claims.Subject)
}

func TestGenerateWithEmptySecret(t *testing.T) {
	tm := NewTokenManager("", 24*time.Hour)

	token, _, err := tm.Generate(domain.Identity{Email: "adm@teste.com", Role: domain.RoleAdmin})
	require.NoError(t, err)
	assert.Empty(t, token, "an empty key must never produce a signed token")
}

func TestParseRejectsExpiredToken(t *testing.T) {
	tm := NewTokenManager("secret", 24*time.Hour)

	claims := &Claims{
		Email:   "adm@teste.com",
		Profile: "Adm",
		Role:    "Adm",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-25 * time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = tm.Parse(token)
	require.Error(t, err)
}

func TestParseRejectsWrongKey(t *testing.T) {
	issuer := NewTokenManager("other-secret", 24*time.Hour)
	validator := NewTokenManager("secret", 24*time.Hour)

	token, _, err := issuer.Generate(domain.Identity{Email: "adm@teste.com", Role: domain.RoleAdmin})
	require.NoError(t, err)

	_, err = validator.Parse(token)
	require.Error(t, err)
}

func TestParseRejectsWrongSigningMethod(t *testing.T) {
	tm := NewTokenManager("secret", 24*time.Hour)

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, &Claims{
		Email: "adm@teste.com",
		Role:  "Adm",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = tm.Parse(token)
	require.Error(t, err)
}

func TestParseRejectsGarbage(t *testing.T) {
	tm := NewTokenManager("secret", 24*time.Hour)

	_, err := tm.Parse("not-a-token")
	require.Error(t, err)
}
