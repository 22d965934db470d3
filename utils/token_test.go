package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndVerifyTokenRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "unit-test-secret")

	token, err := GenerateToken("drsmith", "CHIEF_DENTIST")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	username, userRole, err := VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, "drsmith", username)
	assert.Equal(t, "CHIEF_DENTIST", userRole)
}

func TestVerifyTokenRejectsWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "first-secret")
	token, err := GenerateToken("drsmith", "ADMINISTRATOR")
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "second-secret")
	_, _, err = VerifyToken(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestVerifyTokenRejectsExpiredToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "unit-test-secret")
	t.Setenv("JWT_TTL_SECONDS", "60")

	issued := time.Now()
	token, err := GenerateTokenAt("drsmith", "CLINIC_ASSISTANT", issued)
	require.NoError(t, err)

	// Still valid just before the TTL elapses.
	_, _, err = VerifyTokenAt(token, issued.Add(59*time.Second))
	require.NoError(t, err)

	_, _, err = VerifyTokenAt(token, issued.Add(61*time.Second))
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestVerifyTokenRejectsGarbage(t *testing.T) {
	t.Setenv("JWT_SECRET", "unit-test-secret")
	_, _, err := VerifyToken("not.a.token")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}
