package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-12345678901234567890123456789012"

func TestTokenService_IssueVerifyRoundtrip(t *testing.T) {
	svc := NewTokenService(testSecret)

	token, err := svc.Issue("admin")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	usuario, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", usuario)
}

func TestTokenService_ExpiredToken(t *testing.T) {
	svc := NewTokenService(testSecret)
	// Issue as if three hours ago; the 2h TTL has already elapsed.
	svc.now = func() time.Time { return time.Now().Add(-3 * time.Hour) }

	token, err := svc.Issue("admin")
	require.NoError(t, err)

	_, err = NewTokenService(testSecret).Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenService_TamperedToken(t *testing.T) {
	other := NewTokenService("a-completely-different-secret-0123456789")

	token, err := other.Issue("admin")
	require.NoError(t, err)

	_, err = NewTokenService(testSecret).Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenService_MalformedToken(t *testing.T) {
	svc := NewTokenService(testSecret)

	for _, tokenString := range []string{"", "not-a-jwt", "aaa.bbb.ccc"} {
		_, err := svc.Verify(tokenString)
		assert.ErrorIs(t, err, ErrInvalidToken)
	}
}

func TestTokenService_RejectsNonHMACAlgorithm(t *testing.T) {
	claims := jwt.MapClaims{
		"usuario": "admin",
		"exp":     time.Now().Add(time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodNone, claims)
	tokenString, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, verifyErr := NewTokenService(testSecret).Verify(tokenString)
	assert.ErrorIs(t, verifyErr, ErrInvalidToken)
}

func TestTokenService_MissingUsuarioClaim(t *testing.T) {
	claims := jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, verifyErr := NewTokenService(testSecret).Verify(tokenString)
	assert.ErrorIs(t, verifyErr, ErrInvalidToken)
}
