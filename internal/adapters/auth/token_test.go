package auth

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"testing"
	"time"

	"acaradashboard/internal/domain"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTIssuer_Issue(t *testing.T) {
	secret := "test-secret"
	issuer := NewJWTIssuer(secret, "auth.test")

	token, err := issuer.Issue("user-123", "u@example.com", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	// Parse and verify claims
	parsed, err := jwt.ParseWithClaims(token, &jwtClaims{}, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	require.NoError(t, err)
	require.True(t, parsed.Valid)
	claims, ok := parsed.Claims.(*jwtClaims)
	require.True(t, ok)
	assert.Equal(t, "user-123", claims.Subject)
	assert.Equal(t, "u@example.com", claims.Email)
	assert.Equal(t, "auth.test", claims.Issuer)
}

func TestJWTVerifier_HS256(t *testing.T) {
	v, err := NewJWTVerifier(VerifierConfig{Secret: "s3cret", Issuer: "auth.test"})
	require.NoError(t, err)

	good, err := NewJWTIssuer("s3cret", "auth.test").Issue("u1", "u1@example.com", time.Hour)
	require.NoError(t, err)
	otherIssuer, _ := NewJWTIssuer("s3cret", "elsewhere").Issue("u1", "", time.Hour)
	wrongSecret, _ := NewJWTIssuer("nope", "auth.test").Issue("u1", "", time.Hour)
	expired, _ := NewJWTIssuer("s3cret", "auth.test").Issue("u1", "", -time.Minute)
	noSubject, _ := NewJWTIssuer("s3cret", "auth.test").Issue("", "", time.Hour)
	noExpiry, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "u1", "iss": "auth.test"}).SignedString([]byte("s3cret"))

	identity, err := v.Verify(good)
	require.NoError(t, err)
	assert.Equal(t, &domain.Identity{UserID: "u1", Email: "u1@example.com"}, identity)

	tests := []struct {
		name  string
		token string
	}{
		{"other issuer", otherIssuer},
		{"wrong secret", wrongSecret},
		{"expired", expired},
		{"no subject", noSubject},
		{"no expiry", noExpiry},
		{"garbage", "not-a-jwt"},
		{"empty", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := v.Verify(tt.token)
			require.ErrorIs(t, err, domain.ErrUnauthorized)
		})
	}
}

func TestJWTVerifier_RS256(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	der, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
	require.NoError(t, err)
	pubPEM := string(pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: der}))

	v, err := NewJWTVerifier(VerifierConfig{PublicKeyPEM: pubPEM})
	require.NoError(t, err)

	claims := jwtClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "u-rsa",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		Email: "rsa@example.com",
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(key)
	require.NoError(t, err)

	identity, err := v.Verify(signed)
	require.NoError(t, err)
	assert.Equal(t, "u-rsa", identity.UserID)
	assert.Equal(t, "rsa@example.com", identity.Email)

	// An HS256 token must not be accepted by an RS256 verifier.
	hs, _ := NewJWTIssuer("whatever", "").Issue("u-rsa", "", time.Hour)
	_, err = v.Verify(hs)
	require.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestNewJWTVerifier_Config(t *testing.T) {
	_, err := NewJWTVerifier(VerifierConfig{})
	require.Error(t, err)
	_, err = NewJWTVerifier(VerifierConfig{Secret: "a", PublicKeyPEM: "b"})
	require.Error(t, err)
	_, err = NewJWTVerifier(VerifierConfig{PublicKeyPEM: "not pem"})
	require.Error(t, err)
}
