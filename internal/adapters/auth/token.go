package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"acaradashboard/internal/domain"
)

type jwtClaims struct {
	jwt.RegisteredClaims
	Email string `json:"email,omitempty"`
}

type jwtIssuer struct {
	secret []byte
	issuer string
}

// NewJWTIssuer returns a TokenIssuer that signs JWTs with HS256 using the given secret.
// issuer, when non-empty, is set as the iss claim.
func NewJWTIssuer(secret, issuer string) domain.TokenIssuer {
	return &jwtIssuer{secret: []byte(secret), issuer: issuer}
}

func (i *jwtIssuer) Issue(userID, email string, expiry time.Duration) (string, error) {
	now := time.Now()
	claims := jwtClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			Issuer:    i.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
		},
		Email: email,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return tokenString, nil
}

// VerifierConfig configures token verification. Exactly one of Secret (HS256)
// or PublicKeyPEM (RS256) must be set.
type VerifierConfig struct {
	Secret       string
	PublicKeyPEM string
	Issuer       string
}

type jwtVerifier struct {
	key     any
	method  jwt.SigningMethod
	options []jwt.ParserOption
}

// NewJWTVerifier returns a TokenVerifier for tokens issued by the authentication provider.
func NewJWTVerifier(cfg VerifierConfig) (domain.TokenVerifier, error) {
	v := &jwtVerifier{}
	switch {
	case cfg.Secret != "" && cfg.PublicKeyPEM != "":
		return nil, errors.New("jwt verifier: set either a secret or a public key, not both")
	case cfg.PublicKeyPEM != "":
		key, err := jwt.ParseRSAPublicKeyFromPEM([]byte(cfg.PublicKeyPEM))
		if err != nil {
			return nil, fmt.Errorf("jwt verifier: parse public key: %w", err)
		}
		v.key, v.method = key, jwt.SigningMethodRS256
	case cfg.Secret != "":
		v.key, v.method = []byte(cfg.Secret), jwt.SigningMethodHS256
	default:
		return nil, errors.New("jwt verifier: a secret or public key is required")
	}
	v.options = []jwt.ParserOption{
		jwt.WithValidMethods([]string{v.method.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if cfg.Issuer != "" {
		v.options = append(v.options, jwt.WithIssuer(cfg.Issuer))
	}
	return v, nil
}

func (v *jwtVerifier) Verify(tokenString string) (*domain.Identity, error) {
	claims := &jwtClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return v.key, nil
	}, v.options...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUnauthorized, err)
	}
	if claims.Subject == "" {
		return nil, fmt.Errorf("%w: token has no subject", domain.ErrUnauthorized)
	}
	return &domain.Identity{UserID: claims.Subject, Email: claims.Email}, nil
}
