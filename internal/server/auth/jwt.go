// Package auth issues and verifies the short-lived access tokens (HS256
// JWTs) that external request-handling layers use as bearer credentials.
// Tokens are stateless: validity is decided by signature, expiry, and
// issuer alone, never by server-side lookups.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stucanii/therappy/internal/common"
	"github.com/stucanii/therappy/internal/server/models"
)

// Issuer is the fixed service identifier carried in the iss claim.
const Issuer = "therappy-backend"

// Claims extends the registered claims with the subject's role, so the
// request-authentication layer can gate endpoints without a user lookup.
type Claims struct {
	jwt.RegisteredClaims
	Role string `json:"role"`
}

// GenerateToken signs an access token for the given subject and role.
func GenerateToken(subject string, role models.Role, secretKey []byte, validityDuration time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			Issuer:    Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(validityDuration)),
		},
		Role: string(role),
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// ParseToken verifies a token string and returns its subject and role.
// Bad signature, expiry, wrong algorithm, and issuer mismatch all collapse
// into ErrInvalidToken; the caller never learns which check failed.
func ParseToken(tokenString string, secretKey []byte) (string, models.Role, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(t *jwt.Token) (interface{}, error) { return secretKey, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(Issuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !token.Valid {
		return "", "", common.ErrInvalidToken
	}

	return claims.Subject, models.Role(claims.Role), nil
}
