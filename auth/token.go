// Package auth verifies the identity tokens issued by the external auth
// collaborator. No authorization decision is made here: the realtime layer
// only extracts the (user, role, block) triple carried by the token.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"rukun-live/domain"
	"rukun-live/errors"
)

// CustomClaims is the identity triple embedded in the JWT by the auth
// collaborator.
type CustomClaims struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
	Block  string `json:"block,omitempty"`
	jwt.RegisteredClaims
}

// Verifier validates tokens against the shared signing secret.
type Verifier struct {
	key []byte
}

func NewVerifier(secret string) Verifier {
	return Verifier{key: []byte(secret)}
}

// GenerateToken creates a signed JWT for an identity. Production tokens come
// from the auth collaborator; this is used by tests and the console client.
func (v Verifier) GenerateToken(identity domain.Identity, duration time.Duration) (string, error) {
	now := time.Now()
	claims := &CustomClaims{
		UserID: identity.UserID,
		Role:   string(identity.Role),
		Block:  identity.Block,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(duration)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    "rukun-live",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(v.key)
}

// VerifyToken parses and validates the signature and expiration of a token
// string, returning the identity it carries.
func (v Verifier) VerifyToken(tokenString string) (domain.Identity, error) {
	token, err := jwt.ParseWithClaims(tokenString, &CustomClaims{}, func(token *jwt.Token) (interface{}, error) {
		return v.key, nil
	})
	if err != nil {
		return domain.Identity{}, err
	}

	claims, ok := token.Claims.(*CustomClaims)
	if !ok || !token.Valid {
		return domain.Identity{}, errors.ErrInvalidToken
	}

	role, err := domain.ParseRole(claims.Role)
	if err != nil {
		return domain.Identity{}, err
	}

	return domain.Identity{
		UserID: claims.UserID,
		Role:   role,
		Block:  claims.Block,
	}, nil
}
