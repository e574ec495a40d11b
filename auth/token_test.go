package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"rukun-live/domain"
)

func TestVerifier_RoundTrip(t *testing.T) {
	req := require.New(t)
	verifier := NewVerifier("test-secret")
	identity := domain.Identity{UserID: "u-1", Role: domain.RoleKoordinatorBlok, Block: "B"}

	// When a token is generated and verified with the same secret
	token, err := verifier.GenerateToken(identity, time.Minute)
	req.NoError(err)

	parsed, err := verifier.VerifyToken(token)

	// Then the identity triple survives unchanged
	req.NoError(err)
	req.Equal(identity, parsed)
}

func TestVerifier_WrongSecretIsRejected(t *testing.T) {
	req := require.New(t)
	identity := domain.Identity{UserID: "u-1", Role: domain.RoleWarga}

	token, err := NewVerifier("secret-a").GenerateToken(identity, time.Minute)
	req.NoError(err)

	_, err = NewVerifier("secret-b").VerifyToken(token)
	req.Error(err)
}

func TestVerifier_ExpiredTokenIsRejected(t *testing.T) {
	req := require.New(t)
	verifier := NewVerifier("test-secret")
	identity := domain.Identity{UserID: "u-1", Role: domain.RoleWarga}

	token, err := verifier.GenerateToken(identity, -time.Minute)
	req.NoError(err)

	_, err = verifier.VerifyToken(token)
	req.ErrorIs(err, jwt.ErrTokenExpired)
}

func TestVerifier_UnknownRoleIsRejected(t *testing.T) {
	req := require.New(t)
	verifier := NewVerifier("test-secret")

	// Given a validly signed token carrying a role outside the closed set
	claims := &CustomClaims{
		UserID: "u-1",
		Role:   "superadmin",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	req.NoError(err)

	_, err = verifier.VerifyToken(token)
	req.Error(err)
}

func TestVerifier_GarbageTokenIsRejected(t *testing.T) {
	req := require.New(t)

	_, err := NewVerifier("test-secret").VerifyToken("not.a.token")

	req.Error(err)
}
