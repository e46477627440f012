package services

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"ledgerly/internal/testutil"
)

func newTestAuthService(t *testing.T, password string) AuthServicer {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	testutil.AssertNoError(t, err)
	return NewAuthService(string(hash), "test-secret", time.Hour)
}

func TestAuthService_Login(t *testing.T) {
	t.Run("valid_password", func(t *testing.T) {
		svc := newTestAuthService(t, "s3cret-pass")

		token, expiresAt, err := svc.Login("s3cret-pass")
		testutil.AssertNoError(t, err)
		if token == "" {
			t.Fatal("expected a token")
		}
		if time.Until(expiresAt) < 59*time.Minute {
			t.Errorf("expected expiry about an hour out, got %s", expiresAt)
		}

		claims, err := svc.ValidateToken(token)
		testutil.AssertNoError(t, err)
		if claims.Subject != "owner" {
			t.Errorf("expected subject owner, got %q", claims.Subject)
		}
	})

	t.Run("wrong_password", func(t *testing.T) {
		svc := newTestAuthService(t, "s3cret-pass")
		_, _, err := svc.Login("guess")
		testutil.AssertAppError(t, err, "INVALID_CREDENTIALS")
	})

	t.Run("disabled", func(t *testing.T) {
		svc := NewAuthService("", "test-secret", time.Hour)
		if svc.Enabled() {
			t.Fatal("expected auth disabled without a hash")
		}
		_, _, err := svc.Login("anything")
		testutil.AssertAppError(t, err, "AUTH_DISABLED")
	})
}

func TestAuthService_ValidateToken(t *testing.T) {
	svc := newTestAuthService(t, "pw")

	sign := func(claims *OwnerClaims, secret string) string {
		s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
		testutil.AssertNoError(t, err)
		return s
	}
	valid := func() *OwnerClaims {
		return &OwnerClaims{
			TokenType: "access",
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
				Issuer:    "ledgerly-api",
				Subject:   "owner",
			},
		}
	}

	t.Run("garbage", func(t *testing.T) {
		_, err := svc.ValidateToken("not-a-jwt")
		testutil.AssertAppError(t, err, "UNAUTHORIZED")
	})

	t.Run("wrong_secret", func(t *testing.T) {
		_, err := svc.ValidateToken(sign(valid(), "other-secret"))
		testutil.AssertAppError(t, err, "UNAUTHORIZED")
	})

	t.Run("expired", func(t *testing.T) {
		c := valid()
		c.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))
		_, err := svc.ValidateToken(sign(c, "test-secret"))
		testutil.AssertAppError(t, err, "UNAUTHORIZED")
	})

	t.Run("wrong_token_type", func(t *testing.T) {
		c := valid()
		c.TokenType = "refresh"
		_, err := svc.ValidateToken(sign(c, "test-secret"))
		testutil.AssertAppError(t, err, "UNAUTHORIZED")
	})

	t.Run("wrong_issuer", func(t *testing.T) {
		c := valid()
		c.Issuer = "someone-else"
		_, err := svc.ValidateToken(sign(c, "test-secret"))
		testutil.AssertAppError(t, err, "UNAUTHORIZED")
	})
}
