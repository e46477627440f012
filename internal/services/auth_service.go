package services

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	apperrors "ledgerly/internal/errors"
)

const (
	tokenIssuer     = "ledgerly-api"
	tokenSubject    = "owner"
	accessTokenType = "access"
)

// authService authenticates the single ledger owner.
type authService struct {
	passwordHash []byte
	secret       []byte
	ttl          time.Duration
}

// NewAuthService creates a new AuthServicer. An empty passwordHash disables
// authentication.
func NewAuthService(passwordHash, secret string, ttl time.Duration) AuthServicer {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &authService{
		passwordHash: []byte(passwordHash),
		secret:       []byte(secret),
		ttl:          ttl,
	}
}

// Enabled reports whether an owner password is configured.
func (s *authService) Enabled() bool {
	return len(s.passwordHash) > 0
}

// Login checks the owner password and issues a signed access token.
func (s *authService) Login(password string) (string, time.Time, error) {
	if !s.Enabled() {
		return "", time.Time{}, apperrors.ErrAuthDisabled
	}

	if err := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password)); err != nil {
		return "", time.Time{}, apperrors.ErrInvalidCredentials
	}

	now := time.Now()
	expiresAt := now.Add(s.ttl)
	claims := &OwnerClaims{
		TokenType: accessTokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    tokenIssuer,
			Subject:   tokenSubject,
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return token, expiresAt, nil
}

// ValidateToken parses and validates an owner access token.
func (s *authService) ValidateToken(tokenString string) (*OwnerClaims, error) {
	if !s.Enabled() {
		return nil, apperrors.ErrAuthDisabled
	}

	claims := &OwnerClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithIssuer(tokenIssuer), jwt.WithExpirationRequired())
	if err != nil || !token.Valid {
		return nil, apperrors.Wrap(apperrors.ErrUnauthorized, err)
	}

	if claims.TokenType != accessTokenType {
		return nil, apperrors.ErrUnauthorized
	}
	return claims, nil
}
