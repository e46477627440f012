package handlers

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "ledgerly/internal/errors"
)

func setupAuthRouter(handler *AuthHandler) *gin.Engine {
	r := gin.New()
	r.POST("/auth/login", handler.Login)
	return r
}

func TestAuthHandler_Login(t *testing.T) {
	t.Run("returns 200 with token", func(t *testing.T) {
		auth := &mockAuthService{
			enabled: true,
			loginFn: func(password string) (string, time.Time, error) {
				if password != "correct horse" {
					return "", time.Time{}, apperrors.ErrInvalidCredentials
				}
				return "signed.jwt.token", time.Now().Add(time.Hour), nil
			},
		}
		r := setupAuthRouter(NewAuthHandler(auth))

		rec := doRequest(r, "POST", "/auth/login", `{"password":"correct horse"}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		if result["token"] != "signed.jwt.token" {
			t.Errorf("expected token, got %v", result["token"])
		}
		if _, ok := result["expires_at"].(string); !ok {
			t.Errorf("expected expires_at, got %v", result)
		}
	})

	t.Run("returns 401 on wrong password", func(t *testing.T) {
		auth := &mockAuthService{
			enabled: true,
			loginFn: func(string) (string, time.Time, error) {
				return "", time.Time{}, apperrors.ErrInvalidCredentials
			},
		}
		r := setupAuthRouter(NewAuthHandler(auth))

		rec := doRequest(r, "POST", "/auth/login", `{"password":"guess"}`)

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_CREDENTIALS")
	})

	t.Run("returns 400 on missing password", func(t *testing.T) {
		r := setupAuthRouter(NewAuthHandler(&mockAuthService{enabled: true}))

		rec := doRequest(r, "POST", "/auth/login", `{}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})

	t.Run("returns 400 when auth is disabled", func(t *testing.T) {
		r := setupAuthRouter(NewAuthHandler(&mockAuthService{enabled: false}))

		rec := doRequest(r, "POST", "/auth/login", `{"password":"anything"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "AUTH_DISABLED")
	})
}
