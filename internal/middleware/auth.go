package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	apperrors "ledgerly/internal/errors"
	"ledgerly/internal/services"
)

const ownerClaimsKey = "ownerClaims"

// OwnerAuth verifies the owner bearer token and stores its claims in the
// context. When no owner password is configured every request passes.
func OwnerAuth(auth services.AuthServicer) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !auth.Enabled() {
			c.Next()
			return
		}

		// Check if the header is in the correct format
		parts := strings.Fields(c.GetHeader("Authorization"))
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			RenderError(c, apperrors.WithMessage(apperrors.ErrUnauthorized, "Authorization header must be 'Bearer <token>'"))
			return
		}

		claims, err := auth.ValidateToken(parts[1])
		if err != nil {
			RenderError(c, apperrors.WithMessage(apperrors.ErrUnauthorized, "Invalid or expired token"))
			return
		}

		c.Set(ownerClaimsKey, claims)
		c.Next()
	}
}

// OwnerClaims returns the claims set by OwnerAuth, or nil when authentication
// is disabled.
func OwnerClaims(c *gin.Context) *services.OwnerClaims {
	v, ok := c.Get(ownerClaimsKey)
	if !ok {
		return nil
	}
	claims, _ := v.(*services.OwnerClaims)
	return claims
}
