package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/cryptofolio/wallet-api/internal/session"
	"github.com/cryptofolio/wallet-api/pkg/helpers"
	"github.com/cryptofolio/wallet-api/pkg/response"
)

const (
	// CtxUserIDKey holds the authenticated user's id in the Gin context.
	CtxUserIDKey = "userID"
	// CtxTokenKey holds the raw bearer token; signout revokes it.
	CtxTokenKey = "authToken"

	bearerPrefix = "Bearer "
)

// Auth resolves the caller's identity from the Authorization header.
// The revocation list is consulted before the token is parsed, so a
// revoked token is reported as revoked even if its payload was
// tampered with afterwards. Each failure cause logs distinctly.
func Auth(jwt *helpers.JWTManager, revoked session.RevocationList, logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, bearerPrefix) {
			logger.Debug("auth rejected: missing bearer header")
			response.AbortError(c, http.StatusUnauthorized, "Authentication required")
			return
		}

		token := strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix))
		if token == "" {
			logger.Debug("auth rejected: empty token")
			response.AbortError(c, http.StatusUnauthorized, "Token is required")
			return
		}

		isRevoked, err := revoked.IsRevoked(c.Request.Context(), token)
		if err != nil {
			logger.WithError(err).Error("revocation lookup failed")
			response.AbortError(c, http.StatusInternalServerError, "Internal server error")
			return
		}
		if isRevoked {
			logger.Debug("auth rejected: token revoked")
			response.AbortError(c, http.StatusUnauthorized, "Token has been invalidated. Please sign in again.")
			return
		}

		claims, err := jwt.Parse(token)
		if err != nil {
			logger.WithError(err).Debug("auth rejected: token verification failed")
			response.AbortError(c, http.StatusUnauthorized, "Invalid or expired token")
			return
		}

		c.Set(CtxUserIDKey, claims.UserID)
		c.Set(CtxTokenKey, token)
		c.Next()
	}
}
