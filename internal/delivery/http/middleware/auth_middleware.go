package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/starkspartacus/job-sub000/internal/delivery/http/response"
	"github.com/starkspartacus/job-sub000/internal/domain"
	"github.com/starkspartacus/job-sub000/pkg/auth"
	"github.com/starkspartacus/job-sub000/pkg/security"
)

// AuthMiddleware accepts a bearer token or the session cookie, verifies it and
// loads the user. The role is read from the database, not from the token.
func AuthMiddleware(tokens *auth.TokenIssuer, cookieName string, authUC domain.AuthUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := bearerToken(c.GetHeader("Authorization"))
		if tokenString == "" {
			if cookie, err := c.Cookie(cookieName); err == nil {
				tokenString = cookie
			}
		}

		if tokenString == "" {
			response.Error(c, http.StatusUnauthorized, "Authentification requise", nil)
			c.Abort()
			return
		}

		claims, err := tokens.Parse(tokenString)
		if err != nil {
			msg := "Session invalide"
			if errors.Is(err, auth.ErrExpiredToken) {
				msg = "Session expirée, reconnectez-vous"
			}
			response.Error(c, http.StatusUnauthorized, msg, nil)
			c.Abort()
			return
		}

		user, err := authUC.GetCurrentUser(c.Request.Context(), claims.Subject)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "Session invalide", nil)
			c.Abort()
			return
		}

		c.Set(string(domain.KeyUserID), user.ID)
		c.Set(string(domain.KeyUserEmail), user.Email)
		c.Set(string(domain.KeyUserRole), user.Role)

		c.Next()
	}
}

func bearerToken(header string) string {
	const prefix = "Bearer "
	if len(header) > len(prefix) && strings.EqualFold(header[:len(prefix)], prefix) {
		return strings.TrimSpace(header[len(prefix):])
	}
	return ""
}

// RequireRole lets through only users whose role is one of roles. It must run
// after AuthMiddleware.
func RequireRole(secLogger *security.SecurityLogger, roles ...string) gin.HandlerFunc {
	if secLogger == nil {
		secLogger = security.NopSecurityLogger()
	}
	return func(c *gin.Context) {
		role := c.GetString(string(domain.KeyUserRole))
		for _, r := range roles {
			if r == role {
				c.Next()
				return
			}
		}
		secLogger.LogAccessDenied(c.Request.Context(), security.EventForbiddenRole,
			c.GetString(string(domain.KeyUserID)), c.ClientIP(),
			c.GetString(string(domain.KeyRequestID)), c.FullPath())
		response.Error(c, http.StatusForbidden, "Accès réservé aux comptes "+strings.Join(roleLabels(roles), " ou "), nil)
		c.Abort()
	}
}

func roleLabels(roles []string) []string {
	out := make([]string, len(roles))
	for i, r := range roles {
		switch r {
		case domain.RoleCandidate:
			out[i] = "candidat"
		case domain.RoleEmployer:
			out[i] = "employeur"
		default:
			out[i] = r
		}
	}
	return out
}
