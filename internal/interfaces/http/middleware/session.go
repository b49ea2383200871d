package middleware

import (
	"errors"
	"strings"

	"github.com/dealerdesk/backend/internal/domain/identity"
	"github.com/dealerdesk/backend/internal/infrastructure/auth"
	"github.com/dealerdesk/backend/internal/infrastructure/logger"
	"github.com/dealerdesk/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Session context keys
const (
	PrincipalKey  = "principal"
	ClaimsKey     = "session_claims"
	AuthHeaderKey = "Authorization"
	BearerPrefix  = "Bearer "
)

// DefaultSessionCookie is the cookie carrying the session token
const DefaultSessionCookie = "session"

// SessionConfig holds configuration for the session middleware
type SessionConfig struct {
	JWTService *auth.JWTService
	// Blacklist is optional; when nil revocation is not checked
	Blacklist  auth.TokenBlacklist
	CookieName string
	Logger     *zap.Logger
}

// SessionAuth authenticates the request from the session cookie, falling back
// to an Authorization: Bearer header. Revoked tokens are rejected. On success
// the principal and claims are stored in the gin context.
func SessionAuth(cfg SessionConfig) gin.HandlerFunc {
	if cfg.CookieName == "" {
		cfg.CookieName = DefaultSessionCookie
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}

	return func(c *gin.Context) {
		token := extractToken(c, cfg.CookieName)
		if token == "" {
			abortWithError(c, dto.ErrCodeUnauthorized, "Authentication required")
			return
		}

		claims, err := cfg.JWTService.Validate(token)
		if err != nil {
			cfg.Logger.Debug("Session rejected", zap.Error(err), zap.String("path", c.Request.URL.Path))
			abortWithError(c, sessionErrorCode(err), sessionErrorMessage(err))
			return
		}
		principal, err := claims.Principal()
		if err != nil {
			abortWithError(c, dto.ErrCodeTokenInvalid, "Invalid session")
			return
		}

		if cfg.Blacklist != nil && isRevoked(c, cfg, claims, principal) {
			abortWithError(c, dto.ErrCodeTokenRevoked, "Session has been revoked")
			return
		}

		c.Set(ClaimsKey, claims)
		c.Set(PrincipalKey, principal)

		companyID := ""
		if principal.HasTenant() {
			companyID = principal.CompanyID.String()
		}
		ctx, _ := logger.WithPrincipal(c.Request.Context(), logger.FromContext(c.Request.Context()),
			principal.ID.String(), string(principal.Role), companyID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

func extractToken(c *gin.Context, cookieName string) string {
	if cookie, err := c.Cookie(cookieName); err == nil && cookie != "" {
		return cookie
	}
	header := c.GetHeader(AuthHeaderKey)
	if strings.HasPrefix(header, BearerPrefix) {
		return strings.TrimSpace(strings.TrimPrefix(header, BearerPrefix))
	}
	return ""
}

// isRevoked checks the token id, then the principal and its company as
// invalidation subjects. Store failures are logged and the request proceeds.
func isRevoked(c *gin.Context, cfg SessionConfig, claims *auth.Claims, p identity.Principal) bool {
	ctx := c.Request.Context()

	blacklisted, err := cfg.Blacklist.IsBlacklisted(ctx, claims.ID)
	if err != nil {
		cfg.Logger.Error("Failed to check token blacklist", zap.String("jti", claims.ID), zap.Error(err))
	} else if blacklisted {
		return true
	}

	subjects := []string{p.ID.String()}
	if p.HasTenant() {
		subjects = append(subjects, auth.CompanySubject(p.CompanyID.String()))
	}
	issuedAt := claims.GetIssuedAtTime()
	for _, subject := range subjects {
		invalidated, err := cfg.Blacklist.IsSubjectInvalidated(ctx, subject, issuedAt)
		if err != nil {
			cfg.Logger.Error("Failed to check session invalidation", zap.String("subject", subject), zap.Error(err))
			continue
		}
		if invalidated {
			return true
		}
	}
	return false
}

func sessionErrorCode(err error) string {
	switch {
	case errors.Is(err, auth.ErrExpiredToken):
		return dto.ErrCodeTokenExpired
	case errors.Is(err, auth.ErrTokenRevoked):
		return dto.ErrCodeTokenRevoked
	}
	return dto.ErrCodeTokenInvalid
}

func sessionErrorMessage(err error) string {
	switch {
	case errors.Is(err, auth.ErrExpiredToken):
		return "Session has expired"
	case errors.Is(err, auth.ErrTokenNotYetValid):
		return "Session is not yet valid"
	}
	return "Invalid session"
}

// GetPrincipal returns the authenticated principal stored by SessionAuth
func GetPrincipal(c *gin.Context) (identity.Principal, bool) {
	if v, ok := c.Get(PrincipalKey); ok {
		if p, ok := v.(identity.Principal); ok {
			return p, true
		}
	}
	return identity.Principal{}, false
}

// GetClaims returns the validated session claims, or nil
func GetClaims(c *gin.Context) *auth.Claims {
	if v, ok := c.Get(ClaimsKey); ok {
		if claims, ok := v.(*auth.Claims); ok {
			return claims
		}
	}
	return nil
}
