package middleware

import (
	"slices"

	"github.com/dealerdesk/backend/internal/domain/identity"
	"github.com/dealerdesk/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
)

// RequireRoles allows the request only for the listed roles
func RequireRoles(roles ...identity.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := GetPrincipal(c)
		if !ok {
			abortWithError(c, dto.ErrCodeUnauthorized, "Authentication required")
			return
		}
		if !slices.Contains(roles, p.Role) {
			abortWithError(c, dto.ErrCodeForbidden, "Your role cannot access this resource")
			return
		}
		c.Next()
	}
}

// RequireTenant allows company and sub-user sessions, which carry a company id
func RequireTenant() gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := GetPrincipal(c)
		if !ok {
			abortWithError(c, dto.ErrCodeUnauthorized, "Authentication required")
			return
		}
		if !p.HasTenant() {
			abortWithError(c, dto.ErrCodeForbidden, "A company session is required")
			return
		}
		c.Next()
	}
}

// RequireAccess checks a capability flag. Company sessions hold every flag;
// sub-users need the flag granted.
func RequireAccess(flag identity.AccessFlag) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := GetPrincipal(c)
		if !ok {
			abortWithError(c, dto.ErrCodeUnauthorized, "Authentication required")
			return
		}
		if !p.Can(flag) {
			abortWithError(c, dto.ErrCodeForbidden, "Missing access: "+string(flag))
			return
		}
		c.Next()
	}
}

// HideFromAnonymous answers requests that carry no credentials at all with the
// 404 of an unknown path. Placed ahead of SessionAuth on admin routes so that
// anonymous callers cannot tell them from missing ones.
func HideFromAnonymous(cookieName string) gin.HandlerFunc {
	if cookieName == "" {
		cookieName = DefaultSessionCookie
	}
	return func(c *gin.Context) {
		if extractToken(c, cookieName) == "" {
			abortWithError(c, dto.ErrCodeNotFound, "Resource not found")
			return
		}
		c.Next()
	}
}

// AdminOnly hides the route from anyone but admins: other sessions get the
// same 404 as an unknown path.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := GetPrincipal(c)
		if !ok || !p.IsAdmin() {
			abortWithError(c, dto.ErrCodeNotFound, "Resource not found")
			return
		}
		c.Next()
	}
}
