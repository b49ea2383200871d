package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dealerdesk/backend/internal/domain/identity"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func accessRouter(p *identity.Principal, guard gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.Use(func(c *gin.Context) {
		if p != nil {
			c.Set(PrincipalKey, *p)
		}
		c.Next()
	})
	r.GET("/x", guard, func(c *gin.Context) { c.Status(http.StatusOK) })
	return r
}

func serve(r *gin.Engine) int {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
	return w.Code
}

func TestAccessGuards(t *testing.T) {
	companyID := uuid.New()
	admin := identity.Principal{ID: uuid.New(), Role: identity.RoleAdmin}
	company := identity.Principal{ID: companyID, Role: identity.RoleCompany, CompanyID: companyID, Access: identity.FullAccess()}
	sub := identity.Principal{ID: uuid.New(), Role: identity.RoleSubUser, CompanyID: companyID, Access: identity.Access{Investors: true}}

	tests := []struct {
		name   string
		p      *identity.Principal
		guard  gin.HandlerFunc
		status int
	}{
		{"roles: no session", nil, RequireRoles(identity.RoleCompany), http.StatusUnauthorized},
		{"roles: wrong role", &sub, RequireRoles(identity.RoleCompany, identity.RoleAdmin), http.StatusForbidden},
		{"roles: allowed", &admin, RequireRoles(identity.RoleCompany, identity.RoleAdmin), http.StatusOK},
		{"tenant: admin rejected", &admin, RequireTenant(), http.StatusForbidden},
		{"tenant: sub-user", &sub, RequireTenant(), http.StatusOK},
		{"access: company holds every flag", &company, RequireAccess(identity.AccessCarManagement), http.StatusOK},
		{"access: sub-user granted", &sub, RequireAccess(identity.AccessInvestors), http.StatusOK},
		{"access: sub-user missing flag", &sub, RequireAccess(identity.AccessCarManagement), http.StatusForbidden},
		{"access: admin holds no tenant flag", &admin, RequireAccess(identity.AccessAnalytics), http.StatusForbidden},
		{"admin only: admin", &admin, AdminOnly(), http.StatusOK},
		{"admin only: company sees 404", &company, AdminOnly(), http.StatusNotFound},
		{"admin only: anonymous sees 404", nil, AdminOnly(), http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.status, serve(accessRouter(tt.p, tt.guard)))
		})
	}
}

func TestHideFromAnonymous(t *testing.T) {
	r := gin.New()
	r.GET("/x", HideFromAnonymous("dealer_session"), func(c *gin.Context) { c.Status(http.StatusOK) })

	send := func(req *http.Request) int {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusNotFound, send(httptest.NewRequest(http.MethodGet, "/x", nil)))

	withCookie := httptest.NewRequest(http.MethodGet, "/x", nil)
	withCookie.AddCookie(&http.Cookie{Name: "dealer_session", Value: "tok"})
	assert.Equal(t, http.StatusOK, send(withCookie))

	withBearer := httptest.NewRequest(http.MethodGet, "/x", nil)
	withBearer.Header.Set("Authorization", "Bearer tok")
	assert.Equal(t, http.StatusOK, send(withBearer))

	otherCookie := httptest.NewRequest(http.MethodGet, "/x", nil)
	otherCookie.AddCookie(&http.Cookie{Name: "session", Value: "tok"})
	assert.Equal(t, http.StatusNotFound, send(otherCookie))
}
