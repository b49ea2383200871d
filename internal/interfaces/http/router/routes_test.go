package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/dealerdesk/backend/docs"
	"github.com/dealerdesk/backend/internal/domain/identity"
	"github.com/dealerdesk/backend/internal/infrastructure/auth"
	"github.com/dealerdesk/backend/internal/infrastructure/config"
	"github.com/dealerdesk/backend/internal/interfaces/http/handler"
	"github.com/dealerdesk/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag/v2"
	"go.uber.org/zap/zaptest"
)

// newAPI mounts every route with handlers whose services are unset. Requests
// that pass the guards would panic inside a handler, so the tests only send
// requests that a guard is expected to stop.
func newAPI(t *testing.T) (*gin.Engine, *auth.JWTService) {
	t.Helper()
	jwtService := auth.NewJWTService(config.JWTConfig{
		Secret:     "router-test-secret-at-least-32-chars",
		Expiration: time.Hour,
		Issuer:     "dealerdesk-test",
	})
	system := handler.NewSystemHandler("dealerdesk", "test", nil)
	engine, err := NewEngine(EngineConfig{
		Logger:  zaptest.NewLogger(t),
		CORS:    middleware.DefaultCORSConfig(),
		Swagger: middleware.SwaggerConfig{Enabled: false},
	}, system)
	require.NoError(t, err)

	base := handler.NewBaseHandler(true)
	h := Handlers{
		Auth:     handler.NewAuthHandler(base, nil, nil, config.CookieConfig{}, time.Hour),
		Company:  handler.NewCompanyHandler(base, nil, 0),
		SubUser:  handler.NewSubUserHandler(base, nil),
		User:     handler.NewUserHandler(base, nil),
		Batch:    handler.NewBatchHandler(base, nil, nil),
		Car:      handler.NewCarHandler(base, nil),
		Investor: handler.NewInvestorHandler(base, nil),
		Customer: handler.NewCustomerHandler(base, nil),
		Report:   handler.NewReportHandler(base, nil, nil),
		System:   system,
	}
	guards := Guards{
		Session: middleware.SessionAuth(middleware.SessionConfig{
			JWTService: jwtService,
			Blacklist:  auth.NewInMemoryTokenBlacklist(),
			Logger:     zaptest.NewLogger(t),
		}),
	}
	NewRouter(engine).Register(Routes(h, guards)...).Setup()
	return engine, jwtService
}

func token(t *testing.T, jwtService *auth.JWTService, p identity.Principal) string {
	t.Helper()
	tok, err := jwtService.Issue(p)
	require.NoError(t, err)
	return tok.Token
}

func call(engine *gin.Engine, method, path, bearer string) (int, string) {
	req := httptest.NewRequest(method, path, nil)
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	var body struct {
		Error *struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if body.Error == nil {
		return w.Code, ""
	}
	return w.Code, body.Error.Code
}

func TestRoutes_Guards(t *testing.T) {
	engine, jwtService := newAPI(t)

	companyID := uuid.New()
	admin := token(t, jwtService, identity.Principal{ID: uuid.New(), Role: identity.RoleAdmin})
	company := token(t, jwtService, identity.Principal{
		ID: companyID, Role: identity.RoleCompany, CompanyID: companyID, Access: identity.FullAccess(),
	})
	clerk := token(t, jwtService, identity.Principal{
		ID: uuid.New(), Role: identity.RoleSubUser, CompanyID: companyID,
		Access: identity.Access{SalesAndPayments: true},
	})
	someID := uuid.NewString()

	tests := []struct {
		name       string
		method     string
		path       string
		bearer     string
		wantStatus int
		wantCode   string
	}{
		{"batches need a session", http.MethodGet, "/api/v1/batches", "", http.StatusUnauthorized, "UNAUTHORIZED"},
		{"garbage token", http.MethodGet, "/api/v1/cars", "not-a-jwt", http.StatusUnauthorized, "TOKEN_INVALID"},
		{"admin has no tenant", http.MethodGet, "/api/v1/batches", admin, http.StatusForbidden, "FORBIDDEN"},
		{"sub-user without carManagement", http.MethodGet, "/api/v1/cars", clerk, http.StatusForbidden, "FORBIDDEN"},
		{"sub-user without investors", http.MethodPost, "/api/v1/investors", clerk, http.StatusForbidden, "FORBIDDEN"},
		{"sub-user without dashboardUnits", http.MethodGet, "/api/v1/dashboard/summary", clerk, http.StatusForbidden, "FORBIDDEN"},
		{"sub-user without analytics", http.MethodGet, "/api/v1/analytics/batches", clerk, http.StatusForbidden, "FORBIDDEN"},
		{"sweep needs carManagement", http.MethodPost, "/api/v1/batches/recalculate/all", clerk, http.StatusForbidden, "FORBIDDEN"},
		{"company list hidden from companies", http.MethodGet, "/api/v1/companies", company, http.StatusNotFound, "NOT_FOUND"},
		{"company delete hidden from companies", http.MethodDelete, "/api/v1/companies/" + someID, company, http.StatusNotFound, "NOT_FOUND"},
		{"company status hidden from sub-users", http.MethodPatch, "/api/v1/companies/" + someID + "/status", clerk, http.StatusNotFound, "NOT_FOUND"},
		{"site users hidden from companies", http.MethodGet, "/api/v1/users", company, http.StatusNotFound, "NOT_FOUND"},
		{"site users hidden from anonymous callers", http.MethodGet, "/api/v1/users", "", http.StatusNotFound, "NOT_FOUND"},
		{"company list hidden from anonymous callers", http.MethodGet, "/api/v1/companies", "", http.StatusNotFound, "NOT_FOUND"},
		{"admin sweep hidden from anonymous callers", http.MethodPost, "/api/v1/admin/batches/recalculate/total-sale-price", "", http.StatusNotFound, "NOT_FOUND"},
		{"company profile needs a session", http.MethodGet, "/api/v1/companies/" + someID, "", http.StatusUnauthorized, "UNAUTHORIZED"},
		{"bad token on admin route is still rejected", http.MethodGet, "/api/v1/users", "not-a-jwt", http.StatusUnauthorized, "TOKEN_INVALID"},
		{"admin sweep hidden from companies", http.MethodPost, "/api/v1/admin/batches/recalculate/total-cost", company, http.StatusNotFound, "NOT_FOUND"},
		{"sub-users cannot list sub-users", http.MethodGet, "/api/v1/subusers", clerk, http.StatusForbidden, "FORBIDDEN"},
		{"subusers/me is for sub-users", http.MethodGet, "/api/v1/subusers/me", company, http.StatusForbidden, "FORBIDDEN"},
		{"admins have no PIN", http.MethodPost, "/api/v1/auth/validate-pin", admin, http.StatusForbidden, "FORBIDDEN"},
		{"logout needs a session", http.MethodPost, "/api/v1/auth/logout", "", http.StatusUnauthorized, "UNAUTHORIZED"},
		{"unknown route", http.MethodGet, "/api/v1/nope", "", http.StatusNotFound, "NOT_FOUND"},
		{"swagger disabled", http.MethodGet, "/swagger/index.html", "", http.StatusNotFound, "NOT_FOUND"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, code := call(engine, tt.method, tt.path, tt.bearer)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantCode, code)
		})
	}
}

func TestRoutes_PublicEndpoints(t *testing.T) {
	engine, _ := newAPI(t)

	status, _ := call(engine, http.MethodGet, "/api/v1/ping", "")
	assert.Equal(t, http.StatusOK, status)

	status, _ = call(engine, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, status)
}

func TestRoutes_LoginValidatesBody(t *testing.T) {
	engine, _ := newAPI(t)

	status, code := call(engine, http.MethodPost, "/api/v1/auth/login", "")
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "INVALID_JSON", code)
}

func TestRoutes_Documented(t *testing.T) {
	engine, _ := newAPI(t)

	raw, err := swag.ReadDoc(docs.SwaggerInfo.InstanceName())
	require.NoError(t, err)
	var doc struct {
		Paths map[string]map[string]json.RawMessage `json:"paths"`
	}
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))

	param := regexp.MustCompile(`:(\w+)`)
	for _, route := range engine.Routes() {
		path, ok := strings.CutPrefix(route.Path, "/api/v1")
		if !ok {
			continue
		}
		path = param.ReplaceAllString(path, "{$1}")
		ops, found := doc.Paths[path]
		if !assert.True(t, found, "undocumented path %s", path) {
			continue
		}
		_, found = ops[strings.ToLower(route.Method)]
		assert.True(t, found, "undocumented %s %s", route.Method, path)
	}
	assert.Contains(t, doc.Paths, "/customers/{id}/payments/{paymentId}")
}
