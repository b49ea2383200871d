package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dealerdesk/backend/internal/domain/identity"
	"github.com/dealerdesk/backend/internal/domain/shared"
	"github.com/dealerdesk/backend/internal/interfaces/http/dto"
	"github.com/dealerdesk/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
	middleware.SetupValidator()
}

func decode(t *testing.T, w *httptest.ResponseRecorder) dto.Response {
	t.Helper()
	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func runHandler(method, path, body string, setup func(c *gin.Context), h gin.HandlerFunc) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		c.Request.Header.Set("Content-Type", "application/json")
	}
	if setup != nil {
		setup(c)
	}
	h(c)
	return w
}

func TestHandleError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		expose     bool
		wantStatus int
		wantCode   string
		wantCause  string
	}{
		{"not found suffix", shared.NewDomainError("BATCH_NOT_FOUND", "Batch not found"), false, http.StatusNotFound, "BATCH_NOT_FOUND", ""},
		{"conflict suffix", shared.NewDomainError("CHASSIS_ALREADY_EXISTS", "Chassis exists"), false, http.StatusConflict, "CHASSIS_ALREADY_EXISTS", ""},
		{"unknown code is a client error", shared.NewDomainError("PAYMENT_EXCEEDS_REMAINING", "Too much"), false, http.StatusBadRequest, "PAYMENT_EXCEEDS_REMAINING", ""},
		{"wrapped domain error", fmt.Errorf("saving: %w", shared.NewDomainError("COMPANY_INACTIVE", "Inactive")), false, http.StatusForbidden, "COMPANY_INACTIVE", ""},
		{"plain error hides cause", errors.New("pq: connection refused"), false, http.StatusInternalServerError, dto.ErrCodeInternal, ""},
		{"plain error exposes cause", errors.New("pq: connection refused"), true, http.StatusInternalServerError, dto.ErrCodeInternal, "pq: connection refused"},
		{"internal domain code", shared.WrapDomainError("DB_ERROR", "Database failure", errors.New("timeout")), true, http.StatusInternalServerError, dto.ErrCodeInternal, "Database failure: timeout"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewBaseHandler(tt.expose)
			w := runHandler(http.MethodGet, "/", "", nil, func(c *gin.Context) { h.HandleError(c, tt.err) })

			assert.Equal(t, tt.wantStatus, w.Code)
			resp := decode(t, w)
			assert.False(t, resp.Success)
			require.NotNil(t, resp.Error)
			assert.Equal(t, tt.wantCode, resp.Error.Code)
			assert.Equal(t, tt.wantCause, resp.Error.Cause)
		})
	}
}

func TestHandleError_NilIsNoop(t *testing.T) {
	h := NewBaseHandler(false)
	w := runHandler(http.MethodGet, "/", "", nil, func(c *gin.Context) { h.HandleError(c, nil) })
	assert.Empty(t, w.Body.String())
}

func TestPage(t *testing.T) {
	page := shared.NewPaginated([]string{"a", "b"}, 42, 2, 20)
	w := runHandler(http.MethodGet, "/", "", nil, func(c *gin.Context) { Page(c, &page) })

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decode(t, w)
	require.NotNil(t, resp.Meta)
	assert.Equal(t, int64(42), resp.Meta.Total)
	assert.Equal(t, 3, resp.Meta.TotalPages)
	assert.Equal(t, []any{"a", "b"}, resp.Data)
}

func TestTenantAndID(t *testing.T) {
	h := NewBaseHandler(false)
	companyID := uuid.New()
	id := uuid.New()
	withPrincipal := func(p identity.Principal, param string) func(c *gin.Context) {
		return func(c *gin.Context) {
			c.Set(middleware.PrincipalKey, p)
			c.Params = gin.Params{{Key: "id", Value: param}}
		}
	}

	t.Run("resolves both", func(t *testing.T) {
		var gotCompany, gotID uuid.UUID
		p := identity.Principal{ID: companyID, Role: identity.RoleCompany, CompanyID: companyID}
		runHandler(http.MethodGet, "/", "", withPrincipal(p, id.String()), func(c *gin.Context) {
			var ok bool
			gotCompany, gotID, ok = h.tenantAndID(c)
			assert.True(t, ok)
		})
		assert.Equal(t, companyID, gotCompany)
		assert.Equal(t, id, gotID)
	})

	t.Run("malformed id is not found", func(t *testing.T) {
		p := identity.Principal{ID: companyID, Role: identity.RoleCompany, CompanyID: companyID}
		w := runHandler(http.MethodGet, "/", "", withPrincipal(p, "42"), func(c *gin.Context) {
			_, _, ok := h.tenantAndID(c)
			assert.False(t, ok)
		})
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("admin has no tenant", func(t *testing.T) {
		p := identity.Principal{ID: uuid.New(), Role: identity.RoleAdmin}
		w := runHandler(http.MethodGet, "/", "", withPrincipal(p, id.String()), func(c *gin.Context) {
			_, _, ok := h.tenantAndID(c)
			assert.False(t, ok)
		})
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("missing session", func(t *testing.T) {
		w := runHandler(http.MethodGet, "/", "", nil, func(c *gin.Context) {
			_, _, ok := h.tenantAndID(c)
			assert.False(t, ok)
		})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestListFilter(t *testing.T) {
	f := listFilter(dto.ListRequest{})
	assert.Equal(t, 1, f.Page)
	assert.Equal(t, shared.DefaultPageSize, f.PageSize)
	assert.Equal(t, "created_at", f.OrderBy)
	assert.Equal(t, "desc", f.OrderDir)

	f = listFilter(dto.ListRequest{Page: 3, PageSize: 50, OrderBy: "batch_no", OrderDir: "asc", Search: "  corolla "})
	assert.Equal(t, 3, f.Page)
	assert.Equal(t, 50, f.PageSize)
	assert.Equal(t, "batch_no", f.OrderBy)
	assert.Equal(t, "asc", f.OrderDir)
	assert.Equal(t, "corolla", f.Search)
	assert.Equal(t, 100, f.Offset())
}

func TestBindJSON_Validation(t *testing.T) {
	h := NewBaseHandler(false)
	bind := func(body string) *httptest.ResponseRecorder {
		return runHandler(http.MethodPost, "/", body, nil, func(c *gin.Context) {
			var req CreateCustomerRequest
			if h.bindJSON(c, &req) {
				h.Success(c, nil)
			}
		})
	}

	t.Run("nested fields are reported by path", func(t *testing.T) {
		w := bind(`{"buyer":{},"vehicle":{"chassisNumber":"NZE141-1"},"salePrice":"0"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		resp := decode(t, w)
		require.NotNil(t, resp.Error)
		assert.Equal(t, dto.ErrCodeValidation, resp.Error.Code)

		fields := map[string]bool{}
		for _, d := range resp.Error.Details {
			fields[d.Field] = true
		}
		assert.True(t, fields["buyer.name"])
		assert.True(t, fields["salePrice"])
		assert.False(t, fields["vehicle.chassisNumber"])
	})

	t.Run("unknown payment method", func(t *testing.T) {
		w := bind(`{"buyer":{"name":"A"},"vehicle":{"chassisNumber":"X1"},"salePrice":"100",
			"initialPayment":{"amountPaid":"10","paymentMethod":{"type":"Crypto"}}}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		resp := decode(t, w)
		require.NotEmpty(t, resp.Error.Details)
		assert.Equal(t, "initialPayment.paymentMethod.type", resp.Error.Details[0].Field)
	})

	t.Run("malformed json", func(t *testing.T) {
		w := bind(`{"buyer":`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, dto.ErrCodeInvalidJSON, decode(t, w).Error.Code)
	})

	t.Run("valid body", func(t *testing.T) {
		w := bind(`{"buyer":{"name":"A"},"vehicle":{"chassisNumber":"X1"},"salePrice":"1500000",
			"initialPayment":{"amountPaid":"500000","paymentMethod":{"type":"BankDeposit"}}}`)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestRequestConversions(t *testing.T) {
	req := UpdateSubUserRequest{Access: &AccessRequest{Analytics: true, Investors: true}}
	in := req.input()
	require.NotNil(t, in.Access)
	assert.True(t, in.Access.Analytics)
	assert.True(t, in.Access.Investors)
	assert.False(t, in.Access.CarManagement)

	assert.Nil(t, UpdateSubUserRequest{}.input().Access)
	assert.Nil(t, CreateCustomerRequest{}.input().InitialPayment)
}
