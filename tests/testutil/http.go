package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dealerdesk/backend/internal/domain/identity"
	"github.com/dealerdesk/backend/internal/interfaces/http/dto"
	"github.com/dealerdesk/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Endpoint mounts a single handler on a gin route pattern, so :id style path
// parameters bind exactly as they do behind the API router.
type Endpoint struct {
	Method  string
	Route   string
	Handler gin.HandlerFunc
}

// HTTPTestCase is one request sent to an Endpoint.
type HTTPTestCase struct {
	Name string
	// Path is the concrete request path, e.g. /customers/<uuid>/payments.
	Path string
	// Principal is stored in the context the way SessionAuth does. Nil sends
	// the request unauthenticated.
	Principal *identity.Principal
	Body      any
	// RawBody is sent verbatim when Body is nil.
	RawBody        string
	Headers        map[string]string
	ExpectedStatus int
	// ExpectedCode is the error code of the response envelope. Empty expects
	// a success envelope.
	ExpectedCode string
	Validate     func(t *testing.T, w *httptest.ResponseRecorder)
}

// RunHTTPTestCases runs each case as a subtest against the endpoint.
func RunHTTPTestCases(t *testing.T, ep Endpoint, cases []HTTPTestCase) {
	t.Helper()

	for _, tc := range cases {
		t.Run(tc.Name, func(t *testing.T) {
			w := ServeHTTPTestCase(t, ep, tc)
			if tc.ExpectedStatus != 0 {
				assert.Equal(t, tc.ExpectedStatus, w.Code, "Unexpected status code: %s", w.Body.String())
			}
			if tc.ExpectedCode != "" {
				AssertErrorResponse(t, w, tc.ExpectedCode)
			} else {
				AssertSuccessResponse(t, w)
			}
			if tc.Validate != nil {
				tc.Validate(t, w)
			}
		})
	}
}

// ServeHTTPTestCase sends the request of tc through a fresh engine holding
// only ep and returns the recorded response. No assertions are made.
func ServeHTTPTestCase(t *testing.T, ep Endpoint, tc HTTPTestCase) *httptest.ResponseRecorder {
	t.Helper()

	method := ep.Method
	if method == "" {
		method = http.MethodGet
	}
	engine := gin.New()
	principal := tc.Principal
	engine.Handle(method, ep.Route, func(c *gin.Context) {
		if principal != nil {
			c.Set(middleware.PrincipalKey, *principal)
		}
		c.Next()
	}, ep.Handler)

	var body io.Reader
	switch {
	case tc.Body != nil:
		body = ToJSONReader(t, tc.Body)
	case tc.RawBody != "":
		body = strings.NewReader(tc.RawBody)
	}
	path := tc.Path
	if path == "" {
		path = ep.Route
	}
	req := httptest.NewRequest(method, path, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range tc.Headers {
		req.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

// DecodeEnvelope parses the standard response envelope.
func DecodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) dto.Response {
	t.Helper()

	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), "Failed to parse response envelope")
	return resp
}

// JSONData decodes the data field of a success envelope into T.
func JSONData[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()

	var envelope struct {
		Success bool            `json:"success"`
		Data    json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope), "Failed to parse response envelope")
	require.True(t, envelope.Success, "Expected a success envelope: %s", w.Body.String())

	var result T
	require.NoError(t, json.Unmarshal(envelope.Data, &result), "Failed to parse response data")
	return result
}

// AssertSuccessResponse asserts the response is a success envelope.
func AssertSuccessResponse(t *testing.T, w *httptest.ResponseRecorder) {
	t.Helper()

	resp := DecodeEnvelope(t, w)
	assert.True(t, resp.Success, "Expected success to be true: %s", w.Body.String())
	assert.Nil(t, resp.Error, "Expected no error")
}

// AssertErrorResponse asserts the response is an error envelope carrying the
// given code, and that its status matches the one the code maps to.
func AssertErrorResponse(t *testing.T, w *httptest.ResponseRecorder, expectedCode string) {
	t.Helper()

	resp := DecodeEnvelope(t, w)
	assert.False(t, resp.Success, "Expected success to be false")
	require.NotNil(t, resp.Error, "Expected error object in response")
	assert.Equal(t, expectedCode, resp.Error.Code, "Unexpected error code")
	assert.NotEmpty(t, resp.Error.Message, "Expected an error message")
	assert.Equal(t, dto.GetHTTPStatus(expectedCode), w.Code, "Status does not match the error code")
}

// ToJSONReader converts a value to a JSON io.Reader.
func ToJSONReader(t *testing.T, v any) io.Reader {
	t.Helper()

	data, err := json.Marshal(v)
	require.NoError(t, err, "Failed to marshal to JSON")
	return bytes.NewReader(data)
}

// Principal returns a pointer to p for use in HTTPTestCase.
func Principal(p identity.Principal) *identity.Principal {
	return &p
}
