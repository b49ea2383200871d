package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPinger struct{ err error }

func (s stubPinger) Ping() error { return s.err }

func TestSystemHandler_Health(t *testing.T) {
	tests := []struct {
		name       string
		db         Pinger
		wantStatus int
		wantHealth string
		wantDB     string
	}{
		{"no database configured", nil, http.StatusOK, "healthy", "ok"},
		{"database reachable", stubPinger{}, http.StatusOK, "healthy", "ok"},
		{"database down", stubPinger{err: errors.New("dial tcp: refused")}, http.StatusServiceUnavailable, "unhealthy", "error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewSystemHandler("dealerdesk", "1.2.3", tt.db)
			w := runHandler(http.MethodGet, "/health", "", nil, h.Health)

			assert.Equal(t, tt.wantStatus, w.Code)
			var resp struct {
				Data HealthResponse `json:"data"`
			}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantHealth, resp.Data.Status)
			assert.Equal(t, tt.wantDB, resp.Data.Database)
			assert.Equal(t, "1.2.3", resp.Data.Version)
		})
	}
}

func TestSystemHandler_Ping(t *testing.T) {
	h := NewSystemHandler("dealerdesk", "1.2.3", nil)
	w := runHandler(http.MethodGet, "/ping", "", nil, h.Ping)
	assert.Equal(t, http.StatusOK, w.Code)
}
