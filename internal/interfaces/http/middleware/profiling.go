package middleware

import (
	"context"
	"strings"

	"github.com/dealerdesk/backend/internal/infrastructure/telemetry"
	"github.com/gin-gonic/gin"
)

// profilingSkipPrefixes are paths not worth labelling
var profilingSkipPrefixes = []string{"/health", "/swagger", "/api/v1/ping"}

// Profiling attaches route, method and tenant labels to the profiling samples
// taken while the request runs. Install it after SessionAuth so the tenant
// is known.
func Profiling(enabled bool) gin.HandlerFunc {
	if !enabled {
		return func(c *gin.Context) { c.Next() }
	}
	return func(c *gin.Context) {
		for _, prefix := range profilingSkipPrefixes {
			if strings.HasPrefix(c.Request.URL.Path, prefix) {
				c.Next()
				return
			}
		}
		telemetry.WithProfilingLabels(c.Request.Context(), profilingLabels(c), func(ctx context.Context) {
			c.Request = c.Request.WithContext(ctx)
			c.Next()
		})
	}
}

func profilingLabels(c *gin.Context) map[string]string {
	labels := map[string]string{
		telemetry.ProfilingLabelMethod: c.Request.Method,
		telemetry.ProfilingLabelRoute:  c.FullPath(),
	}
	if p, ok := GetPrincipal(c); ok {
		labels[telemetry.ProfilingLabelRole] = string(p.Role)
		if p.HasTenant() {
			labels[telemetry.ProfilingLabelCompanyID] = p.CompanyID.String()
		}
	}
	return labels
}
