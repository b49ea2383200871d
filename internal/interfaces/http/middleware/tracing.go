package middleware

import (
	"net/http"

	"github.com/dealerdesk/backend/internal/infrastructure/telemetry"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// TracingConfig holds configuration for the tracing middleware
type TracingConfig struct {
	ServiceName string
	Enabled     bool
}

// Tracing returns the otelgin server span middleware followed by a handler
// that decorates the span. Both must be installed, in order, before any
// route group that authenticates.
func Tracing(cfg TracingConfig) []gin.HandlerFunc {
	if !cfg.Enabled {
		return nil
	}
	return []gin.HandlerFunc{otelgin.Middleware(cfg.ServiceName), spanDecorator()}
}

// spanDecorator tags the request span with the request id, and once the
// handler has run with the authenticated principal. 5xx responses mark the
// span as failed.
func spanDecorator() gin.HandlerFunc {
	return func(c *gin.Context) {
		span := trace.SpanFromContext(c.Request.Context())
		if !span.IsRecording() {
			c.Next()
			return
		}
		if id := c.GetString(RequestIDKey); id != "" {
			span.SetAttributes(attribute.String("request_id", id))
		}

		c.Next()

		if p, ok := GetPrincipal(c); ok {
			span.SetAttributes(
				attribute.String("principal_id", p.ID.String()),
				attribute.String("role", string(p.Role)),
			)
			if p.HasTenant() {
				span.SetAttributes(attribute.String(telemetry.AttrCompanyID, p.CompanyID.String()))
			}
		}
		if status := c.Writer.Status(); status >= http.StatusInternalServerError {
			span.SetStatus(codes.Error, http.StatusText(status))
		}
	}
}
