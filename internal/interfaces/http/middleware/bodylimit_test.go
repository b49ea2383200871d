package middleware

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestBodyLimit(t *testing.T) {
	r := gin.New()
	r.Use(BodyLimit(100, 1000))
	r.POST("/test", func(c *gin.Context) {
		if _, err := io.ReadAll(c.Request.Body); err != nil {
			c.Status(http.StatusRequestEntityTooLarge)
			return
		}
		c.Status(http.StatusOK)
	})

	post := func(body string, contentType string, declared int64) int {
		req := httptest.NewRequest(http.MethodPost, "/test", bytes.NewReader([]byte(body)))
		req.Header.Set("Content-Type", contentType)
		req.ContentLength = declared
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusOK, post("small", "application/json", 5))
	assert.Equal(t, http.StatusRequestEntityTooLarge, post(strings.Repeat("x", 200), "application/json", 200))
	// undeclared length is still capped while reading
	assert.Equal(t, http.StatusRequestEntityTooLarge, post(strings.Repeat("x", 200), "application/json", -1))
	assert.Equal(t, http.StatusOK, post(strings.Repeat("x", 500), "multipart/form-data; boundary=x", 500))
	assert.Equal(t, http.StatusRequestEntityTooLarge, post(strings.Repeat("x", 1500), "multipart/form-data; boundary=x", 1500))
}
