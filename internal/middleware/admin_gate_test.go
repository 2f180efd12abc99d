package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestGate_Authorize(t *testing.T) {
	g := NewGate("s3cret-admin-token")

	assert.True(t, g.Authorize("s3cret-admin-token"))
	assert.False(t, g.Authorize(""))
	assert.False(t, g.Authorize("s3cret-admin-toke"))
	assert.False(t, g.Authorize("s3cret-admin-token "))
	assert.False(t, NewGate("").Authorize(""))
}

func TestAdminOnly(t *testing.T) {
	router := gin.New()
	router.GET("/admin", AdminOnly(NewGate("s3cret"), nopLogger()), func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	tests := []struct {
		name   string
		header map[string]string
		want   int
	}{
		{"missing", nil, http.StatusUnauthorized},
		{"wrong header", map[string]string{AdminTokenHeader: "nope"}, http.StatusUnauthorized},
		{"header", map[string]string{AdminTokenHeader: "s3cret"}, http.StatusOK},
		{"bearer", map[string]string{"Authorization": "Bearer s3cret"}, http.StatusOK},
		{"lowercase bearer", map[string]string{"Authorization": "bearer s3cret"}, http.StatusOK},
		{"basic scheme", map[string]string{"Authorization": "Basic s3cret"}, http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/admin", nil)
			for k, v := range tt.header {
				req.Header.Set(k, v)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.want, w.Code)
			if tt.want == http.StatusUnauthorized {
				assert.Contains(t, w.Body.String(), `"UNAUTHORIZED"`)
			}
		})
	}
}
