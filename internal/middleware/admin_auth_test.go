package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func adminTestRouter(password string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/admin", AdminAuth(password), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true})
	})
	return r
}

func TestAdminAuth(t *testing.T) {
	tests := []struct {
		name           string
		password       string
		header         string
		expectedStatus int
	}{
		{name: "gate disabled when unconfigured", password: "", header: "", expectedStatus: http.StatusOK},
		{name: "correct password", password: "hunter2", header: "hunter2", expectedStatus: http.StatusOK},
		{name: "wrong password", password: "hunter2", header: "nope", expectedStatus: http.StatusUnauthorized},
		{name: "missing header", password: "hunter2", header: "", expectedStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := adminTestRouter(tt.password)

			req := httptest.NewRequest(http.MethodPost, "/admin", nil)
			if tt.header != "" {
				req.Header.Set("X-Admin-Password", tt.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}
