package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-admin-secret"

func adminRouter(secret string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	m := NewAdminMiddleware(secret)
	r := gin.New()
	r.GET("/api/admin/ping", m.RequireAdmin(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"pong": true})
	})
	return r
}

func signToken(t *testing.T, secret, role string, ttl time.Duration) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"role": role,
		"exp":  time.Now().Add(ttl).Unix(),
	})
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestRequireAdmin_CookieSession(t *testing.T) {
	r := adminRouter(testSecret)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/admin/ping", nil)
	req.AddCookie(&http.Cookie{Name: adminCookieName, Value: signToken(t, testSecret, "admin", time.Hour)})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireAdmin_BearerFallback(t *testing.T) {
	r := adminRouter(testSecret)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/admin/ping", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, testSecret, "admin", time.Hour))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireAdmin_Rejections(t *testing.T) {
	r := adminRouter(testSecret)

	tests := []struct {
		name    string
		prepare func(req *http.Request)
	}{
		{"no credentials", func(req *http.Request) {}},
		{"garbage token", func(req *http.Request) {
			req.AddCookie(&http.Cookie{Name: adminCookieName, Value: "not-a-jwt"})
		}},
		{"wrong signing key", func(req *http.Request) {
			req.AddCookie(&http.Cookie{Name: adminCookieName, Value: signToken(t, "other-secret", "admin", time.Hour)})
		}},
		{"expired token", func(req *http.Request) {
			req.AddCookie(&http.Cookie{Name: adminCookieName, Value: signToken(t, testSecret, "admin", -time.Hour)})
		}},
		{"missing admin role", func(req *http.Request) {
			req.AddCookie(&http.Cookie{Name: adminCookieName, Value: signToken(t, testSecret, "viewer", time.Hour)})
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/api/admin/ping", nil)
			tt.prepare(req)
			r.ServeHTTP(w, req)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}

func TestRequireAdmin_UnconfiguredSecret(t *testing.T) {
	r := adminRouter("")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/admin/ping", nil)
	req.AddCookie(&http.Cookie{Name: adminCookieName, Value: signToken(t, testSecret, "admin", time.Hour)})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
