package jwt_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/jonesrussell/north-cloud/content-creator/infrastructure/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(jwt.Middleware(testSecret))
	router.GET("/api/v1/options", func(c *gin.Context) {
		claims, _ := jwt.GetClaims(c)
		c.String(http.StatusOK, claims.Sub)
	})
	router.GET("/health", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return router
}

func sign(t *testing.T, secret string, expires time.Time) string {
	t.Helper()

	token := gojwt.NewWithClaims(gojwt.SigningMethodHS256, jwt.Claims{
		Sub: "dashboard",
		RegisteredClaims: gojwt.RegisteredClaims{
			ExpiresAt: gojwt.NewNumericDate(expires),
		},
	})
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestMiddleware(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		header     func(t *testing.T) string
		wantStatus int
	}{
		{"valid token", func(t *testing.T) string { return "Bearer " + sign(t, testSecret, time.Now().Add(time.Hour)) }, http.StatusOK},
		{"missing header", func(*testing.T) string { return "" }, http.StatusUnauthorized},
		{"wrong scheme", func(t *testing.T) string { return "Basic " + sign(t, testSecret, time.Now().Add(time.Hour)) }, http.StatusUnauthorized},
		{"wrong secret", func(t *testing.T) string { return "Bearer " + sign(t, "other", time.Now().Add(time.Hour)) }, http.StatusUnauthorized},
		{"expired", func(t *testing.T) string { return "Bearer " + sign(t, testSecret, time.Now().Add(-time.Hour)) }, http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodGet, "/api/v1/options", http.NoBody)
			if h := tt.header(t); h != "" {
				req.Header.Set("Authorization", h)
			}
			w := httptest.NewRecorder()
			newRouter().ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, "dashboard", w.Body.String())
			}
		})
	}
}

func TestMiddleware_HealthBypassesAuth(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	newRouter().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", http.NoBody))
	assert.Equal(t, http.StatusOK, w.Code)
}
