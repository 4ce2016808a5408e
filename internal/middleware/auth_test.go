package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/legalpulse/survey-api/pkg/jwt"
	"github.com/legalpulse/survey-api/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	// Set Gin to test mode
	gin.SetMode(gin.TestMode)

	// Initialize logger for tests
	if err := logger.Initialize(logger.Config{Level: "error", Environment: "development"}); err != nil {
		panic(err)
	}
}

const testSecret = "test-secret-key-for-admin-tokens"

func newAdminRouter(tm *jwt.TokenManager, called *bool) *gin.Engine {
	router := gin.New()
	router.Use(AdminAuthMiddleware(tm))
	router.GET("/admin", func(c *gin.Context) {
		*called = true
		c.String(http.StatusOK, c.GetString(AdminSubjectContextKey))
	})
	return router
}

func TestAdminAuthMiddleware(t *testing.T) {
	tm := jwt.NewTokenManager(testSecret, "survey-api", 1)

	adminToken, err := tm.GenerateToken("ops@example.com", jwt.RoleAdmin)
	require.NoError(t, err)
	viewerToken, err := tm.GenerateToken("viewer@example.com", "viewer")
	require.NoError(t, err)
	expiredToken, err := jwt.NewTokenManager(testSecret, "survey-api", -1).GenerateToken("ops@example.com", jwt.RoleAdmin)
	require.NoError(t, err)
	foreignToken, err := jwt.NewTokenManager("another-secret", "survey-api", 1).GenerateToken("ops@example.com", jwt.RoleAdmin)
	require.NoError(t, err)

	tests := []struct {
		name           string
		header         string
		expectedStatus int
		expectCalled   bool
	}{
		{name: "valid admin token", header: "Bearer " + adminToken, expectedStatus: http.StatusOK, expectCalled: true},
		{name: "missing header", header: "", expectedStatus: http.StatusUnauthorized},
		{name: "wrong scheme", header: "Basic " + adminToken, expectedStatus: http.StatusUnauthorized},
		{name: "garbage token", header: "Bearer not-a-jwt", expectedStatus: http.StatusUnauthorized},
		{name: "expired token", header: "Bearer " + expiredToken, expectedStatus: http.StatusUnauthorized},
		{name: "signed with another secret", header: "Bearer " + foreignToken, expectedStatus: http.StatusUnauthorized},
		{name: "non admin role", header: "Bearer " + viewerToken, expectedStatus: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Setup
			called := false
			router := newAdminRouter(tm, &called)
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/admin", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			// Execute
			router.ServeHTTP(w, req)

			// Assert
			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, tt.expectCalled, called)
			if tt.expectCalled {
				assert.Equal(t, "ops@example.com", w.Body.String())
			}
		})
	}
}

func TestAdminAuthMiddleware_OpenWithoutTokenManager(t *testing.T) {
	// Setup
	called := false
	router := newAdminRouter(nil, &called)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)

	// Execute
	router.ServeHTTP(w, req)

	// Assert
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, called)
}

func TestRateLimiter_RejectsAfterBurst(t *testing.T) {
	// Setup
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	router := gin.New()
	router.Use(NewPerMinuteRateLimiter(ctx, 2).Middleware())
	router.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)

		// Execute
		router.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}

	// Assert
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestRateLimiter_TracksClientsSeparately(t *testing.T) {
	// Setup
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	router := gin.New()
	router.Use(NewPerMinuteRateLimiter(ctx, 1).Middleware())
	router.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	first := httptest.NewRequest(http.MethodGet, "/", nil)
	first.RemoteAddr = "198.51.100.1:1000"
	second := httptest.NewRequest(http.MethodGet, "/", nil)
	second.RemoteAddr = "198.51.100.2:1000"

	// Execute
	w1 := httptest.NewRecorder()
	router.ServeHTTP(w1, first)
	w2 := httptest.NewRecorder()
	router.ServeHTTP(w2, second)

	// Assert
	assert.Equal(t, http.StatusOK, w1.Code)
	assert.Equal(t, http.StatusOK, w2.Code)
}

func TestBodySizeLimitMiddleware(t *testing.T) {
	tests := []struct {
		name           string
		method         string
		body           string
		expectedStatus int
	}{
		{name: "small body", method: http.MethodPost, body: `{"a":1}`, expectedStatus: http.StatusOK},
		{name: "oversized body", method: http.MethodPost, body: strings.Repeat("x", 64), expectedStatus: http.StatusRequestEntityTooLarge},
		{name: "get is not limited", method: http.MethodGet, body: "", expectedStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Setup
			router := gin.New()
			router.Use(BodySizeLimitMiddleware(32))
			router.Handle(tt.method, "/", func(c *gin.Context) { c.Status(http.StatusOK) })
			w := httptest.NewRecorder()
			req := httptest.NewRequest(tt.method, "/", strings.NewReader(tt.body))

			// Execute
			router.ServeHTTP(w, req)

			// Assert
			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestSecurityHeadersMiddleware(t *testing.T) {
	// Setup
	router := gin.New()
	router.Use(SecurityHeadersMiddleware())
	router.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })
	w := httptest.NewRecorder()

	// Execute
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	// Assert
	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	assert.Contains(t, w.Header().Get("Cache-Control"), "no-store")
}
