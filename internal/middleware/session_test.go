package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nsthome/institute-api/internal/models"
	"github.com/nsthome/institute-api/internal/service"
)

func newSessionAuthService() *service.AuthService {
	return service.NewAuthService(nil, nil, nil, service.AuthConfig{
		TokenSecret: "test-secret",
		TokenExpiry: time.Hour,
		Issuer:      "institute-api-test",
		AdminPhone:  "9999999999",
		AdminName:   "NST Admin",
	})
}

func adminToken(t *testing.T, svc *service.AuthService) string {
	resp, err := svc.Login(context.Background(), models.LoginRequest{
		Name: "NST Admin", Phone: "9999999999", Class: "Class 5",
	})
	require.NoError(t, err)
	return resp.Token
}

func newProtectedRouter(svc *service.AuthService, roles ...models.UserRole) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handlers := []gin.HandlerFunc{Session(svc)}
	if len(roles) > 0 {
		handlers = append(handlers, RequireRole(roles...))
	}
	group := r.Group("/", handlers...)
	group.GET("/protected", func(c *gin.Context) {
		claims, _ := c.Get(ContextUserKey)
		session := claims.(*models.SessionClaims)
		c.JSON(http.StatusOK, gin.H{"user_id": session.UserID})
	})
	return r
}

func TestSessionMissingHeader(t *testing.T) {
	r := newProtectedRouter(newSessionAuthService())

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSessionMalformedHeader(t *testing.T) {
	r := newProtectedRouter(newSessionAuthService())

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Token abc")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSessionInvalidToken(t *testing.T) {
	r := newProtectedRouter(newSessionAuthService())

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSessionValidToken(t *testing.T) {
	svc := newSessionAuthService()
	r := newProtectedRouter(svc)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken(t, svc))
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireRoleAllows(t *testing.T) {
	svc := newSessionAuthService()
	r := newProtectedRouter(svc, models.RoleAdmin)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken(t, svc))
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireRoleRejectsWrongRole(t *testing.T) {
	svc := newSessionAuthService()
	r := newProtectedRouter(svc, models.RoleStudent)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken(t, svc))
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
}
