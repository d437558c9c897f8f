package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"farmsoc-api/config"
	"farmsoc-api/utils"
)

func newAuthTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	prev := config.AppConfig
	config.AppConfig = &config.Config{JWTSecret: "test-secret", JWTExpiry: "1h"}
	t.Cleanup(func() { config.AppConfig = prev })

	router := gin.New()
	router.GET("/me", AuthMiddleware(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id": c.GetString("user_id"),
			"role":    c.GetString("user_role"),
		})
	})
	router.GET("/farmer-only", AuthMiddleware(), RoleMiddleware("farmer"), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return router
}

func TestAuthMiddlewareRejectsMissingHeader(t *testing.T) {
	router := newAuthTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddlewareRejectsMalformedHeader(t *testing.T) {
	router := newAuthTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Token abc")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddlewareRejectsInvalidToken(t *testing.T) {
	router := newAuthTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer not.a.token")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddlewareSetsUserContext(t *testing.T) {
	router := newAuthTestRouter(t)

	token, err := utils.GenerateToken("u1", "alice@example.com", "consumer")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"user_id":"u1"`)
	assert.Contains(t, rec.Body.String(), `"role":"consumer"`)
}

func TestRoleMiddlewareBlocksWrongRole(t *testing.T) {
	router := newAuthTestRouter(t)

	token, err := utils.GenerateToken("u1", "alice@example.com", "consumer")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/farmer-only", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRoleMiddlewareAllowsMatchingRole(t *testing.T) {
	router := newAuthTestRouter(t)

	token, err := utils.GenerateToken("f1", "farm@example.com", "farmer")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/farmer-only", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
