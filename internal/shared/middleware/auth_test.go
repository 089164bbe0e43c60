package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"conduit-backend/pkg/jwt"
)

var testManager = jwt.NewManager("test-secret", time.Hour)

func signToken(t *testing.T, userID string) string {
	t.Helper()

	token, err := testManager.GenerateToken(userID, "jake")
	require.NoError(t, err)
	return token
}

func viewerEcho() (*gin.Engine, *uuid.UUID) {
	gin.SetMode(gin.TestMode)

	var captured uuid.UUID
	r := gin.New()
	r.GET("/required", AuthRequired(testManager), func(c *gin.Context) {
		captured = ViewerID(c)
		c.Status(http.StatusOK)
	})
	r.GET("/optional", AuthOptional(testManager), func(c *gin.Context) {
		captured = ViewerID(c)
		c.Status(http.StatusOK)
	})
	return r, &captured
}

func TestAuthRequiredValidToken(t *testing.T) {
	router, captured := viewerEcho()
	userID := uuid.New()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/required", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, userID.String()))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, userID, *captured)
}

func TestAuthRequiredMissingHeader(t *testing.T) {
	router, _ := viewerEcho()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/required", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthRequiredBadToken(t *testing.T) {
	router, _ := viewerEcho()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/required", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthOptionalAnonymousIsNilViewer(t *testing.T) {
	router, captured := viewerEcho()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/optional", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uuid.Nil, *captured)
}

func TestAuthOptionalBadTokenFallsBackToAnonymous(t *testing.T) {
	router, captured := viewerEcho()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/optional", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uuid.Nil, *captured)
}

func TestAuthOptionalValidToken(t *testing.T) {
	router, captured := viewerEcho()
	userID := uuid.New()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/optional", nil)
	req.Header.Set("Authorization", "Token "+signToken(t, userID.String()))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, userID, *captured)
}
