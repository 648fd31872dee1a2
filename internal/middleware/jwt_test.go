package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/bensedjadrafik-ux/vitube-app/internal/pkg/jwt"
)

var testSecret = []byte("test-secret")

func newAuthedRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/protected", JWTAuth(testSecret), func(c *gin.Context) {
		userID, _ := c.Get(ContextUserIDKey)
		c.JSON(http.StatusOK, gin.H{"user_id": userID})
	})
	return router
}

func doRequest(router *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestJWTAuth_MissingHeader(t *testing.T) {
	rec := doRequest(newAuthedRouter(), "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWTAuth_BadScheme(t *testing.T) {
	rec := doRequest(newAuthedRouter(), "Basic abc123")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWTAuth_GarbageToken(t *testing.T) {
	rec := doRequest(newAuthedRouter(), "Bearer not-a-token")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWTAuth_ExpiredToken(t *testing.T) {
	token, err := jwt.GenerateToken("u1", testSecret, -time.Minute)
	require.NoError(t, err)

	rec := doRequest(newAuthedRouter(), "Bearer "+token)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWTAuth_ValidToken(t *testing.T) {
	token, err := jwt.GenerateToken("u1", testSecret, time.Hour)
	require.NoError(t, err)

	rec := doRequest(newAuthedRouter(), "Bearer "+token)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"user_id":"u1"`)
}
