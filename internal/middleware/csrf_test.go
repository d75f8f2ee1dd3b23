package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCSRFTestRouter(csrf *CSRFMiddleware, sessionID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(sessionContextKey, sessionID)
		c.Next()
	})
	r.POST("/mutate", csrf.RequireToken(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func TestCSRF_ValidTokenPasses(t *testing.T) {
	csrf := NewCSRFMiddleware("test-secret", time.Hour)
	router := newCSRFTestRouter(csrf, "session-a")

	token, err := csrf.GenerateToken("session-a")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/mutate", nil)
	req.Header.Set("X-CSRF-Token", token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCSRF_MissingTokenRejected(t *testing.T) {
	csrf := NewCSRFMiddleware("test-secret", time.Hour)
	router := newCSRFTestRouter(csrf, "session-a")

	req := httptest.NewRequest(http.MethodPost, "/mutate", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestCSRF_TokenBoundToSession(t *testing.T) {
	csrf := NewCSRFMiddleware("test-secret", time.Hour)
	router := newCSRFTestRouter(csrf, "session-a")

	// 为另一个会话签发的令牌不可用
	token, err := csrf.GenerateToken("session-b")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/mutate", nil)
	req.Header.Set("X-CSRF-Token", token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestCSRF_TamperedTokenRejected(t *testing.T) {
	csrf := NewCSRFMiddleware("test-secret", time.Hour)
	router := newCSRFTestRouter(csrf, "session-a")

	// 用其他密钥签名的令牌
	other := NewCSRFMiddleware("other-secret", time.Hour)
	token, err := other.GenerateToken("session-a")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/mutate", nil)
	req.Header.Set("X-CSRF-Token", token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestSessionMiddleware_IssuesCookie(t *testing.T) {
	gin.SetMode(gin.TestMode)
	session := NewSessionMiddleware("exercise_session", 86400)

	r := gin.New()
	r.Use(session.EnsureSession())
	r.GET("/", func(c *gin.Context) {
		id, ok := GetSessionID(c)
		assert.True(t, ok)
		c.String(http.StatusOK, id)
	})

	// 无Cookie时签发新会话
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)
	assert.Equal(t, "exercise_session", cookies[0].Name)
	assert.Equal(t, w.Body.String(), cookies[0].Value)

	// 已有Cookie时保持会话不变
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "exercise_session", Value: "existing-id"})
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "existing-id", w.Body.String())
	assert.Empty(t, w.Result().Cookies())
}
