package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// 会话上下文键
const sessionContextKey = "sessionID"

// SessionMiddleware 匿名会话中间件，保证每个访问者都有会话Cookie
type SessionMiddleware struct {
	cookieName string
	maxAge     int
}

// NewSessionMiddleware 创建会话中间件
func NewSessionMiddleware(cookieName string, maxAge int) *SessionMiddleware {
	return &SessionMiddleware{
		cookieName: cookieName,
		maxAge:     maxAge,
	}
}

// EnsureSession 确保请求携带会话，没有Cookie时签发新会话ID
func (m *SessionMiddleware) EnsureSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := c.Cookie(m.cookieName)
		if err != nil || sessionID == "" {
			sessionID = uuid.NewString()
			c.SetCookie(m.cookieName, sessionID, m.maxAge, "/", "", false, true)
		}

		c.Set(sessionContextKey, sessionID)
		c.Next()
	}
}

// GetSessionID 从上下文获取会话ID
func GetSessionID(c *gin.Context) (string, bool) {
	if sessionID, exists := c.Get(sessionContextKey); exists {
		if id, ok := sessionID.(string); ok && id != "" {
			return id, true
		}
	}
	return "", false
}
