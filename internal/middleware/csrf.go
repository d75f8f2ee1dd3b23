package middleware

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	apperrors "github.com/wfunc/exercise-hub/internal/errors"
)

var (
	ErrInvalidCSRFToken = errors.New("invalid csrf token")
)

// CSRFClaims 防伪令牌Claims，令牌与会话绑定
type CSRFClaims struct {
	SessionID string `json:"session_id"`
	jwt.RegisteredClaims
}

// CSRFMiddleware 防伪令牌中间件，所有变更请求都要求携带有效令牌
type CSRFMiddleware struct {
	secretKey string
	expiry    time.Duration
}

// NewCSRFMiddleware 创建防伪令牌中间件
func NewCSRFMiddleware(secretKey string, expiry time.Duration) *CSRFMiddleware {
	return &CSRFMiddleware{
		secretKey: secretKey,
		expiry:    expiry,
	}
}

// GenerateToken 为指定会话签发防伪令牌
func (m *CSRFMiddleware) GenerateToken(sessionID string) (string, error) {
	now := time.Now()
	claims := &CSRFClaims{
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(m.expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    "exercise-hub",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(m.secretKey))
}

// ValidateToken 验证令牌签名并确认其绑定的会话
func (m *CSRFMiddleware) ValidateToken(tokenString, sessionID string) error {
	token, err := jwt.ParseWithClaims(tokenString, &CSRFClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(m.secretKey), nil
	})
	if err != nil {
		return err
	}

	claims, ok := token.Claims.(*CSRFClaims)
	if !ok || !token.Valid {
		return ErrInvalidCSRFToken
	}

	// 令牌必须属于当前会话
	if claims.SessionID != sessionID {
		return ErrInvalidCSRFToken
	}

	return nil
}

// RequireToken 验证变更请求的防伪令牌
func (m *CSRFMiddleware) RequireToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, ok := GetSessionID(c)
		if !ok {
			appErr := apperrors.New(apperrors.ErrSessionMissing)
			c.JSON(appErr.HTTPStatus(), apperrors.NewErrorResponse(appErr))
			c.Abort()
			return
		}

		token := m.extractToken(c)
		if token == "" {
			appErr := apperrors.New(apperrors.ErrCSRFMissing)
			c.JSON(appErr.HTTPStatus(), apperrors.NewErrorResponse(appErr))
			c.Abort()
			return
		}

		if err := m.ValidateToken(token, sessionID); err != nil {
			appErr := apperrors.New(apperrors.ErrCSRFInvalid).WithDetails(err.Error())
			c.JSON(appErr.HTTPStatus(), apperrors.NewErrorResponse(appErr))
			c.Abort()
			return
		}

		c.Next()
	}
}

// extractToken 从请求中提取防伪令牌
func (m *CSRFMiddleware) extractToken(c *gin.Context) string {
	// 1. 从X-CSRF-Token Header获取
	if token := c.GetHeader("X-CSRF-Token"); token != "" {
		return token
	}

	// 2. 从表单字段获取
	if token := c.PostForm("_csrf"); token != "" {
		return token
	}

	return ""
}
