package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const SessionHeader = "X-Session-ID"

// SessionMiddleware tạo sessionId nếu client chưa gửi và trả lại qua header
func SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionId := c.GetHeader(SessionHeader)
		if sessionId == "" {
			sessionId = uuid.NewString()
		}
		c.Set("sessionId", sessionId)
		c.Writer.Header().Set(SessionHeader, sessionId)
		c.Next()
	}
}
