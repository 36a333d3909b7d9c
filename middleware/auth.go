package middleware

import (
	"strings"

	"orionhotel/errors"
	"orionhotel/models"
	"orionhotel/response"
	"orionhotel/services"

	"github.com/gin-gonic/gin"
)

const (
	ContextUserID = "userID"
	ContextRole   = "userRole"
	ContextToken  = "token"
)

// BearerToken lấy token từ header Authorization, với websocket thì cho phép ?token=
func BearerToken(c *gin.Context) string {
	if h := c.GetHeader("Authorization"); h != "" {
		return strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
	}
	return c.Query("token")
}

// AuthMiddleware xử lý authentication. Không truyền roles thì chỉ cần đăng nhập,
// ADMIN qua được mọi guard.
func AuthMiddleware(tokens *services.TokenService, roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := BearerToken(c)
		if tokenString == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		claims, err := tokens.Parse(c.Request.Context(), tokenString)
		if err != nil {
			if errors.IsAppError(err) {
				response.FromError(c, err)
			} else {
				response.Unauthorized(c)
			}
			c.Abort()
			return
		}
		userRole := claims.UserInfo.Role

		if len(roles) > 0 && !hasAnyRole(userRole, roles) {
			response.Forbidden(c)
			c.Abort()
			return
		}

		// Lưu thông tin user vào context
		c.Set(ContextUserID, claims.UserInfo.UserId)
		c.Set(ContextRole, userRole)
		c.Set(ContextToken, tokenString)
		c.Next()
	}
}

// RoleMiddleware kiểm tra role đã được AuthMiddleware gán vào context
func RoleMiddleware(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userRole := c.GetString(ContextRole)
		if userRole == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}
		if !hasAnyRole(userRole, roles) {
			response.Forbidden(c)
			c.Abort()
			return
		}
		c.Next()
	}
}

func hasAnyRole(userRole string, roles []string) bool {
	for _, r := range roles {
		if models.HasPermission(userRole, r) {
			return true
		}
	}
	return false
}

// ErrorHandler trả response cho lỗi được controller đẩy vào c.Error
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) > 0 && !c.Writer.Written() {
			response.FromError(c, c.Errors.Last().Err)
		}
	}
}
