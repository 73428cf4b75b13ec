package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// Имя сессионной куки админки; должно совпадать с handler.AdminCookieName
const adminCookieName = "admin_token"

// AdminMiddleware защищает маршруты админки. Сессия - JWT HS256 в
// HttpOnly-куке, Bearer-заголовок принимается для API-клиентов.
type AdminMiddleware struct {
	jwtSecret string
}

// NewAdminMiddleware создает новый middleware админской аутентификации
func NewAdminMiddleware(jwtSecret string) *AdminMiddleware {
	return &AdminMiddleware{jwtSecret: jwtSecret}
}

// RequireAdmin проверяет наличие валидной админской сессии
func (m *AdminMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(adminCookieName)
		if err != nil || token == "" {
			// Куки нет - пробуем Bearer-заголовок
			header := c.GetHeader("Authorization")
			token = strings.TrimPrefix(header, "Bearer ")
			if token == "" || token == header {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized", "error_type": "token_missing"})
				c.Abort()
				return
			}
		}

		if err := m.verify(token); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired session", "error_type": "token_invalid"})
			c.Abort()
			return
		}

		c.Next()
	}
}

// verify разбирает и проверяет сессионный токен
func (m *AdminMiddleware) verify(tokenStr string) error {
	if m.jwtSecret == "" {
		return fmt.Errorf("admin jwt secret is not configured")
	}

	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(m.jwtSecret), nil
	})
	if err != nil {
		return err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return fmt.Errorf("invalid token claims")
	}
	if role, _ := claims["role"].(string); role != "admin" {
		return fmt.Errorf("missing admin role")
	}
	return nil
}
