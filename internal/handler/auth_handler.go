package handler

import (
	"crypto/subtle"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// Имя сессионной куки админки
const AdminCookieName = "admin_token"

// AuthHandler обрабатывает вход и выход администратора. Админка
// однопользовательская: пароль задается конфигом в виде bcrypt-хеша
// (или открытым текстом, тогда сверка идет за константное время),
// сессия - JWT в HttpOnly-куке.
type AuthHandler struct {
	passwordHash string
	jwtSecret    string
	sessionTTL   time.Duration
	cookieSecure bool
}

// NewAuthHandler создает новый обработчик аутентификации админки
func NewAuthHandler(passwordHash, jwtSecret string, sessionTTL time.Duration, cookieSecure bool) *AuthHandler {
	if sessionTTL <= 0 {
		sessionTTL = 24 * time.Hour
	}
	return &AuthHandler{
		passwordHash: passwordHash,
		jwtSecret:    jwtSecret,
		sessionTTL:   sessionTTL,
		cookieSecure: cookieSecure,
	}
}

// LoginRequest представляет запрос на вход в админку
type LoginRequest struct {
	Password string `json:"password" binding:"required"`
}

// Login обрабатывает вход администратора
// POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if h.passwordHash == "" || h.jwtSecret == "" {
		log.Printf("[AuthHandler] admin auth is not configured")
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Admin auth is not configured"})
		return
	}

	if !h.passwordMatches(req.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid password"})
		return
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"role": "admin",
		"iat":  now.Unix(),
		"exp":  now.Add(h.sessionTTL).Unix(),
	})
	signed, err := token.SignedString([]byte(h.jwtSecret))
	if err != nil {
		log.Printf("[AuthHandler] token signing failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(AdminCookieName, signed, int(h.sessionTTL.Seconds()), "/", "", h.cookieSecure, true)

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// passwordMatches сверяет пароль с настроенным значением: bcrypt-хешем
// либо, если в конфиге лежит не хеш, открытым текстом за константное время
func (h *AuthHandler) passwordMatches(password string) bool {
	if _, err := bcrypt.Cost([]byte(h.passwordHash)); err == nil {
		return bcrypt.CompareHashAndPassword([]byte(h.passwordHash), []byte(password)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(h.passwordHash), []byte(password)) == 1
}

// Logout сбрасывает сессионную куку
// POST /api/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(AdminCookieName, "", -1, "/", "", h.cookieSecure, true)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Me подтверждает живую сессию; маршрут защищен AdminMiddleware
// GET /api/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"authenticated": true})
}
