package middleware

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/http"

	"github.com/gin-gonic/gin"

	"class-booking-backend/internal/config"
	"class-booking-backend/internal/models"
)

// AdminCookieName is the http-only cookie carrying the admin token.
const AdminCookieName = "admin_auth"

const adminCookieMaxAge = 12 * 60 * 60 // seconds

// AdminToken derives the admin token from the configured password: an
// HMAC-SHA256 of the password keyed by itself, hex encoded. The token is
// stable for as long as the password is unchanged, so rotating the password
// is the only way to invalidate issued cookies.
func AdminToken(password string) string {
	if password == "" {
		return ""
	}
	mac := hmac.New(sha256.New, []byte(password))
	mac.Write([]byte(password))
	return hex.EncodeToString(mac.Sum(nil))
}

// IsAdmin reports whether the request carries a valid admin cookie. The
// comparison is constant-time once the lengths match; a length mismatch can
// only leak that the cookie is the wrong shape.
func IsAdmin(c *gin.Context, password string) bool {
	token := AdminToken(password)
	if token == "" {
		return false
	}

	cookie, err := c.Cookie(AdminCookieName)
	if err != nil || len(cookie) != len(token) {
		return false
	}

	return hmac.Equal([]byte(cookie), []byte(token))
}

// AdminAuth short-circuits admin-only routes with 401 before any data access.
func AdminAuth(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !IsAdmin(c, cfg.AdminPassword) {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "unauthorized"})
			c.Abort()
			return
		}
		c.Next()
	}
}

func SetAdminCookie(c *gin.Context, cfg *config.Config) {
	secure := cfg.Environment == "production"
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(AdminCookieName, AdminToken(cfg.AdminPassword), adminCookieMaxAge, "/", "", secure, true)
}

func ClearAdminCookie(c *gin.Context, cfg *config.Config) {
	secure := cfg.Environment == "production"
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(AdminCookieName, "", -1, "/", "", secure, true)
}
