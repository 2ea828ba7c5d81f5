package handlers

import (
	"crypto/subtle"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"class-booking-backend/internal/config"
	"class-booking-backend/internal/middleware"
	"class-booking-backend/internal/models"
)

// AuthHandler issues and clears the admin cookie.
type AuthHandler struct {
	cfg *config.Config
}

func NewAuthHandler(cfg *config.Config) *AuthHandler {
	return &AuthHandler{cfg: cfg}
}

// Login godoc
// @Summary     Admin login
// @Description Compares the supplied password against the server secret and sets the admin cookie on match.
// @Tags        admin
// @Accept      json
// @Produce     json
// @Param       request body models.LoginRequest true "Admin password"
// @Success     200 {object} map[string]bool
// @Failure     401 {object} models.ErrorResponse
// @Router      /admin/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "invalid password"})
		return
	}

	if h.cfg.AdminPassword == "" {
		log.Println("ADMIN_PASSWORD is not set, admin login disabled")
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "admin login disabled"})
		return
	}

	if subtle.ConstantTimeCompare([]byte(req.Password), []byte(h.cfg.AdminPassword)) != 1 {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "invalid password"})
		return
	}

	middleware.SetAdminCookie(c, h.cfg)
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// Logout godoc
// @Summary     Admin logout
// @Description Clears the admin cookie.
// @Tags        admin
// @Produce     json
// @Success     200 {object} map[string]bool
// @Router      /admin/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	middleware.ClearAdminCookie(c, h.cfg)
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
