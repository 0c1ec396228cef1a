package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bangshop/admin/internal/auth"
	"github.com/bangshop/admin/internal/domain"
)

type loginRequest struct {
	Login    string `json:"login" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// login — POST /api/login. Успех выдаёт httpOnly-куку с id сессии.
func (h *Handler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "login and password are required"})
		return
	}

	sess, err := h.sessions.Login(c.Request.Context(), req.Login, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			return
		}
		h.log.Errorf(c.Request.Context(), "login failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.opts.CookieName, sess.ID, int(h.opts.SessionTTL.Seconds()), "/", "", h.opts.CookieSecure, true)
	c.JSON(http.StatusOK, sess)
}

// logout — POST /api/logout. Идемпотентен: без куки просто чистим её.
func (h *Handler) logout(c *gin.Context) {
	if cookie, err := c.Cookie(h.opts.CookieName); err == nil && cookie != "" {
		h.sessions.Logout(c.Request.Context(), cookie)
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.opts.CookieName, "", -1, "/", "", h.opts.CookieSecure, true)
	c.Status(http.StatusNoContent)
}

// session — GET /api/session. Текущий принципал; guard уже проверил куку.
func (h *Handler) session(c *gin.Context) {
	v, ok := c.Get(principalKey)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}
	c.JSON(http.StatusOK, v.(*domain.Session))
}
