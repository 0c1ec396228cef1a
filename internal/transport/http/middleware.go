package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bangshop/admin/pkg/ctxmeta"
)

// principalKey — ключ gin-контекста с текущей сессией.
const principalKey = "principal"

// requireSession — guard закрытой части API. Пока сессия не подтверждена,
// ни один защищённый хендлер не выполняется; истёкшая или незнакомая кука
// эквивалентна её отсутствию.
func (h *Handler) requireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		cookie, err := c.Cookie(h.opts.CookieName)
		if err != nil || cookie == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}

		sess, ok := h.sessions.Principal(c.Request.Context(), cookie)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}

		c.Set(principalKey, sess)
		c.Request = c.Request.WithContext(ctxmeta.WithPrincipal(c.Request.Context(), sess.Login))
		c.Next()
	}
}
