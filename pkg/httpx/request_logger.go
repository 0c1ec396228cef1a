package httpx

import (
	"time"

	"github.com/bangshop/admin/internal/ports"
	"github.com/bangshop/admin/pkg/ctxmeta"
	"github.com/gin-gonic/gin"
)

// RequestLogger — middleware логирования HTTP-запросов.
// Помимо стандартных полей пишет request_id, принципала (если guard его
// положил в контекст) и trace/span при включённом otel.
func RequestLogger(log ports.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		// служебные эндпоинты не логируем
		switch c.FullPath() {
		case "/metrics", "/ping":
			return
		}

		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		rid, _ := ctxmeta.RequestIDFromContext(c.Request.Context())
		who, _ := ctxmeta.PrincipalFromContext(c.Request.Context())
		tr, _ := ctxmeta.TraceIDFromContext(c.Request.Context())
		sp, _ := ctxmeta.SpanIDFromContext(c.Request.Context())

		log.Infof(
			c.Request.Context(),
			"request id=%s user=%s trace=%s span=%s method=%s path=%s status=%d ip=%s duration=%s size=%d",
			rid, who, tr, sp,
			c.Request.Method,
			path,
			c.Writer.Status(),
			c.ClientIP(),
			time.Since(start),
			c.Writer.Size(),
		)
	}
}
