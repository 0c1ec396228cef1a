package rest

import (
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/bangshop/admin/pkg/httpx"
)

// RouterOptions — маршруты статики и имя сервиса для трейсинга.
type RouterOptions struct {
	StaticDir      string // каталог дашборда; пусто = без статики
	UploadsDir     string // каталог сохранённых изображений
	UploadsBaseURL string // URL-префикс, под которым раздаются изображения
	ServiceName    string // имя сервиса для otelgin; пусто = без трейсинга
}

func NewRouter(h *Handler, opts RouterOptions) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(httpx.RequestIDMiddleware())
	if opts.ServiceName != "" {
		r.Use(otelgin.Middleware(opts.ServiceName))
	}
	r.Use(httpx.RequestLogger(h.log))

	r.GET("/ping", func(c *gin.Context) { c.String(200, "pong") })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	api.POST("/login", h.login)
	api.POST("/logout", h.logout)

	// всё остальное только для аутентифицированного персонала
	private := api.Group("")
	private.Use(h.requireSession())
	private.GET("/session", h.session)
	private.GET("/orders", h.listOrders)
	private.GET("/orders/stream", h.streamOrders)
	private.POST("/upload", h.uploadImage)
	private.POST("/products", h.createProduct)

	if opts.UploadsDir != "" {
		base := opts.UploadsBaseURL
		if base == "" {
			base = "/uploads"
		}
		r.Static(base, opts.UploadsDir)
	}
	if opts.StaticDir != "" {
		r.Static("/static", opts.StaticDir)
		r.StaticFile("/", filepath.Join(opts.StaticDir, "index.html"))
	}

	return r
}
