package rest

import (
	"time"

	"github.com/bangshop/admin/internal/ports"
)

// Options — параметры транспорта, не зашитые в бизнес-логику.
type Options struct {
	CookieName     string        // имя сессионной куки
	CookieSecure   bool          // Secure-флаг куки (true за TLS-терминатором)
	SessionTTL     time.Duration // MaxAge куки, совпадает с TTL сессии
	MaxUploadBytes int64         // потолок размера multipart-загрузки
}

// Handler — HTTP-обвязка консоли: аутентификация персонала, живой фид
// заказов и форма добавления товара.
type Handler struct {
	sessions ports.SessionAuthority
	orders   ports.OrderQueryService
	products ports.ProductCreator
	images   ports.ImageStore
	feed     ports.OrderFeed
	log      ports.Logger
	opts     Options
}

func NewHandler(
	sessions ports.SessionAuthority,
	orders ports.OrderQueryService,
	products ports.ProductCreator,
	images ports.ImageStore,
	feed ports.OrderFeed,
	log ports.Logger,
	opts Options,
) *Handler {
	if opts.CookieName == "" {
		opts.CookieName = "admin_session"
	}
	if opts.SessionTTL <= 0 {
		opts.SessionTTL = 12 * time.Hour
	}
	if opts.MaxUploadBytes <= 0 {
		opts.MaxUploadBytes = 5 << 20
	}
	return &Handler{
		sessions: sessions,
		orders:   orders,
		products: products,
		images:   images,
		feed:     feed,
		log:      log,
		opts:     opts,
	}
}
