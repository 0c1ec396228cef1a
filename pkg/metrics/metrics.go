package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	CheckoutOrdersConsumed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "checkout_orders_consumed_total",
			Help: "Order documents fetched from the checkout topic",
		},
		[]string{"topic"},
	)
	CheckoutOrdersProcessed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "checkout_orders_processed_total",
			Help: "Order documents stored successfully",
		},
		[]string{"topic"},
	)
	CheckoutOrdersFailed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "checkout_orders_failed_total",
			Help: "Order documents that failed processing",
		},
		[]string{"topic"},
	)
)

var (
	FeedSubscribers = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "order_feed_subscribers",
			Help: "Currently connected order feed subscribers",
		},
	)
	FeedSnapshots = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "order_feed_snapshots_total",
			Help: "Full order snapshots broadcast to subscribers",
		},
	)
)

var (
	ImageUploads = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "image_uploads_total",
			Help: "Image upload attempts",
		},
		[]string{"status"}, // ok|rejected|failed
	)
	ProductsCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "products_created_total",
			Help: "Products created through the admin API",
		},
	)
	SessionsActive = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "admin_sessions_active",
			Help: "Active staff sessions",
		},
	)
)

var registerOnce sync.Once

// MustRegister регистрирует все коллекторы в default-реестре.
// Повторные вызовы безопасны.
func MustRegister() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			CheckoutOrdersConsumed, CheckoutOrdersProcessed, CheckoutOrdersFailed,
			FeedSubscribers, FeedSnapshots,
			ImageUploads, ProductsCreated, SessionsActive,
		)
	})
}
