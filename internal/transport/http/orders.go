package rest

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
)

// listOrders — GET /api/orders. Полный текущий набор заказов одним ответом.
func (h *Handler) listOrders(c *gin.Context) {
	snapshot, err := h.orders.Snapshot(c.Request.Context())
	if err != nil {
		h.log.Errorf(c.Request.Context(), "orders snapshot failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, NewOrderViews(snapshot))
}

// streamOrders — GET /api/orders/stream. SSE-поток: сразу текущий набор,
// затем полный набор на каждое изменение. Никаких диффов, подписчик
// каждый раз перерисовывает список целиком.
func (h *Handler) streamOrders(c *gin.Context) {
	ctx := c.Request.Context()

	snapshot, err := h.orders.Snapshot(ctx)
	if err != nil {
		h.log.Errorf(ctx, "orders snapshot failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	ch, unsubscribe := h.feed.Subscribe(ctx)
	defer unsubscribe()

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")

	c.SSEvent("orders", NewOrderViews(snapshot))
	c.Writer.Flush()

	c.Stream(func(_ io.Writer) bool {
		select {
		case s, ok := <-ch:
			if !ok {
				return false
			}
			c.SSEvent("orders", NewOrderViews(s))
			return true
		case <-ctx.Done():
			return false
		}
	})
}
