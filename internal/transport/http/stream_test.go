package rest_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"

	"github.com/bangshop/admin/internal/domain"
	"github.com/bangshop/admin/internal/feed"
	"github.com/bangshop/admin/internal/ports/mocks"
	rest "github.com/bangshop/admin/internal/transport/http"
)

// closeNotifyRecorder — httptest.ResponseRecorder не реализует CloseNotifier,
// который нужен gin для стриминга.
type closeNotifyRecorder struct {
	*httptest.ResponseRecorder
	closed chan bool
}

func newCloseNotifyRecorder() *closeNotifyRecorder {
	return &closeNotifyRecorder{httptest.NewRecorder(), make(chan bool, 1)}
}

func (r *closeNotifyRecorder) CloseNotify() <-chan bool { return r.closed }

// Поток: сначала текущий набор, затем полный набор на каждый Broadcast.
func TestStreamOrders_DeliversFullSnapshots(t *testing.T) {
	ctrl := gomock.NewController(t)

	sessions := mocks.NewMockSessionAuthority(ctrl)
	orders := mocks.NewMockOrderQueryService(ctrl)
	broker := feed.NewBroker()

	sessions.EXPECT().
		Principal(gomock.Any(), "sid-1").
		Return(&domain.Session{ID: "sid-1", Login: "admin"}, true)

	initial := []*domain.Order{{
		ID:          "order-1",
		TotalAmount: 10,
		Status:      "paid",
		Items:       []domain.OrderItem{{ID: "i1", Name: "Widget", Quantity: 2}},
	}}
	orders.EXPECT().Snapshot(gomock.Any()).Return(initial, nil)

	h := rest.NewHandler(
		sessions, orders,
		mocks.NewMockProductCreator(ctrl),
		mocks.NewMockImageStore(ctrl),
		broker, noopLogger{},
		rest.Options{CookieName: testCookie, SessionTTL: time.Hour},
	)
	r := rest.NewRouter(h, rest.RouterOptions{})

	ctx, cancel := context.WithCancel(context.Background())
	req := httptest.NewRequest(http.MethodGet, "/api/orders/stream", http.NoBody).WithContext(ctx)
	req.AddCookie(&http.Cookie{Name: testCookie, Value: "sid-1"})

	w := newCloseNotifyRecorder()
	done := make(chan struct{})
	go func() {
		r.ServeHTTP(w, req)
		close(done)
	}()

	// даём хендлеру подписаться и отдать первый кадр
	time.Sleep(30 * time.Millisecond)

	updated := append(
		[]*domain.Order{{ID: "order-2", TotalAmount: 19.999, Status: "new"}},
		initial...,
	)
	broker.Broadcast(context.Background(), updated)

	time.Sleep(30 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("handler did not stop after context cancel")
	}

	body := w.Body.String()
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/event-stream") {
		t.Fatalf("want event-stream content type, got %q", ct)
	}
	if !strings.Contains(body, "event:orders") {
		t.Fatalf("orders event missing: %s", body)
	}
	// первый кадр: текущий набор
	if !strings.Contains(body, `"order-1"`) || !strings.Contains(body, `"Widget (x2)"`) {
		t.Fatalf("initial snapshot missing: %s", body)
	}
	// второй кадр: полный набор, а не дифф
	if !strings.Contains(body, `"order-2"`) || !strings.Contains(body, `"$20.00"`) {
		t.Fatalf("broadcast snapshot missing: %s", body)
	}
	if strings.Count(body, `"order-1"`) < 2 {
		t.Fatalf("broadcast must carry the full set, got: %s", body)
	}
}
