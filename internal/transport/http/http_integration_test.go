//go:build integration

package rest_test

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/textproto"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/bangshop/admin/internal/auth"
	"github.com/bangshop/admin/internal/feed"
	pgrepo "github.com/bangshop/admin/internal/repo/postgres"
	"github.com/bangshop/admin/internal/storage/local"
	"github.com/bangshop/admin/internal/testutil"
	rest "github.com/bangshop/admin/internal/transport/http"
	"github.com/bangshop/admin/internal/usecase"
	"github.com/bangshop/admin/pkg/logger"
	"github.com/bangshop/admin/pkg/validate"
)

// Полный цикл консоли: логин, загрузка изображения, создание товара,
// чтение заказов. Всё на реальных компонентах поверх контейнерного Postgres.
func TestHTTP_FullAdminFlow_TC(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
	defer cancel()

	pg, stop, err := testutil.StartPostgresTC(ctx)
	require.NoError(t, err)
	defer func() { _ = stop(context.Background()) }()
	require.NoError(t, testutil.ApplyMigrations(pg.DSN))

	logg, cleanup, err := logger.NewZapLogger(false)
	require.NoError(t, err)
	defer func() { _ = cleanup() }()

	// реальные компоненты
	digest := sha256.Sum256([]byte("secret"))
	sessions := auth.NewManager(auth.Config{
		Login:          "admin",
		PasswordSHA256: hex.EncodeToString(digest[:]),
		TTL:            time.Hour,
	}, logg)
	defer sessions.Stop()

	broker := feed.NewBroker()
	orderRepo := pgrepo.NewOrderRepository(pg.Pool)
	orderService := usecase.NewOrderService(orderRepo, broker, logg, validate.NewOrderValidator())
	productService := usecase.NewProductService(pgrepo.NewProductRepository(pg.Pool), logg, validate.NewProductValidator())

	imageStore, err := local.NewImageStore(t.TempDir(), "/uploads")
	require.NoError(t, err)

	h := rest.NewHandler(sessions, orderService, productService, imageStore, broker, logg, rest.Options{
		CookieName: "admin_session",
		SessionTTL: time.Hour,
	})
	r := rest.NewRouter(h, rest.RouterOptions{})
	ts := httptest.NewServer(r)
	defer ts.Close()

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	client := &http.Client{Jar: jar}

	// seed: заказ уже в базе
	ord := testutil.MakeOrder()
	require.NoError(t, orderRepo.Save(ctx, &ord))

	// 1) до логина закрытые эндпоинты недоступны
	resp, err := client.Get(ts.URL + "/api/orders")
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// 2) логин с неверным паролем
	resp, err = client.Post(ts.URL+"/api/login", "application/json",
		bytes.NewBufferString(`{"login":"admin","password":"wrong"}`))
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// 3) корректный логин выдаёт куку
	resp, err = client.Post(ts.URL+"/api/login", "application/json",
		bytes.NewBufferString(`{"login":"admin","password":"secret"}`))
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// 4) сессия видна
	resp, err = client.Get(ts.URL + "/api/session")
	require.NoError(t, err)
	var sess struct {
		Login string `json:"login"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&sess))
	resp.Body.Close()
	require.Equal(t, "admin", sess.Login)

	// 5) загрузка изображения
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	hdr := make(textproto.MIMEHeader)
	hdr.Set("Content-Disposition", `form-data; name="image"; filename="widget.png"`)
	hdr.Set("Content-Type", "image/png")
	part, err := mw.CreatePart(hdr)
	require.NoError(t, err)
	_, err = part.Write([]byte("png-bytes"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	resp, err = client.Post(ts.URL+"/api/upload", mw.FormDataContentType(), &buf)
	require.NoError(t, err)
	var up struct {
		ImageURL string `json:"imageUrl"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&up))
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NotEmpty(t, up.ImageURL)

	// 6) создание товара с полученным URL
	product := map[string]any{
		"name":        "Widget",
		"price":       9.99,
		"description": "shiny",
		"imageUrl":    up.ImageURL,
	}
	praw, _ := json.Marshal(product)
	resp, err = client.Post(ts.URL+"/api/products", "application/json", bytes.NewReader(praw))
	require.NoError(t, err)
	var created struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	require.NotEmpty(t, created.ID)

	// 7) заказы читаются с готовыми к показу полями
	resp, err = client.Get(ts.URL + "/api/orders")
	require.NoError(t, err)
	var orders []struct {
		ID           string `json:"id"`
		TotalDisplay string `json:"totalDisplay"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&orders))
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	found := false
	for _, o := range orders {
		if o.ID == ord.ID {
			found = true
			require.NotEmpty(t, o.TotalDisplay)
		}
	}
	require.True(t, found, "seeded order must be visible")

	// 8) логаут закрывает доступ
	resp, err = client.Post(ts.URL+"/api/logout", "application/json", http.NoBody)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, err = client.Get(ts.URL + "/api/orders")
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
