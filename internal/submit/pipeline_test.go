package submit

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
)

func writeTempImage(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "widget.png")
	if err := os.WriteFile(path, []byte("png-bytes"), 0o644); err != nil {
		t.Fatalf("write temp image: %v", err)
	}
	return path
}

// testServer — счётчики вызовов для проверки порядка и количества шагов.
type testServer struct {
	uploads int32
	creates int32

	uploadStatus int
	createStatus int

	// imageUrl, который увидел /api/products
	gotImageURL string
	mu          sync.Mutex
}

func (s *testServer) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/login", func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, &http.Cookie{Name: "admin_session", Value: "sid-1", HttpOnly: true})
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"login":"admin"}`))
	})
	mux.HandleFunc("/api/upload", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&s.uploads, 1)
		if s.uploadStatus != 0 {
			w.WriteHeader(s.uploadStatus)
			_, _ = w.Write([]byte(`{"error":"upload rejected"}`))
			return
		}
		if _, _, err := r.FormFile("image"); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":"image file is required"}`))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"imageUrl":"/uploads/deadbeef.png"}`))
	})
	mux.HandleFunc("/api/products", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&s.creates, 1)
		// создание не должно случиться раньше загрузки
		var in struct {
			ImageURL string `json:"imageUrl"`
		}
		_ = jsonDecode(r, &in)
		s.mu.Lock()
		s.gotImageURL = in.ImageURL
		s.mu.Unlock()

		if s.createStatus != 0 {
			w.WriteHeader(s.createStatus)
			_, _ = w.Write([]byte(`{"error":"create rejected"}`))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":"prod-1"}`))
	})
	return mux
}

func jsonDecode(r *http.Request, v any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(v)
}

func TestSubmit_Success_TwoStepsInOrder(t *testing.T) {
	ts := &testServer{}
	srv := httptest.NewServer(ts.handler())
	defer srv.Close()

	c := NewClient(srv.URL, srv.Client())
	if err := c.Login(context.Background(), "admin", "secret"); err != nil {
		t.Fatalf("login: %v", err)
	}

	res, err := c.Submit(context.Background(), Input{
		Name:      "Widget",
		Price:     "9.99",
		ImagePath: writeTempImage(t),
	})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	if got := atomic.LoadInt32(&ts.uploads); got != 1 {
		t.Fatalf("want exactly 1 upload call, got %d", got)
	}
	if got := atomic.LoadInt32(&ts.creates); got != 1 {
		t.Fatalf("want exactly 1 create call, got %d", got)
	}
	if res.ImageURL != "/uploads/deadbeef.png" || res.ProductID != "prod-1" {
		t.Fatalf("unexpected result: %+v", res)
	}
	// карточка создана именно с URL из шага загрузки
	ts.mu.Lock()
	gotURL := ts.gotImageURL
	ts.mu.Unlock()
	if gotURL != "/uploads/deadbeef.png" {
		t.Fatalf("create got wrong imageUrl: %q", gotURL)
	}
}

// Провал загрузки отменяет создание: ни одного вызова /api/products.
func TestSubmit_UploadFailure_SkipsCreate(t *testing.T) {
	ts := &testServer{uploadStatus: http.StatusBadRequest}
	srv := httptest.NewServer(ts.handler())
	defer srv.Close()

	c := NewClient(srv.URL, srv.Client())

	_, err := c.Submit(context.Background(), Input{
		Name:      "Widget",
		Price:     "9.99",
		ImagePath: writeTempImage(t),
	})
	if err == nil {
		t.Fatal("want error")
	}

	var stepErr *StepError
	if !errors.As(err, &stepErr) || stepErr.Step != StepUpload {
		t.Fatalf("want upload StepError, got %v", err)
	}
	if got := atomic.LoadInt32(&ts.creates); got != 0 {
		t.Fatalf("create must not be called after failed upload, got %d calls", got)
	}
}

func TestSubmit_CreateFailure_TaggedCreate(t *testing.T) {
	ts := &testServer{createStatus: http.StatusInternalServerError}
	srv := httptest.NewServer(ts.handler())
	defer srv.Close()

	c := NewClient(srv.URL, srv.Client())

	_, err := c.Submit(context.Background(), Input{
		Name:      "Widget",
		Price:     "9.99",
		ImagePath: writeTempImage(t),
	})

	var stepErr *StepError
	if !errors.As(err, &stepErr) || stepErr.Step != StepCreate {
		t.Fatalf("want create StepError, got %v", err)
	}
	if got := atomic.LoadInt32(&ts.uploads); got != 1 {
		t.Fatalf("upload must have happened once, got %d", got)
	}
}

// Битая форма не стоит ни одного запроса к серверу.
func TestSubmit_InvalidInput_NoRequests(t *testing.T) {
	ts := &testServer{}
	srv := httptest.NewServer(ts.handler())
	defer srv.Close()

	c := NewClient(srv.URL, srv.Client())

	cases := []Input{
		{Name: "", Price: "9.99", ImagePath: "a.png"},
		{Name: "Widget", Price: "", ImagePath: "a.png"},
		{Name: "Widget", Price: "free", ImagePath: "a.png"},
		{Name: "Widget", Price: "-1", ImagePath: "a.png"},
		// нет источника изображения
		{Name: "Widget", Price: "9.99"},
		// два источника сразу
		{Name: "Widget", Price: "9.99", ImagePath: "a.png", ImageURL: "/u/a.png"},
	}
	for _, in := range cases {
		if _, err := c.Submit(context.Background(), in); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("input %+v: want ErrInvalidInput, got %v", in, err)
		}
	}

	if got := atomic.LoadInt32(&ts.uploads) + atomic.LoadInt32(&ts.creates); got != 0 {
		t.Fatalf("invalid input must not reach the server, got %d calls", got)
	}
}

// Уже опубликованный URL пропускает шаг загрузки.
func TestSubmit_ImageURL_SkipsUpload(t *testing.T) {
	ts := &testServer{}
	srv := httptest.NewServer(ts.handler())
	defer srv.Close()

	c := NewClient(srv.URL, srv.Client())

	res, err := c.Submit(context.Background(), Input{
		Name:     "Widget",
		Price:    "9.99",
		ImageURL: "/uploads/existing.png",
	})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if got := atomic.LoadInt32(&ts.uploads); got != 0 {
		t.Fatalf("upload must be skipped, got %d calls", got)
	}
	if res.ImageURL != "/uploads/existing.png" {
		t.Fatalf("unexpected image url: %q", res.ImageURL)
	}
}

// Повторная отправка до завершения первой отклоняется.
func TestSubmit_InFlightGuard(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{})
	var startedOnce sync.Once

	mux := http.NewServeMux()
	mux.HandleFunc("/api/upload", func(w http.ResponseWriter, r *http.Request) {
		startedOnce.Do(func() { close(started) })
		<-release
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"imageUrl":"/uploads/deadbeef.png"}`))
	})
	mux.HandleFunc("/api/products", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":"prod-1"}`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := NewClient(srv.URL, srv.Client())
	in := Input{Name: "Widget", Price: "9.99", ImagePath: writeTempImage(t)}

	errCh := make(chan error, 1)
	go func() {
		_, err := c.Submit(context.Background(), in)
		errCh <- err
	}()

	<-started
	// первая отправка висит на upload; вторая должна отклониться сразу
	if _, err := c.Submit(context.Background(), in); !errors.Is(err, ErrSubmitInFlight) {
		t.Fatalf("want ErrSubmitInFlight, got %v", err)
	}
	close(release)

	if err := <-errCh; err != nil {
		t.Fatalf("first submit failed: %v", err)
	}

	// после завершения можно отправлять снова
	if _, err := c.Submit(context.Background(), in); err != nil {
		t.Fatalf("second submit after completion failed: %v", err)
	}
}
