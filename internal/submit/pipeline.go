// Package submit — клиентский конвейер добавления товара: сначала
// загрузка изображения, затем создание карточки с полученным URL.
// Шаги строго последовательны, провал первого отменяет второй.
package submit

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/bangshop/admin/pkg/validate"
)

// Step — шаг конвейера, на котором случилась ошибка.
type Step string

const (
	StepUpload Step = "upload"
	StepCreate Step = "create"
)

// StepError — ошибка с привязкой к шагу: вызывающий различает
// «изображение не загрузилось» и «карточка не создалась».
type StepError struct {
	Step Step
	Err  error
}

func (e *StepError) Error() string { return fmt.Sprintf("%s step: %v", e.Step, e.Err) }
func (e *StepError) Unwrap() error { return e.Err }

// ErrSubmitInFlight — предыдущая отправка ещё не завершилась.
var ErrSubmitInFlight = errors.New("submit already in flight")

// ErrInvalidInput — форма не прошла локальную проверку, ни одного
// запроса к серверу не сделано.
var ErrInvalidInput = errors.New("invalid submit input")

// Input — поля формы. Price приходит строкой, как её вводит человек.
// Ровно один источник изображения: локальный файл (ImagePath) либо уже
// опубликованный URL (ImageURL).
type Input struct {
	Name        string
	Price       string
	Description string
	ImagePath   string
	ImageURL    string
}

// Result — итог успешной отправки.
type Result struct {
	ImageURL  string
	ProductID string
}

// Client — HTTP-клиент админ-консоли с сессионной кукой.
type Client struct {
	httpClient *http.Client
	baseURL    string

	mu       sync.Mutex
	cookie   *http.Cookie
	inFlight bool
}

func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
	}
}

// Login — POST /api/login; захватывает сессионную куку для последующих шагов.
func (c *Client) Login(ctx context.Context, login, password string) error {
	body, err := json.Marshal(map[string]string{"login": login, "password": password})
	if err != nil {
		return fmt.Errorf("marshal credentials: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/login", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build login request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("login request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("login: %s", serverError(resp))
	}

	for _, ck := range resp.Cookies() {
		if ck.Value != "" {
			c.mu.Lock()
			c.cookie = ck
			c.mu.Unlock()
			return nil
		}
	}
	return errors.New("login succeeded but no session cookie returned")
}

// Submit — проверяет форму локально, затем выполняет оба шага.
// Пока отправка не завершилась, повторный вызов отклоняется с
// ErrSubmitInFlight: случайный двойной клик не создаёт дубликат.
func (c *Client) Submit(ctx context.Context, in Input) (*Result, error) {
	c.mu.Lock()
	if c.inFlight {
		c.mu.Unlock()
		return nil, ErrSubmitInFlight
	}
	c.inFlight = true
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		c.inFlight = false
		c.mu.Unlock()
	}()

	price, err := c.checkInput(in)
	if err != nil {
		return nil, err
	}

	imageURL := in.ImageURL
	if in.ImagePath != "" {
		imageURL, err = c.uploadImage(ctx, in.ImagePath)
		if err != nil {
			return nil, &StepError{Step: StepUpload, Err: err}
		}
	}

	id, err := c.createProduct(ctx, in, price, imageURL)
	if err != nil {
		return nil, &StepError{Step: StepCreate, Err: err}
	}

	return &Result{ImageURL: imageURL, ProductID: id}, nil
}

// checkInput — локальная проверка до первого запроса: битая форма не
// должна стоить ни одного обращения к серверу.
func (c *Client) checkInput(in Input) (float64, error) {
	if strings.TrimSpace(in.Name) == "" {
		return 0, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	price, err := validate.ParsePrice(in.Price)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	hasPath := in.ImagePath != ""
	hasURL := in.ImageURL != ""
	if hasPath == hasURL {
		return 0, fmt.Errorf("%w: exactly one of image path or image url is required", ErrInvalidInput)
	}
	return price, nil
}

func (c *Client) uploadImage(ctx context.Context, path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open image: %w", err)
	}
	defer f.Close()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	hdr := make(textproto.MIMEHeader)
	hdr.Set("Content-Disposition", fmt.Sprintf(`form-data; name="image"; filename=%q`, filepath.Base(path)))
	if ct := mime.TypeByExtension(filepath.Ext(path)); ct != "" {
		hdr.Set("Content-Type", ct)
	}
	part, err := mw.CreatePart(hdr)
	if err != nil {
		return "", fmt.Errorf("build multipart: %w", err)
	}
	if _, err := io.Copy(part, f); err != nil {
		return "", fmt.Errorf("read image: %w", err)
	}
	if err := mw.Close(); err != nil {
		return "", fmt.Errorf("finish multipart: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/upload", &buf)
	if err != nil {
		return "", fmt.Errorf("build upload request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	c.attachCookie(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("upload request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("upload: %s", serverError(resp))
	}

	var out struct {
		ImageURL string `json:"imageUrl"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decode upload response: %w", err)
	}
	if out.ImageURL == "" {
		return "", errors.New("upload response has no imageUrl")
	}
	return out.ImageURL, nil
}

func (c *Client) createProduct(ctx context.Context, in Input, price float64, imageURL string) (string, error) {
	body, err := json.Marshal(map[string]any{
		"name":        strings.TrimSpace(in.Name),
		"price":       price,
		"description": in.Description,
		"imageUrl":    imageURL,
	})
	if err != nil {
		return "", fmt.Errorf("marshal product: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/products", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	c.attachCookie(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return "", fmt.Errorf("create: %s", serverError(resp))
	}

	var out struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decode create response: %w", err)
	}
	return out.ID, nil
}

func (c *Client) attachCookie(req *http.Request) {
	c.mu.Lock()
	if c.cookie != nil {
		req.AddCookie(c.cookie)
	}
	c.mu.Unlock()
}

// serverError — достаёт сообщение из тела {"error": "..."}, иначе отдаёт статус.
func serverError(resp *http.Response) string {
	var out struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, 4096)).Decode(&out); err == nil && out.Error != "" {
		return fmt.Sprintf("%s (%s)", out.Error, resp.Status)
	}
	return resp.Status
}
