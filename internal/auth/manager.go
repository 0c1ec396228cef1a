package auth

import (
	"context"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"sync"
	"time"

	"github.com/bangshop/admin/internal/domain"
	"github.com/bangshop/admin/internal/ports"
	"github.com/bangshop/admin/pkg/metrics"
	"github.com/google/uuid"
)

// Проверка, что Manager удовлетворяет порту SessionAuthority.
var _ ports.SessionAuthority = (*Manager)(nil)

// ErrInvalidCredentials — неверный логин/пароль или вход отключён конфигурацией.
var ErrInvalidCredentials = errors.New("invalid credentials")

// Config — учётные данные персонала и параметры сессий.
type Config struct {
	Login          string        // логин сотрудника
	PasswordSHA256 string        // hex-дайджест пароля; пусто => вход закрыт
	TTL            time.Duration // время жизни сессии
	JanitorPeriod  time.Duration // период уборки истёкших сессий
}

// Manager — in-memory хранилище сессий с TTL и фоновой уборкой.
// Снаружи видно только наличие/отсутствие сессии: истечение по TTL
// неотличимо от явного выхода.
type Manager struct {
	cfg Config
	log ports.Logger

	mu       sync.Mutex
	sessions map[string]*domain.Session

	stopOnce sync.Once
	stopCh   chan struct{}
}

// NewManager — конструктор; запускает фоновую уборку истёкших сессий.
// Остановка — через Stop (вызывается в cleanup приложения).
func NewManager(cfg Config, log ports.Logger) *Manager {
	if cfg.TTL <= 0 {
		cfg.TTL = 12 * time.Hour
	}
	if cfg.JanitorPeriod <= 0 {
		cfg.JanitorPeriod = time.Minute
	}
	m := &Manager{
		cfg:      cfg,
		log:      log,
		sessions: make(map[string]*domain.Session),
		stopCh:   make(chan struct{}),
	}
	go m.janitor()
	return m
}

// Login — проверка учётных данных и выпуск сессии.
// Сравнение дайджестов константное по времени.
func (m *Manager) Login(ctx context.Context, login, password string) (*domain.Session, error) {
	if m.cfg.PasswordSHA256 == "" {
		m.log.Warnf(ctx, "login rejected: no staff password configured")
		return nil, ErrInvalidCredentials
	}

	sum := sha256.Sum256([]byte(password))
	digest := hex.EncodeToString(sum[:])

	loginOK := subtle.ConstantTimeCompare([]byte(login), []byte(m.cfg.Login)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(digest), []byte(m.cfg.PasswordSHA256)) == 1
	if !loginOK || !passOK {
		m.log.Warnf(ctx, "login failed login=%s", login)
		return nil, ErrInvalidCredentials
	}

	now := time.Now()
	s := &domain.Session{
		ID:        uuid.NewString(),
		Login:     login,
		CreatedAt: now,
		ExpiresAt: now.Add(m.cfg.TTL),
	}

	m.mu.Lock()
	m.sessions[s.ID] = s
	metrics.SessionsActive.Set(float64(len(m.sessions)))
	m.mu.Unlock()

	m.log.Infof(ctx, "session issued login=%s ttl=%s", login, m.cfg.TTL)
	return s, nil
}

// Logout — завершение сессии; незнакомый id молча игнорируем.
func (m *Manager) Logout(ctx context.Context, sessionID string) {
	if sessionID == "" {
		return
	}
	m.mu.Lock()
	if _, ok := m.sessions[sessionID]; ok {
		delete(m.sessions, sessionID)
		metrics.SessionsActive.Set(float64(len(m.sessions)))
	}
	m.mu.Unlock()
	m.log.Infof(ctx, "session closed")
}

// Principal — текущая сессия по id; истёкшая удаляется и считается отсутствующей.
func (m *Manager) Principal(_ context.Context, sessionID string) (*domain.Session, bool) {
	if sessionID == "" {
		return nil, false
	}
	now := time.Now()

	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[sessionID]
	if !ok {
		return nil, false
	}
	if s.Expired(now) {
		delete(m.sessions, sessionID)
		metrics.SessionsActive.Set(float64(len(m.sessions)))
		return nil, false
	}
	copied := *s
	return &copied, true
}

// Stop — остановка фоновой уборки. Повторные вызовы безопасны.
func (m *Manager) Stop() {
	m.stopOnce.Do(func() { close(m.stopCh) })
}

// janitor — периодически удаляет истёкшие сессии, чтобы карта не росла
// от брошенных логинов.
func (m *Manager) janitor() {
	ticker := time.NewTicker(m.cfg.JanitorPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-m.stopCh:
			return
		case now := <-ticker.C:
			m.sweep(now)
		}
	}
}

func (m *Manager) sweep(now time.Time) {
	m.mu.Lock()
	for id, s := range m.sessions {
		if s.Expired(now) {
			delete(m.sessions, id)
		}
	}
	metrics.SessionsActive.Set(float64(len(m.sessions)))
	m.mu.Unlock()
}
