package ports

import (
	"context"

	"github.com/bangshop/admin/internal/domain"
)

// SessionAuthority — источник истины о сессиях персонала.
// Контракт сознательно узкий: наличие/отсутствие принципала, без кодов причин.
type SessionAuthority interface {
	// Login — проверка учётных данных и выпуск новой сессии.
	Login(ctx context.Context, login, password string) (*domain.Session, error)

	// Logout — завершение сессии; незнакомый id не является ошибкой.
	Logout(ctx context.Context, sessionID string)

	// Principal — текущая сессия по id; (nil, false) если нет или истекла.
	Principal(ctx context.Context, sessionID string) (*domain.Session, bool)
}
