package domain

import "time"

// Session — активная сессия сотрудника.
// Для внешних слоёв важно только наличие/отсутствие: истёкшая сессия
// неотличима от явного выхода.
type Session struct {
	ID        string    `json:"-"`
	Login     string    `json:"login"`
	CreatedAt time.Time `json:"createdAt"`
	ExpiresAt time.Time `json:"-"`
}

// Expired — истекла ли сессия на момент now.
func (s *Session) Expired(now time.Time) bool {
	return s == nil || now.After(s.ExpiresAt)
}
