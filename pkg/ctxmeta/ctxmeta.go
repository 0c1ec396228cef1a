// Пакет ctxmeta — нейтральный слой для метаданных запроса, которые
// прокидываются через context.Context (request_id, принципал, trace_id).
// HTTP-слой и логгер зависят от этого пакета, но не друг от друга.
package ctxmeta

import "context"

type ctxKey string

const (
	// Ключи контекста (собственный тип — чтобы избежать коллизий).
	KeyRequestID ctxKey = "request_id"
	KeyPrincipal ctxKey = "principal"
)

// WithRequestID кладёт request_id в контекст (пустое значение игнорируется).
func WithRequestID(ctx context.Context, requestID string) context.Context {
	if ctx == nil || requestID == "" {
		return ctx
	}
	return context.WithValue(ctx, KeyRequestID, requestID)
}

// RequestIDFromContext достаёт request_id из контекста.
func RequestIDFromContext(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	if v, ok := ctx.Value(KeyRequestID).(string); ok && v != "" {
		return v, true
	}
	return "", false
}

// WithPrincipal кладёт логин аутентифицированного сотрудника в контекст.
// Guard-слой заполняет его после проверки сессии; логгер подмешивает в записи.
func WithPrincipal(ctx context.Context, login string) context.Context {
	if ctx == nil || login == "" {
		return ctx
	}
	return context.WithValue(ctx, KeyPrincipal, login)
}

// PrincipalFromContext достаёт логин принципала из контекста.
func PrincipalFromContext(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	if v, ok := ctx.Value(KeyPrincipal).(string); ok && v != "" {
		return v, true
	}
	return "", false
}
