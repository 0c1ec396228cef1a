package ctxmeta_test

import (
	"context"
	"testing"

	"github.com/bangshop/admin/pkg/ctxmeta"
)

func TestRequestID_RoundTrip(t *testing.T) {
	t.Parallel()

	ctx := ctxmeta.WithRequestID(context.Background(), "req-1")
	got, ok := ctxmeta.RequestIDFromContext(ctx)
	if !ok || got != "req-1" {
		t.Fatalf("want req-1, got %q ok=%v", got, ok)
	}
}

func TestRequestID_EmptyIgnored(t *testing.T) {
	t.Parallel()

	ctx := ctxmeta.WithRequestID(context.Background(), "")
	if _, ok := ctxmeta.RequestIDFromContext(ctx); ok {
		t.Fatalf("пустой request_id не должен попадать в контекст")
	}
}

func TestPrincipal_RoundTrip(t *testing.T) {
	t.Parallel()

	ctx := ctxmeta.WithPrincipal(context.Background(), "admin")
	got, ok := ctxmeta.PrincipalFromContext(ctx)
	if !ok || got != "admin" {
		t.Fatalf("want admin, got %q ok=%v", got, ok)
	}
}

func TestPrincipal_MissingByDefault(t *testing.T) {
	t.Parallel()

	if _, ok := ctxmeta.PrincipalFromContext(context.Background()); ok {
		t.Fatalf("в пустом контексте не должно быть принципала")
	}
}
