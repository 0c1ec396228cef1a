package local_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bangshop/admin/internal/storage/local"
)

func TestSave_WritesFileAndReturnsURL(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	store, err := local.NewImageStore(dir, "/uploads")
	if err != nil {
		t.Fatalf("NewImageStore: %v", err)
	}

	payload := []byte("png-bytes")
	url, err := store.Save(context.Background(), "image/png", bytes.NewReader(payload))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}

	if !strings.HasPrefix(url, "/uploads/") || !strings.HasSuffix(url, ".png") {
		t.Fatalf("unexpected url: %q", url)
	}

	name := strings.TrimPrefix(url, "/uploads/")
	got, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		t.Fatalf("read stored file: %v", err)
	}
	if !bytes.Equal(got, payload) {
		t.Fatalf("stored bytes differ: %q", got)
	}
}

func TestSave_ExtensionFollowsContentType(t *testing.T) {
	t.Parallel()

	store, err := local.NewImageStore(t.TempDir(), "/uploads")
	if err != nil {
		t.Fatalf("NewImageStore: %v", err)
	}

	tests := []struct {
		contentType string
		wantExt     string
	}{
		{"image/png", ".png"},
		{"image/jpeg", ".jpg"},
		{"image/gif", ".gif"},
		{"image/webp", ".webp"},
	}

	for _, tt := range tests {
		url, err := store.Save(context.Background(), tt.contentType, strings.NewReader("x"))
		if err != nil {
			t.Fatalf("Save(%s): %v", tt.contentType, err)
		}
		if !strings.HasSuffix(url, tt.wantExt) {
			t.Fatalf("Save(%s): want ext %s, got %q", tt.contentType, tt.wantExt, url)
		}
	}
}

func TestSave_RejectsUnknownContentType(t *testing.T) {
	t.Parallel()

	store, err := local.NewImageStore(t.TempDir(), "/uploads")
	if err != nil {
		t.Fatalf("NewImageStore: %v", err)
	}

	if _, err := store.Save(context.Background(), "application/pdf", strings.NewReader("x")); err == nil {
		t.Fatalf("want error for unsupported content type")
	}
}

// Два сохранения одного и того же файла дают разные URL.
func TestSave_NamesDoNotCollide(t *testing.T) {
	t.Parallel()

	store, err := local.NewImageStore(t.TempDir(), "/uploads")
	if err != nil {
		t.Fatalf("NewImageStore: %v", err)
	}

	u1, err1 := store.Save(context.Background(), "image/png", strings.NewReader("a"))
	u2, err2 := store.Save(context.Background(), "image/png", strings.NewReader("a"))
	if err1 != nil || err2 != nil {
		t.Fatalf("unexpected errors: %v %v", err1, err2)
	}
	if u1 == u2 {
		t.Fatalf("urls must differ, both %q", u1)
	}
}
