// Пакет local — дисковое хранилище загруженных изображений.
// Файлы раздаются обратно статикой под baseURL (по умолчанию /uploads).
package local

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"

	"github.com/bangshop/admin/internal/ports"
	"github.com/google/uuid"
)

// Проверка, что ImageStore удовлетворяет порту.
var _ ports.ImageStore = (*ImageStore)(nil)

// extByContentType — допустимые типы изображений и их расширения.
// Всё остальное отклоняется до записи на диск.
var extByContentType = map[string]string{
	"image/png":  ".png",
	"image/jpeg": ".jpg",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

type ImageStore struct {
	dir     string
	baseURL string
}

// NewImageStore — создаёт каталог хранения, если его нет.
func NewImageStore(dir, baseURL string) (*ImageStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &ImageStore{dir: dir, baseURL: baseURL}, nil
}

// Save — пишет бинарник под случайным именем и возвращает публичный URL.
// Имя не зависит от клиентского: загрузки не могут перетирать друг друга.
func (s *ImageStore) Save(ctx context.Context, contentType string, r io.Reader) (string, error) {
	ext, ok := extByContentType[contentType]
	if !ok {
		return "", fmt.Errorf("%w: %q", ports.ErrUnsupportedImage, contentType)
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	name := uuid.NewString() + ext
	fullPath := filepath.Join(s.dir, name)

	f, err := os.OpenFile(fullPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("create image file: %w", err)
	}

	if _, err := io.Copy(f, r); err != nil {
		_ = f.Close()
		_ = os.Remove(fullPath)
		return "", fmt.Errorf("write image: %w", err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(fullPath)
		return "", fmt.Errorf("close image file: %w", err)
	}

	return path.Join(s.baseURL, name), nil
}

// Dir — каталог хранения (нужен роутеру для отдачи статики).
func (s *ImageStore) Dir() string { return s.dir }
