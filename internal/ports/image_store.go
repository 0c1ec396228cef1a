package ports

import (
	"context"
	"errors"
	"io"
)

// ErrUnsupportedImage — контент-тайп файла не похож на поддерживаемое изображение.
var ErrUnsupportedImage = errors.New("unsupported image content type")

// ImageStore — хранилище загруженных изображений товаров.
type ImageStore interface {
	// Save — сохранить бинарник и вернуть публичный URL изображения.
	// contentType используется для выбора расширения файла.
	Save(ctx context.Context, contentType string, r io.Reader) (string, error)
}
