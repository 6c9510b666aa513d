package port

import (
	"context"
	"image"
)

// BackgroundSegmenter отделяет объект съёмки от фона.
type BackgroundSegmenter interface {
	// RemoveBackground возвращает копию img: пиксели фона полностью прозрачны,
	// передний план непрозрачен. ErrUnavailable означает, что сегментация
	// невозможна и изображение идёт дальше без изменений.
	RemoveBackground(ctx context.Context, img image.Image) (image.Image, error)
}
