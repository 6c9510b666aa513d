package app

import (
	"image"

	"github.com/disintegration/imaging"

	"github.com/randomtask2000/Kohya-prep/internal/domain/entity"
	"github.com/randomtask2000/Kohya-prep/internal/domain/port"
)

// OrientationNormalizer отменяет поворот камеры, записанный в EXIF.
type OrientationNormalizer struct {
	reader port.OrientationReader
}

func NewOrientationNormalizer(reader port.OrientationReader) *OrientationNormalizer {
	return &OrientationNormalizer{reader: reader}
}

// Normalize поворачивает img по тегу ориентации из закодированных байтов.
// Отсутствие или нечитаемость метаданных — не ошибка: изображение
// возвращается нетронутым.
func (n *OrientationNormalizer) Normalize(data []byte, img image.Image) image.Image {
	if n.reader == nil {
		return img
	}
	orientation, err := n.reader.Orientation(data)
	if err != nil {
		return img
	}
	switch entity.RotationFromEXIF(orientation) {
	case entity.Rotate90:
		return imaging.Rotate90(img)
	case entity.Rotate180:
		return imaging.Rotate180(img)
	case entity.Rotate270:
		return imaging.Rotate270(img)
	}
	return img
}
