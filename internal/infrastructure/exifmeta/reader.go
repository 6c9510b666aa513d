package exifmeta

import (
	"bytes"

	"github.com/rwcarlsen/goexif/exif"

	"github.com/randomtask2000/Kohya-prep/internal/domain/port"
)

// Reader извлекает значение ориентации EXIF из байтов изображения.
type Reader struct{}

func NewReader() Reader { return Reader{} }

// Orientation возвращает сырое значение тега ориентации. Изображения без
// EXIF (PNG, очищенные JPEG) дают ошибку, которую вызывающие трактуют как
// «без поворота».
func (Reader) Orientation(data []byte) (int, error) {
	meta, err := exif.Decode(bytes.NewReader(data))
	if err != nil {
		return 0, err
	}
	tag, err := meta.Get(exif.Orientation)
	if err != nil {
		return 0, err
	}
	return tag.Int(0)
}

var _ port.OrientationReader = Reader{}
