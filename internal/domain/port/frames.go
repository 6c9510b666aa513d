package port

import "image"

// FrameSource выдаёт декодированные кадры из файла изображения или видео.
type FrameSource interface {
	// Next возвращает следующий кадр либо io.EOF, когда источник исчерпан.
	Next() (image.Image, error)

	Close() error
}
