package port

import (
	"context"
	"image"

	"github.com/randomtask2000/Kohya-prep/internal/domain/entity"
)

// FaceDetector находит рамки лиц в кадре.
type FaceDetector interface {
	// DetectFaces возвращает ноль и более рамок. Пустой срез — не ошибка.
	DetectFaces(ctx context.Context, frame image.Image) ([]entity.Rect, error)
}

// LandmarkDetector находит именованные черты лица внутри кропа.
type LandmarkDetector interface {
	// DetectLandmarks возвращает найденные черты; пустой набор означает,
	// что вызывающему стоит взять общие теги.
	DetectLandmarks(faceCrop image.Image) (entity.LandmarkSet, error)
}
