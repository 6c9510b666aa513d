//go:build !gocv
// +build !gocv

package vision

import (
	"context"
	"image"

	"github.com/randomtask2000/Kohya-prep/internal/domain/entity"
	"github.com/randomtask2000/Kohya-prep/internal/domain/port"
)

// CascadeDetector — заглушка для сборки без тега gocv.
type CascadeDetector struct{}

// NewCascadeDetector создаёт детектор-заглушку (без OpenCV).
func NewCascadeDetector(cascadeFile string) (*CascadeDetector, error) {
	_ = cascadeFile
	return nil, port.ErrUnavailable
}

// DetectFaces возвращает ошибку, если сборка без тега gocv.
func (d *CascadeDetector) DetectFaces(ctx context.Context, frame image.Image) ([]entity.Rect, error) {
	_ = ctx
	_ = frame
	return nil, port.ErrUnavailable
}

// Close ничего не делает в сборке без тега gocv.
func (d *CascadeDetector) Close() {}

// GrabCutSegmenter — заглушка для сборки без тега gocv. Конвейер трактует её
// ошибку как «пропустить изображение без изменений».
type GrabCutSegmenter struct {
	Inset      int
	Iterations int
}

func NewGrabCutSegmenter() *GrabCutSegmenter {
	return &GrabCutSegmenter{Inset: 50, Iterations: 5}
}

// RemoveBackground возвращает ошибку, если сборка без тега gocv.
func (s *GrabCutSegmenter) RemoveBackground(ctx context.Context, img image.Image) (image.Image, error) {
	_ = ctx
	_ = img
	return nil, port.ErrUnavailable
}

// VideoFrameSource — заглушка для сборки без тега gocv.
type VideoFrameSource struct{}

// NewVideoFrameSource создаёт источник-заглушку (без OpenCV).
func NewVideoFrameSource(path string) (*VideoFrameSource, error) {
	_ = path
	return nil, port.ErrUnavailable
}

// Next возвращает ошибку, если сборка без тега gocv.
func (s *VideoFrameSource) Next() (image.Image, error) {
	return nil, port.ErrUnavailable
}

// Close ничего не делает в сборке без тега gocv.
func (s *VideoFrameSource) Close() error { return nil }

var (
	_ port.FaceDetector        = (*CascadeDetector)(nil)
	_ port.BackgroundSegmenter = (*GrabCutSegmenter)(nil)
	_ port.FrameSource         = (*VideoFrameSource)(nil)
)
