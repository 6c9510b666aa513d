//go:build gocv
// +build gocv

package vision

import (
	"fmt"
	"image"
	"io"

	"gocv.io/x/gocv"

	"github.com/randomtask2000/Kohya-prep/internal/domain/port"
)

// VideoFrameSource выдаёт кадры видеоконтейнера через OpenCV.
type VideoFrameSource struct {
	capture *gocv.VideoCapture
	mat     gocv.Mat
}

// NewVideoFrameSource открывает видео по пути path.
func NewVideoFrameSource(path string) (*VideoFrameSource, error) {
	capture, err := gocv.VideoCaptureFile(path)
	if err != nil {
		return nil, fmt.Errorf("open video %s: %w", path, err)
	}
	return &VideoFrameSource{capture: capture, mat: gocv.NewMat()}, nil
}

// Next декодирует следующий кадр либо возвращает io.EOF в конце видео.
func (s *VideoFrameSource) Next() (image.Image, error) {
	if !s.capture.Read(&s.mat) || s.mat.Empty() {
		return nil, io.EOF
	}
	img, err := s.mat.ToImage()
	if err != nil {
		return nil, fmt.Errorf("convert frame: %w", err)
	}
	return img, nil
}

// Close освобождает захват и буфер кадра.
func (s *VideoFrameSource) Close() error {
	s.mat.Close()
	return s.capture.Close()
}

var _ port.FrameSource = (*VideoFrameSource)(nil)
