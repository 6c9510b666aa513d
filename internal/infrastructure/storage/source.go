package storage

import (
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/disintegration/imaging"

	"github.com/randomtask2000/Kohya-prep/internal/domain/port"
)

var imageExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
}

// IsVideo определяет видеоконтейнер по расширению пути.
func IsVideo(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mov", ".mp4", ".avi":
		return true
	}
	return false
}

// ListImages возвращает файлы изображений прямо внутри dir, отсортированные
// по имени, чтобы прогоны перечисляли их детерминированно.
func ListImages(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", dir, err)
	}
	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if imageExtensions[strings.ToLower(filepath.Ext(entry.Name()))] {
			paths = append(paths, filepath.Join(dir, entry.Name()))
		}
	}
	sort.Strings(paths)
	return paths, nil
}

// ImageFrameSource выдаёт единственный декодированный кадр файла изображения.
type ImageFrameSource struct {
	path string
	done bool
}

func NewImageFrameSource(path string) *ImageFrameSource {
	return &ImageFrameSource{path: path}
}

// Next возвращает декодированное изображение при первом вызове,
// дальше io.EOF.
func (s *ImageFrameSource) Next() (image.Image, error) {
	if s.done {
		return nil, io.EOF
	}
	s.done = true
	img, err := imaging.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", s.path, err)
	}
	return img, nil
}

func (s *ImageFrameSource) Close() error { return nil }

var _ port.FrameSource = (*ImageFrameSource)(nil)
