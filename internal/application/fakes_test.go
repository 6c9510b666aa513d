package app

import (
	"context"
	"image"
	"sync"

	"github.com/randomtask2000/Kohya-prep/internal/domain/entity"
)

// fakeDetector отдаёт фиксированный набор лиц.
type fakeDetector struct {
	faces []entity.Rect
	err   error
	calls int
}

func (d *fakeDetector) DetectFaces(ctx context.Context, frame image.Image) ([]entity.Rect, error) {
	d.calls++
	return d.faces, d.err
}

// fakeLandmarker отдаёт фиксированный набор ориентиров.
type fakeLandmarker struct {
	set entity.LandmarkSet
	err error
}

func (l *fakeLandmarker) DetectLandmarks(faceCrop image.Image) (entity.LandmarkSet, error) {
	return l.set, l.err
}

// fakeRandom отдаёт заданную последовательность значений, повторяя последнее.
type fakeRandom struct {
	vals []int
	i    int
}

func (f *fakeRandom) Intn(n int) int {
	v := f.vals[f.i]
	if f.i < len(f.vals)-1 {
		f.i++
	}
	return v % n
}

// fakeSegmenter либо возвращает фиксированное изображение, либо падает.
type fakeSegmenter struct {
	out   image.Image
	err   error
	calls int
}

func (s *fakeSegmenter) RemoveBackground(ctx context.Context, img image.Image) (image.Image, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	if s.out != nil {
		return s.out, nil
	}
	return img, nil
}

// fakeReader отдаёт фиксированное значение ориентации EXIF.
type fakeReader struct {
	orientation int
	err         error
}

func (r *fakeReader) Orientation(data []byte) (int, error) {
	return r.orientation, r.err
}

// fakeWorkspace записывает файловые операции в память.
type fakeWorkspace struct {
	mu      sync.Mutex
	ops     []string
	files   map[string][]byte
	prepErr error
	dirErr  error
}

func newFakeWorkspace() *fakeWorkspace {
	return &fakeWorkspace{files: make(map[string][]byte)}
}

func (w *fakeWorkspace) PrepareClean(path string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.ops = append(w.ops, "clean "+path)
	return w.prepErr
}

func (w *fakeWorkspace) EnsureDir(path string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.ops = append(w.ops, "mkdir "+path)
	return w.dirErr
}

func (w *fakeWorkspace) WriteFile(path string, data []byte) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.ops = append(w.ops, "write "+path)
	w.files[path] = data
	return nil
}
