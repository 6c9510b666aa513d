//go:build gocv
// +build gocv

package vision

import (
	"context"
	"fmt"
	"image"

	"gocv.io/x/gocv"

	"github.com/randomtask2000/Kohya-prep/internal/domain/entity"
	"github.com/randomtask2000/Kohya-prep/internal/domain/port"
)

// CascadeDetector находит лица каскадом Хаара из OpenCV.
type CascadeDetector struct {
	cascade gocv.CascadeClassifier
}

// NewCascadeDetector загружает файл каскада и возвращает готовый детектор.
func NewCascadeDetector(cascadeFile string) (*CascadeDetector, error) {
	cascade := gocv.NewCascadeClassifier()
	if !cascade.Load(cascadeFile) {
		cascade.Close()
		return nil, fmt.Errorf("load cascade %s", cascadeFile)
	}
	return &CascadeDetector{cascade: cascade}, nil
}

// DetectFaces возвращает рамки всех лиц в кадре.
func (d *CascadeDetector) DetectFaces(ctx context.Context, frame image.Image) ([]entity.Rect, error) {
	_ = ctx
	mat, err := toBGRMat(frame)
	if err != nil {
		return nil, err
	}
	defer mat.Close()

	gray := gocv.NewMat()
	defer gray.Close()
	gocv.CvtColor(mat, &gray, gocv.ColorBGRToGray)

	rects := d.cascade.DetectMultiScale(gray)
	faces := make([]entity.Rect, 0, len(rects))
	for _, r := range rects {
		faces = append(faces, entity.Rect{
			Top:    r.Min.Y,
			Right:  r.Max.X,
			Bottom: r.Max.Y,
			Left:   r.Min.X,
		})
	}
	return faces, nil
}

// Close освобождает каскад.
func (d *CascadeDetector) Close() {
	d.cascade.Close()
}

// toBGRMat превращает Go-изображение в BGR-матрицу, которую ждёт OpenCV.
func toBGRMat(img image.Image) (gocv.Mat, error) {
	rgb, err := gocv.ImageToMatRGB(img)
	if err != nil {
		return gocv.NewMat(), fmt.Errorf("convert image: %w", err)
	}
	defer rgb.Close()

	bgr := gocv.NewMat()
	// Перестановка RGB<->BGR симметрична, код BGRToRGB работает в обе стороны.
	gocv.CvtColor(rgb, &bgr, gocv.ColorBGRToRGB)
	return bgr, nil
}

var _ port.FaceDetector = (*CascadeDetector)(nil)
