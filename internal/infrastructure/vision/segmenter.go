//go:build gocv
// +build gocv

package vision

import (
	"context"
	"fmt"
	"image"
	"image/color"

	"gocv.io/x/gocv"

	"github.com/randomtask2000/Kohya-prep/internal/domain/port"
)

// Значения маски GrabCut для сохраняемых пикселей.
const (
	maskForeground         = 1
	maskProbableForeground = 3
)

// GrabCutSegmenter удаляет фон алгоритмом GrabCut из OpenCV, затравливаясь
// прямоугольником с отступом от краёв изображения.
type GrabCutSegmenter struct {
	Inset      int
	Iterations int
}

// NewGrabCutSegmenter возвращает сегментатор со стандартным отступом 50px
// и 5 итерациями.
func NewGrabCutSegmenter() *GrabCutSegmenter {
	return &GrabCutSegmenter{Inset: 50, Iterations: 5}
}

// RemoveBackground возвращает img с явным альфа-каналом: пиксели, помеченные
// сегментацией как точный или вероятный передний план, остаются
// непрозрачными, остальные становятся полностью прозрачными.
func (s *GrabCutSegmenter) RemoveBackground(ctx context.Context, img image.Image) (image.Image, error) {
	_ = ctx
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= 2*s.Inset || h <= 2*s.Inset {
		return nil, fmt.Errorf("%w: image %dx%d too small for %dpx inset", port.ErrUnavailable, w, h, s.Inset)
	}

	bgrMat, err := toBGRMat(img)
	if err != nil {
		return nil, err
	}
	defer bgrMat.Close()

	mask := gocv.NewMatWithSize(h, w, gocv.MatTypeCV8U)
	defer mask.Close()
	bgModel := gocv.NewMat()
	defer bgModel.Close()
	fgModel := gocv.NewMat()
	defer fgModel.Close()

	seed := image.Rect(s.Inset, s.Inset, w-s.Inset, h-s.Inset)
	gocv.GrabCut(bgrMat, &mask, seed, &bgModel, &fgModel, s.Iterations, gocv.GCInitWithRect)

	raw, err := mask.DataPtrUint8()
	if err != nil {
		return nil, fmt.Errorf("read mask: %w", err)
	}

	out := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := raw[y*w+x]
			if v != maskForeground && v != maskProbableForeground {
				continue
			}
			c := color.NRGBAModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.NRGBA)
			c.A = 255
			out.SetNRGBA(x, y, c)
		}
	}
	return out, nil
}

var _ port.BackgroundSegmenter = (*GrabCutSegmenter)(nil)
