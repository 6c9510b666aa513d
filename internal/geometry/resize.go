package geometry

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"

	"github.com/randomtask2000/Kohya-prep/internal/domain/port"
)

// ResizeWithPadding масштабирует img так, чтобы длинная сторона равнялась
// target, и вклеивает по центру холста target×target со случайной заливкой.
// Размеры после масштаба усекаются, поэтому поля могут отличаться на пиксель;
// выход всегда ровно target×target.
func ResizeWithPadding(img image.Image, target int, rnd port.RandomSource) *image.NRGBA {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	longest := w
	if h > longest {
		longest = h
	}
	ratio := float64(target) / float64(longest)
	scaledW := int(float64(w) * ratio)
	scaledH := int(float64(h) * ratio)
	if scaledW < 1 {
		scaledW = 1
	}
	if scaledH < 1 {
		scaledH = 1
	}
	scaled := imaging.Resize(img, scaledW, scaledH, imaging.Lanczos)

	fill := color.NRGBA{
		R: uint8(rnd.Intn(256)),
		G: uint8(rnd.Intn(256)),
		B: uint8(rnd.Intn(256)),
		A: 255,
	}
	canvas := imaging.New(target, target, fill)
	return imaging.Paste(canvas, scaled, image.Pt((target-scaledW)/2, (target-scaledH)/2))
}

// SquareCropResize вырезает центральный квадрат со стороной min(w, h) и
// ужимает его в size×size. Изображения меньше size кропаются,
// но не растягиваются.
func SquareCropResize(img image.Image, size int) *image.NRGBA {
	bounds := img.Bounds()
	side := bounds.Dx()
	if bounds.Dy() < side {
		side = bounds.Dy()
	}
	cropped := imaging.CropCenter(img, side, side)
	if side <= size {
		return cropped
	}
	return imaging.Fit(cropped, size, size, imaging.Lanczos)
}
