package geometry

import (
	"image"
	"math"
	"sort"

	"github.com/disintegration/imaging"
)

// MaskPolygon возвращает копию img, где каждый пиксель вне полигона заменён
// прозрачным чёрным. Полигон меньше трёх точек даёт полностью прозрачное
// изображение.
func MaskPolygon(img image.Image, points []image.Point) *image.NRGBA {
	src := imaging.Clone(img)
	w := src.Bounds().Dx()
	h := src.Bounds().Dy()
	out := image.NewNRGBA(image.Rect(0, 0, w, h))
	if len(points) < 3 {
		return out
	}

	for y := 0; y < h; y++ {
		xs := rowIntersections(points, float64(y)+0.5)
		for i := 0; i+1 < len(xs); i += 2 {
			from := int(math.Ceil(xs[i] - 0.5))
			to := int(math.Floor(xs[i+1] - 0.5))
			if from < 0 {
				from = 0
			}
			if to >= w {
				to = w - 1
			}
			for x := from; x <= to; x++ {
				out.SetNRGBA(x, y, src.NRGBAAt(x, y))
			}
		}
	}
	return out
}

// rowIntersections возвращает отсортированные x, где горизонталь на высоте y
// пересекает рёбра полигона. Правило чёт-нечет: соседние пары ограничивают
// внутренние отрезки.
func rowIntersections(points []image.Point, y float64) []float64 {
	var xs []float64
	n := len(points)
	for i := 0; i < n; i++ {
		a := points[i]
		b := points[(i+1)%n]
		ay, by := float64(a.Y), float64(b.Y)
		if (ay <= y) == (by <= y) {
			continue
		}
		t := (y - ay) / (by - ay)
		xs = append(xs, float64(a.X)+t*float64(b.X-a.X))
	}
	sort.Float64s(xs)
	return xs
}
