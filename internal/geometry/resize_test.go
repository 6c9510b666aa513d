package geometry

import (
	"image"
	"image/color"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/require"
)

// fixedRandom отдаёт заданную последовательность значений, повторяя последнее.
type fixedRandom struct {
	vals []int
	i    int
}

func (f *fixedRandom) Intn(n int) int {
	v := f.vals[f.i]
	if f.i < len(f.vals)-1 {
		f.i++
	}
	return v % n
}

func TestResizeWithPadding_ExactOutputSize(t *testing.T) {
	cases := []struct {
		name string
		w, h int
	}{
		{"landscape", 640, 360},
		{"portrait", 270, 480},
		{"square", 100, 100},
		{"tall sliver", 3, 450},
		{"tiny", 2, 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			src := imaging.New(tc.w, tc.h, color.NRGBA{R: 10, G: 20, B: 30, A: 255})
			out := ResizeWithPadding(src, 512, &fixedRandom{vals: []int{0}})
			require.Equal(t, 512, out.Bounds().Dx())
			require.Equal(t, 512, out.Bounds().Dy())
		})
	}
}

func TestResizeWithPadding_PadColorFromRandomSource(t *testing.T) {
	src := imaging.New(100, 50, color.NRGBA{R: 255, G: 255, B: 255, A: 255})
	out := ResizeWithPadding(src, 100, &fixedRandom{vals: []int{40, 80, 120}})

	// Верхние строки — поля: 50 строк содержимого оставляют 25 строк сверху.
	require.Equal(t, color.NRGBA{R: 40, G: 80, B: 120, A: 255}, out.NRGBAAt(50, 0))
	// Центр — содержимое изображения.
	require.Equal(t, color.NRGBA{R: 255, G: 255, B: 255, A: 255}, out.NRGBAAt(50, 50))
}

func TestResizeWithPadding_OddRemainderStaysExact(t *testing.T) {
	// 101x50 масштабируется в 512x253: нечётный остаток 259px делится floor/ceil.
	src := imaging.New(101, 50, color.NRGBA{A: 255})
	out := ResizeWithPadding(src, 512, &fixedRandom{vals: []int{0}})
	require.Equal(t, image.Rect(0, 0, 512, 512), out.Bounds())
}

func TestSquareCropResize_DownscalesToSquare(t *testing.T) {
	src := imaging.New(1600, 900, color.NRGBA{R: 1, A: 255})
	out := SquareCropResize(src, 768)
	require.Equal(t, 768, out.Bounds().Dx())
	require.Equal(t, 768, out.Bounds().Dy())
}

func TestSquareCropResize_NeverUpscales(t *testing.T) {
	src := imaging.New(300, 200, color.NRGBA{R: 1, A: 255})
	out := SquareCropResize(src, 768)
	require.Equal(t, 200, out.Bounds().Dx())
	require.Equal(t, 200, out.Bounds().Dy())
}
