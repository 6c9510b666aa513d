package entity

import "image"

// Rect задаёт область кадра краями top/right/bottom/left — в том порядке,
// в каком детекторы лиц отдают рамки.
type Rect struct {
	Top    int
	Right  int
	Bottom int
	Left   int
}

// Width возвращает ширину области в пикселях.
func (r Rect) Width() int { return r.Right - r.Left }

// Height возвращает высоту области в пикселях.
func (r Rect) Height() int { return r.Bottom - r.Top }

// Empty сообщает, что область не покрывает ни одного пикселя.
func (r Rect) Empty() bool { return r.Right <= r.Left || r.Bottom <= r.Top }

// Clamp прижимает все четыре края к кадру frameWidth×frameHeight.
// Результат может быть пустым, но за кадр не выходит.
func (r Rect) Clamp(frameWidth, frameHeight int) Rect {
	r.Top = clamp(r.Top, 0, frameHeight)
	r.Bottom = clamp(r.Bottom, 0, frameHeight)
	r.Left = clamp(r.Left, 0, frameWidth)
	r.Right = clamp(r.Right, 0, frameWidth)
	if r.Bottom < r.Top {
		r.Bottom = r.Top
	}
	if r.Right < r.Left {
		r.Right = r.Left
	}
	return r
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ToImageRect переводит область в прямоугольник stdlib.
func (r Rect) ToImageRect() image.Rectangle {
	return image.Rect(r.Left, r.Top, r.Right, r.Bottom)
}
