package entity

// Rotation — поворот против часовой стрелки, отменяющий ориентацию камеры,
// записанную при съёмке.
type Rotation int

const (
	RotationNone Rotation = iota
	Rotate90
	Rotate180
	Rotate270
)

// RotationFromEXIF переводит значение ориентации EXIF в отменяющий поворот.
// Значения кроме 3, 6 и 8 означают отсутствие поворота.
func RotationFromEXIF(orientation int) Rotation {
	switch orientation {
	case 3:
		return Rotate180
	case 6:
		return Rotate270
	case 8:
		return Rotate90
	}
	return RotationNone
}
